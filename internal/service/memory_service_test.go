package service

import (
	"testing"
	"time"

	"github.com/WaseemSyawish/lingua/internal/curriculum"
	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mastery(conceptID string, score float64, lastPracticed *time.Time) model.ConceptMastery {
	return model.ConceptMastery{
		ConceptID:     conceptID,
		MasteryScore:  score,
		LastPracticed: lastPracticed,
	}
}

func daysAgo(now time.Time, days float64) *time.Time {
	t := now.Add(-time.Duration(days * 24 * float64(time.Hour)))
	return &t
}

func TestReviewIntervalGrowsWithMastery(t *testing.T) {
	assert.Equal(t, 1.0, reviewInterval(0))
	assert.InDelta(t, 11.18, reviewInterval(0.5), 0.01)
	assert.InDelta(t, 27.0, reviewInterval(0.9), 0.01)
}

func TestDueForReviewNeverPracticedFirst(t *testing.T) {
	now := time.Now()
	masteries := []model.ConceptMastery{
		mastery("vocab.known", 0.5, daysAgo(now, 30)),
		mastery("vocab.never", 0, nil),
	}

	due := dueForReview(masteries, now, 3)
	assert.Equal(t, []string{"vocab.never", "vocab.known"}, due)
}

func TestDueForReviewHighMasteryRecentNotDue(t *testing.T) {
	now := time.Now()
	// 掌握度0.9昨天练过：间隔约27天，远没到期
	masteries := []model.ConceptMastery{
		mastery("vocab.fresh", 0.9, daysAgo(now, 1)),
	}
	assert.Empty(t, dueForReview(masteries, now, 3))
}

func TestDueForReviewRespectsLimit(t *testing.T) {
	now := time.Now()
	masteries := []model.ConceptMastery{
		mastery("a", 0, nil),
		mastery("b", 0.1, nil),
		mastery("c", 0.2, nil),
		mastery("d", 0.3, nil),
	}
	assert.Len(t, dueForReview(masteries, now, 3), 3)
}

func TestDueForReviewEmptyInput(t *testing.T) {
	assert.Empty(t, dueForReview(nil, time.Now(), 3))
}

func TestNewConceptsCurriculumOrder(t *testing.T) {
	levelIDs := []string{"vocab.a", "vocab.b", "grammar.c", "vocab.d"}
	masteries := []model.ConceptMastery{
		mastery("vocab.b", 0.4, nil),
	}

	fresh := newConcepts(levelIDs, masteries, 2)
	assert.Equal(t, []string{"vocab.a", "grammar.c"}, fresh)
}

func TestNewConceptsAllPracticed(t *testing.T) {
	levelIDs := []string{"vocab.a"}
	masteries := []model.ConceptMastery{mastery("vocab.a", 0.2, nil)}
	assert.Empty(t, newConcepts(levelIDs, masteries, 2))
}

func TestNewConceptsNoMasteryHistory(t *testing.T) {
	levelIDs := []string{"vocab.a", "vocab.b", "vocab.c"}
	fresh := newConcepts(levelIDs, nil, 2)
	assert.Equal(t, []string{"vocab.a", "vocab.b"}, fresh)
}

// 新学员场景：没有掌握记录时选出的前两个新概念
// 要能在生成的系统提示里找到对应的概念指引
func TestFreshLearnerFocusReachesPrompt(t *testing.T) {
	levelIDs := curriculum.ConceptIDs(model.LevelA1)
	require.NotEmpty(t, levelIDs)

	due := dueForReview(nil, time.Now(), dueReviewLimit)
	assert.Empty(t, due)

	focus := append(due, newConcepts(levelIDs, nil, newConceptsLimit)...)
	require.Len(t, focus, 2)

	prompt, err := curriculum.ComposePrompt(curriculum.ComposeOptions{
		Level:         model.LevelA1,
		SessionType:   model.SessionLesson,
		FocusConcepts: focus,
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "SESSION FOCUS CONCEPTS")
	assert.Contains(t, prompt, "Present tense of être and avoir")
	assert.Contains(t, prompt, "Regular -er verbs, present tense")
}
