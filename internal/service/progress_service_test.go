package service

import (
	"testing"
	"time"

	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/stretchr/testify/assert"
)

// buildStats 按目标统计值构造一组掌握记录
func buildLevelConceptIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = "vocab.concept_" + string(rune('a'+i))
	}
	return ids
}

func masteriesWithScores(ids []string, scores []float64) []model.ConceptMastery {
	out := make([]model.ConceptMastery, len(scores))
	for i, s := range scores {
		out[i] = model.ConceptMastery{ConceptID: ids[i], MasteryScore: s}
	}
	return out
}

func TestComputeLevelStats(t *testing.T) {
	ids := buildLevelConceptIDs(10)
	masteries := masteriesWithScores(ids, []float64{0.9, 0.8, 0.7, 0.6, 0.5})
	// 不在当前等级概念集里的记录不参与统计
	masteries = append(masteries, model.ConceptMastery{ConceptID: "vocab.other_level", MasteryScore: 1.0})

	stats := computeLevelStats(model.LevelA1, ids, masteries)
	assert.Equal(t, 10, stats.TotalConcepts)
	assert.Equal(t, 5, stats.PracticedCount)
	assert.InDelta(t, 0.5, stats.Coverage, 1e-9)
	assert.InDelta(t, 0.7, stats.AverageMastery, 1e-9)
	assert.Equal(t, 3, stats.MasteredCount)
	assert.InDelta(t, 0.3, stats.MasteredFraction, 1e-9)
}

func TestComputeLevelStatsNoPractice(t *testing.T) {
	stats := computeLevelStats(model.LevelA0, buildLevelConceptIDs(5), nil)
	assert.Equal(t, 0.0, stats.AverageMastery)
	assert.Equal(t, 0.0, stats.Coverage)
}

func TestEvaluatePromotion(t *testing.T) {
	stats := LevelStats{
		Level:            model.LevelA1,
		TotalConcepts:    20,
		PracticedCount:   16,
		Coverage:         0.8,
		AverageMastery:   0.8,
		MasteredCount:    13,
		MasteredFraction: 0.65,
	}
	decision := evaluateTransition(model.LevelA1, stats)
	assert.Equal(t, TransitionPromote, decision.Transition)
	assert.Equal(t, model.LevelA1, decision.FromLevel)
	assert.Equal(t, model.LevelA2, decision.ToLevel)
	assert.Contains(t, decision.Reason, "80%")
}

func TestEvaluateDemotion(t *testing.T) {
	stats := LevelStats{
		Level:          model.LevelB1,
		TotalConcepts:  20,
		PracticedCount: 10,
		Coverage:       0.6,
		AverageMastery: 0.2,
	}
	decision := evaluateTransition(model.LevelB1, stats)
	assert.Equal(t, TransitionDemote, decision.Transition)
	assert.Equal(t, model.LevelA2, decision.ToLevel)
}

func TestEvaluateInsufficientCoverage(t *testing.T) {
	// 覆盖率0.4时无论掌握度如何都不变动
	for _, avg := range []float64{0.05, 0.95} {
		stats := LevelStats{
			Level:            model.LevelA2,
			TotalConcepts:    20,
			PracticedCount:   8,
			Coverage:         0.4,
			AverageMastery:   avg,
			MasteredFraction: 0.4,
		}
		decision := evaluateTransition(model.LevelA2, stats)
		assert.Equal(t, TransitionNone, decision.Transition)
		assert.Equal(t, model.LevelA2, decision.ToLevel)
	}
}

func TestEvaluateTopmostNeverPromotes(t *testing.T) {
	stats := LevelStats{
		Level:            model.LevelC2,
		Coverage:         1.0,
		AverageMastery:   1.0,
		MasteredFraction: 1.0,
		PracticedCount:   20,
	}
	decision := evaluateTransition(model.LevelC2, stats)
	assert.Equal(t, TransitionNone, decision.Transition)
}

func TestEvaluateBottommostNeverDemotes(t *testing.T) {
	stats := LevelStats{
		Level:          model.LevelA0,
		Coverage:       0.9,
		AverageMastery: 0.05,
		PracticedCount: 10,
	}
	decision := evaluateTransition(model.LevelA0, stats)
	assert.Equal(t, TransitionNone, decision.Transition)
}

func TestEvaluatePromotionPrecedence(t *testing.T) {
	// 两套阈值同时构造满足时（边界值），晋级优先
	stats := LevelStats{
		Level:            model.LevelB1,
		TotalConcepts:    10,
		PracticedCount:   8,
		Coverage:         0.8,
		AverageMastery:   0.75,
		MasteredCount:    6,
		MasteredFraction: 0.6,
	}
	decision := evaluateTransition(model.LevelB1, stats)
	assert.Equal(t, TransitionPromote, decision.Transition)
	assert.Equal(t, model.LevelB2, decision.ToLevel)
}

func TestEvaluateDemotionMinPracticed(t *testing.T) {
	stats := LevelStats{
		Level:          model.LevelB1,
		TotalConcepts:  8,
		PracticedCount: 4,
		Coverage:       0.5,
		AverageMastery: 0.1,
	}
	decision := evaluateTransition(model.LevelB1, stats)
	assert.Equal(t, TransitionNone, decision.Transition)
}

func sessionOn(day time.Time) model.ConversationSession {
	return model.ConversationSession{StartedAt: day}
}

func TestStreakDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	sessions := []model.ConversationSession{
		sessionOn(now),
		sessionOn(now.AddDate(0, 0, -1)),
		sessionOn(now.AddDate(0, 0, -2)),
		sessionOn(now.AddDate(0, 0, -5)),
	}
	assert.Equal(t, 3, streakDays(sessions, now))
}

func TestStreakDaysAllowsYesterdayStart(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	sessions := []model.ConversationSession{
		sessionOn(now.AddDate(0, 0, -1)),
		sessionOn(now.AddDate(0, 0, -2)),
	}
	assert.Equal(t, 2, streakDays(sessions, now))
}

func TestStreakDaysBrokenStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	sessions := []model.ConversationSession{
		sessionOn(now.AddDate(0, 0, -3)),
	}
	assert.Equal(t, 0, streakDays(sessions, now))
	assert.Equal(t, 0, streakDays(nil, now))
}
