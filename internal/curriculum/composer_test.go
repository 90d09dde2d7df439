package curriculum

import (
	"strings"
	"testing"

	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposePromptDeterministic(t *testing.T) {
	opts := ComposeOptions{
		Level:                 model.LevelA1,
		SessionType:           model.SessionLesson,
		FocusConcepts:         []string{"vocab.family", "grammar.present_etre_avoir"},
		ConversationSummaries: []string{"summary one", "summary two"},
		UserName:              "Marie",
	}

	first, err := ComposePrompt(opts)
	require.NoError(t, err)
	second, err := ComposePrompt(opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComposePromptStartsWithPersona(t *testing.T) {
	prompt, err := ComposePrompt(ComposeOptions{
		Level:       model.LevelA0,
		SessionType: model.SessionLesson,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(prompt, BasePersona))
}

func TestComposePromptPlacementExcludesCurriculum(t *testing.T) {
	prompt, err := ComposePrompt(ComposeOptions{
		Level:       model.LevelB2,
		SessionType: model.SessionPlacement,
		// 捏造的焦点和摘要必须被忽略：评估不能被自适应机制影响
		FocusConcepts:         []string{"vocab.greetings_basic"},
		ConversationSummaries: []string{"old session summary"},
		UserName:              "Marie",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, PlacementAddendum)
	assert.Contains(t, prompt, "Marie")
	assert.NotContains(t, prompt, "CURRENT LEARNER LEVEL")
	assert.NotContains(t, prompt, "SESSION FOCUS CONCEPTS")
	assert.NotContains(t, prompt, "PREVIOUS SESSION CONTEXT")
	assert.NotContains(t, prompt, "old session summary")
}

func TestComposePromptSessionTypeBlocks(t *testing.T) {
	cases := map[model.SessionType]string{
		model.SessionLesson:           "SESSION TYPE: Structured Lesson",
		model.SessionFreeConversation: "SESSION TYPE: Free Conversation",
		model.SessionReview:           "SESSION TYPE: Review Session",
	}
	for sessionType, marker := range cases {
		prompt, err := ComposePrompt(ComposeOptions{
			Level:       model.LevelA1,
			SessionType: sessionType,
		})
		require.NoError(t, err)
		assert.Contains(t, prompt, marker)
	}
}

func TestComposePromptUnknownSessionType(t *testing.T) {
	_, err := ComposePrompt(ComposeOptions{
		Level:       model.LevelA1,
		SessionType: model.SessionType("KARAOKE"),
	})
	assert.Error(t, err)
}

func TestComposePromptFocusConcepts(t *testing.T) {
	prompt, err := ComposePrompt(ComposeOptions{
		Level:         model.LevelA0,
		SessionType:   model.SessionLesson,
		FocusConcepts: []string{"vocab.greetings_basic"},
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "SESSION FOCUS CONCEPTS")
	assert.Contains(t, prompt, "Greetings")
}

func TestComposePromptStaleFocusConceptsIgnored(t *testing.T) {
	prompt, err := ComposePrompt(ComposeOptions{
		Level:         model.LevelA0,
		SessionType:   model.SessionLesson,
		FocusConcepts: []string{"vocab.from_another_level", "grammar.unknown"},
	})
	require.NoError(t, err)
	// 解析不了的ID静默跳过，整层消失而不是报错
	assert.NotContains(t, prompt, "SESSION FOCUS CONCEPTS")
}

func TestComposePromptKeepsLastThreeSummaries(t *testing.T) {
	prompt, err := ComposePrompt(ComposeOptions{
		Level:                 model.LevelA1,
		SessionType:           model.SessionFreeConversation,
		ConversationSummaries: []string{"oldest", "second", "third", "newest"},
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "PREVIOUS SESSION CONTEXT")
	assert.NotContains(t, prompt, "oldest")
	assert.Contains(t, prompt, "second\n---\nthird\n---\nnewest")
}

func TestComposePromptUserName(t *testing.T) {
	withName, err := ComposePrompt(ComposeOptions{
		Level:       model.LevelA1,
		SessionType: model.SessionLesson,
		UserName:    "Karim",
	})
	require.NoError(t, err)
	assert.Contains(t, withName, "The learner's name is Karim")

	withoutName, err := ComposePrompt(ComposeOptions{
		Level:       model.LevelA1,
		SessionType: model.SessionLesson,
	})
	require.NoError(t, err)
	assert.NotContains(t, withoutName, "The learner's name")
}

func TestPreviewWordsTruncation(t *testing.T) {
	words := []string{"un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf", "dix"}

	preview := previewWords(words, 8)
	assert.Equal(t, "un, deux, trois, quatre, cinq, six, sept, huit...", preview)

	short := previewWords(words[:3], 8)
	assert.Equal(t, "un, deux, trois", short)
	assert.NotContains(t, short, "...")

	exact := previewWords(words[:8], 8)
	assert.NotContains(t, exact, "...")
}

func TestLevelPromptVocabularyPreviewCap(t *testing.T) {
	c, err := ForLevel(model.LevelA0)
	require.NoError(t, err)

	prompt := levelPrompt(c)
	// 数字词表有10个词，等级层预览最多8个并带省略号
	assert.Contains(t, prompt, "un, deux, trois, quatre, cinq, six, sept, huit...")
	assert.NotContains(t, prompt, "neuf")
}

func TestFocusPromptSixWordCap(t *testing.T) {
	c, err := ForLevel(model.LevelA0)
	require.NoError(t, err)

	out := focusPrompt([]string{"vocab.numbers_1_10"}, c)
	assert.Contains(t, out, "un, deux, trois, quatre, cinq, six...")
	assert.NotContains(t, out, "sept")
}

func TestLevelPromptGrammarAbsenceStated(t *testing.T) {
	c, err := ForLevel(model.LevelA0)
	require.NoError(t, err)
	assert.Contains(t, levelPrompt(c), "No explicit grammar teaching at this level.")

	b1, err := ForLevel(model.LevelB1)
	require.NoError(t, err)
	assert.Contains(t, levelPrompt(b1), "Current grammar targets:")
}
