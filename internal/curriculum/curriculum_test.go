package curriculum

import (
	"testing"

	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForLevelTotalOverAllLevels(t *testing.T) {
	for _, level := range model.LevelOrder {
		c, err := ForLevel(level)
		require.NoError(t, err, "level %s", level)
		assert.Equal(t, level, c.Level)
		assert.NotEmpty(t, c.ConceptIDs)
	}
}

func TestForLevelUnknownLevel(t *testing.T) {
	_, err := ForLevel(model.Level("D9"))
	assert.Error(t, err)
}

func TestConceptIDsCoverClustersAndGrammar(t *testing.T) {
	for _, level := range model.LevelOrder {
		c, err := ForLevel(level)
		require.NoError(t, err)

		declared := make(map[string]bool, len(c.ConceptIDs))
		for _, id := range c.ConceptIDs {
			declared[id] = true
		}

		for _, cluster := range c.VocabularyClusters {
			assert.True(t, declared[cluster.ConceptID],
				"level %s: cluster %s missing from concept list", level, cluster.ConceptID)
		}
		for _, g := range c.GrammarConcepts {
			assert.True(t, declared[g.ConceptID],
				"level %s: grammar %s missing from concept list", level, g.ConceptID)
		}
	}
}

func TestConceptIDsNoDuplicates(t *testing.T) {
	for _, level := range model.LevelOrder {
		seen := make(map[string]bool)
		for _, id := range ConceptIDs(level) {
			assert.False(t, seen[id], "level %s: duplicate concept id %s", level, id)
			seen[id] = true
		}
	}
}

func TestTypeOfPrefixes(t *testing.T) {
	cases := map[string]model.ConceptType{
		"grammar.passe_compose":       model.ConceptGrammar,
		"vocab.greetings_basic":       model.ConceptVocabulary,
		"pronunciation.nasal_vowels":  model.ConceptPronunciation,
		"culture.tu_vous":             model.ConceptCulture,
		"register.formal":             model.ConceptPragmatics,
		"":                            model.ConceptPragmatics,
		"something.else":              model.ConceptPragmatics,
		"grammarless":                 model.ConceptPragmatics,
	}
	for id, want := range cases {
		assert.Equal(t, want, TypeOf(id), "id %q", id)
		// 幂等：重复调用结果一致
		assert.Equal(t, TypeOf(id), TypeOf(id))
	}
}

func TestTypeOfMatchesCatalogDeclarations(t *testing.T) {
	for _, level := range model.LevelOrder {
		c, err := ForLevel(level)
		require.NoError(t, err)
		for _, cluster := range c.VocabularyClusters {
			assert.Equal(t, model.ConceptVocabulary, TypeOf(cluster.ConceptID), cluster.ConceptID)
		}
		for _, g := range c.GrammarConcepts {
			assert.Equal(t, model.ConceptGrammar, TypeOf(g.ConceptID), g.ConceptID)
		}
	}
}
