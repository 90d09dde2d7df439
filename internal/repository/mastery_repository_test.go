package repository

import (
	"testing"
	"time"

	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateScoreIncrementsPracticeCountByOne(t *testing.T) {
	repo := NewMasteryRepository(newTestDB(t))

	record := &model.ConceptMastery{
		UserID:        1,
		ConceptID:     "vocab.greetings",
		ConceptType:   model.ConceptVocabulary,
		MasteryScore:  0.56,
		PracticeCount: 1,
	}
	require.NoError(t, repo.Create(record))

	now := time.Now()
	require.NoError(t, repo.UpdateScore(record.ID, 0.63, now))
	require.NoError(t, repo.UpdateScore(record.ID, 0.71, now))

	updated, err := repo.FindOne(1, "vocab.greetings")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 3, updated.PracticeCount)
	assert.InDelta(t, 0.71, updated.MasteryScore, 1e-9)
	require.NotNil(t, updated.LastPracticed)
}
