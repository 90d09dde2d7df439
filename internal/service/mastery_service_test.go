package service

import (
	"math"
	"os"
	"testing"
	"time"

	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/WaseemSyawish/lingua/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func TestInitialMasteryDiscountsFirstObservation(t *testing.T) {
	assert.InDelta(t, 0.56, initialMastery(0.8), 1e-9)
	assert.InDelta(t, 0.7, initialMastery(1.0), 1e-9)
	assert.Equal(t, 0.0, initialMastery(0))
}

func TestNextMasteryEMA(t *testing.T) {
	// 0.3*新观测 + 0.7*旧值
	assert.InDelta(t, 0.3*0.9+0.7*0.5, nextMastery(0.5, 0.9), 1e-9)
	assert.InDelta(t, 0.7*0.2, nextMastery(0.2, 0), 1e-9)
}

func TestNextMasteryClamped(t *testing.T) {
	assert.Equal(t, 1.0, nextMastery(1.0, 2.0))
	assert.Equal(t, 0.0, nextMastery(0, -1.0))
}

func TestValidScoreFiltersBadPairs(t *testing.T) {
	assert.True(t, validScore(ConceptScore{ConceptID: "vocab.a", Score: 0.5}))
	assert.False(t, validScore(ConceptScore{ConceptID: "", Score: 0.5}))
	assert.False(t, validScore(ConceptScore{ConceptID: "vocab.a", Score: math.NaN()}))
}

// fakeMasteryStore 内存版掌握度存储，UpdateScore 和真实实现一样每次练习次数加一
type fakeMasteryStore struct {
	records map[string]*model.ConceptMastery
	nextID  uint
}

func newFakeMasteryStore() *fakeMasteryStore {
	return &fakeMasteryStore{records: map[string]*model.ConceptMastery{}}
}

func (f *fakeMasteryStore) FindOne(userID uint, conceptID string) (*model.ConceptMastery, error) {
	if r, ok := f.records[conceptID]; ok && r.UserID == userID {
		copied := *r
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeMasteryStore) Create(record *model.ConceptMastery) error {
	f.nextID++
	record.ID = f.nextID
	f.records[record.ConceptID] = record
	return nil
}

func (f *fakeMasteryStore) UpdateScore(id uint, score float64, practicedAt time.Time) error {
	for _, r := range f.records {
		if r.ID == id {
			r.MasteryScore = score
			r.PracticeCount++
			r.LastPracticed = &practicedAt
			return nil
		}
	}
	return nil
}

func TestApplyBatchIncrementsPracticeCountOncePerPair(t *testing.T) {
	store := newFakeMasteryStore()
	svc := NewMasteryService(store)

	applied, err := svc.ApplyBatch(1, []ConceptScore{
		{ConceptID: "vocab.greetings", Score: 0.8},
		{ConceptID: "grammar.present_er_verbs", Score: 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	assert.Equal(t, 1, store.records["vocab.greetings"].PracticeCount)
	assert.Equal(t, 1, store.records["grammar.present_er_verbs"].PracticeCount)

	// 第二批：已有记录加一，新记录从一开始，跟批次大小无关
	applied, err = svc.ApplyBatch(1, []ConceptScore{
		{ConceptID: "vocab.greetings", Score: 0.9},
		{ConceptID: "vocab.numbers", Score: 0.6},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	assert.Equal(t, 2, store.records["vocab.greetings"].PracticeCount)
	assert.Equal(t, 1, store.records["grammar.present_er_verbs"].PracticeCount)
	assert.Equal(t, 1, store.records["vocab.numbers"].PracticeCount)
}

func TestApplyBatchCountsDuplicatePairsSeparately(t *testing.T) {
	store := newFakeMasteryStore()
	svc := NewMasteryService(store)

	applied, err := svc.ApplyBatch(1, []ConceptScore{
		{ConceptID: "vocab.greetings", Score: 0.4},
		{ConceptID: "vocab.greetings", Score: 0.8},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	assert.Equal(t, 2, store.records["vocab.greetings"].PracticeCount)
}

func TestApplyBatchSkipsInvalidWithoutTouchingCounts(t *testing.T) {
	store := newFakeMasteryStore()
	svc := NewMasteryService(store)

	applied, err := svc.ApplyBatch(1, []ConceptScore{
		{ConceptID: "", Score: 0.5},
		{ConceptID: "vocab.greetings", Score: math.NaN()},
		{ConceptID: "vocab.greetings", Score: 0.7},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.Equal(t, 1, store.records["vocab.greetings"].PracticeCount)
}
