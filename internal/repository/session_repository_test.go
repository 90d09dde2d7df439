package repository

import (
	"testing"

	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SessionSummary{}, &model.ConceptMastery{}))
	return db
}

func TestUpsertSummaryKeepsOneRowPerSession(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	first := &model.SessionSummary{
		SessionID:     "sess-1",
		TopicsCovered: "greetings",
		OverallNotes:  "first pass",
	}
	require.NoError(t, repo.UpsertSummary(first))

	// 重复分析覆盖已有摘要，不产生第二条
	second := &model.SessionSummary{
		SessionID:     "sess-1",
		TopicsCovered: "greetings, numbers",
		OverallNotes:  "second pass",
	}
	require.NoError(t, repo.UpsertSummary(second))

	var count int64
	require.NoError(t, repo.DB.Model(&model.SessionSummary{}).
		Where("session_id = ?", "sess-1").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var stored model.SessionSummary
	require.NoError(t, repo.DB.Where("session_id = ?", "sess-1").First(&stored).Error)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "greetings, numbers", stored.TopicsCovered)
	assert.Equal(t, "second pass", stored.OverallNotes)
}

func TestUpsertSummarySeparateSessions(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	require.NoError(t, repo.UpsertSummary(&model.SessionSummary{SessionID: "sess-1", OverallNotes: "a"}))
	require.NoError(t, repo.UpsertSummary(&model.SessionSummary{SessionID: "sess-2", OverallNotes: "b"}))

	var count int64
	require.NoError(t, repo.DB.Model(&model.SessionSummary{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
