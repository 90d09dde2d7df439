package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/WaseemSyawish/lingua/internal/util"
	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// Create 在事务里分配递增的会话编号后落库
func (r *SessionRepository) Create(session *model.ConversationSession) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var maxNumber int
		if err := tx.Model(&model.ConversationSession{}).
			Where("user_id = ?", session.UserID).
			Select("COALESCE(MAX(session_number), 0)").
			Scan(&maxNumber).Error; err != nil {
			return err
		}
		session.SessionNumber = maxNumber + 1
		return tx.Create(session).Error
	})
}

func (r *SessionRepository) FindByIDForUser(id string, userID uint) (*model.ConversationSession, error) {
	var session model.ConversationSession
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("conversation_messages.created_at ASC")
		}).
		Preload("Summary").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) ListByUser(userID uint, limit int) ([]model.ConversationSession, error) {
	var sessions []model.ConversationSession
	query := r.DB.Where("user_id = ?", userID).
		Preload("Summary").
		Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) End(id string, endedAt time.Time) error {
	return r.DB.Model(&model.ConversationSession{}).Where("id = ?", id).
		Update("ended_at", &endedAt).Error
}

func (r *SessionRepository) AppendMessage(message *model.ConversationMessage) error {
	return r.DB.Create(message).Error
}

func (r *SessionRepository) IncrementMessageCount(id string, delta int) error {
	return r.DB.Model(&model.ConversationSession{}).Where("id = ?", id).
		Update("message_count", gorm.Expr("message_count + ?", delta)).Error
}

// SetFocusConcepts 只在会话还没有焦点时写入，焦点一旦冻结不再变动
func (r *SessionRepository) SetFocusConcepts(id string, concepts []string) error {
	payload, err := json.Marshal(concepts)
	if err != nil {
		return err
	}
	return r.DB.Model(&model.ConversationSession{}).
		Where("id = ? AND (focus_concepts IS NULL OR focus_concepts = '' OR focus_concepts = 'null' OR focus_concepts = '[]')", id).
		Update("focus_concepts", string(payload)).Error
}

// UpsertSummary 每个会话只保留一份分析摘要，重复分析时覆盖
func (r *SessionRepository) UpsertSummary(summary *model.SessionSummary) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.SessionSummary
		err := tx.Where("session_id = ?", summary.SessionID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(summary).Error
		}
		if err != nil {
			return err
		}
		summary.ID = existing.ID
		summary.CreatedAt = existing.CreatedAt
		return tx.Save(summary).Error
	})
}

// RecentWithSummaries 取最近已分析过的会话，供提示词记忆层使用
func (r *SessionRepository) RecentWithSummaries(userID uint, limit int) ([]model.ConversationSession, error) {
	var sessions []model.ConversationSession
	err := r.DB.Where("user_id = ? AND ended_at IS NOT NULL", userID).
		Joins("JOIN session_summaries ON session_summaries.session_id = conversation_sessions.id").
		Preload("Summary").
		Order("conversation_sessions.started_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}
