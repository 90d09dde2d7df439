package model

import "time"

type SessionType string

const (
	SessionLesson           SessionType = "LESSON"
	SessionFreeConversation SessionType = "FREE_CONVERSATION"
	SessionReview           SessionType = "REVIEW"
	SessionPlacement        SessionType = "PLACEMENT"
)

func (t SessionType) Valid() bool {
	switch t {
	case SessionLesson, SessionFreeConversation, SessionReview, SessionPlacement:
		return true
	}
	return false
}

type MessageRole string

const (
	RoleUser      MessageRole = "USER"
	RoleAssistant MessageRole = "ASSISTANT"
)

// ConversationSession 一次辅导会话
// FocusConcepts 在会话首条消息时确定，之后不再变更；EndedAt 非空后不允许追加消息
// swagger:model ConversationSession
type ConversationSession struct {
	UUIDBase
	UserID        uint                  `gorm:"index;not null" json:"userId"`
	SessionNumber int                   `gorm:"not null" json:"sessionNumber"`
	SessionType   SessionType           `gorm:"type:varchar(20);not null;default:'LESSON'" json:"sessionType"`
	AIModel       string                `gorm:"size:100" json:"aiModel"`
	FocusConcepts []string              `gorm:"serializer:json" json:"focusConcepts"`
	MessageCount  int                   `gorm:"not null;default:0" json:"messageCount"`
	StartedAt     time.Time             `gorm:"autoCreateTime" json:"startedAt"`
	EndedAt       *time.Time            `json:"endedAt"`
	Messages      []ConversationMessage `gorm:"foreignKey:SessionID" json:"messages,omitempty"`
	Summary       *SessionSummary       `gorm:"foreignKey:SessionID" json:"summary,omitempty"`
}

func (ConversationSession) TableName() string {
	return "conversation_sessions"
}

func (s *ConversationSession) Ended() bool {
	return s.EndedAt != nil
}

// swagger:model ConversationMessage
type ConversationMessage struct {
	UUIDBase
	SessionID string      `gorm:"index;type:varchar(36);not null" json:"sessionId"`
	Role      MessageRole `gorm:"type:varchar(10);not null" json:"role"`
	Content   string      `gorm:"type:text;not null" json:"content"`
}

func (ConversationMessage) TableName() string {
	return "conversation_messages"
}

// SessionSummary 会话分析摘要，每个会话至多一条，重复分析时覆盖
// swagger:model SessionSummary
type SessionSummary struct {
	BaseModel
	SessionID            string `gorm:"uniqueIndex;type:varchar(36);not null" json:"sessionId"`
	TopicsCovered        string `gorm:"type:text" json:"topicsCovered"`
	VocabularyIntroduced string `gorm:"type:text" json:"vocabularyIntroduced"`
	GrammarPracticed     string `gorm:"type:text" json:"grammarPracticed"`
	ErrorsObserved       string `gorm:"type:text" json:"errorsObserved"`
	OverallNotes         string `gorm:"type:text" json:"overallNotes"`
}

func (SessionSummary) TableName() string {
	return "session_summaries"
}
