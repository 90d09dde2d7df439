package service

import (
	"time"

	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/WaseemSyawish/lingua/internal/repository"
	"github.com/WaseemSyawish/lingua/internal/util"
)

const sessionListLimit = 50

// SessionService 会话生命周期管理
type SessionService struct {
	sessionRepo *repository.SessionRepository
	aiService   *AIService
}

func NewSessionService(sessionRepo *repository.SessionRepository, aiService *AIService) *SessionService {
	return &SessionService{sessionRepo: sessionRepo, aiService: aiService}
}

// Create 新建会话；定级会话使用更强的分析模型，其余用对话模型
func (s *SessionService) Create(userID uint, sessionType model.SessionType) (*model.ConversationSession, error) {
	if !sessionType.Valid() {
		return nil, util.ErrInvalidSessionType
	}

	aiModel := s.aiService.Model()
	if sessionType == model.SessionPlacement {
		aiModel = s.aiService.AnalysisModel()
	}

	session := &model.ConversationSession{
		UserID:      userID,
		SessionType: sessionType,
		AIModel:     aiModel,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) List(userID uint) ([]model.ConversationSession, error) {
	return s.sessionRepo.ListByUser(userID, sessionListLimit)
}

func (s *SessionService) Get(userID uint, sessionID string) (*model.ConversationSession, error) {
	return s.sessionRepo.FindByIDForUser(sessionID, userID)
}

// End 结束会话，对已结束的会话重复调用报前置条件失败
func (s *SessionService) End(userID uint, sessionID string) (*model.ConversationSession, error) {
	session, err := s.sessionRepo.FindByIDForUser(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.Ended() {
		return nil, util.ErrSessionEnded
	}

	now := time.Now()
	if err := s.sessionRepo.End(sessionID, now); err != nil {
		return nil, err
	}
	session.EndedAt = &now
	return session, nil
}
