package service

import (
	"context"
	"errors"
	"time"

	"github.com/WaseemSyawish/lingua/internal/curriculum"
	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/WaseemSyawish/lingua/internal/repository"
	"github.com/WaseemSyawish/lingua/internal/util"
	"github.com/WaseemSyawish/lingua/pkg/logger"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	// 历史裁剪到最近40条，控制上下文长度
	historyLimit = 40

	// 会话锁：同一会话同时只允许一个在途回合
	sessionLockPrefix = "lingua:session_lock:"
	sessionLockTTL    = 2 * time.Minute
)

// TutorService 辅导回合管线：选焦点、组提示词、落库、流式转发
type TutorService struct {
	sessionRepo   *repository.SessionRepository
	profileRepo   *repository.ProfileRepository
	userRepo      *repository.UserRepository
	memoryService *MemoryService
	aiService     *AIService
	redis         *redis.Client
}

func NewTutorService(sessionRepo *repository.SessionRepository, profileRepo *repository.ProfileRepository, userRepo *repository.UserRepository, memoryService *MemoryService, aiService *AIService, redisClient *redis.Client) *TutorService {
	return &TutorService{
		sessionRepo:   sessionRepo,
		profileRepo:   profileRepo,
		userRepo:      userRepo,
		memoryService: memoryService,
		aiService:     aiService,
		redis:         redisClient,
	}
}

func (s *TutorService) acquireLock(ctx context.Context, sessionID string) (bool, error) {
	if s.redis == nil {
		return true, nil
	}
	return s.redis.SetNX(ctx, sessionLockPrefix+sessionID, 1, sessionLockTTL).Result()
}

func (s *TutorService) releaseLock(sessionID string) {
	if s.redis == nil {
		return
	}
	// 用独立context释放，请求取消时也要解锁
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.redis.Del(ctx, sessionLockPrefix+sessionID).Err(); err != nil {
		logger.Log.Warn("Failed to release session lock",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}

// RespondStream 处理一个学员回合：
// 用户消息先落库，再发起模型调用；模型回复流式转发给调用方，
// 结束后（成功或中途出错）把已产生的文本落库，保证下一回合历史一致。
// 请求被取消时丢弃这次尝试，不写入任何部分回复。
func (s *TutorService) RespondStream(ctx context.Context, userID uint, sessionID, message string) (<-chan string, <-chan error, error) {
	locked, err := s.acquireLock(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if !locked {
		return nil, nil, util.ErrSessionBusy
	}

	turn, err := s.prepareTurn(userID, sessionID, message)
	if err != nil {
		s.releaseLock(sessionID)
		return nil, nil, err
	}

	deltas := make(chan string)
	done := make(chan error, 1)

	go func() {
		defer close(deltas)
		defer close(done)
		defer s.releaseLock(sessionID)

		aiDeltas, aiErrs := s.aiService.ChatStream(ctx, turn.aiModel, turn.systemPrompt, turn.history)

		var full []byte
		for delta := range aiDeltas {
			full = append(full, delta...)
			select {
			case deltas <- delta:
			case <-ctx.Done():
			}
		}

		streamErr := <-aiErrs

		if errors.Is(streamErr, context.Canceled) {
			// 取消的回合不落库，重试从干净状态开始
			done <- streamErr
			return
		}

		if len(full) > 0 {
			if err := s.sessionRepo.AppendMessage(&model.ConversationMessage{
				SessionID: sessionID,
				Role:      model.RoleAssistant,
				Content:   string(full),
			}); err != nil {
				logger.Log.Error("Failed to persist assistant message",
					zap.String("sessionID", sessionID), zap.Error(err))
			} else if err := s.sessionRepo.IncrementMessageCount(sessionID, 1); err != nil {
				logger.Log.Error("Failed to update message count",
					zap.String("sessionID", sessionID), zap.Error(err))
			}
		}

		done <- streamErr
	}()

	return deltas, done, nil
}

type turnContext struct {
	aiModel      string
	systemPrompt string
	history      []AIChatMessage
}

// prepareTurn 回合前置：校验会话、冻结焦点、组提示词、用户消息落库
func (s *TutorService) prepareTurn(userID uint, sessionID, message string) (*turnContext, error) {
	session, err := s.sessionRepo.FindByIDForUser(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.Ended() {
		return nil, util.ErrSessionEnded
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	level := model.LevelA0
	if profile, err := s.profileRepo.FindByUserID(userID); err == nil {
		level = profile.CurrentLevel
	} else if !errors.Is(err, util.ErrProfileNotFound) {
		return nil, err
	}

	focusConcepts := session.FocusConcepts
	if len(session.Messages) == 0 && session.SessionType != model.SessionPlacement {
		// 首条消息时选定焦点概念并冻结，之后的回合复用
		focusConcepts, err = s.memoryService.SelectFocusConcepts(userID, level)
		if err != nil {
			return nil, err
		}
		if len(focusConcepts) > 0 {
			if err := s.sessionRepo.SetFocusConcepts(sessionID, focusConcepts); err != nil {
				return nil, err
			}
		}
	}

	var summaries []string
	if session.SessionType != model.SessionPlacement {
		summaries, err = s.memoryService.RecentSummaries(userID)
		if err != nil {
			return nil, err
		}
	}

	systemPrompt, err := curriculum.ComposePrompt(curriculum.ComposeOptions{
		Level:                 level,
		SessionType:           session.SessionType,
		FocusConcepts:         focusConcepts,
		ConversationSummaries: summaries,
		UserName:              user.Name,
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Debug("System prompt composed",
		zap.String("sessionID", sessionID),
		zap.String("level", string(level)),
		zap.Int("estimatedTokens", curriculum.EstimateTokens(systemPrompt)))

	// 模型调用前先持久化用户消息，保证历史顺序
	if err := s.sessionRepo.AppendMessage(&model.ConversationMessage{
		SessionID: sessionID,
		Role:      model.RoleUser,
		Content:   message,
	}); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.IncrementMessageCount(sessionID, 1); err != nil {
		return nil, err
	}

	history := make([]AIChatMessage, 0, len(session.Messages)+1)
	for _, msg := range session.Messages {
		role := "assistant"
		if msg.Role == model.RoleUser {
			role = "user"
		}
		history = append(history, AIChatMessage{Role: role, Content: msg.Content})
	}
	history = append(history, AIChatMessage{Role: "user", Content: message})

	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	return &turnContext{
		aiModel:      session.AIModel,
		systemPrompt: systemPrompt,
		history:      history,
	}, nil
}
