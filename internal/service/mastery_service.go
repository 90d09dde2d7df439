package service

import (
	"math"
	"time"

	"github.com/WaseemSyawish/lingua/internal/curriculum"
	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/WaseemSyawish/lingua/pkg/logger"
	"go.uber.org/zap"
)

const (
	// EMA 新观测权重
	emaAlpha = 0.3
	// 首次观测折扣：单个数据点噪声大，初始置信度打折
	firstObservationDiscount = 0.7
)

// ConceptScore 会话分析产出的单个概念评分
type ConceptScore struct {
	ConceptID string  `json:"conceptId"`
	Score     float64 `json:"score"`
}

// masteryStore 批量写入所需的最小存储接口，UpdateScore 每次调用练习次数加一
type masteryStore interface {
	FindOne(userID uint, conceptID string) (*model.ConceptMastery, error)
	Create(record *model.ConceptMastery) error
	UpdateScore(id uint, score float64, practicedAt time.Time) error
}

// MasteryService 把分析产出的评分批量写入掌握度记录
type MasteryService struct {
	masteryRepo masteryStore
}

func NewMasteryService(masteryRepo masteryStore) *MasteryService {
	return &MasteryService{masteryRepo: masteryRepo}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// initialMastery 首次观测：score * 0.7
func initialMastery(score float64) float64 {
	return clamp01(score * firstObservationDiscount)
}

// nextMastery 已有记录：0.3*新观测 + 0.7*旧值，裁剪到 [0,1]
func nextMastery(existing, score float64) float64 {
	return clamp01(emaAlpha*score + (1-emaAlpha)*existing)
}

func validScore(cs ConceptScore) bool {
	return cs.ConceptID != "" && !math.IsNaN(cs.Score)
}

// ApplyBatch 逐条写入，单条失败不中断批次，返回成功条数
func (s *MasteryService) ApplyBatch(userID uint, scores []ConceptScore) (int, error) {
	applied := 0
	now := time.Now()

	for _, cs := range scores {
		if !validScore(cs) {
			logger.Log.Warn("Skipping invalid concept score",
				zap.Uint("userID", userID),
				zap.String("conceptID", cs.ConceptID),
				zap.Float64("score", cs.Score))
			continue
		}

		existing, err := s.masteryRepo.FindOne(userID, cs.ConceptID)
		if err != nil {
			logger.Log.Error("Failed to load mastery record",
				zap.String("conceptID", cs.ConceptID), zap.Error(err))
			continue
		}

		if existing == nil {
			record := &model.ConceptMastery{
				UserID:        userID,
				ConceptID:     cs.ConceptID,
				ConceptType:   curriculum.TypeOf(cs.ConceptID),
				MasteryScore:  initialMastery(cs.Score),
				PracticeCount: 1,
				LastPracticed: &now,
			}
			if err := s.masteryRepo.Create(record); err != nil {
				logger.Log.Error("Failed to create mastery record",
					zap.String("conceptID", cs.ConceptID), zap.Error(err))
				continue
			}
		} else {
			if err := s.masteryRepo.UpdateScore(existing.ID, nextMastery(existing.MasteryScore, cs.Score), now); err != nil {
				logger.Log.Error("Failed to update mastery record",
					zap.String("conceptID", cs.ConceptID), zap.Error(err))
				continue
			}
		}
		applied++
	}

	return applied, nil
}
