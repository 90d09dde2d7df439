package service

import (
	"fmt"
	"time"

	"github.com/WaseemSyawish/lingua/internal/curriculum"
	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/WaseemSyawish/lingua/internal/repository"
	"github.com/WaseemSyawish/lingua/pkg/logger"
	"go.uber.org/zap"
)

// 晋级/降级阈值
const (
	promoteCoverage    = 0.70
	promoteAvgMastery  = 0.75
	promoteMasteredPct = 0.60
	masteredThreshold  = 0.7

	demoteCoverage     = 0.50
	demoteAvgMastery   = 0.30
	demoteMinPracticed = 5
)

// 看板返回的最近会话条数
const recentSessionsLimit = 10

type Transition string

const (
	TransitionPromote Transition = "PROMOTE"
	TransitionDemote  Transition = "DEMOTE"
	TransitionNone    Transition = "NONE"
)

// LevelStats 当前等级的聚合掌握度统计
type LevelStats struct {
	Level            model.Level `json:"level"`
	TotalConcepts    int         `json:"totalConcepts"`
	PracticedCount   int         `json:"practicedCount"`
	Coverage         float64     `json:"coverage"`
	AverageMastery   float64     `json:"averageMastery"`
	MasteredCount    int         `json:"masteredCount"`
	MasteredFraction float64     `json:"masteredFraction"`
}

// LevelDecision 返回结论和产生结论的统计，调用方可以展示"为什么"
type LevelDecision struct {
	Transition Transition  `json:"transition"`
	FromLevel  model.Level `json:"fromLevel"`
	ToLevel    model.Level `json:"toLevel"`
	Reason     string      `json:"reason"`
	Stats      LevelStats  `json:"stats"`
}

// computeLevelStats 只统计当前等级课程内的概念，跨等级记录不参与
func computeLevelStats(level model.Level, levelConceptIDs []string, masteries []model.ConceptMastery) LevelStats {
	inLevel := make(map[string]bool, len(levelConceptIDs))
	for _, id := range levelConceptIDs {
		inLevel[id] = true
	}

	stats := LevelStats{Level: level, TotalConcepts: len(levelConceptIDs)}
	var sum float64
	for _, m := range masteries {
		if !inLevel[m.ConceptID] {
			continue
		}
		stats.PracticedCount++
		sum += m.MasteryScore
		if m.MasteryScore >= masteredThreshold {
			stats.MasteredCount++
		}
	}

	if stats.TotalConcepts > 0 {
		stats.Coverage = float64(stats.PracticedCount) / float64(stats.TotalConcepts)
		stats.MasteredFraction = float64(stats.MasteredCount) / float64(stats.TotalConcepts)
	}
	if stats.PracticedCount > 0 {
		stats.AverageMastery = sum / float64(stats.PracticedCount)
	}
	return stats
}

// evaluateTransition 晋级优先于降级，两者同时满足时只晋级
func evaluateTransition(level model.Level, stats LevelStats) LevelDecision {
	decision := LevelDecision{
		Transition: TransitionNone,
		FromLevel:  level,
		ToLevel:    level,
		Stats:      stats,
	}

	if next, ok := level.Next(); ok &&
		stats.Coverage >= promoteCoverage &&
		stats.AverageMastery >= promoteAvgMastery &&
		stats.MasteredFraction >= promoteMasteredPct {
		decision.Transition = TransitionPromote
		decision.ToLevel = next
		decision.Reason = fmt.Sprintf(
			"Promoted from %s to %s: %.0f%% coverage, %.0f%% average mastery, %.0f%% concepts mastered",
			level, next, stats.Coverage*100, stats.AverageMastery*100, stats.MasteredFraction*100)
		return decision
	}

	if prev, ok := level.Prev(); ok &&
		stats.Coverage >= demoteCoverage &&
		stats.AverageMastery < demoteAvgMastery &&
		stats.PracticedCount >= demoteMinPracticed {
		decision.Transition = TransitionDemote
		decision.ToLevel = prev
		decision.Reason = fmt.Sprintf(
			"Moved back from %s to %s to rebuild foundations: %.0f%% average mastery across %d practiced concepts",
			level, prev, stats.AverageMastery*100, stats.PracticedCount)
		return decision
	}

	return decision
}

// ProgressService 等级评估与学习进度看板
type ProgressService struct {
	profileRepo *repository.ProfileRepository
	masteryRepo *repository.MasteryRepository
	sessionRepo *repository.SessionRepository
}

func NewProgressService(profileRepo *repository.ProfileRepository, masteryRepo *repository.MasteryRepository, sessionRepo *repository.SessionRepository) *ProgressService {
	return &ProgressService{
		profileRepo: profileRepo,
		masteryRepo: masteryRepo,
		sessionRepo: sessionRepo,
	}
}

// AssessLevel 按需评估等级，发生变更时事务性更新画像并追加历史
func (s *ProgressService) AssessLevel(userID uint) (*LevelDecision, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	level := profile.CurrentLevel
	conceptIDs := curriculum.ConceptIDs(level)
	masteries, err := s.masteryRepo.ListByUserAndConcepts(userID, conceptIDs)
	if err != nil {
		return nil, err
	}

	stats := computeLevelStats(level, conceptIDs, masteries)
	decision := evaluateTransition(level, stats)

	if decision.Transition != TransitionNone {
		if err := s.profileRepo.ChangeLevel(userID, decision.FromLevel, decision.ToLevel, decision.Reason); err != nil {
			return nil, err
		}
	}

	return &decision, nil
}

// UserLevelChange 批量评估中单个学习者的等级变更
type UserLevelChange struct {
	UserID   uint          `json:"userId"`
	Decision LevelDecision `json:"decision"`
}

// BatchAssessment 管理端批量评估的汇总结果
type BatchAssessment struct {
	Assessed int               `json:"assessed"`
	Changed  int               `json:"changed"`
	Failed   int               `json:"failed"`
	Changes  []UserLevelChange `json:"changes"`
}

// AssessAllLevels 对全部学习者执行一次等级评估，单个失败不中断批次
func (s *ProgressService) AssessAllLevels() (*BatchAssessment, error) {
	profiles, err := s.profileRepo.ListAll()
	if err != nil {
		return nil, err
	}

	result := &BatchAssessment{}
	for _, profile := range profiles {
		decision, err := s.AssessLevel(profile.UserID)
		if err != nil {
			result.Failed++
			logger.Log.Warn("Level assessment failed",
				zap.Uint("userID", profile.UserID), zap.Error(err))
			continue
		}
		result.Assessed++
		if decision.Transition != TransitionNone {
			result.Changed++
			result.Changes = append(result.Changes, UserLevelChange{
				UserID:   profile.UserID,
				Decision: *decision,
			})
		}
	}
	return result, nil
}

// ConceptProgress 看板里单个概念的展示条目
type ConceptProgress struct {
	ConceptID     string            `json:"conceptId"`
	ConceptType   model.ConceptType `json:"conceptType"`
	MasteryScore  float64           `json:"masteryScore"`
	PracticeCount int               `json:"practiceCount"`
	LastPracticed *time.Time        `json:"lastPracticed"`
}

// ProgressOverview 学习进度看板
type ProgressOverview struct {
	CurrentLevel model.Level       `json:"currentLevel"`
	Stats        LevelStats        `json:"stats"`
	Concepts     []ConceptProgress `json:"concepts"`
	// LevelProgress 当前等级完成度百分比，取掌握占比
	LevelProgress  float64                     `json:"levelProgress"`
	TotalSessions  int                         `json:"totalSessions"`
	RecentSessions []model.ConversationSession `json:"recentSessions"`
	StreakDays     int                         `json:"streakDays"`
	LevelHistory   []model.LevelHistory        `json:"levelHistory"`
}

// Overview 聚合画像、当前等级统计、概念明细、会话数与连续学习天数
func (s *ProgressService) Overview(userID uint) (*ProgressOverview, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	level := profile.CurrentLevel
	conceptIDs := curriculum.ConceptIDs(level)

	masteries, err := s.masteryRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	concepts := make([]ConceptProgress, 0, len(masteries))
	for _, m := range masteries {
		concepts = append(concepts, ConceptProgress{
			ConceptID:     m.ConceptID,
			ConceptType:   m.ConceptType,
			MasteryScore:  m.MasteryScore,
			PracticeCount: m.PracticeCount,
			LastPracticed: m.LastPracticed,
		})
	}

	sessions, err := s.sessionRepo.ListByUser(userID, 0)
	if err != nil {
		return nil, err
	}

	history, err := s.profileRepo.ListLevelHistory(userID)
	if err != nil {
		return nil, err
	}

	stats := computeLevelStats(level, conceptIDs, masteries)

	recent := sessions
	if len(recent) > recentSessionsLimit {
		recent = recent[:recentSessionsLimit]
	}

	return &ProgressOverview{
		CurrentLevel:   level,
		Stats:          stats,
		Concepts:       concepts,
		LevelProgress:  stats.MasteredFraction * 100,
		TotalSessions:  len(sessions),
		RecentSessions: recent,
		StreakDays:     streakDays(sessions, time.Now()),
		LevelHistory:   history,
	}, nil
}

// streakDays 连续学习天数：从今天（或昨天）往回数有会话的连续日历天
func streakDays(sessions []model.ConversationSession, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}

	days := make(map[string]bool, len(sessions))
	for _, sess := range sessions {
		days[sess.StartedAt.Format("2006-01-02")] = true
	}

	cursor := now
	if !days[cursor.Format("2006-01-02")] {
		cursor = cursor.AddDate(0, 0, -1)
		if !days[cursor.Format("2006-01-02")] {
			return 0
		}
	}

	streak := 0
	for days[cursor.Format("2006-01-02")] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// Profile 返回技能画像，未完成定级时返回 ErrProfileNotFound
func (s *ProgressService) Profile(userID uint) (*model.SkillProfile, error) {
	return s.profileRepo.FindByUserID(userID)
}
