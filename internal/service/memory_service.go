package service

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/WaseemSyawish/lingua/internal/curriculum"
	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/WaseemSyawish/lingua/internal/repository"
)

const (
	// 从未练习的概念视为逾期999天，立即进入复习队列
	neverPracticedOverdueDays = 999

	dueReviewLimit   = 3
	newConceptsLimit = 2
	summaryLimit     = 3
)

// MemoryService 间隔重复选择器：决定每次会话应该重点练习哪些概念
type MemoryService struct {
	masteryRepo *repository.MasteryRepository
	sessionRepo *repository.SessionRepository
}

func NewMemoryService(masteryRepo *repository.MasteryRepository, sessionRepo *repository.SessionRepository) *MemoryService {
	return &MemoryService{masteryRepo: masteryRepo, sessionRepo: sessionRepo}
}

// reviewInterval 复习间隔（天）：掌握度越高间隔越长
func reviewInterval(masteryScore float64) float64 {
	return math.Max(1, math.Pow(masteryScore*10, 1.5))
}

type dueConcept struct {
	conceptID string
	priority  float64
}

// dueForReview 在全部掌握记录上计算逾期概念，按优先级降序取前 limit 个
// 优先级 = (1-掌握度)*3 + 逾期天数/间隔：低掌握度主导，逾期程度作放大
func dueForReview(masteries []model.ConceptMastery, now time.Time, limit int) []string {
	var due []dueConcept
	for _, m := range masteries {
		interval := reviewInterval(m.MasteryScore)

		var daysSince float64
		if m.LastPracticed == nil {
			daysSince = neverPracticedOverdueDays
		} else {
			daysSince = now.Sub(*m.LastPracticed).Hours() / 24
		}

		if daysSince < interval {
			continue
		}

		daysOverdue := daysSince - interval
		priority := (1-m.MasteryScore)*3 + daysOverdue/interval
		due = append(due, dueConcept{conceptID: m.ConceptID, priority: priority})
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].priority > due[j].priority
	})

	if len(due) > limit {
		due = due[:limit]
	}
	result := make([]string, 0, len(due))
	for _, d := range due {
		result = append(result, d.conceptID)
	}
	return result
}

// newConcepts 按课程声明顺序取当前等级里从未建立掌握记录的概念
func newConcepts(levelConceptIDs []string, masteries []model.ConceptMastery, limit int) []string {
	practiced := make(map[string]bool, len(masteries))
	for _, m := range masteries {
		practiced[m.ConceptID] = true
	}

	var fresh []string
	for _, id := range levelConceptIDs {
		if practiced[id] {
			continue
		}
		fresh = append(fresh, id)
		if len(fresh) >= limit {
			break
		}
	}
	return fresh
}

// SelectFocusConcepts 组合规则：最多3个待复习 + 最多2个新概念，复习优先
// 空结果是合法的（新学员且课程未覆盖时），表示自由对话模式
func (s *MemoryService) SelectFocusConcepts(userID uint, level model.Level) ([]string, error) {
	masteries, err := s.masteryRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	focus := dueForReview(masteries, time.Now(), dueReviewLimit)
	focus = append(focus, newConcepts(curriculum.ConceptIDs(level), masteries, newConceptsLimit)...)
	return focus, nil
}

// RecentSummaries 取最近已分析会话的摘要文本，供提示词记忆层使用
func (s *MemoryService) RecentSummaries(userID uint) ([]string, error) {
	sessions, err := s.sessionRepo.RecentWithSummaries(userID, summaryLimit)
	if err != nil {
		return nil, err
	}

	summaries := make([]string, 0, len(sessions))
	for _, sess := range sessions {
		if sess.Summary == nil {
			continue
		}
		summaries = append(summaries, formatSummary(&sess))
	}
	return summaries, nil
}

func formatSummary(session *model.ConversationSession) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session #%d (%s) [%s]\n", session.SessionNumber,
		session.StartedAt.Format("2006-01-02"), session.SessionType)
	fmt.Fprintf(&b, "Topics: %s\n", session.Summary.TopicsCovered)
	fmt.Fprintf(&b, "Vocabulary: %s\n", session.Summary.VocabularyIntroduced)
	fmt.Fprintf(&b, "Grammar: %s\n", session.Summary.GrammarPracticed)
	fmt.Fprintf(&b, "Errors observed: %s\n", session.Summary.ErrorsObserved)
	fmt.Fprintf(&b, "Notes: %s", session.Summary.OverallNotes)
	return b.String()
}
