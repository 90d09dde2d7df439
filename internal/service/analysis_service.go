package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/WaseemSyawish/lingua/internal/repository"
	"github.com/WaseemSyawish/lingua/internal/util"
	"github.com/WaseemSyawish/lingua/pkg/logger"
	"go.uber.org/zap"
)

// 会话至少要有4条消息才值得分析
const minAnalyzableMessages = 4

const sessionAnalysisPrompt = `You are an expert French language tutor analyzing a lesson session. Review the conversation and provide a structured analysis.

Respond in EXACTLY this JSON format:
{
  "topicsCovered": "Brief description of what was discussed",
  "vocabularyIntroduced": "Comma-separated list of new French words/phrases used",
  "grammarPracticed": "Comma-separated list of grammar structures practiced",
  "errorsObserved": "Description of notable errors the learner made",
  "overallNotes": "Brief assessment of the learner's performance in this session",
  "conceptScores": [
    {
      "conceptId": "string matching one of the focus concepts",
      "score": 0.0-1.0,
      "notes": "Brief note on performance for this concept"
    }
  ],
  "suggestedFocus": ["conceptId1", "conceptId2"]
}

Focus concepts for this session (score each one that was practiced):
%s

Be specific and constructive. Score 0.0 means no evidence of understanding, 0.5 means partial, 1.0 means demonstrated mastery.`

const placementAnalysisPrompt = `You are an expert French language assessor. Analyze the following conversation between a language tutor and a learner to determine the learner's CEFR French level.

Evaluate these dimensions:
1. COMPREHENSION: Could they understand French at various complexity levels?
2. VOCABULARY RANGE: How varied and precise was their word choice?
3. GRAMMAR ACCURACY: Verb conjugations, agreements, sentence structure correctness.
4. FLUENCY: Could they form sentences smoothly?
5. CULTURAL AWARENESS: Did they understand idioms or cultural references?

CEFR Level Descriptions:
- A0: No French knowledge at all. Only responded in English.
- A1: Can use very basic French phrases (greetings, simple present tense, basic vocabulary).
- A2: Can handle simple daily situations. Uses past tense, basic descriptions, simple questions.
- B1: Can discuss familiar topics. Uses some complex structures (subjunctive, conditional). Can express opinions.
- B2: Can engage in detailed discussion. Good accuracy, varied vocabulary, handles nuance.
- C1: Near-native fluency. Handles abstract topics, literary language, subtle cultural references.
- C2: Mastery level. Indistinguishable from educated native speaker in this context.

IMPORTANT: Be conservative in your assessment. When in doubt, place them at the lower level. It's better to place slightly lower and let them advance than to overwhelm them.

Respond in EXACTLY this JSON format and nothing else:
{
  "level": "A0" | "A1" | "A2" | "B1" | "B2" | "C1" | "C2",
  "confidence": 0.0-1.0,
  "comprehension": 0.0-1.0,
  "vocabulary": 0.0-1.0,
  "grammar": 0.0-1.0,
  "fluency": 0.0-1.0,
  "culturalAwareness": 0.0-1.0,
  "reasoning": "Brief explanation of the placement decision",
  "strengths": ["strength1", "strength2"],
  "areasToImprove": ["area1", "area2"]
}`

// AnalysisService 会话分析与定级评估，走非流式的分析模型
type AnalysisService struct {
	aiService      *AIService
	sessionRepo    *repository.SessionRepository
	profileRepo    *repository.ProfileRepository
	masteryService *MasteryService
}

func NewAnalysisService(aiService *AIService, sessionRepo *repository.SessionRepository, profileRepo *repository.ProfileRepository, masteryService *MasteryService) *AnalysisService {
	return &AnalysisService{
		aiService:      aiService,
		sessionRepo:    sessionRepo,
		profileRepo:    profileRepo,
		masteryService: masteryService,
	}
}

// buildTranscript 把消息列表拉平成分析用的文本
func buildTranscript(messages []model.ConversationMessage) string {
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		role := "Tutor"
		if msg.Role == model.RoleUser {
			role = "Learner"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, msg.Content))
	}
	return strings.Join(lines, "\n\n")
}

type sessionAnalysis struct {
	TopicsCovered        string         `json:"topicsCovered"`
	VocabularyIntroduced string         `json:"vocabularyIntroduced"`
	GrammarPracticed     string         `json:"grammarPracticed"`
	ErrorsObserved       string         `json:"errorsObserved"`
	OverallNotes         string         `json:"overallNotes"`
	ConceptScores        []ConceptScore `json:"conceptScores"`
	SuggestedFocus       []string       `json:"suggestedFocus"`
}

// SessionAnalysisResult 会话分析结果
type SessionAnalysisResult struct {
	Summary        *model.SessionSummary `json:"summary"`
	ConceptScores  []ConceptScore        `json:"conceptScores"`
	SuggestedFocus []string              `json:"suggestedFocus"`
	AppliedCount   int                   `json:"appliedCount"`
}

// AnalyzeSession 分析一个会话：生成摘要并批量更新掌握度
// 摘要按会话覆盖写入，重复分析不会产生第二条记录
func (s *AnalysisService) AnalyzeSession(ctx context.Context, userID uint, sessionID string) (*SessionAnalysisResult, error) {
	session, err := s.sessionRepo.FindByIDForUser(sessionID, userID)
	if err != nil {
		return nil, err
	}

	if len(session.Messages) < minAnalyzableMessages {
		return nil, util.ErrSessionTooShort
	}

	focusText := "No specific focus concepts - identify any concepts practiced"
	if len(session.FocusConcepts) > 0 {
		focusText = strings.Join(session.FocusConcepts, ", ")
	}

	prompt := fmt.Sprintf(sessionAnalysisPrompt, focusText)
	prompt = fmt.Sprintf("%s\n\n--- CONVERSATION ---\n%s\n--- END CONVERSATION ---", prompt, buildTranscript(session.Messages))

	responseText, err := s.aiService.Complete(ctx, "", prompt)
	if err != nil {
		return nil, err
	}

	raw := util.ExtractJSONObject(responseText)
	if raw == "" {
		logger.Log.Error("Session analysis returned no JSON",
			zap.String("sessionID", sessionID), zap.String("response", responseText))
		return nil, util.ErrAnalysisUnparseable
	}

	var analysis sessionAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		logger.Log.Error("Failed to parse session analysis",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, util.ErrAnalysisUnparseable
	}

	summary := &model.SessionSummary{
		SessionID:            sessionID,
		TopicsCovered:        analysis.TopicsCovered,
		VocabularyIntroduced: analysis.VocabularyIntroduced,
		GrammarPracticed:     analysis.GrammarPracticed,
		ErrorsObserved:       analysis.ErrorsObserved,
		OverallNotes:         analysis.OverallNotes,
	}
	if err := s.sessionRepo.UpsertSummary(summary); err != nil {
		return nil, err
	}

	applied, err := s.masteryService.ApplyBatch(userID, analysis.ConceptScores)
	if err != nil {
		return nil, err
	}

	return &SessionAnalysisResult{
		Summary:        summary,
		ConceptScores:  analysis.ConceptScores,
		SuggestedFocus: analysis.SuggestedFocus,
		AppliedCount:   applied,
	}, nil
}

type placementAnalysis struct {
	Level             string   `json:"level"`
	Confidence        float64  `json:"confidence"`
	Comprehension     float64  `json:"comprehension"`
	Vocabulary        float64  `json:"vocabulary"`
	Grammar           float64  `json:"grammar"`
	Fluency           float64  `json:"fluency"`
	CulturalAwareness float64  `json:"culturalAwareness"`
	Reasoning         string   `json:"reasoning"`
	Strengths         []string `json:"strengths"`
	AreasToImprove    []string `json:"areasToImprove"`
}

// PlacementResult 定级结果
type PlacementResult struct {
	Level    model.Level       `json:"level"`
	Analysis placementAnalysis `json:"analysis"`
}

// AnalyzePlacement 分析定级会话：写入技能画像、结束会话并记录等级历史
func (s *AnalysisService) AnalyzePlacement(ctx context.Context, userID uint, sessionID string) (*PlacementResult, error) {
	session, err := s.sessionRepo.FindByIDForUser(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.SessionType != model.SessionPlacement {
		return nil, util.ErrNotPlacementSession
	}

	prompt := fmt.Sprintf("%s\n\n--- CONVERSATION ---\n%s\n--- END CONVERSATION ---", placementAnalysisPrompt, buildTranscript(session.Messages))

	responseText, err := s.aiService.Complete(ctx, "", prompt)
	if err != nil {
		return nil, err
	}

	raw := util.ExtractJSONObject(responseText)
	if raw == "" {
		logger.Log.Error("Placement analysis returned no JSON",
			zap.String("sessionID", sessionID), zap.String("response", responseText))
		return nil, util.ErrAnalysisUnparseable
	}

	var analysis placementAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		logger.Log.Error("Failed to parse placement analysis",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, util.ErrAnalysisUnparseable
	}

	placedLevel := model.Level(analysis.Level)
	if !placedLevel.Valid() {
		logger.Log.Error("Placement analysis returned invalid level",
			zap.String("sessionID", sessionID), zap.String("level", analysis.Level))
		return nil, util.ErrInvalidLevel
	}

	now := time.Now()
	profile := &model.SkillProfile{
		UserID:               userID,
		CurrentLevel:         placedLevel,
		ComprehensionScore:   analysis.Comprehension,
		VocabularyScore:      analysis.Vocabulary,
		GrammarScore:         analysis.Grammar,
		FluencyScore:         analysis.Fluency,
		PlacementCompletedAt: &now,
	}
	if err := s.profileRepo.Upsert(profile); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.End(sessionID, now); err != nil {
		return nil, err
	}

	if err := s.profileRepo.AppendLevelHistory(&model.LevelHistory{
		UserID:    userID,
		FromLevel: model.LevelA0,
		ToLevel:   placedLevel,
		Reason:    fmt.Sprintf("Placement assessment: %s", analysis.Reasoning),
	}); err != nil {
		return nil, err
	}

	return &PlacementResult{Level: placedLevel, Analysis: analysis}, nil
}

// SkipPlacement 跳过定级：建立 A0 画像并记录历史
func (s *AnalysisService) SkipPlacement(userID uint) (*model.SkillProfile, error) {
	now := time.Now()
	profile := &model.SkillProfile{
		UserID:               userID,
		CurrentLevel:         model.LevelA0,
		PlacementCompletedAt: &now,
	}
	if err := s.profileRepo.Upsert(profile); err != nil {
		return nil, err
	}

	if err := s.profileRepo.AppendLevelHistory(&model.LevelHistory{
		UserID:    userID,
		FromLevel: model.LevelA0,
		ToLevel:   model.LevelA0,
		Reason:    "Placement skipped - starting from the beginning",
	}); err != nil {
		return nil, err
	}

	return profile, nil
}
