package curriculum

import (
	"fmt"
	"strings"

	"github.com/WaseemSyawish/lingua/internal/model"
)

// ComposeOptions 组装系统提示所需的全部输入
type ComposeOptions struct {
	Level                 model.Level
	SessionType           model.SessionType
	FocusConcepts         []string
	ConversationSummaries []string
	UserName              string
}

const (
	lessonBlock = `
SESSION TYPE: Structured Lesson
Guide the conversation towards the focus concepts. Create natural contexts for practice.
Balance between teaching new material and reinforcing what was covered.
End the session by briefly reviewing what was practiced (when the learner says goodbye or after ~15 exchanges).`

	freeConversationBlock = `
SESSION TYPE: Free Conversation
Let the learner guide the topic. Your role is to keep the conversation flowing naturally.
Still apply correction and vocabulary expansion, but prioritize fluency and confidence over accuracy.
Don't force specific topics — follow the learner's interests.`

	reviewBlock = `
SESSION TYPE: Review Session
Focus on reinforcing concepts the learner has previously struggled with.
Revisit vocabulary and grammar from previous sessions.
Create varied contexts for the same structures to deepen understanding.`
)

// ComposePrompt 组装三层系统提示，纯函数，不做任何I/O
//
// 第一层：固定人设；第二层：等级课程上下文；第三层：会话记忆与焦点概念。
// PLACEMENT 会话只拿到人设和评估指令就直接返回，
// 不注入等级课程或记忆内容，分级评估不能被它要校准的自适应机制影响。
func ComposePrompt(opts ComposeOptions) (string, error) {
	parts := []string{BasePersona}

	if opts.SessionType == model.SessionPlacement {
		parts = append(parts, PlacementAddendum)
		if opts.UserName != "" {
			parts = append(parts, fmt.Sprintf("\nThe learner's name is %s. Use it naturally in conversation.", opts.UserName))
		}
		return strings.Join(parts, "\n\n"), nil
	}

	c, err := ForLevel(opts.Level)
	if err != nil {
		return "", err
	}
	parts = append(parts, levelPrompt(c))

	switch opts.SessionType {
	case model.SessionLesson:
		parts = append(parts, lessonBlock)
	case model.SessionFreeConversation:
		parts = append(parts, freeConversationBlock)
	case model.SessionReview:
		parts = append(parts, reviewBlock)
	default:
		return "", fmt.Errorf("unknown session type %q", opts.SessionType)
	}

	if fp := focusPrompt(opts.FocusConcepts, c); fp != "" {
		parts = append(parts, fp)
	}

	if len(opts.ConversationSummaries) > 0 {
		summaries := opts.ConversationSummaries
		if len(summaries) > 3 {
			summaries = summaries[len(summaries)-3:]
		}
		parts = append(parts, fmt.Sprintf(`
PREVIOUS SESSION CONTEXT (use this to maintain continuity):
%s
Reference previous topics or vocabulary when natural. The learner should feel like you remember them.`,
			strings.Join(summaries, "\n---\n")))
	}

	if opts.UserName != "" {
		parts = append(parts, fmt.Sprintf("\nThe learner's name is %s. Use it occasionally and naturally.", opts.UserName))
	}

	return strings.Join(parts, "\n\n"), nil
}

// EstimateTokens 粗略估算token数，混合英法文按约4字符一个token
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}
