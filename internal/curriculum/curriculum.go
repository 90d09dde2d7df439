package curriculum

import (
	"fmt"
	"strings"

	"github.com/WaseemSyawish/lingua/internal/model"
)

// VocabularyCluster 某等级的一组主题词汇
type VocabularyCluster struct {
	ConceptID string
	Name      string
	Words     []string
}

// GrammarConcept 某等级的一个语法点
type GrammarConcept struct {
	ConceptID   string
	Name        string
	Description string
	Examples    []string
}

// LevelCurriculum 每个等级一份课程表，进程启动时装配，之后只读
type LevelCurriculum struct {
	Level              model.Level
	Label              string
	Description        string
	LanguageBalance    string
	VocabularyClusters []VocabularyCluster
	GrammarConcepts    []GrammarConcept
	MasteryEvidence    []string
	ConceptIDs         []string
}

var levelCurricula = map[model.Level]*LevelCurriculum{
	model.LevelA0: &a0Curriculum,
	model.LevelA1: &a1Curriculum,
	model.LevelA2: &a2Curriculum,
	model.LevelB1: &b1Curriculum,
	model.LevelB2: &b2Curriculum,
	model.LevelC1: &c1Curriculum,
	model.LevelC2: &c2Curriculum,
}

// ForLevel 返回某等级的课程表。未知等级属于编程错误而非运行时状况
func ForLevel(level model.Level) (*LevelCurriculum, error) {
	c, ok := levelCurricula[level]
	if !ok {
		return nil, fmt.Errorf("no curriculum for level %q", level)
	}
	return c, nil
}

// ConceptIDs 返回某等级全部概念ID，按课程声明顺序
func ConceptIDs(level model.Level) []string {
	c, ok := levelCurricula[level]
	if !ok {
		return nil
	}
	return c.ConceptIDs
}

// TypeOf 通过ID前缀判定概念类型，固定优先级顺序匹配
// 目录查找和掌握度归类都必须走这里，保证分类一致
func TypeOf(conceptID string) model.ConceptType {
	switch {
	case strings.HasPrefix(conceptID, "grammar."):
		return model.ConceptGrammar
	case strings.HasPrefix(conceptID, "vocab."):
		return model.ConceptVocabulary
	case strings.HasPrefix(conceptID, "pronunciation."):
		return model.ConceptPronunciation
	case strings.HasPrefix(conceptID, "culture."):
		return model.ConceptCulture
	default:
		return model.ConceptPragmatics
	}
}
