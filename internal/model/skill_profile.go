package model

import "time"

// Level CEFR等级，七个阶段，顺序固定
type Level string

const (
	LevelA0 Level = "A0"
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// LevelOrder 升降级只能沿这个顺序逐级移动
var LevelOrder = []Level{LevelA0, LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

func (l Level) Index() int {
	for i, lv := range LevelOrder {
		if lv == l {
			return i
		}
	}
	return -1
}

func (l Level) Valid() bool {
	return l.Index() >= 0
}

// Next 返回更高一级，已是最高级时返回自身和false
func (l Level) Next() (Level, bool) {
	i := l.Index()
	if i < 0 || i >= len(LevelOrder)-1 {
		return l, false
	}
	return LevelOrder[i+1], true
}

// Prev 返回更低一级，已是最低级时返回自身和false
func (l Level) Prev() (Level, bool) {
	i := l.Index()
	if i <= 0 {
		return l, false
	}
	return LevelOrder[i-1], true
}

// SkillProfile 学习者技能画像，每个用户一条
// swagger:model SkillProfile
type SkillProfile struct {
	BaseModel
	UserID               uint       `gorm:"uniqueIndex;not null" json:"userId"`
	CurrentLevel         Level      `gorm:"type:varchar(4);not null;default:'A0'" json:"currentLevel"`
	ComprehensionScore   float64    `gorm:"default:0" json:"comprehensionScore"`
	VocabularyScore      float64    `gorm:"default:0" json:"vocabularyScore"`
	GrammarScore         float64    `gorm:"default:0" json:"grammarScore"`
	FluencyScore         float64    `gorm:"default:0" json:"fluencyScore"`
	PlacementCompletedAt *time.Time `json:"placementCompletedAt"`
}

func (SkillProfile) TableName() string {
	return "skill_profiles"
}

// LevelHistory 等级变更日志，只追加不修改
// swagger:model LevelHistory
type LevelHistory struct {
	BaseModel
	UserID    uint   `gorm:"index;not null" json:"userId"`
	FromLevel Level  `gorm:"type:varchar(4);not null" json:"fromLevel"`
	ToLevel   Level  `gorm:"type:varchar(4);not null" json:"toLevel"`
	Reason    string `gorm:"size:500" json:"reason"`
}

func (LevelHistory) TableName() string {
	return "level_histories"
}
