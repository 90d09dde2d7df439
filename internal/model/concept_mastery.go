package model

import "time"

type ConceptType string

const (
	ConceptGrammar       ConceptType = "GRAMMAR"
	ConceptVocabulary    ConceptType = "VOCABULARY"
	ConceptPronunciation ConceptType = "PRONUNCIATION"
	ConceptCulture       ConceptType = "CULTURE"
	ConceptPragmatics    ConceptType = "PRAGMATICS"
)

// ConceptMastery 每个(学习者, 概念)一条掌握度记录，只增不删
// MasteryScore 始终限制在 [0,1]
// swagger:model ConceptMastery
type ConceptMastery struct {
	BaseModel
	UserID        uint        `gorm:"uniqueIndex:idx_user_concept;not null" json:"userId"`
	ConceptID     string      `gorm:"uniqueIndex:idx_user_concept;size:100;not null" json:"conceptId"`
	ConceptType   ConceptType `gorm:"type:varchar(20);not null" json:"conceptType"`
	MasteryScore  float64     `gorm:"not null;default:0" json:"masteryScore"`
	PracticeCount int         `gorm:"not null;default:0" json:"practiceCount"`
	LastPracticed *time.Time  `json:"lastPracticed"`
}

func (ConceptMastery) TableName() string {
	return "concept_masteries"
}
