package repository

import (
	"errors"
	"time"

	"github.com/WaseemSyawish/lingua/internal/model"
	"gorm.io/gorm"
)

type MasteryRepository struct {
	DB *gorm.DB
}

func NewMasteryRepository(db *gorm.DB) *MasteryRepository {
	return &MasteryRepository{DB: db}
}

func (r *MasteryRepository) ListByUser(userID uint) ([]model.ConceptMastery, error) {
	var records []model.ConceptMastery
	err := r.DB.Where("user_id = ?", userID).Find(&records).Error
	return records, err
}

func (r *MasteryRepository) ListByUserAndConcepts(userID uint, conceptIDs []string) ([]model.ConceptMastery, error) {
	if len(conceptIDs) == 0 {
		return nil, nil
	}
	var records []model.ConceptMastery
	err := r.DB.Where("user_id = ? AND concept_id IN ?", userID, conceptIDs).
		Find(&records).Error
	return records, err
}

func (r *MasteryRepository) FindOne(userID uint, conceptID string) (*model.ConceptMastery, error) {
	var record model.ConceptMastery
	err := r.DB.Where("user_id = ? AND concept_id = ?", userID, conceptID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *MasteryRepository) Create(record *model.ConceptMastery) error {
	return r.DB.Create(record).Error
}

// UpdateScore 写入新掌握度并自增练习次数
func (r *MasteryRepository) UpdateScore(id uint, score float64, practicedAt time.Time) error {
	return r.DB.Model(&model.ConceptMastery{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"mastery_score":  score,
			"practice_count": gorm.Expr("practice_count + 1"),
			"last_practiced": &practicedAt,
		}).Error
}
