package repository

import (
	"errors"

	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/WaseemSyawish/lingua/internal/util"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) FindByUserID(userID uint) (*model.SkillProfile, error) {
	var profile model.SkillProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListAll 全量画像，管理端批量评估用
func (r *ProfileRepository) ListAll() ([]model.SkillProfile, error) {
	var profiles []model.SkillProfile
	err := r.DB.Find(&profiles).Error
	return profiles, err
}

// Upsert 按 userID 覆盖画像，保证每个用户只有一条记录
func (r *ProfileRepository) Upsert(profile *model.SkillProfile) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.SkillProfile
		err := tx.Where("user_id = ?", profile.UserID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(profile).Error
		}
		if err != nil {
			return err
		}
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		return tx.Save(profile).Error
	})
}

func (r *ProfileRepository) UpdateLevel(userID uint, level model.Level) error {
	return r.DB.Model(&model.SkillProfile{}).Where("user_id = ?", userID).
		Update("current_level", level).Error
}

func (r *ProfileRepository) AppendLevelHistory(entry *model.LevelHistory) error {
	return r.DB.Create(entry).Error
}

func (r *ProfileRepository) ListLevelHistory(userID uint) ([]model.LevelHistory, error) {
	var entries []model.LevelHistory
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// ChangeLevel 在一个事务里更新等级并追加历史，避免两表不一致
func (r *ProfileRepository) ChangeLevel(userID uint, from, to model.Level, reason string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SkillProfile{}).Where("user_id = ?", userID).
			Update("current_level", to).Error; err != nil {
			return err
		}
		entry := &model.LevelHistory{
			UserID:    userID,
			FromLevel: from,
			ToLevel:   to,
			Reason:    reason,
		}
		return tx.Create(entry).Error
	})
}
