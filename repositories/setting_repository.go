package repositories

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"portfolio.site/configs/configslog"
	"portfolio.site/models"
)

// ISettingRepository covers the key/value settings rows.
type ISettingRepository interface {
	FindAll(ctx context.Context) ([]models.Setting, error)
	Upsert(ctx context.Context, key, value string) error
}

type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository returns a settings repository bound to db.
func NewSettingRepository(db *gorm.DB) ISettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *SettingRepository) FindAll(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	if err := r.getDB(ctx).Find(&settings).Error; err != nil {
		configslog.Log.Error("SettingRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

// Upsert inserts the key or replaces its value when the key already exists.
func (r *SettingRepository) Upsert(ctx context.Context, key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	err := r.getDB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		configslog.Log.Error("SettingRepository.Upsert: DB error", zap.String("key", key), zap.Error(err))
	}
	return err
}

var _ ISettingRepository = (*SettingRepository)(nil)
