package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSettingNotFound = errors.New("setting not found")

type Setting struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

type SettingDAO struct {
	db *gorm.DB
}

func NewSettingDAO(db *gorm.DB) *SettingDAO {
	return &SettingDAO{
		db: db,
	}
}

func (d *SettingDAO) FindByKey(ctx context.Context, key string) (Setting, error) {
	var setting Setting

	result := d.db.WithContext(ctx).First(&setting, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Setting{}, ErrSettingNotFound
		}

		return Setting{}, result.Error
	}

	return setting, nil
}

func (d *SettingDAO) FindAll(ctx context.Context) ([]Setting, error) {
	var settings []Setting

	result := d.db.WithContext(ctx).Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

func (d *SettingDAO) Upsert(ctx context.Context, setting Setting) (Setting, error) {
	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting)
	if result.Error != nil {
		return Setting{}, result.Error
	}

	return setting, nil
}
