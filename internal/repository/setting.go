package repository

import (
	"context"
	"fmt"

	"github.com/eventpass-app/eventpass-api/internal/domain"
	"github.com/eventpass-app/eventpass-api/internal/repository/dao"
)

var ErrSettingNotFound = dao.ErrSettingNotFound

type SettingDAO interface {
	FindByKey(ctx context.Context, key string) (dao.Setting, error)
	FindAll(ctx context.Context) ([]dao.Setting, error)
	Upsert(ctx context.Context, setting dao.Setting) (dao.Setting, error)
}

type SettingRepository struct {
	dao SettingDAO
}

func NewSettingRepository(dao SettingDAO) *SettingRepository {
	return &SettingRepository{
		dao: dao,
	}
}

func (r *SettingRepository) daoToDomain(s dao.Setting) domain.Setting {
	return domain.Setting{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedAt: s.UpdatedAt,
	}
}

func (r *SettingRepository) FindByKey(ctx context.Context, key string) (domain.Setting, error) {
	setting, err := r.dao.FindByKey(ctx, key)
	if err != nil {
		return domain.Setting{}, err
	}

	return r.daoToDomain(setting), nil
}

func (r *SettingRepository) FindAll(ctx context.Context) ([]domain.Setting, error) {
	settingsDAO, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	settings := make([]domain.Setting, len(settingsDAO))
	for i, settingDAO := range settingsDAO {
		settings[i] = r.daoToDomain(settingDAO)
	}

	return settings, nil
}

func (r *SettingRepository) Upsert(ctx context.Context, setting domain.Setting) (domain.Setting, error) {
	upserted, err := r.dao.Upsert(ctx, dao.Setting{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedAt: setting.UpdatedAt,
	})
	if err != nil {
		return domain.Setting{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(upserted), nil
}
