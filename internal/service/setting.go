package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/eventpass-app/eventpass-api/internal/clock"
	"github.com/eventpass-app/eventpass-api/internal/domain"
	"github.com/eventpass-app/eventpass-api/internal/repository"
)

var ErrSettingNotFound = repository.ErrSettingNotFound

type SettingRepository interface {
	FindByKey(ctx context.Context, key string) (domain.Setting, error)
	FindAll(ctx context.Context) ([]domain.Setting, error)
	Upsert(ctx context.Context, setting domain.Setting) (domain.Setting, error)
}

type SettingService struct {
	repo  SettingRepository
	clock clock.Clock
}

func NewSettingService(repo SettingRepository, clk clock.Clock) *SettingService {
	return &SettingService{
		repo:  repo,
		clock: clk,
	}
}

func (s *SettingService) Get(ctx context.Context, key string) (domain.Setting, error) {
	setting, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if repository.StoreUnavailable(err) {
			zap.L().Warn("setting store unavailable", zap.Error(err))
			return domain.Setting{}, ErrSettingNotFound
		}

		return domain.Setting{}, err
	}

	return setting, nil
}

func (s *SettingService) List(ctx context.Context) ([]domain.Setting, error) {
	settings, err := s.repo.FindAll(ctx)
	if err != nil {
		if repository.StoreUnavailable(err) {
			zap.L().Warn("setting store unavailable, returning empty list", zap.Error(err))
			return []domain.Setting{}, nil
		}

		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return settings, nil
}

func (s *SettingService) Put(ctx context.Context, key, value string) (domain.Setting, error) {
	setting, err := s.repo.Upsert(ctx, domain.Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: s.clock.Now(),
	})
	if err != nil {
		return domain.Setting{}, fmt.Errorf("s.repo.Upsert -> %w", err)
	}

	return setting, nil
}
