// Package service joins repositories behind the interfaces background workers need.
package service

import (
	"context"

	"github.com/blizbi/blizbi/pkg/domain"
	"github.com/blizbi/blizbi/pkg/repository"
)

// IngestService provides unified access to repositories for the feed importer
type IngestService struct {
	eventRepo   *repository.EventRepository
	settingRepo *repository.SettingRepository
}

// NewIngestService creates a new ingest service
func NewIngestService(eventRepo *repository.EventRepository, settingRepo *repository.SettingRepository) *IngestService {
	return &IngestService{eventRepo: eventRepo, settingRepo: settingRepo}
}

// ProvidersWithFeeds returns providers having a feed to import events from
func (s *IngestService) ProvidersWithFeeds(ctx context.Context) ([]domain.Provider, error) {
	return s.eventRepo.ProvidersWithFeeds(ctx)
}

// UpsertEvent stores the event by its hash
func (s *IngestService) UpsertEvent(ctx context.Context, ev *domain.Event) error {
	return s.eventRepo.Upsert(ctx, ev)
}

// GetSetting returns a setting, empty if not set
func (s *IngestService) GetSetting(ctx context.Context, key string) (string, error) {
	return s.settingRepo.GetSetting(ctx, key)
}

// SetSetting stores a setting
func (s *IngestService) SetSetting(ctx context.Context, key, value string) error {
	return s.settingRepo.SetSetting(ctx, key, value)
}
