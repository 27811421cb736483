package services

import (
	"time"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/blossom-shop/blossom/app/repositories"
	"github.com/blossom-shop/blossom/pkg/cache"
	"github.com/blossom-shop/blossom/pkg/logger"
)

const settingsCacheKey = "site_settings"

// SettingsService serves the site settings singleton with a read cache
// in front of the database row.
type SettingsService struct {
	repo *repositories.SettingsRepository
}

func NewSettingsService(repo *repositories.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the settings, creating the row with defaults on first use.
func (s *SettingsService) Get() (models.SiteSettings, error) {
	var cached models.SiteSettings
	if cache.Get(settingsCacheKey, &cached) {
		return cached, nil
	}
	settings, err := s.repo.Get()
	if err != nil {
		return settings, err
	}
	if err := cache.Set(settingsCacheKey, settings, 10*time.Minute); err != nil {
		logger.Warn("settings: cache set failed", "error", err)
	}
	return settings, nil
}

// Update applies a partial update and invalidates the cached copy.
func (s *SettingsService) Update(fields map[string]interface{}) (models.SiteSettings, error) {
	settings, err := s.repo.Update(fields)
	if err != nil {
		return settings, err
	}
	if err := cache.Forget(settingsCacheKey); err != nil {
		logger.Warn("settings: cache forget failed", "error", err)
	}
	return settings, nil
}
