package services

import (
	"time"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/blossom-shop/blossom/app/repositories"
)

// AdminService checks admin tokens against their validity window.
type AdminService struct {
	repo *repositories.AdminTokenRepository
	ttl  time.Duration
	now  func() time.Time
}

// NewAdminService builds the service with the given token lifetime.
func NewAdminService(repo *repositories.AdminTokenRepository, ttl time.Duration) *AdminService {
	return &AdminService{repo: repo, ttl: ttl, now: time.Now}
}

// WithClock overrides the time source. Mainly for tests.
func (s *AdminService) WithClock(now func() time.Time) *AdminService {
	s.now = now
	return s
}

// Verify distinguishes three outcomes: an unknown token returns
// models.ErrTokenNotFound, a known but expired token returns (false,
// nil), and a token inside its window returns (true, nil).
func (s *AdminService) Verify(token string) (bool, error) {
	record, err := s.repo.FindByToken(token)
	if err != nil {
		return false, err
	}
	return record.ValidAt(s.now(), s.ttl), nil
}

// Issue creates and persists a fresh token record.
func (s *AdminService) Issue(token string) (models.AdminToken, error) {
	record := models.AdminToken{Token: token}
	if err := s.repo.Create(&record); err != nil {
		return record, err
	}
	return record, nil
}
