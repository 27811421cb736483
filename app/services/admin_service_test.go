package services

import (
	"testing"
	"time"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/blossom-shop/blossom/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyUnknownToken(t *testing.T) {
	repo := repositories.NewAdminTokenRepository(newTestDB(t))
	svc := NewAdminService(repo, 168*time.Hour)

	_, err := svc.Verify("no-such-token")
	assert.ErrorIs(t, err, models.ErrTokenNotFound)
}

func TestVerifyInsideWindow(t *testing.T) {
	repo := repositories.NewAdminTokenRepository(newTestDB(t))
	svc := NewAdminService(repo, 168*time.Hour)

	record, err := svc.Issue("fresh-token")
	require.NoError(t, err)

	svc.WithClock(func() time.Time {
		return record.CreatedAt.Add(167 * time.Hour)
	})

	valid, err := svc.Verify("fresh-token")
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestVerifyExpiredToken(t *testing.T) {
	repo := repositories.NewAdminTokenRepository(newTestDB(t))
	svc := NewAdminService(repo, 168*time.Hour)

	record, err := svc.Issue("stale-token")
	require.NoError(t, err)

	svc.WithClock(func() time.Time {
		return record.CreatedAt.Add(169 * time.Hour)
	})

	valid, err := svc.Verify("stale-token")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyExactBoundaryIsExpired(t *testing.T) {
	repo := repositories.NewAdminTokenRepository(newTestDB(t))
	svc := NewAdminService(repo, time.Hour)

	record, err := svc.Issue("boundary-token")
	require.NoError(t, err)

	svc.WithClock(func() time.Time {
		return record.CreatedAt.Add(time.Hour)
	})

	valid, err := svc.Verify("boundary-token")
	require.NoError(t, err)
	assert.False(t, valid)
}
