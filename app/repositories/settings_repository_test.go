package repositories

import (
	"testing"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsLazyCreateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)

	first, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "My E-commerce Site", first.SiteTitle)
	assert.Equal(t, "support@example.com", first.ContactEmail)
	assert.Equal(t, "#FF69B4", first.MainColor)

	second, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var n int64
	require.NoError(t, db.Model(&models.SiteSettings{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestSettingsPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)

	updated, err := repo.Update(map[string]interface{}{"site_title": "Blossom"})
	require.NoError(t, err)
	assert.Equal(t, "Blossom", updated.SiteTitle)

	// untouched fields keep their defaults
	assert.Equal(t, "support@example.com", updated.ContactEmail)
	assert.Equal(t, "1234567890", updated.ContactNumber)

	var n int64
	require.NoError(t, db.Model(&models.SiteSettings{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestSettingsEmptyUpdateCreatesDefaults(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)

	settings, err := repo.Update(map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "My E-commerce Site", settings.SiteTitle)
}
