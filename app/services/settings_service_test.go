package services

import (
	"testing"

	"github.com/blossom-shop/blossom/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsGetCreatesDefaults(t *testing.T) {
	svc := NewSettingsService(repositories.NewSettingsRepository(newTestDB(t)))

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "My E-commerce Site", settings.SiteTitle)
	assert.Equal(t, "#FF69B4", settings.MainColor)
}

func TestSettingsUpdateThenGet(t *testing.T) {
	svc := NewSettingsService(repositories.NewSettingsRepository(newTestDB(t)))

	updated, err := svc.Update(map[string]interface{}{
		"site_title": "Blossom",
		"store_tag":  "Fresh flowers daily",
	})
	require.NoError(t, err)
	assert.Equal(t, "Blossom", updated.SiteTitle)
	assert.Equal(t, "Fresh flowers daily", updated.StoreTag)

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "Blossom", got.SiteTitle)
	assert.Equal(t, "support@example.com", got.ContactEmail)
}
