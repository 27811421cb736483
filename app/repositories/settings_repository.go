package repositories

import (
	"errors"

	"github.com/blossom-shop/blossom/app/models"
	"gorm.io/gorm"
)

// SettingsRepository manages the single site settings row. The row is
// created lazily with defaults on first read, inside a transaction so
// concurrent first reads cannot create two rows.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings row, creating it with defaults when missing.
func (r *SettingsRepository) Get() (models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&settings).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			settings = models.DefaultSiteSettings()
			return tx.Create(&settings).Error
		}
		return err
	})
	return settings, err
}

// Update applies a partial field set to the settings row, creating it
// first when it does not exist yet.
func (r *SettingsRepository) Update(fields map[string]interface{}) (models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&settings).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			settings = models.DefaultSiteSettings()
			if err := tx.Create(&settings).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&settings).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&settings, settings.ID).Error
	})
	return settings, err
}
