package repositories

import (
	"errors"

	"github.com/blossom-shop/blossom/app/models"
	"gorm.io/gorm"
)

// AdminTokenRepository handles database operations for admin tokens.
type AdminTokenRepository struct {
	db *gorm.DB
}

func NewAdminTokenRepository(db *gorm.DB) *AdminTokenRepository {
	return &AdminTokenRepository{db: db}
}

// FindByToken looks up a token by its value.
func (r *AdminTokenRepository) FindByToken(token string) (models.AdminToken, error) {
	var record models.AdminToken
	err := r.db.Where("token = ?", token).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return record, models.ErrTokenNotFound
	}
	return record, err
}

// Create persists a new token. Its validity window starts at CreatedAt.
func (r *AdminTokenRepository) Create(record *models.AdminToken) error {
	return r.db.Create(record).Error
}
