package repositories

import (
	"errors"

	"github.com/blossom-shop/blossom/app/models"
	"gorm.io/gorm"
)

// BankDetailsRepository handles database operations for payment accounts.
type BankDetailsRepository struct {
	db *gorm.DB
}

func NewBankDetailsRepository(db *gorm.DB) *BankDetailsRepository {
	return &BankDetailsRepository{db: db}
}

// All returns every payment account.
func (r *BankDetailsRepository) All() ([]models.BankDetails, error) {
	var details []models.BankDetails
	err := r.db.Order("id").Find(&details).Error
	return details, err
}

// Find looks up one payment account by primary key.
func (r *BankDetailsRepository) Find(id uint) (models.BankDetails, error) {
	var details models.BankDetails
	err := r.db.First(&details, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return details, models.ErrBankDetailsNotFound
	}
	return details, err
}

// Create persists a new payment account.
func (r *BankDetailsRepository) Create(details *models.BankDetails) error {
	return r.db.Create(details).Error
}

// UpdateFields applies a partial field set to a payment account.
func (r *BankDetailsRepository) UpdateFields(id uint, fields map[string]interface{}) (models.BankDetails, error) {
	details, err := r.Find(id)
	if err != nil {
		return details, err
	}
	if err := r.db.Model(&details).Updates(fields).Error; err != nil {
		return details, err
	}
	return r.Find(id)
}

// Delete removes a payment account.
func (r *BankDetailsRepository) Delete(id uint) error {
	details, err := r.Find(id)
	if err != nil {
		return err
	}
	return r.db.Delete(&details).Error
}
