package repositories

import (
	"errors"
	"strings"

	"github.com/blossom-shop/blossom/app/models"
	"gorm.io/gorm"
)

// TransactionRepository handles database operations for orders.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// All returns orders newest first. A non-empty search matches the
// customer name or email as a substring, or the tracking number exactly.
// A non-empty status narrows the result to that status.
func (r *TransactionRepository) All(search, status string) ([]models.Transaction, error) {
	q := r.db.Model(&models.Transaction{})
	if search != "" {
		lowered := strings.ToLower(search)
		pattern := "%" + lowered + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(tracking_number) = ?",
			pattern, pattern, lowered,
		)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var transactions []models.Transaction
	err := q.Order("created_at DESC, id DESC").Find(&transactions).Error
	return transactions, err
}

// Find looks up one order by primary key.
func (r *TransactionRepository) Find(id uint) (models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.First(&transaction, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return transaction, models.ErrTransactionNotFound
	}
	return transaction, err
}

// FindByTracking looks up one order by its tracking number.
func (r *TransactionRepository) FindByTracking(trackingNumber string) (models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.Where("tracking_number = ?", trackingNumber).First(&transaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return transaction, models.ErrTransactionNotFound
	}
	return transaction, err
}

// Create persists a new order.
func (r *TransactionRepository) Create(transaction *models.Transaction) error {
	return r.db.Create(transaction).Error
}

// Update persists changes to an existing order.
func (r *TransactionRepository) Update(transaction *models.Transaction) error {
	return r.db.Save(transaction).Error
}

// UpdateFields applies a partial field set to an order.
func (r *TransactionRepository) UpdateFields(id uint, fields map[string]interface{}) (models.Transaction, error) {
	transaction, err := r.Find(id)
	if err != nil {
		return transaction, err
	}
	if err := r.db.Model(&transaction).Updates(fields).Error; err != nil {
		return transaction, err
	}
	return r.Find(id)
}

// Delete removes an order.
func (r *TransactionRepository) Delete(id uint) error {
	transaction, err := r.Find(id)
	if err != nil {
		return err
	}
	return r.db.Delete(&transaction).Error
}

// AttachPaymentProof records the stored proof path against the order and
// moves it to the payment uploaded status, whatever its current status.
func (r *TransactionRepository) AttachPaymentProof(trackingNumber, path string) (models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("tracking_number = ?", trackingNumber).First(&transaction).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrTransactionNotFound
		}
		if err != nil {
			return err
		}
		return tx.Model(&transaction).Updates(map[string]interface{}{
			"payment_proof": path,
			"status":        models.StatusPaymentUploaded,
		}).Error
	})
	return transaction, err
}
