package services

import (
	"errors"
	"fmt"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/blossom-shop/blossom/app/repositories"
	"github.com/blossom-shop/blossom/pkg/logger"
	"github.com/blossom-shop/blossom/pkg/metrics"
	"github.com/blossom-shop/blossom/pkg/storage"
	"github.com/google/uuid"
)

// ErrNotificationFailed marks an order that was persisted but whose
// confirmation could not be delivered. The customer has no tracking
// number in hand, so callers must surface this instead of swallowing it.
var ErrNotificationFailed = errors.New("order confirmation could not be sent")

// Notifier delivers the order confirmation carrying the tracking number.
type Notifier interface {
	OrderPlaced(tx *models.Transaction) error
}

// OrderService implements order placement, tracking and payment proof
// use cases.
type OrderService struct {
	repo     *repositories.TransactionRepository
	disk     storage.Disk
	notifier Notifier
}

func NewOrderService(repo *repositories.TransactionRepository, disk storage.Disk, notifier Notifier) *OrderService {
	return &OrderService{repo: repo, disk: disk, notifier: notifier}
}

// Create assigns a fresh tracking number, persists the order and sends
// the confirmation. The order row survives a failed confirmation; the
// returned ErrNotificationFailed tells the caller delivery is pending.
func (s *OrderService) Create(transaction *models.Transaction) error {
	transaction.TrackingNumber = uuid.NewString()
	if transaction.Status == "" {
		transaction.Status = models.StatusPending
	}
	if err := s.repo.Create(transaction); err != nil {
		return err
	}
	metrics.OrdersCreated.Inc()

	if err := s.notifier.OrderPlaced(transaction); err != nil {
		logger.Error("orders: confirmation failed",
			"tracking_number", transaction.TrackingNumber, "error", err)
		return fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}
	return nil
}

// All lists orders, optionally filtered by a search term and status.
func (s *OrderService) All(search, status string) ([]models.Transaction, error) {
	return s.repo.All(search, status)
}

// Find returns one order by primary key.
func (s *OrderService) Find(id uint) (models.Transaction, error) {
	return s.repo.Find(id)
}

// Track returns the order identified by a tracking number.
func (s *OrderService) Track(trackingNumber string) (models.Transaction, error) {
	return s.repo.FindByTracking(trackingNumber)
}

// UpdateFields applies a partial update to an order.
func (s *OrderService) UpdateFields(id uint, fields map[string]interface{}) (models.Transaction, error) {
	return s.repo.UpdateFields(id, fields)
}

// Delete removes an order and its stored payment proof, if any.
func (s *OrderService) Delete(id uint) error {
	transaction, err := s.repo.Find(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	if transaction.PaymentProof != "" {
		if err := s.disk.Delete(transaction.PaymentProof); err != nil {
			logger.Warn("orders: orphaned proof file",
				"path", transaction.PaymentProof, "error", err)
		}
	}
	return nil
}

// UploadPaymentProof stores the proof file and attaches it to the order,
// moving the order to the payment uploaded status. An unknown tracking
// number is rejected before anything is written.
func (s *OrderService) UploadPaymentProof(trackingNumber string, u Upload) (models.Transaction, error) {
	if _, err := s.repo.FindByTracking(trackingNumber); err != nil {
		return models.Transaction{}, err
	}

	ext, err := checkUpload(u, proofExtensions)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("%s: %w", u.Filename, err)
	}

	path := fmt.Sprintf("payment_proofs/%s.%s", uuid.NewString(), ext)
	if err := s.disk.PutStream(path, u.Content); err != nil {
		return models.Transaction{}, fmt.Errorf("store %s: %w", u.Filename, err)
	}

	transaction, err := s.repo.AttachPaymentProof(trackingNumber, path)
	if err != nil {
		if derr := s.disk.Delete(path); derr != nil {
			logger.Warn("orders: cleanup failed", "path", path, "error", derr)
		}
		return models.Transaction{}, err
	}

	metrics.PaymentProofsUploaded.Inc()
	return transaction, nil
}
