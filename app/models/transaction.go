package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrTransactionNotFound is returned for an unknown id or tracking number.
var ErrTransactionNotFound = errors.New("transaction not found")

// Transaction statuses. Transitions are free-form field updates; the admin
// side moves orders forward, the proof upload sets StatusPaymentUploaded.
const (
	StatusPending          = "pending"
	StatusPaymentUploaded  = "payment_uploaded"
	StatusPaymentConfirmed = "payment_confirmed"
	StatusProcessing       = "processing"
	StatusShipped          = "shipped"
	StatusDelivered        = "delivered"
	StatusCancelled        = "cancelled"
)

// Statuses lists every accepted transaction status.
var Statuses = []string{
	StatusPending,
	StatusPaymentUploaded,
	StatusPaymentConfirmed,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// Transaction is a customer order. The tracking number is assigned once at
// creation and never changes; customers use it for lookups and the payment
// proof upload.
type Transaction struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	TrackingNumber string          `gorm:"size:36;uniqueIndex;not null" json:"tracking_number"`
	Name           string          `gorm:"size:200;not null;index" json:"name"`
	Email          string          `gorm:"size:255;not null;index" json:"email"`
	Location       string          `gorm:"size:200;not null" json:"location"`
	Phone          string          `gorm:"size:20;not null" json:"phone"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Products       string          `gorm:"type:text;not null" json:"products"`
	Status         string          `gorm:"size:100;not null;default:pending" json:"status"`
	PaymentProof   string          `gorm:"size:255" json:"payment_proof,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (t *Transaction) TableName() string {
	return "transactions"
}
