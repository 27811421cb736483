package repositories

import (
	"testing"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTransaction(t *testing.T, repo *TransactionRepository, name, email string) models.Transaction {
	t.Helper()
	tx := models.Transaction{
		TrackingNumber: uuid.NewString(),
		Name:           name,
		Email:          email,
		TotalAmount:    decimal.NewFromFloat(10.00),
		Products:       "1x Shirt",
		Status:         models.StatusPending,
	}
	require.NoError(t, repo.Create(&tx))
	return tx
}

func TestFindByTracking(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	created := createTransaction(t, repo, "Ada", "ada@example.com")

	found, err := repo.FindByTracking(created.TrackingNumber)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, models.StatusPending, found.Status)

	_, err = repo.FindByTracking(uuid.NewString())
	assert.ErrorIs(t, err, models.ErrTransactionNotFound)
}

func TestAllSearchUnionsNameEmailAndTracking(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	ada := createTransaction(t, repo, "Ada Lovelace", "ada@example.com")
	createTransaction(t, repo, "Grace Hopper", "grace@navy.mil")

	byName, err := repo.All("lovelace", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, ada.ID, byName[0].ID)

	byEmail, err := repo.All("NAVY.MIL", "")
	require.NoError(t, err)
	assert.Len(t, byEmail, 1)

	byTracking, err := repo.All(ada.TrackingNumber, "")
	require.NoError(t, err)
	require.Len(t, byTracking, 1)
	assert.Equal(t, ada.ID, byTracking[0].ID)

	// tracking numbers match exactly, not as substrings
	byPartial, err := repo.All(ada.TrackingNumber[:8], "")
	require.NoError(t, err)
	assert.Empty(t, byPartial)
}

func TestAllFiltersByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	shipped := createTransaction(t, repo, "Ada", "ada@example.com")
	createTransaction(t, repo, "Grace", "grace@example.com")

	_, err := repo.UpdateFields(shipped.ID, map[string]interface{}{"status": models.StatusShipped})
	require.NoError(t, err)

	got, err := repo.All("", models.StatusShipped)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, shipped.ID, got[0].ID)
}

func TestAttachPaymentProofAlwaysTransitions(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	tx := createTransaction(t, repo, "Ada", "ada@example.com")

	_, err := repo.UpdateFields(tx.ID, map[string]interface{}{"status": models.StatusShipped})
	require.NoError(t, err)

	updated, err := repo.AttachPaymentProof(tx.TrackingNumber, "payment_proofs/p.pdf")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaymentUploaded, updated.Status)
	assert.Equal(t, "payment_proofs/p.pdf", updated.PaymentProof)
}

func TestAttachPaymentProofUnknownTracking(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	_, err := repo.AttachPaymentProof(uuid.NewString(), "payment_proofs/p.pdf")
	assert.ErrorIs(t, err, models.ErrTransactionNotFound)
}

func TestUpdateFieldsKeepsTrackingNumber(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	tx := createTransaction(t, repo, "Ada", "ada@example.com")

	updated, err := repo.UpdateFields(tx.ID, map[string]interface{}{"name": "Ada L."})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.Name)
	assert.Equal(t, tx.TrackingNumber, updated.TrackingNumber)
}
