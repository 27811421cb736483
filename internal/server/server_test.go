package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/blossom-shop/blossom/pkg/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type apiEnvelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func newTestApp(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.ProductImage{},
		&models.Transaction{},
		&models.BankDetails{},
		&models.SiteSettings{},
		&models.AdminToken{},
	))

	disk := storage.NewLocalDisk(t.TempDir(), "/storage")
	return Handler(db, disk), db
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env apiEnvelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestVerifyAdminOutcomes(t *testing.T) {
	h, db := newTestApp(t)

	require.NoError(t, db.Create(&models.AdminToken{Token: "fresh"}).Error)
	stale := models.AdminToken{Token: "stale"}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Model(&stale).
		Update("created_at", time.Now().Add(-200*time.Hour)).Error)

	rec, env := doJSON(t, h, http.MethodPost, "/api/verify-admin",
		map[string]string{"token": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, string(env.Data), "Invalid token")

	rec, env = doJSON(t, h, http.MethodPost, "/api/verify-admin",
		map[string]string{"token": "stale"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "Token expired")

	rec, env = doJSON(t, h, http.MethodPost, "/api/verify-admin",
		map[string]string{"token": "fresh"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"valid":true`)
}

func TestVerifyAdminRequiresToken(t *testing.T) {
	h, _ := newTestApp(t)

	rec, env := doJSON(t, h, http.MethodPost, "/api/verify-admin", map[string]string{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "token")
}

func seedTransaction(t *testing.T, db *gorm.DB) models.Transaction {
	t.Helper()
	tx := models.Transaction{
		TrackingNumber: uuid.NewString(),
		Name:           "Ada",
		Email:          "ada@example.com",
		TotalAmount:    decimal.NewFromFloat(10.00),
		Products:       "1x Shirt",
		Status:         models.StatusPending,
	}
	require.NoError(t, db.Create(&tx).Error)
	return tx
}

func TestTrackOrder(t *testing.T) {
	h, db := newTestApp(t)
	tx := seedTransaction(t, db)

	rec, env := doJSON(t, h, http.MethodGet,
		"/api/track-order?tracking_number="+tx.TrackingNumber, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), tx.TrackingNumber)
	assert.Contains(t, string(env.Data), `"pending"`)
}

func TestTrackOrderUnknownNumber(t *testing.T) {
	h, _ := newTestApp(t)

	rec, env := doJSON(t, h, http.MethodGet,
		"/api/track-order?tracking_number="+uuid.NewString(), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid tracking number", env.Message)

	rec, env = doJSON(t, h, http.MethodGet, "/api/track-order", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Tracking number is required", env.Message)
}

func multipartProof(t *testing.T, trackingNumber, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("tracking_number", trackingNumber))
	fw, err := w.CreateFormFile("payment_proof", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("proof-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadPaymentProof(t *testing.T) {
	h, db := newTestApp(t)
	tx := seedTransaction(t, db)

	body, contentType := multipartProof(t, tx.TrackingNumber, "receipt.pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/upload-payment-proof", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var stored models.Transaction
	require.NoError(t, db.First(&stored, tx.ID).Error)
	assert.Equal(t, models.StatusPaymentUploaded, stored.Status)
	assert.NotEmpty(t, stored.PaymentProof)
}

func TestUploadPaymentProofUnknownTracking(t *testing.T) {
	h, _ := newTestApp(t)

	body, contentType := multipartProof(t, uuid.NewString(), "receipt.pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/upload-payment-proof", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid tracking number")
}

func TestProductLifecycleOverHTTP(t *testing.T) {
	h, _ := newTestApp(t)

	rec, env := doJSON(t, h, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Rose Bouquet",
		"category": "Flowers",
		"price":    "49.99",
		"quantity": 25,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Product
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.ID)

	rec, env = doJSON(t, h, http.MethodPatch,
		fmt.Sprintf("/api/products/%d", created.ID),
		map[string]interface{}{"price": "59.99"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.Product
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Rose Bouquet", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.NewFromFloat(59.99)))

	rec, _ = doJSON(t, h, http.MethodDelete,
		fmt.Sprintf("/api/products/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, h, http.MethodGet,
		fmt.Sprintf("/api/products/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductValidation(t *testing.T) {
	h, _ := newTestApp(t)

	rec, env := doJSON(t, h, http.MethodPost, "/api/products", map[string]interface{}{
		"category": "Flowers",
		"price":    "not-a-number",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "name")
	assert.Contains(t, env.Errors, "price")
}

func TestProductImageEndpoints(t *testing.T) {
	h, db := newTestApp(t)

	product := models.Product{Name: "Rose Bouquet", Category: "Flowers"}
	require.NoError(t, db.Create(&product).Error)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, name := range []string{"a.jpg", "b.jpg"} {
		fw, err := w.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/products/%d/upload-images", product.ID), &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var images []models.ProductImage
	require.NoError(t, db.Where("product_id = ?", product.ID).
		Order("id").Find(&images).Error)
	require.Len(t, images, 2)
	assert.True(t, images[0].IsPrimary)

	rec2, env := doJSON(t, h, http.MethodPost,
		fmt.Sprintf("/api/products/%d/set-primary-image", product.ID),
		map[string]interface{}{"image_id": images[1].ID})
	require.Equal(t, http.StatusOK, rec2.Code, rec2.Body.String())

	var after models.Product
	require.NoError(t, json.Unmarshal(env.Data, &after))
	primary := after.PrimaryImage()
	require.NotNil(t, primary)
	assert.Equal(t, images[1].ID, primary.ID)

	rec3, _ := doJSON(t, h, http.MethodDelete,
		fmt.Sprintf("/api/products/%d/delete-image", product.ID),
		map[string]interface{}{"image_id": images[1].ID})
	require.Equal(t, http.StatusOK, rec3.Code)

	var remaining []models.ProductImage
	require.NoError(t, db.Where("product_id = ?", product.ID).Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.True(t, remaining[0].IsPrimary)
}

func TestSiteSettingsEndpoints(t *testing.T) {
	h, _ := newTestApp(t)

	rec, env := doJSON(t, h, http.MethodGet, "/api/site-settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "My E-commerce Site")

	rec, env = doJSON(t, h, http.MethodPatch, "/api/site-settings",
		map[string]interface{}{"site_title": "Blossom"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "Blossom")
	assert.Contains(t, string(env.Data), "support@example.com")
}

func TestBankDetailsCRUD(t *testing.T) {
	h, _ := newTestApp(t)

	rec, env := doJSON(t, h, http.MethodPost, "/api/bank-details", map[string]string{
		"bank_name":      "First Demo Bank",
		"account_name":   "Blossom Shop Ltd",
		"account_number": "0123456789",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.BankDetails
	require.NoError(t, json.Unmarshal(env.Data, &created))

	rec, env = doJSON(t, h, http.MethodPatch,
		fmt.Sprintf("/api/bank-details/%d", created.ID),
		map[string]string{"account_number": "9876543210"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "9876543210")

	rec, _ = doJSON(t, h, http.MethodDelete,
		fmt.Sprintf("/api/bank-details/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, h, http.MethodGet,
		fmt.Sprintf("/api/bank-details/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "blossom_shop_orders_created_total")
}