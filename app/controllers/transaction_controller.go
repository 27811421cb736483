package controllers

import (
	"errors"
	"net/http"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/blossom-shop/blossom/app/services"
	"github.com/blossom-shop/blossom/pkg/bind"
	"github.com/blossom-shop/blossom/pkg/response"
	"github.com/shopspring/decimal"
)

// TransactionController exposes order management, tracking and payment
// proof endpoints.
type TransactionController struct {
	orders *services.OrderService
}

func NewTransactionController(orders *services.OrderService) *TransactionController {
	return &TransactionController{orders: orders}
}

type storeTransactionInput struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Location    string `json:"location" validate:"nullable,max=200"`
	Phone       string `json:"phone" validate:"nullable,max=20"`
	TotalAmount string `json:"total_amount" validate:"required,numeric,gte=0"`
	Products    string `json:"products" validate:"required"`
}

type updateTransactionInput struct {
	Name        *string `json:"name" validate:"nullable,min=2,max=200"`
	Email       *string `json:"email" validate:"nullable,email"`
	Location    *string `json:"location" validate:"nullable,max=200"`
	Phone       *string `json:"phone" validate:"nullable,max=20"`
	TotalAmount *string `json:"total_amount" validate:"nullable,numeric,gte=0"`
	Products    *string `json:"products" validate:"nullable"`
	Status      *string `json:"status" validate:"nullable,in=pending,payment_uploaded,payment_confirmed,processing,shipped,delivered,cancelled"`
}

// Index handles GET /api/transactions with optional ?search= and
// ?status= filters.
func (c *TransactionController) Index(w http.ResponseWriter, r *http.Request) {
	transactions, err := c.orders.All(
		r.URL.Query().Get("search"),
		r.URL.Query().Get("status"),
	)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not list transactions")
		return
	}
	response.Success(w, transactions)
}

// Show handles GET /api/transactions/{id}.
func (c *TransactionController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	transaction, err := c.orders.Find(id)
	if err != nil {
		c.fail(w, err)
		return
	}
	response.Success(w, transaction)
}

// Store handles POST /api/transactions. A fresh tracking number is
// assigned and the confirmation mail must go out for the request to
// succeed.
func (c *TransactionController) Store(w http.ResponseWriter, r *http.Request) {
	var in storeTransactionInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	amount, err := decimal.NewFromString(in.TotalAmount)
	if err != nil {
		response.ValidationError(w, map[string]string{"total_amount": "The total_amount field must be a number."})
		return
	}

	transaction := models.Transaction{
		Name:        in.Name,
		Email:       in.Email,
		Location:    in.Location,
		Phone:       in.Phone,
		TotalAmount: amount,
		Products:    in.Products,
	}

	if err := c.orders.Create(&transaction); err != nil {
		if errors.Is(err, services.ErrNotificationFailed) {
			response.Error(w, http.StatusBadGateway, "Order saved but the confirmation email failed")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Could not create transaction")
		return
	}
	response.Created(w, transaction)
}

// Update handles PUT and PATCH /api/transactions/{id}. The tracking
// number is never touched.
func (c *TransactionController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var in updateTransactionInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.TotalAmount != nil {
		amount, err := decimal.NewFromString(*in.TotalAmount)
		if err != nil {
			response.ValidationError(w, map[string]string{"total_amount": "The total_amount field must be a number."})
			return
		}
		fields["total_amount"] = amount
	}
	if in.Products != nil {
		fields["products"] = *in.Products
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}

	transaction, err := c.orders.UpdateFields(id, fields)
	if err != nil {
		c.fail(w, err)
		return
	}
	response.Success(w, transaction)
}

// Destroy handles DELETE /api/transactions/{id}.
func (c *TransactionController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.orders.Delete(id); err != nil {
		c.fail(w, err)
		return
	}
	response.Message(w, "Transaction deleted")
}

// Track handles GET /api/track-order?tracking_number=…
func (c *TransactionController) Track(w http.ResponseWriter, r *http.Request) {
	trackingNumber := r.URL.Query().Get("tracking_number")
	if trackingNumber == "" {
		response.BadRequest(w, "Tracking number is required")
		return
	}
	transaction, err := c.orders.Track(trackingNumber)
	if err != nil {
		if errors.Is(err, models.ErrTransactionNotFound) {
			response.BadRequest(w, "Invalid tracking number")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Something went wrong")
		return
	}
	response.Success(w, transaction)
}

// UploadPaymentProof handles POST /api/upload-payment-proof. Multipart
// fields: tracking_number, payment_proof (image or PDF).
func (c *TransactionController) UploadPaymentProof(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	trackingNumber := r.FormValue("tracking_number")
	if trackingNumber == "" {
		response.BadRequest(w, "Tracking number is required")
		return
	}

	f, h, err := r.FormFile("payment_proof")
	if err != nil {
		response.BadRequest(w, "Payment proof file is required")
		return
	}
	defer f.Close()

	transaction, err := c.orders.UploadPaymentProof(trackingNumber, services.Upload{
		Filename: h.Filename,
		Size:     h.Size,
		Content:  f,
	})
	if err != nil {
		if errors.Is(err, models.ErrTransactionNotFound) {
			response.BadRequest(w, "Invalid tracking number")
			return
		}
		c.fail(w, err)
		return
	}
	response.Success(w, map[string]interface{}{
		"message":         "Payment proof uploaded",
		"tracking_number": transaction.TrackingNumber,
		"status":          transaction.Status,
	})
}

func (c *TransactionController) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrTransactionNotFound):
		response.Error(w, http.StatusNotFound, "Transaction not found")
	case errors.Is(err, services.ErrFileTooLarge),
		errors.Is(err, services.ErrUnsupportedFileType):
		response.BadRequest(w, err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, "Something went wrong")
	}
}
