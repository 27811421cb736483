package controllers

import (
	"errors"
	"net/http"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/blossom-shop/blossom/app/repositories"
	"github.com/blossom-shop/blossom/pkg/bind"
	"github.com/blossom-shop/blossom/pkg/response"
)

// BankDetailsController exposes CRUD for the payment accounts shown to
// customers at checkout.
type BankDetailsController struct {
	repo *repositories.BankDetailsRepository
}

func NewBankDetailsController(repo *repositories.BankDetailsRepository) *BankDetailsController {
	return &BankDetailsController{repo: repo}
}

type storeBankDetailsInput struct {
	BankName      string `json:"bank_name" validate:"required,max=200"`
	AccountName   string `json:"account_name" validate:"required,max=200"`
	AccountNumber string `json:"account_number" validate:"required,max=50"`
}

type updateBankDetailsInput struct {
	BankName      *string `json:"bank_name" validate:"nullable,max=200"`
	AccountName   *string `json:"account_name" validate:"nullable,max=200"`
	AccountNumber *string `json:"account_number" validate:"nullable,max=50"`
}

// Index handles GET /api/bank-details.
func (c *BankDetailsController) Index(w http.ResponseWriter, r *http.Request) {
	details, err := c.repo.All()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not list bank details")
		return
	}
	response.Success(w, details)
}

// Show handles GET /api/bank-details/{id}.
func (c *BankDetailsController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	details, err := c.repo.Find(id)
	if err != nil {
		c.fail(w, err)
		return
	}
	response.Success(w, details)
}

// Store handles POST /api/bank-details.
func (c *BankDetailsController) Store(w http.ResponseWriter, r *http.Request) {
	var in storeBankDetailsInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	details := models.BankDetails{
		BankName:      in.BankName,
		AccountName:   in.AccountName,
		AccountNumber: in.AccountNumber,
	}
	if err := c.repo.Create(&details); err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not create bank details")
		return
	}
	response.Created(w, details)
}

// Update handles PUT and PATCH /api/bank-details/{id}.
func (c *BankDetailsController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var in updateBankDetailsInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	fields := map[string]interface{}{}
	if in.BankName != nil {
		fields["bank_name"] = *in.BankName
	}
	if in.AccountName != nil {
		fields["account_name"] = *in.AccountName
	}
	if in.AccountNumber != nil {
		fields["account_number"] = *in.AccountNumber
	}

	details, err := c.repo.UpdateFields(id, fields)
	if err != nil {
		c.fail(w, err)
		return
	}
	response.Success(w, details)
}

// Destroy handles DELETE /api/bank-details/{id}.
func (c *BankDetailsController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.repo.Delete(id); err != nil {
		c.fail(w, err)
		return
	}
	response.Message(w, "Bank details deleted")
}

func (c *BankDetailsController) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, models.ErrBankDetailsNotFound) {
		response.Error(w, http.StatusNotFound, "Bank details not found")
		return
	}
	response.Error(w, http.StatusInternalServerError, "Something went wrong")
}
