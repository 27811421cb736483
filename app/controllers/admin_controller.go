package controllers

import (
	"errors"
	"net/http"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/blossom-shop/blossom/app/services"
	"github.com/blossom-shop/blossom/pkg/bind"
	"github.com/blossom-shop/blossom/pkg/response"
)

// AdminController exposes the admin token check.
type AdminController struct {
	admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{admin: admin}
}

type verifyAdminInput struct {
	Token string `json:"token" validate:"required"`
}

// Verify handles POST /api/verify-admin. An unknown token is a 401; a
// known token answers 200 with its validity.
func (c *AdminController) Verify(w http.ResponseWriter, r *http.Request) {
	var in verifyAdminInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	valid, err := c.admin.Verify(in.Token)
	if err != nil {
		if errors.Is(err, models.ErrTokenNotFound) {
			response.Unauthorized(w, map[string]interface{}{
				"valid":   false,
				"message": "Invalid token",
			})
			return
		}
		response.Error(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if !valid {
		response.Success(w, map[string]interface{}{
			"valid":   false,
			"message": "Token expired",
		})
		return
	}
	response.Success(w, map[string]interface{}{"valid": true})
}
