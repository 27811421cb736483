package controllers

import (
	"net/http"

	"github.com/blossom-shop/blossom/app/services"
	"github.com/blossom-shop/blossom/pkg/bind"
	"github.com/blossom-shop/blossom/pkg/response"
)

// SettingsController exposes the site settings singleton.
type SettingsController struct {
	settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{settings: settings}
}

type updateSettingsInput struct {
	SiteTitle     *string `json:"site_title" validate:"nullable,max=200"`
	ContactEmail  *string `json:"contact_email" validate:"nullable,email"`
	ContactNumber *string `json:"contact_number" validate:"nullable,max=30"`
	MainColor     *string `json:"main_color" validate:"nullable,max=20"`
	StoreTag      *string `json:"store_tag" validate:"nullable,max=300"`
}

// Show handles GET /api/site-settings. The row is created with defaults
// on first read.
func (c *SettingsController) Show(w http.ResponseWriter, r *http.Request) {
	settings, err := c.settings.Get()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not load site settings")
		return
	}
	response.Success(w, settings)
}

// Update handles PUT and PATCH /api/site-settings. Absent fields keep
// their stored values.
func (c *SettingsController) Update(w http.ResponseWriter, r *http.Request) {
	var in updateSettingsInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	fields := map[string]interface{}{}
	if in.SiteTitle != nil {
		fields["site_title"] = *in.SiteTitle
	}
	if in.ContactEmail != nil {
		fields["contact_email"] = *in.ContactEmail
	}
	if in.ContactNumber != nil {
		fields["contact_number"] = *in.ContactNumber
	}
	if in.MainColor != nil {
		fields["main_color"] = *in.MainColor
	}
	if in.StoreTag != nil {
		fields["store_tag"] = *in.StoreTag
	}

	settings, err := c.settings.Update(fields)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not update site settings")
		return
	}
	response.Success(w, settings)
}
