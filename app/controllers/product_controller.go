package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/blossom-shop/blossom/app/services"
	"github.com/blossom-shop/blossom/pkg/bind"
	"github.com/blossom-shop/blossom/pkg/response"
	"github.com/blossom-shop/blossom/pkg/router"
	"github.com/shopspring/decimal"
)

// ProductController exposes the product catalog and image endpoints.
type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

type storeProductInput struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Category    string `json:"category" validate:"required,max=100"`
	Description string `json:"description" validate:"nullable,max=2000"`
	Price       string `json:"price" validate:"required,numeric,gte=0"`
	Quantity    *uint  `json:"quantity" validate:"nullable,integer"`
}

type updateProductInput struct {
	Name        *string `json:"name" validate:"nullable,min=2,max=200"`
	Category    *string `json:"category" validate:"nullable,max=100"`
	Description *string `json:"description" validate:"nullable,max=2000"`
	Price       *string `json:"price" validate:"nullable,numeric,gte=0"`
	Quantity    *uint   `json:"quantity" validate:"nullable,integer"`
}

type setPrimaryInput struct {
	ImageID uint `json:"image_id" validate:"required,integer"`
}

// Index handles GET /api/products. An optional ?search= narrows by name
// or category.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.List(r.URL.Query().Get("search"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not list products")
		return
	}
	response.Success(w, products)
}

// Show handles GET /api/products/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	product, err := c.catalog.Find(id)
	if err != nil {
		c.fail(w, err)
		return
	}
	response.Success(w, product)
}

// Store handles POST /api/products.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var in storeProductInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	price, err := decimal.NewFromString(in.Price)
	if err != nil {
		response.ValidationError(w, map[string]string{"price": "The price field must be a number."})
		return
	}

	product := models.Product{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Price:       price,
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}

	if err := c.catalog.Create(&product); err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not create product")
		return
	}
	response.Created(w, product)
}

// Update handles PUT and PATCH /api/products/{id}. Absent fields keep
// their stored values.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var in updateProductInput
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
	if in.Category != nil {
		fields["category"] = *in.Category
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		price, err := decimal.NewFromString(*in.Price)
		if err != nil {
			response.ValidationError(w, map[string]string{"price": "The price field must be a number."})
			return
		}
		fields["price"] = price
	}
	if in.Quantity != nil {
		fields["quantity"] = *in.Quantity
	}

	product, err := c.catalog.UpdateFields(id, fields)
	if err != nil {
		c.fail(w, err)
		return
	}
	response.Success(w, product)
}

// Destroy handles DELETE /api/products/{id}.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.catalog.Delete(id); err != nil {
		c.fail(w, err)
		return
	}
	response.Message(w, "Product deleted")
}

// UploadImages handles POST /api/products/{id}/upload-images. Multipart
// field "images" carries the files; optional "primary_image" names the
// image id to flag as primary.
func (c *ProductController) UploadImages(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}
	headers := r.MultipartForm.File["images"]

	var primaryID uint
	if raw := r.FormValue("primary_image"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid primary_image id")
			return
		}
		primaryID = uint(n)
	}

	if len(headers) == 0 {
		if primaryID == 0 {
			response.BadRequest(w, "No images provided")
			return
		}
		// no new files, just a primary selection
		product, err := c.catalog.SetPrimaryImage(id, primaryID)
		if err != nil {
			c.fail(w, err)
			return
		}
		response.Success(w, product)
		return
	}

	uploads := make([]services.Upload, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			response.BadRequest(w, "Could not read uploaded file")
			return
		}
		defer f.Close()
		uploads = append(uploads, services.Upload{
			Filename: h.Filename,
			Size:     h.Size,
			Content:  f,
		})
	}

	images, err := c.catalog.UploadImages(id, uploads, primaryID)
	if err != nil {
		c.fail(w, err)
		return
	}
	response.Created(w, images)
}

// SetPrimaryImage handles POST /api/products/{id}/set-primary-image.
func (c *ProductController) SetPrimaryImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var in setPrimaryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.catalog.SetPrimaryImage(id, in.ImageID)
	if err != nil {
		c.fail(w, err)
		return
	}
	response.Success(w, product)
}

// DeleteImage handles DELETE /api/products/{id}/delete-image.
func (c *ProductController) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var in setPrimaryInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.catalog.DeleteImage(id, in.ImageID); err != nil {
		c.fail(w, err)
		return
	}
	response.Message(w, "Image deleted")
}

func (c *ProductController) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrProductNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, models.ErrImageNotOwned):
		response.BadRequest(w, "Image does not belong to this product")
	case errors.Is(err, models.ErrImageLimit):
		response.BadRequest(w, "Image limit reached for this product")
	case errors.Is(err, services.ErrFileTooLarge),
		errors.Is(err, services.ErrUnsupportedFileType):
		response.BadRequest(w, err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, "Something went wrong")
	}
}

// pathID parses the named route parameter as an unsigned id, writing a
// 400 when it is malformed.
func pathID(w http.ResponseWriter, r *http.Request, key string) (uint, bool) {
	raw := router.Param(r, key)
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		response.BadRequest(w, "Invalid id")
		return 0, false
	}
	return uint(n), true
}
