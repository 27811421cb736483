package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrImageNotOwned is returned when an image id does not belong to
	// the product being operated on.
	ErrImageNotOwned = errors.New("image does not belong to this product")

	// ErrImageLimit is returned when an upload would push a product past
	// MaxImagesPerProduct.
	ErrImageLimit = errors.New("image limit exceeded")
)

// MaxImagesPerProduct caps the image set of a single product.
const MaxImagesPerProduct = 10

// ProductImage is one stored image of a product. At most one image per
// product carries IsPrimary; a product with any images has exactly one.
type ProductImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Path      string    `gorm:"size:255;not null" json:"-"`
	URL       string    `gorm:"size:255;not null" json:"image"`
	IsPrimary bool      `gorm:"not null;default:false" json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}

func (img *ProductImage) TableName() string {
	return "product_images"
}

// BeforeCreate promotes the very first image of a product to primary when
// nothing designated one explicitly.
func (img *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if img.IsPrimary {
		return nil
	}

	var n int64
	if err := tx.Model(&ProductImage{}).
		Where("product_id = ?", img.ProductID).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		img.IsPrimary = true
	}
	return nil
}
