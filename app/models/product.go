package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a product id matches nothing.
var ErrProductNotFound = errors.New("product not found")

// Product is a catalogue entry. Images are owned by the product and are
// removed with it.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:200;not null;index" json:"name"`
	Category    string          `gorm:"size:100;not null;index" json:"category"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity    uint            `gorm:"not null;default:0" json:"quantity"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
}

func (p *Product) TableName() string {
	return "products"
}

// PrimaryImage returns the image flagged as primary, or nil.
func (p *Product) PrimaryImage() *ProductImage {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	return nil
}
