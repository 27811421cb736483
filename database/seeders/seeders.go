// Package seeders fills a fresh database with demo data.
package seeders

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seeder populates one slice of demo data. Seeders must be idempotent:
// running them twice leaves the database unchanged.
type Seeder interface {
	Name() string
	Run(db *gorm.DB) error
}

var registry = []Seeder{
	ProductSeeder{},
	BankDetailsSeeder{},
	AdminTokenSeeder{},
}

// Run executes every registered seeder in order.
func Run(db *gorm.DB) error {
	for _, s := range registry {
		fmt.Printf("  Seeding: %s\n", s.Name())
		if err := s.Run(db); err != nil {
			return fmt.Errorf("seeder %s: %w", s.Name(), err)
		}
	}
	return nil
}

type ProductSeeder struct{}

func (ProductSeeder) Name() string { return "products" }

func (ProductSeeder) Run(db *gorm.DB) error {
	products := []models.Product{
		{Name: "Rose Bouquet", Category: "Flowers", Description: "A dozen fresh red roses.", Price: decimal.NewFromFloat(49.99), Quantity: 25},
		{Name: "Lavender Candle", Category: "Home", Description: "Hand poured soy candle.", Price: decimal.NewFromFloat(18.50), Quantity: 60},
		{Name: "Gift Box", Category: "Gifts", Description: "Curated assortment of treats.", Price: decimal.NewFromFloat(75.00), Quantity: 12},
	}
	for _, p := range products {
		var n int64
		if err := db.Model(&models.Product{}).Where("name = ?", p.Name).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}

type BankDetailsSeeder struct{}

func (BankDetailsSeeder) Name() string { return "bank_details" }

func (BankDetailsSeeder) Run(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.BankDetails{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return db.Create(&models.BankDetails{
		BankName:      "First Demo Bank",
		AccountName:   "Blossom Shop Ltd",
		AccountNumber: "0123456789",
	}).Error
}

type AdminTokenSeeder struct{}

func (AdminTokenSeeder) Name() string { return "admin_tokens" }

func (AdminTokenSeeder) Run(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.AdminToken{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	token, err := RandomToken()
	if err != nil {
		return err
	}
	if err := db.Create(&models.AdminToken{Token: token}).Error; err != nil {
		return err
	}
	fmt.Printf("  Admin token: %s\n", token)
	return nil
}

// RandomToken returns a 64 character hex token.
func RandomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
