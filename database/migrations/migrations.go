// Package migrations registers the schema migrations for the shop.
package migrations

import (
	"github.com/blossom-shop/blossom/app/models"
	"github.com/blossom-shop/blossom/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260301000001_create_products_table", &CreateProductsTable{})
	migration.Register("20260301000002_create_product_images_table", &CreateProductImagesTable{})
	migration.Register("20260301000003_create_transactions_table", &CreateTransactionsTable{})
	migration.Register("20260301000004_create_bank_details_table", &CreateBankDetailsTable{})
	migration.Register("20260301000005_create_site_settings_table", &CreateSiteSettingsTable{})
	migration.Register("20260301000006_create_admin_tokens_table", &CreateAdminTokensTable{})
}

type CreateProductsTable struct{}

func (CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Product{})
}

type CreateProductImagesTable struct{}

func (CreateProductImagesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.ProductImage{})
}

func (CreateProductImagesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.ProductImage{})
}

type CreateTransactionsTable struct{}

func (CreateTransactionsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Transaction{})
}

func (CreateTransactionsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Transaction{})
}

type CreateBankDetailsTable struct{}

func (CreateBankDetailsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.BankDetails{})
}

func (CreateBankDetailsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.BankDetails{})
}

type CreateSiteSettingsTable struct{}

func (CreateSiteSettingsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.SiteSettings{})
}

func (CreateSiteSettingsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.SiteSettings{})
}

type CreateAdminTokensTable struct{}

func (CreateAdminTokensTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.AdminToken{})
}

func (CreateAdminTokensTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.AdminToken{})
}
