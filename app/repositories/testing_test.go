package repositories

import (
	"fmt"
	"strings"
	"testing"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database migrated with the full
// schema. cache=shared keeps the database alive across pooled
// connections within one test.
func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func createProduct(t *testing.T, db *gorm.DB, name string) models.Product {
	t.Helper()
	p := models.Product{Name: name, Category: "Flowers"}
	require.NoError(t, db.Create(&p).Error)
	return p
}
