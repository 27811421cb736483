package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/blossom-shop/blossom/pkg/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func newTestDisk(t *testing.T) storage.Disk {
	t.Helper()
	return storage.NewLocalDisk(t.TempDir(), "/storage")
}
