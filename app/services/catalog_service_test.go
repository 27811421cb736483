package services

import (
	"strings"
	"testing"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/blossom-shop/blossom/app/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogService(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewCatalogService(repositories.NewProductRepository(db), newTestDisk(t)), db
}

func seedProduct(t *testing.T, svc *CatalogService) models.Product {
	t.Helper()
	product := models.Product{Name: "Rose Bouquet", Category: "Flowers"}
	require.NoError(t, svc.Create(&product))
	return product
}

func imageUpload(name string) Upload {
	return Upload{
		Filename: name,
		Size:     64,
		Content:  strings.NewReader("image-bytes"),
	}
}

func TestUploadImagesStoresFilesAndRecords(t *testing.T) {
	svc, _ := newCatalogService(t)
	product := seedProduct(t, svc)

	images, err := svc.UploadImages(product.ID, []Upload{
		imageUpload("front.jpg"),
		imageUpload("back.png"),
	}, 0)
	require.NoError(t, err)
	require.Len(t, images, 2)

	assert.True(t, images[0].IsPrimary)
	for _, img := range images {
		assert.True(t, strings.HasPrefix(img.Path, "products/"), img.Path)
		assert.NotEmpty(t, img.URL)
	}
}

func TestUploadImagesRejectsUnknownProduct(t *testing.T) {
	svc, _ := newCatalogService(t)

	_, err := svc.UploadImages(9999, []Upload{imageUpload("front.jpg")}, 0)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestUploadImagesRejectsBadExtension(t *testing.T) {
	svc, db := newCatalogService(t)
	product := seedProduct(t, svc)

	_, err := svc.UploadImages(product.ID, []Upload{
		imageUpload("front.jpg"),
		imageUpload("notes.txt"),
	}, 0)
	require.ErrorIs(t, err, ErrUnsupportedFileType)

	// the whole batch is rejected, including the valid file
	var n int64
	require.NoError(t, db.Model(&models.ProductImage{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestUploadImagesRejectsOversizedFile(t *testing.T) {
	svc, _ := newCatalogService(t)
	product := seedProduct(t, svc)

	_, err := svc.UploadImages(product.ID, []Upload{{
		Filename: "huge.jpg",
		Size:     MaxUploadSize + 1,
		Content:  strings.NewReader("x"),
	}}, 0)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSetPrimaryImage(t *testing.T) {
	svc, _ := newCatalogService(t)
	product := seedProduct(t, svc)

	images, err := svc.UploadImages(product.ID, []Upload{
		imageUpload("a.jpg"),
		imageUpload("b.jpg"),
	}, 0)
	require.NoError(t, err)

	updated, err := svc.SetPrimaryImage(product.ID, images[1].ID)
	require.NoError(t, err)

	primary := updated.PrimaryImage()
	require.NotNil(t, primary)
	assert.Equal(t, images[1].ID, primary.ID)
}

func TestDeleteImageRemovesStoredFile(t *testing.T) {
	svc, db := newCatalogService(t)
	product := seedProduct(t, svc)

	images, err := svc.UploadImages(product.ID, []Upload{
		imageUpload("a.jpg"),
		imageUpload("b.jpg"),
	}, 0)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteImage(product.ID, images[0].ID))

	var n int64
	require.NoError(t, db.Model(&models.ProductImage{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	// the survivor is primary again
	remaining, err := svc.Find(product.ID)
	require.NoError(t, err)
	require.NotNil(t, remaining.PrimaryImage())
}

func TestDeleteProductCleansUpImages(t *testing.T) {
	svc, db := newCatalogService(t)
	product := seedProduct(t, svc)

	_, err := svc.UploadImages(product.ID, []Upload{imageUpload("a.jpg")}, 0)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(product.ID))

	var n int64
	require.NoError(t, db.Model(&models.ProductImage{}).Count(&n).Error)
	assert.Zero(t, n)

	_, err = svc.Find(product.ID)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}
