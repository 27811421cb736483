package repositories

import (
	"errors"
	"strings"

	"github.com/blossom-shop/blossom/app/models"
	"gorm.io/gorm"
)

// ProductRepository handles database operations for products and their
// image sets. Everything touching the primary flag runs inside one
// database transaction: the flag is cleared and re-set as a unit, so
// concurrent requests never observe zero or two primaries.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// withImages preloads the image set in display order: primary first,
// then newest first.
func withImages(db *gorm.DB) *gorm.DB {
	return db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("is_primary DESC, created_at DESC, id DESC")
	})
}

// All returns every product with its images in display order.
func (r *ProductRepository) All(search string) ([]models.Product, error) {
	var products []models.Product
	q := withImages(r.db)
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern)
	}
	if err := q.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Find looks up one product by primary key.
func (r *ProductRepository) Find(id uint) (models.Product, error) {
	var product models.Product
	err := withImages(r.db).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return product, models.ErrProductNotFound
	}
	return product, err
}

// Create persists a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// UpdateFields applies a partial field set to a product.
func (r *ProductRepository) UpdateFields(id uint, fields map[string]interface{}) (models.Product, error) {
	product, err := r.Find(id)
	if err != nil {
		return product, err
	}
	if err := r.db.Model(&product).Updates(fields).Error; err != nil {
		return product, err
	}
	return r.Find(id)
}

// Delete removes a product and its image rows, returning the removed
// images so the caller can clean up stored files.
func (r *ProductRepository) Delete(id uint) ([]models.ProductImage, error) {
	var images []models.ProductImage

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrProductNotFound
			}
			return err
		}
		if err := tx.Where("product_id = ?", id).Find(&images).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

// Images returns a product's images in display order.
func (r *ProductRepository) Images(productID uint) ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := r.db.Where("product_id = ?", productID).
		Order("is_primary DESC, created_at DESC, id DESC").
		Find(&images).Error
	return images, err
}

// CountImages returns the size of a product's image set.
func (r *ProductRepository) CountImages(productID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.ProductImage{}).
		Where("product_id = ?", productID).
		Count(&n).Error
	return n, err
}

// AddImages persists a batch of new images atomically.
//
// When primaryID is non-zero it must identify an image of this product
// (an existing one or a member of the batch); all siblings lose the
// primary flag and that image gains it. When primaryID is zero and the
// product ends up without any primary, the first image of the batch is
// promoted. Exceeding models.MaxImagesPerProduct rolls the whole batch
// back.
func (r *ProductRepository) AddImages(productID uint, images []models.ProductImage, primaryID uint) ([]models.ProductImage, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.ProductImage{}).
			Where("product_id = ?", productID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing+int64(len(images)) > models.MaxImagesPerProduct {
			return models.ErrImageLimit
		}

		for i := range images {
			images[i].ProductID = productID
			if err := tx.Create(&images[i]).Error; err != nil {
				return err
			}
		}

		if primaryID != 0 {
			return setPrimary(tx, productID, primaryID)
		}

		var primaries int64
		if err := tx.Model(&models.ProductImage{}).
			Where("product_id = ? AND is_primary = ?", productID, true).
			Count(&primaries).Error; err != nil {
			return err
		}
		if primaries == 0 && len(images) > 0 {
			return setPrimary(tx, productID, images[0].ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

// SetPrimary flags one image of the product as primary and clears every
// sibling, as a single atomic unit.
func (r *ProductRepository) SetPrimary(productID, imageID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return setPrimary(tx, productID, imageID)
	})
}

// DeleteImage removes one image of the product. When the primary image is
// removed and siblings remain, the oldest sibling is promoted inside the
// same transaction. The removed image is returned for file cleanup.
func (r *ProductRepository) DeleteImage(productID, imageID uint) (models.ProductImage, error) {
	var image models.ProductImage

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND product_id = ?", imageID, productID).
			First(&image).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrImageNotOwned
		}
		if err != nil {
			return err
		}

		if image.IsPrimary {
			var next models.ProductImage
			err := tx.Where("product_id = ? AND id <> ?", productID, imageID).
				Order("created_at ASC, id ASC").
				First(&next).Error
			switch {
			case err == nil:
				if err := tx.Model(&next).Update("is_primary", true).Error; err != nil {
					return err
				}
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}
		}

		return tx.Delete(&image).Error
	})
	return image, err
}

func setPrimary(tx *gorm.DB, productID, imageID uint) error {
	var owned models.ProductImage
	err := tx.Where("id = ? AND product_id = ?", imageID, productID).
		First(&owned).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrImageNotOwned
	}
	if err != nil {
		return err
	}

	if err := tx.Model(&models.ProductImage{}).
		Where("product_id = ? AND id <> ?", productID, imageID).
		Update("is_primary", false).Error; err != nil {
		return err
	}
	return tx.Model(&models.ProductImage{}).
		Where("id = ?", imageID).
		Update("is_primary", true).Error
}
