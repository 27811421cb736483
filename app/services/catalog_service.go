package services

import (
	"fmt"
	"time"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/blossom-shop/blossom/app/repositories"
	"github.com/blossom-shop/blossom/pkg/cache"
	"github.com/blossom-shop/blossom/pkg/logger"
	"github.com/blossom-shop/blossom/pkg/metrics"
	"github.com/blossom-shop/blossom/pkg/storage"
	"github.com/google/uuid"
)

const productListCacheKey = "products:all"

// CatalogService implements product and product image use cases on top
// of the product repository and a storage disk.
type CatalogService struct {
	repo *repositories.ProductRepository
	disk storage.Disk
}

func NewCatalogService(repo *repositories.ProductRepository, disk storage.Disk) *CatalogService {
	return &CatalogService{repo: repo, disk: disk}
}

// List returns products with their images. The unfiltered listing is
// cached briefly; any search bypasses the cache.
func (s *CatalogService) List(search string) ([]models.Product, error) {
	if search == "" {
		var cached []models.Product
		if cache.Get(productListCacheKey, &cached) {
			return cached, nil
		}
	}
	products, err := s.repo.All(search)
	if err != nil {
		return nil, err
	}
	if search == "" {
		if err := cache.Set(productListCacheKey, products, time.Minute); err != nil {
			logger.Warn("catalog: cache set failed", "error", err)
		}
	}
	return products, nil
}

// Find returns one product with its images.
func (s *CatalogService) Find(id uint) (models.Product, error) {
	return s.repo.Find(id)
}

// Create persists a new product.
func (s *CatalogService) Create(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.forgetList()
	return nil
}

// UpdateFields applies a partial update to a product.
func (s *CatalogService) UpdateFields(id uint, fields map[string]interface{}) (models.Product, error) {
	product, err := s.repo.UpdateFields(id, fields)
	if err != nil {
		return product, err
	}
	s.forgetList()
	return product, nil
}

// Delete removes a product together with its stored image files.
func (s *CatalogService) Delete(id uint) error {
	images, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	for _, image := range images {
		if err := s.disk.Delete(image.Path); err != nil {
			logger.Warn("catalog: orphaned image file", "path", image.Path, "error", err)
		}
	}
	s.forgetList()
	return nil
}

// UploadImages validates and stores a batch of image files for the
// product, then records them atomically. primaryID may name an already
// stored image to promote; zero leaves primary selection to the default
// rules. Stored files are removed again when the database rejects the
// batch.
func (s *CatalogService) UploadImages(productID uint, uploads []Upload, primaryID uint) ([]models.ProductImage, error) {
	if _, err := s.repo.Find(productID); err != nil {
		return nil, err
	}

	var stored []models.ProductImage
	for _, u := range uploads {
		ext, err := checkUpload(u, imageExtensions)
		if err != nil {
			s.discard(stored)
			return nil, fmt.Errorf("%s: %w", u.Filename, err)
		}

		path := fmt.Sprintf("products/%d/%s.%s", productID, uuid.NewString(), ext)
		if err := s.disk.PutStream(path, u.Content); err != nil {
			s.discard(stored)
			return nil, fmt.Errorf("store %s: %w", u.Filename, err)
		}
		stored = append(stored, models.ProductImage{
			ProductID: productID,
			Path:      path,
			URL:       s.disk.URL(path),
		})
	}

	added, err := s.repo.AddImages(productID, stored, primaryID)
	if err != nil {
		s.discard(stored)
		return nil, err
	}

	metrics.ProductImagesUploaded.Add(float64(len(added)))
	s.forgetList()

	// reload so primary flags reflect any promotion done in the batch
	fresh, err := s.repo.Images(productID)
	if err != nil {
		return added, nil
	}
	newIDs := make(map[uint]bool, len(added))
	for _, img := range added {
		newIDs[img.ID] = true
	}
	var result []models.ProductImage
	for _, img := range fresh {
		if newIDs[img.ID] {
			result = append(result, img)
		}
	}
	return result, nil
}

// SetPrimaryImage makes the given image the product's primary image.
func (s *CatalogService) SetPrimaryImage(productID, imageID uint) (models.Product, error) {
	if err := s.repo.SetPrimary(productID, imageID); err != nil {
		return models.Product{}, err
	}
	s.forgetList()
	return s.repo.Find(productID)
}

// DeleteImage removes one image and its stored file.
func (s *CatalogService) DeleteImage(productID, imageID uint) error {
	image, err := s.repo.DeleteImage(productID, imageID)
	if err != nil {
		return err
	}
	if err := s.disk.Delete(image.Path); err != nil {
		logger.Warn("catalog: orphaned image file", "path", image.Path, "error", err)
	}
	s.forgetList()
	return nil
}

func (s *CatalogService) discard(images []models.ProductImage) {
	for _, image := range images {
		if err := s.disk.Delete(image.Path); err != nil {
			logger.Warn("catalog: cleanup failed", "path", image.Path, "error", err)
		}
	}
}

func (s *CatalogService) forgetList() {
	if err := cache.Forget(productListCacheKey); err != nil {
		logger.Warn("catalog: cache forget failed", "error", err)
	}
}
