package services

import (
	"log"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
)

// EventPublisher publishes inventory lifecycle events. A nil publisher
// disables publishing entirely.
type EventPublisher interface {
	Publish(eventKey string, payload any) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// ListProducts retrieves one page of products matching the filter plus the
// total match count.
func (s *ProductService) ListProducts(page, limit int, filter repositories.ProductFilter) ([]models.Product, int64, error) {
	return s.repo.List(page, limit, filter)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product and publishes a product.created
// event.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publish("product.created", productEvent(product))
	return nil
}

// UpdateProduct applies a partial update. An empty patch is rejected
// before any storage operation executes.
func (s *ProductService) UpdateProduct(id string, fields map[string]any) (*models.Product, error) {
	if len(fields) == 0 {
		return nil, apperrors.BadRequest("No fields to update", nil)
	}
	product, err := s.repo.Update(id, fields)
	if err != nil {
		return nil, err
	}
	s.publish("product.updated", productEvent(product))
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish("product.deleted", map[string]any{"id": id})
	return nil
}

// publish sends an event if a publisher is configured. Publishing is best
// effort: a broker failure never fails the request that triggered it.
func (s *ProductService) publish(eventKey string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(eventKey, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventKey, err)
	}
}

func productEvent(p *models.Product) map[string]any {
	return map[string]any{
		"id":          p.ID,
		"storeId":     p.StoreID,
		"name":        p.Name,
		"quantity":    p.Quantity,
		"stockStatus": p.StockStatus(),
	}
}
