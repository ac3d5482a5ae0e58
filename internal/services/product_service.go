package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nutrimix/internal/models"
	"nutrimix/internal/realtime"
	"nutrimix/internal/repositories"

	"github.com/lib/pq"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher realtime.Publisher
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, publisher realtime.Publisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllProducts retrieves all products, newest first.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct validates and stores a new product.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	// Text-backed stores order timestamps lexically, so keep one offset.
	product.CreatedAt = product.CreatedAt.UTC()
	normalizeLists(product)

	if err := validateStruct(product); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return err
	}

	s.publisher.Publish(realtime.ProductsUpdated)
	return nil
}

// UpdateProduct merges the JSON body onto the stored product. Fields absent
// from the body keep their stored values; ID and CreatedAt never change.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, body []byte) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	createdAt := product.CreatedAt

	if err := json.Unmarshal(body, product); err != nil {
		return nil, fmt.Errorf("invalid product body: %w", err)
	}
	product.ID = id
	product.CreatedAt = createdAt.UTC()
	normalizeLists(product)

	if err := validateStruct(product); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.publisher.Publish(realtime.ProductsUpdated)
	return product, nil
}

// DeleteProduct deletes a product by its ID. Deleting an unknown ID succeeds.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(realtime.ProductsUpdated)
	return nil
}

// ReplaceCatalog removes every product and stores the given ones in order.
func (s *ProductService) ReplaceCatalog(ctx context.Context, products []models.Product) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}

	now := time.Now()
	for i := range products {
		// Spread timestamps so the first product stays last in the listing.
		if products[i].CreatedAt.IsZero() {
			products[i].CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		}
		products[i].CreatedAt = products[i].CreatedAt.UTC()
		normalizeLists(&products[i])
		if err := validateStruct(&products[i]); err != nil {
			return fmt.Errorf("product %q: %w", products[i].Name, err)
		}
		if err := s.repo.Create(ctx, &products[i]); err != nil {
			return err
		}
	}

	s.publisher.Publish(realtime.ProductsUpdated)
	return nil
}

func normalizeLists(p *models.Product) {
	for _, list := range []*pq.StringArray{&p.Specs, &p.Ingredients, &p.Uses} {
		if *list == nil {
			*list = pq.StringArray{}
		}
	}
}
