package repositories

import (
	"context"

	"nutrimix/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns every product, newest first.
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	// Create assigns the next free ID when product.ID is zero.
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	// Delete is a no-op for unknown IDs.
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}
