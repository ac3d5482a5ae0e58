package repositories

import (
	"context"
	"log"

	"nutrimix/internal/models"
)

// ProductListCache stores the full, already ordered product listing.
type ProductListCache interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	SetProducts(ctx context.Context, products []models.Product) error
	InvalidateProducts(ctx context.Context) error
}

// CachedProductRepository serves GetAll from a ProductListCache and drops
// the cached listing after every write. Cache failures are logged and fall
// through to the wrapped repository.
type CachedProductRepository struct {
	next  ProductRepository
	cache ProductListCache
}

func NewCachedProductRepository(next ProductRepository, cache ProductListCache) *CachedProductRepository {
	return &CachedProductRepository{next: next, cache: cache}
}

func (r *CachedProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	if products, err := r.cache.GetProducts(ctx); err == nil {
		return products, nil
	}
	products, err := r.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.SetProducts(ctx, products); err != nil {
		log.Printf("Failed to populate product cache: %v", err)
	}
	return products, nil
}

func (r *CachedProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.next.Create(ctx, product); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedProductRepository) Update(ctx context.Context, product *models.Product) error {
	if err := r.next.Update(ctx, product); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedProductRepository) Delete(ctx context.Context, id int64) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedProductRepository) DeleteAll(ctx context.Context) error {
	if err := r.next.DeleteAll(ctx); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedProductRepository) invalidate(ctx context.Context) {
	if err := r.cache.InvalidateProducts(ctx); err != nil {
		log.Printf("Failed to invalidate product cache: %v", err)
	}
}
