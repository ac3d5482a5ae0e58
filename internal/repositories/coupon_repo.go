package repositories

import (
	"context"

	"nutrimix/internal/models"
)

// CouponRepository defines the interface for coupon data access.
type CouponRepository interface {
	GetAll(ctx context.Context) ([]models.Coupon, error)
	// GetActiveByCode matches the code exactly; callers normalize case.
	GetActiveByCode(ctx context.Context, code string) (*models.Coupon, error)
	Create(ctx context.Context, coupon *models.Coupon) error
	Delete(ctx context.Context, id string) error
}
