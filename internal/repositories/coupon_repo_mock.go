package repositories

import (
	"context"
	"fmt"
	"sync"

	"nutrimix/internal/models"

	"github.com/google/uuid"
)

// MockCouponRepository is an in-memory implementation of CouponRepository.
type MockCouponRepository struct {
	coupons map[string]models.Coupon
	mu      sync.RWMutex
}

func NewMockCouponRepository() *MockCouponRepository {
	return &MockCouponRepository{
		coupons: make(map[string]models.Coupon),
	}
}

func (r *MockCouponRepository) GetAll(_ context.Context) ([]models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	couponList := make([]models.Coupon, 0, len(r.coupons))
	for _, c := range r.coupons {
		couponList = append(couponList, c)
	}
	return couponList, nil
}

func (r *MockCouponRepository) GetActiveByCode(_ context.Context, code string) (*models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.coupons {
		if c.Code == code && c.IsActive {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("active coupon %s: %w", code, ErrNotFound)
}

func (r *MockCouponRepository) Create(_ context.Context, coupon *models.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.coupons {
		if c.Code == coupon.Code {
			return fmt.Errorf("failed to create coupon %s: %w", coupon.Code, ErrDuplicateKey)
		}
	}
	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}
	r.coupons[coupon.ID] = *coupon
	return nil
}

func (r *MockCouponRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.coupons, id)
	return nil
}
