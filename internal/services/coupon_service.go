package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nutrimix/internal/models"
	"nutrimix/internal/realtime"
	"nutrimix/internal/repositories"
)

// CouponService handles coupon management and validation against a cart.
type CouponService struct {
	repo      repositories.CouponRepository
	publisher realtime.Publisher
}

func NewCouponService(repo repositories.CouponRepository, publisher realtime.Publisher) *CouponService {
	return &CouponService{repo: repo, publisher: publisher}
}

func (s *CouponService) GetAllCoupons(ctx context.Context) ([]models.Coupon, error) {
	return s.repo.GetAll(ctx)
}

// CreateCoupon stores a new coupon under its upper-cased code. Any
// client-supplied ID is discarded.
func (s *CouponService) CreateCoupon(ctx context.Context, coupon *models.Coupon) error {
	coupon.ID = ""
	coupon.Code = normalizeCode(coupon.Code)
	if coupon.DiscountType == "" {
		coupon.DiscountType = models.DiscountPercentage
	}
	coupon.CreatedAt = time.Now().UTC()

	if err := validateStruct(coupon); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, coupon); err != nil {
		return err
	}

	s.publisher.Publish(realtime.CouponsUpdated)
	return nil
}

func (s *CouponService) DeleteCoupon(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(realtime.CouponsUpdated)
	return nil
}

// ValidateCoupon returns the active coupon matching code (case-insensitive)
// if cartTotal reaches its minimum purchase.
func (s *CouponService) ValidateCoupon(ctx context.Context, code string, cartTotal float64) (*models.Coupon, error) {
	coupon, err := s.repo.GetActiveByCode(ctx, normalizeCode(code))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to look up coupon: %w", err)
	}

	if cartTotal < coupon.MinPurchase {
		return nil, &MinPurchaseError{MinPurchase: coupon.MinPurchase}
	}
	return coupon, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
