package repositories

import (
	"context"
	"fmt"

	"nutrimix/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCouponRepository is a GORM implementation of CouponRepository.
type GORMCouponRepository struct {
	db *gorm.DB
}

func NewGORMCouponRepository(db *gorm.DB) *GORMCouponRepository {
	return &GORMCouponRepository{db: db}
}

func (r *GORMCouponRepository) GetAll(ctx context.Context) ([]models.Coupon, error) {
	coupons := make([]models.Coupon, 0)
	if err := r.db.WithContext(ctx).Find(&coupons).Error; err != nil {
		return nil, fmt.Errorf("failed to get all coupons: %w", err)
	}
	return coupons, nil
}

func (r *GORMCouponRepository) GetActiveByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&coupon).Error
	if err != nil {
		return nil, fmt.Errorf("active coupon %s: %w", code, translateGORMError(err))
	}
	return &coupon, nil
}

func (r *GORMCouponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(coupon).Error; err != nil {
		return fmt.Errorf("failed to create coupon %s: %w", coupon.Code, translateGORMError(err))
	}
	return nil
}

func (r *GORMCouponRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Coupon{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete coupon: %w", err)
	}
	return nil
}
