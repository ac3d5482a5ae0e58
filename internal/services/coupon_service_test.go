package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"nutrimix/internal/models"
	"nutrimix/internal/realtime"
	"nutrimix/internal/repositories"
	"nutrimix/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCouponService_CreateCoupon(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCouponRepository)
	publisher := &recordingPublisher{}
	couponService := services.NewCouponService(mockRepo, publisher)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Coupon")).Return(nil).Once()

	coupon := models.NewCoupon()
	coupon.ID = "client-supplied"
	coupon.Code = "  save10 "
	coupon.MinPurchase = 500
	coupon.Discount = 10
	coupon.DiscountType = ""

	require.NoError(t, couponService.CreateCoupon(ctx, &coupon))
	assert.Equal(t, "SAVE10", coupon.Code)
	assert.Empty(t, coupon.ID)
	assert.True(t, coupon.IsActive)
	assert.Equal(t, models.DiscountPercentage, coupon.DiscountType)
	assert.False(t, coupon.CreatedAt.IsZero())
	assert.Equal(t, []realtime.Event{realtime.CouponsUpdated}, publisher.Events())
	mockRepo.AssertExpectations(t)
}

func TestCouponService_CreateCoupon_Invalid(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCouponRepository)
	publisher := &recordingPublisher{}
	couponService := services.NewCouponService(mockRepo, publisher)

	err := couponService.CreateCoupon(ctx, &models.Coupon{Code: "X", DiscountType: "bogus"})
	assert.Error(t, err)

	err = couponService.CreateCoupon(ctx, &models.Coupon{Code: "   "})
	assert.Error(t, err)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, publisher.Events())
}

func TestCouponService_ValidateCoupon(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCouponRepository)
	couponService := services.NewCouponService(mockRepo, &recordingPublisher{})

	save10 := &models.Coupon{ID: "c1", Code: "SAVE10", IsActive: true, MinPurchase: 500, DiscountType: models.DiscountPercentage, Discount: 10}
	mockRepo.On("GetActiveByCode", ctx, "SAVE10").Return(save10, nil)
	mockRepo.On("GetActiveByCode", ctx, "NOPE").Return(nil, fmt.Errorf("coupon NOPE: %w", repositories.ErrNotFound))
	mockRepo.On("GetActiveByCode", ctx, "BROKEN").Return(nil, errors.New("connection reset"))

	t.Run("below minimum purchase", func(t *testing.T) {
		_, err := couponService.ValidateCoupon(ctx, "SAVE10", 400)
		var minErr *services.MinPurchaseError
		require.True(t, errors.As(err, &minErr))
		assert.Equal(t, 500.0, minErr.MinPurchase)
		assert.Equal(t, "Min ₹500 needed", err.Error())
	})

	t.Run("meets minimum purchase", func(t *testing.T) {
		coupon, err := couponService.ValidateCoupon(ctx, "SAVE10", 600)
		require.NoError(t, err)
		assert.Equal(t, save10, coupon)
	})

	t.Run("exactly the minimum", func(t *testing.T) {
		_, err := couponService.ValidateCoupon(ctx, "SAVE10", 500)
		assert.NoError(t, err)
	})

	t.Run("case-insensitive code", func(t *testing.T) {
		coupon, err := couponService.ValidateCoupon(ctx, "save10", 600)
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", coupon.Code)
	})

	t.Run("unknown or inactive code", func(t *testing.T) {
		_, err := couponService.ValidateCoupon(ctx, "nope", 1000)
		assert.ErrorIs(t, err, services.ErrCouponNotFound)
	})

	t.Run("lookup failure", func(t *testing.T) {
		_, err := couponService.ValidateCoupon(ctx, "broken", 1000)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrCouponNotFound)
	})
}

func TestMinPurchaseError_Message(t *testing.T) {
	assert.Equal(t, "Min ₹499.5 needed", (&services.MinPurchaseError{MinPurchase: 499.5}).Error())
	assert.Equal(t, "Min ₹0 needed", (&services.MinPurchaseError{}).Error())
}

func TestCouponService_DeleteCoupon(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCouponRepository)
	publisher := &recordingPublisher{}
	couponService := services.NewCouponService(mockRepo, publisher)

	mockRepo.On("Delete", ctx, "c1").Return(nil).Once()
	mockRepo.On("Delete", ctx, "c2").Return(errors.New("boom")).Once()

	require.NoError(t, couponService.DeleteCoupon(ctx, "c1"))
	assert.Error(t, couponService.DeleteCoupon(ctx, "c2"))
	assert.Equal(t, []realtime.Event{realtime.CouponsUpdated}, publisher.Events())
	mockRepo.AssertExpectations(t)
}
