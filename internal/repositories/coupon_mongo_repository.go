package repositories

import (
	"context"
	"fmt"

	"nutrimix/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCouponRepository is a MongoDB implementation of CouponRepository.
type MongoCouponRepository struct {
	coll *mongo.Collection
}

func NewMongoCouponRepository(db *mongo.Database) *MongoCouponRepository {
	return &MongoCouponRepository{coll: db.Collection(couponsCollection)}
}

func (r *MongoCouponRepository) GetAll(ctx context.Context) ([]models.Coupon, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get all coupons: %w", err)
	}
	coupons := make([]models.Coupon, 0)
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, fmt.Errorf("failed to decode coupons: %w", err)
	}
	return coupons, nil
}

func (r *MongoCouponRepository) GetActiveByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.coll.FindOne(ctx, bson.M{"code": code, "isActive": true}).Decode(&coupon)
	if err != nil {
		return nil, fmt.Errorf("active coupon %s: %w", code, translateMongoError(err))
	}
	return &coupon, nil
}

func (r *MongoCouponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, coupon); err != nil {
		return fmt.Errorf("failed to create coupon %s: %w", coupon.Code, translateMongoError(err))
	}
	return nil
}

func (r *MongoCouponRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete coupon: %w", err)
	}
	return nil
}
