package models

import "time"

// Discount kinds a coupon can carry.
const (
	DiscountPercentage = "percentage"
	DiscountFlat       = "flat"
)

// Coupon is a promotional code. Codes are stored upper-case so lookups can
// be case-insensitive by normalizing the submitted code.
type Coupon struct {
	ID           string    `json:"_id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Code         string    `json:"code" bson:"code" gorm:"uniqueIndex;type:varchar(64);not null" validate:"required,max=64"`
	IsActive     bool      `json:"isActive" bson:"isActive" gorm:"index"`
	MinPurchase  float64   `json:"minPurchase" bson:"minPurchase" validate:"gte=0"`
	DiscountType string    `json:"discountType" bson:"discountType" gorm:"type:varchar(20)" validate:"oneof=percentage flat"`
	Discount     float64   `json:"discount" bson:"discount" validate:"gte=0"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// NewCoupon returns a Coupon with the creation defaults applied.
func NewCoupon() Coupon {
	return Coupon{IsActive: true, DiscountType: DiscountPercentage}
}
