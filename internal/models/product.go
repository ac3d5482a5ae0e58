package models

import (
	"time"

	"github.com/lib/pq"
)

// Product represents a catalog item. ID is the public numeric identifier and
// doubles as the primary key in every backend.
type Product struct {
	ID            int64          `json:"id" bson:"_id" gorm:"primaryKey;autoIncrement:false"`
	Name          string         `json:"name" bson:"name" gorm:"type:varchar(255);not null" validate:"required,max=255"`
	Price         *float64       `json:"price" bson:"price" gorm:"not null" validate:"required,gte=0"`
	OriginalPrice *float64       `json:"originalPrice,omitempty" bson:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	SalePrice     *float64       `json:"salePrice,omitempty" bson:"salePrice,omitempty" validate:"omitempty,gte=0"`
	OfferType     string         `json:"offerType,omitempty" bson:"offerType,omitempty"` // e.g. "Trending", "BOGO", "10% OFF"
	Description   string         `json:"description" bson:"description"`
	Category      string         `json:"category" bson:"category" gorm:"index"`
	Image         string         `json:"image" bson:"image"`
	Rating        float64        `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	Reviews       int            `json:"reviews" bson:"reviews" validate:"gte=0"`
	Specs         pq.StringArray `json:"specs" bson:"specs" gorm:"type:text[]"`
	Ingredients   pq.StringArray `json:"ingredients" bson:"ingredients" gorm:"type:text[]"`
	Uses          pq.StringArray `json:"uses" bson:"uses" gorm:"type:text[]"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt" gorm:"index"`
}

// DefaultRating is applied to new products that arrive without a rating.
const DefaultRating = 4.5

// NewProduct returns a Product carrying the creation defaults, ready to have
// a request body decoded on top of it.
func NewProduct() Product {
	return Product{Rating: DefaultRating}
}

// Clone returns a copy of p that shares no pointers or list storage with it.
func (p Product) Clone() Product {
	c := p
	c.Price = cloneFloat(p.Price)
	c.OriginalPrice = cloneFloat(p.OriginalPrice)
	c.SalePrice = cloneFloat(p.SalePrice)
	c.Specs = cloneList(p.Specs)
	c.Ingredients = cloneList(p.Ingredients)
	c.Uses = cloneList(p.Uses)
	return c
}

func cloneList(l pq.StringArray) pq.StringArray {
	if l == nil {
		return nil
	}
	return append(pq.StringArray{}, l...)
}
