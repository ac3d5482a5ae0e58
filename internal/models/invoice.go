package models

import "time"

// Invoice is an immutable billing record. It does not reference a Product;
// the product name is copied onto the invoice at issue time.
type Invoice struct {
	ID              string    `json:"_id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	InvoiceNo       string    `json:"invoiceNo" bson:"invoiceNo" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required"`
	CustomerName    string    `json:"customerName" bson:"customerName" gorm:"not null" validate:"required"`
	CustomerPhone   string    `json:"customerPhone" bson:"customerPhone" gorm:"not null" validate:"required"`
	ShippingAddress string    `json:"shippingAddress" bson:"shippingAddress"`
	BillingAddress  string    `json:"billingAddress" bson:"billingAddress"`
	ProductName     string    `json:"productName" bson:"productName" gorm:"not null" validate:"required"`
	Quantity        *int      `json:"quantity" bson:"quantity" gorm:"not null" validate:"required,gt=0"`
	Price           *float64  `json:"price" bson:"price" gorm:"not null" validate:"required,gte=0"`
	ShippingCharge  float64   `json:"shippingCharge" bson:"shippingCharge" gorm:"default:0" validate:"gte=0"`
	DiscountAmount  float64   `json:"discountAmount" bson:"discountAmount" gorm:"default:0" validate:"gte=0"`
	Total           *float64  `json:"total" bson:"total" gorm:"not null" validate:"required,gte=0"`
	PaymentMode     string    `json:"paymentMode" bson:"paymentMode" gorm:"not null" validate:"required"`
	WelcomeNote     string    `json:"welcomeNote,omitempty" bson:"welcomeNote,omitempty"`
	FromAddress     string    `json:"fromAddress,omitempty" bson:"fromAddress,omitempty"`
	Date            time.Time `json:"date" bson:"date" gorm:"index"`
}

// Clone returns a copy of inv that shares no pointers with it.
func (inv Invoice) Clone() Invoice {
	c := inv
	c.Quantity = cloneInt(inv.Quantity)
	c.Price = cloneFloat(inv.Price)
	c.Total = cloneFloat(inv.Total)
	return c
}
