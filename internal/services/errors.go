package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrMissingAuthHeader   = errors.New("missing authorization header")
	ErrMalformedAuthHeader = errors.New("authorization header is not a bearer token")
	ErrCouponNotFound      = errors.New("invalid coupon")
)

// MinPurchaseError reports a cart total below a coupon's minimum purchase.
// Its message is shown to shoppers as is.
type MinPurchaseError struct {
	MinPurchase float64
}

func (e *MinPurchaseError) Error() string {
	return fmt.Sprintf("Min ₹%s needed", decimal.NewFromFloat(e.MinPurchase).String())
}

var validate = NewValidator()

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateStruct runs the struct's validate tags. The returned error wraps
// validator.ValidationErrors so callers can render per-field messages.
func validateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
