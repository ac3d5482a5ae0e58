package handlers

import (
	"errors"
	"log"

	"nutrimix/internal/middleware"
	"nutrimix/internal/models"
	"nutrimix/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CouponHandler handles HTTP requests for coupons.
type CouponHandler struct {
	service  *services.CouponService
	validate *validator.Validate
}

func NewCouponHandler(service *services.CouponService) *CouponHandler {
	return &CouponHandler{
		service:  service,
		validate: services.NewValidator(),
	}
}

// RegisterRoutes registers the coupon routes. Validation stays open to
// shoppers; guard runs before the management routes.
func (h *CouponHandler) RegisterRoutes(router fiber.Router, guard fiber.Handler) {
	couponRoutes := router.Group("/coupons")
	couponRoutes.Get("/", h.HandleGetCoupons)
	couponRoutes.Post("/validate", h.HandleValidateCoupon)
	couponRoutes.Post("/", guard, h.HandleCreateCoupon)
	couponRoutes.Delete("/:id", guard, h.HandleDeleteCoupon)
}

func (h *CouponHandler) HandleGetCoupons(c *fiber.Ctx) error {
	coupons, err := h.service.GetAllCoupons(c.UserContext())
	if err != nil {
		log.Printf("Error getting all coupons: %v", err)
		return respondError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(coupons)
}

func (h *CouponHandler) HandleCreateCoupon(c *fiber.Ctx) error {
	coupon := models.NewCoupon()
	if err := c.BodyParser(&coupon); err != nil {
		log.Printf("Error parsing coupon body: %v", err)
		return respondError(c, fiber.StatusBadRequest, err)
	}

	if err := h.service.CreateCoupon(c.UserContext(), &coupon); err != nil {
		log.Printf("Error creating coupon: %v", err)
		return respondError(c, fiber.StatusBadRequest, err)
	}
	return c.Status(fiber.StatusCreated).JSON(coupon)
}

func (h *CouponHandler) HandleDeleteCoupon(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteCoupon(c.UserContext(), id); err != nil {
		log.Printf("Error deleting coupon %s: %v", id, err)
		return respondError(c, fiber.StatusInternalServerError, err)
	}
	log.Printf("Coupon %s deleted by user %q", id, middleware.UserID(c))
	return respondMessage(c, fiber.StatusOK, "Coupon deleted")
}

// ValidateCouponRequest is the body of POST /coupons/validate.
type ValidateCouponRequest struct {
	Code      string  `json:"code" validate:"required"`
	CartTotal float64 `json:"cartTotal" validate:"gte=0"`
}

// HandleValidateCoupon checks a code against the shopper's cart total.
func (h *CouponHandler) HandleValidateCoupon(c *fiber.Ctx) error {
	var req ValidateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return respondError(c, fiber.StatusBadRequest, err)
	}

	coupon, err := h.service.ValidateCoupon(c.UserContext(), req.Code, req.CartTotal)
	if err != nil {
		var minErr *services.MinPurchaseError
		switch {
		case errors.Is(err, services.ErrCouponNotFound):
			return respondMessage(c, fiber.StatusNotFound, "Invalid coupon")
		case errors.As(err, &minErr):
			return respondMessage(c, fiber.StatusBadRequest, minErr.Error())
		}
		log.Printf("Error validating coupon %s: %v", req.Code, err)
		return respondError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(coupon)
}
