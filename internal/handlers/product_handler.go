package handlers

import (
	"errors"
	"log"
	"strconv"

	"nutrimix/internal/middleware"
	"nutrimix/internal/models"
	"nutrimix/internal/repositories"
	"nutrimix/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes. guard runs before every
// mutating route.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, guard fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", guard, h.HandleCreateProduct)
	productRoutes.Put("/:id", guard, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", guard, h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products, newest first.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return respondError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its numeric ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondMessage(c, fiber.StatusNotFound, "Product not found")
		}
		log.Printf("Error getting product %d: %v", id, err)
		return respondError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	product := models.NewProduct()
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product body: %v", err)
		return respondError(c, fiber.StatusBadRequest, err)
	}

	if err := h.service.CreateProduct(c.UserContext(), &product); err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, fiber.StatusBadRequest, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct merges the request body onto an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	product, err := h.service.UpdateProduct(c.UserContext(), id, c.Body())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return respondMessage(c, fiber.StatusNotFound, "Product not found")
		}
		log.Printf("Error updating product %d: %v", id, err)
		return respondError(c, fiber.StatusBadRequest, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product. Unknown IDs still succeed.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return respondMessage(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		return respondError(c, fiber.StatusInternalServerError, err)
	}
	log.Printf("Product %d deleted by user %q", id, middleware.UserID(c))
	return respondMessage(c, fiber.StatusOK, "Product deleted")
}

func productID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
