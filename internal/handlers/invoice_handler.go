package handlers

import (
	"log"

	"nutrimix/internal/middleware"
	"nutrimix/internal/models"
	"nutrimix/internal/services"

	"github.com/gofiber/fiber/v2"
)

// InvoiceHandler handles HTTP requests for invoices.
type InvoiceHandler struct {
	service *services.InvoiceService
}

func NewInvoiceHandler(service *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

func (h *InvoiceHandler) RegisterRoutes(router fiber.Router, guard fiber.Handler) {
	invoiceRoutes := router.Group("/invoices")
	invoiceRoutes.Get("/", h.HandleGetInvoices)
	invoiceRoutes.Post("/", guard, h.HandleCreateInvoice)
	invoiceRoutes.Delete("/:id", guard, h.HandleDeleteInvoice)
}

func (h *InvoiceHandler) HandleGetInvoices(c *fiber.Ctx) error {
	invoices, err := h.service.GetAllInvoices(c.UserContext())
	if err != nil {
		log.Printf("Error getting all invoices: %v", err)
		return respondError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(invoices)
}

func (h *InvoiceHandler) HandleCreateInvoice(c *fiber.Ctx) error {
	var invoice models.Invoice
	if err := c.BodyParser(&invoice); err != nil {
		log.Printf("Error parsing invoice body: %v", err)
		return respondError(c, fiber.StatusBadRequest, err)
	}

	if err := h.service.CreateInvoice(c.UserContext(), &invoice); err != nil {
		log.Printf("Error creating invoice: %v", err)
		return respondError(c, fiber.StatusBadRequest, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

func (h *InvoiceHandler) HandleDeleteInvoice(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteInvoice(c.UserContext(), id); err != nil {
		log.Printf("Error deleting invoice %s: %v", id, err)
		return respondError(c, fiber.StatusInternalServerError, err)
	}
	log.Printf("Invoice %s deleted by user %q", id, middleware.UserID(c))
	return respondMessage(c, fiber.StatusOK, "Invoice deleted")
}
