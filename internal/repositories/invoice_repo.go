package repositories

import (
	"context"

	"nutrimix/internal/models"
)

// InvoiceRepository defines the interface for invoice data access.
// Invoices are immutable once written, so there is no Update.
type InvoiceRepository interface {
	// GetAll returns every invoice ordered by date, newest first.
	GetAll(ctx context.Context) ([]models.Invoice, error)
	Create(ctx context.Context, invoice *models.Invoice) error
	Delete(ctx context.Context, id string) error
}
