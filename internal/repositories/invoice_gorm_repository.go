package repositories

import (
	"context"
	"fmt"

	"nutrimix/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMInvoiceRepository is a GORM implementation of InvoiceRepository.
type GORMInvoiceRepository struct {
	db *gorm.DB
}

func NewGORMInvoiceRepository(db *gorm.DB) *GORMInvoiceRepository {
	return &GORMInvoiceRepository{db: db}
}

func (r *GORMInvoiceRepository) GetAll(ctx context.Context) ([]models.Invoice, error) {
	invoices := make([]models.Invoice, 0)
	if err := r.db.WithContext(ctx).Order("date desc").Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to get all invoices: %w", err)
	}
	return invoices, nil
}

func (r *GORMInvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(invoice).Error; err != nil {
		return fmt.Errorf("failed to create invoice %s: %w", invoice.InvoiceNo, translateGORMError(err))
	}
	return nil
}

func (r *GORMInvoiceRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Invoice{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}
