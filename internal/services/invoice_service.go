package services

import (
	"context"
	"time"

	"nutrimix/internal/models"
	"nutrimix/internal/realtime"
	"nutrimix/internal/repositories"
)

// InvoiceService handles business logic related to invoices.
type InvoiceService struct {
	repo      repositories.InvoiceRepository
	publisher realtime.Publisher
}

func NewInvoiceService(repo repositories.InvoiceRepository, publisher realtime.Publisher) *InvoiceService {
	return &InvoiceService{repo: repo, publisher: publisher}
}

// GetAllInvoices retrieves all invoices, newest first.
func (s *InvoiceService) GetAllInvoices(ctx context.Context) ([]models.Invoice, error) {
	return s.repo.GetAll(ctx)
}

// CreateInvoice stores a new invoice. Any client-supplied ID is discarded
// and the date defaults to now.
func (s *InvoiceService) CreateInvoice(ctx context.Context, invoice *models.Invoice) error {
	invoice.ID = ""
	if invoice.Date.IsZero() {
		invoice.Date = time.Now()
	}
	// Text-backed stores order timestamps lexically, so keep one offset.
	invoice.Date = invoice.Date.UTC()

	if err := validateStruct(invoice); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		return err
	}

	s.publisher.Publish(realtime.InvoicesUpdated)
	return nil
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publisher.Publish(realtime.InvoicesUpdated)
	return nil
}
