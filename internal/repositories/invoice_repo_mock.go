package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"nutrimix/internal/models"

	"github.com/google/uuid"
)

// MockInvoiceRepository is an in-memory implementation of InvoiceRepository.
type MockInvoiceRepository struct {
	invoices map[string]models.Invoice
	mu       sync.RWMutex
}

func NewMockInvoiceRepository() *MockInvoiceRepository {
	return &MockInvoiceRepository{
		invoices: make(map[string]models.Invoice),
	}
}

func (r *MockInvoiceRepository) GetAll(_ context.Context) ([]models.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	invoiceList := make([]models.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		invoiceList = append(invoiceList, inv.Clone())
	}
	sort.SliceStable(invoiceList, func(i, j int) bool {
		return invoiceList[i].Date.After(invoiceList[j].Date)
	})
	return invoiceList, nil
}

func (r *MockInvoiceRepository) Create(_ context.Context, invoice *models.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, inv := range r.invoices {
		if inv.InvoiceNo == invoice.InvoiceNo {
			return fmt.Errorf("failed to create invoice %s: %w", invoice.InvoiceNo, ErrDuplicateKey)
		}
	}
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	r.invoices[invoice.ID] = invoice.Clone()
	return nil
}

func (r *MockInvoiceRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.invoices, id)
	return nil
}
