package mocks

import (
	"time"

	"anti-fraud-system/internal/models"
	"anti-fraud-system/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockInvoiceRepository является моком для storage.InvoiceRepository интерфейса
type MockInvoiceRepository struct {
	mock.Mock
}

// FindInvoiceByID мок для FindInvoiceByID
func (m *MockInvoiceRepository) FindInvoiceByID(id string) (*models.Invoice, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

// FindInvoiceWithAccount мок для FindInvoiceWithAccount
func (m *MockInvoiceRepository) FindInvoiceWithAccount(id string) (*models.Invoice, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

// CreateInvoice мок для CreateInvoice
func (m *MockInvoiceRepository) CreateInvoice(invoice *models.Invoice, fraudRecord *models.FraudRecord) error {
	args := m.Called(invoice, fraudRecord)
	return args.Error(0)
}

// UpsertAccount мок для UpsertAccount
func (m *MockInvoiceRepository) UpsertAccount(accountID string) (*models.Account, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

// MarkAccountSuspicious мок для MarkAccountSuspicious
func (m *MockInvoiceRepository) MarkAccountSuspicious(accountID string) error {
	args := m.Called(accountID)
	return args.Error(0)
}

// FindRecentInvoicesByAccount мок для FindRecentInvoicesByAccount
func (m *MockInvoiceRepository) FindRecentInvoicesByAccount(accountID string, limit int) ([]*models.Invoice, error) {
	args := m.Called(accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Invoice), args.Error(1)
}

// FindInvoicesByAccountSince мок для FindInvoicesByAccountSince
func (m *MockInvoiceRepository) FindInvoicesByAccountSince(accountID string, since time.Time) ([]*models.Invoice, error) {
	args := m.Called(accountID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Invoice), args.Error(1)
}

// ListInvoices мок для ListInvoices
func (m *MockInvoiceRepository) ListInvoices(filter storage.InvoiceFilter, limit int) ([]*models.Invoice, error) {
	args := m.Called(filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Invoice), args.Error(1)
}

// ClearAllInvoices мок для ClearAllInvoices
func (m *MockInvoiceRepository) ClearAllInvoices() error {
	args := m.Called()
	return args.Error(0)
}
