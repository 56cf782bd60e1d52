package mocks

import (
	"anti-fraud-system/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockInvoiceService является моком для services.InvoiceService интерфейса
type MockInvoiceService struct {
	mock.Mock
}

// ProcessInvoice мок для ProcessInvoice
func (m *MockInvoiceService) ProcessInvoice(req *models.ProcessInvoiceRequest) (*models.ProcessInvoiceResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProcessInvoiceResponse), args.Error(1)
}

// GetInvoice мок для GetInvoice
func (m *MockInvoiceService) GetInvoice(id string) (*models.Invoice, *models.DetectionResult, error) {
	args := m.Called(id)
	var invoice *models.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*models.Invoice)
	}
	var detection *models.DetectionResult
	if args.Get(1) != nil {
		detection = args.Get(1).(*models.DetectionResult)
	}
	return invoice, detection, args.Error(2)
}

// ListInvoices мок для ListInvoices
func (m *MockInvoiceService) ListInvoices(accountID string, withFraud bool, limit int) ([]*models.Invoice, error) {
	args := m.Called(accountID, withFraud, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Invoice), args.Error(1)
}

// ClearAllInvoices мок для ClearAllInvoices
func (m *MockInvoiceService) ClearAllInvoices() error {
	args := m.Called()
	return args.Error(0)
}

// MockFraudDetector является моком для services.FraudDetector интерфейса
type MockFraudDetector struct {
	mock.Mock
}

// DetectFraud мок для DetectFraud
func (m *MockFraudDetector) DetectFraud(ec *models.EvaluationContext) (*models.DetectionResult, error) {
	args := m.Called(ec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DetectionResult), args.Error(1)
}
