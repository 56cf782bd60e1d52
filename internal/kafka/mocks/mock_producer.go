package mocks

import (
	"anti-fraud-system/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockProducer является моком для kafka.Producer интерфейса
type MockProducer struct {
	mock.Mock
}

// SendInvoiceProcessed мок для SendInvoiceProcessed
func (m *MockProducer) SendInvoiceProcessed(msg *models.InvoiceProcessedMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

// Close мок для Close
func (m *MockProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}
