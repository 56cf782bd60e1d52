package mocks

import (
	"anti-fraud-system/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockClientInterface является моком для redis.ClientInterface интерфейса
type MockClientInterface struct {
	mock.Mock
}

// SaveDetection мок для SaveDetection
func (m *MockClientInterface) SaveDetection(invoiceID string, result *models.DetectionResult) error {
	args := m.Called(invoiceID, result)
	return args.Error(0)
}

// GetDetection мок для GetDetection
func (m *MockClientInterface) GetDetection(invoiceID string) (*models.DetectionResult, error) {
	args := m.Called(invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DetectionResult), args.Error(1)
}

// IncrementOutcomeStats мок для IncrementOutcomeStats
func (m *MockClientInterface) IncrementOutcomeStats(status string) error {
	args := m.Called(status)
	return args.Error(0)
}

// GetOutcomeStats мок для GetOutcomeStats
func (m *MockClientInterface) GetOutcomeStats(status string) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

// ClearDetectionData мок для ClearDetectionData
func (m *MockClientInterface) ClearDetectionData() error {
	args := m.Called()
	return args.Error(0)
}

// Close мок для Close
func (m *MockClientInterface) Close() error {
	args := m.Called()
	return args.Error(0)
}
