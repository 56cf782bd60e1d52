package redis

import (
	"anti-fraud-system/internal/models"
)

// ClientInterface определяет интерфейс для работы с Redis
// Это позволяет легко создавать моки для тестирования
// Реализуется типом Client
type ClientInterface interface {
	// SaveDetection сохраняет результат проверки инвойса
	SaveDetection(invoiceID string, result *models.DetectionResult) error

	// GetDetection получает результат проверки инвойса
	GetDetection(invoiceID string) (*models.DetectionResult, error)

	// IncrementOutcomeStats увеличивает счетчик исходов
	IncrementOutcomeStats(status string) error

	// GetOutcomeStats возвращает счетчик исходов для статуса
	GetOutcomeStats(status string) (int64, error)

	// ClearDetectionData очищает кэш результатов и счетчики
	ClearDetectionData() error

	// Close закрывает соединение с Redis
	Close() error
}

// Убеждаемся, что Client реализует ClientInterface
var _ ClientInterface = (*Client)(nil)
