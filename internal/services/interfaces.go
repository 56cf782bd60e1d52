package services

import (
	"anti-fraud-system/internal/models"
)

// InvoiceService определяет интерфейс для обработки инвойсов
type InvoiceService interface {
	// ProcessInvoice проверяет инвойс на мошенничество и сохраняет результат.
	// Повторная обработка того же invoice_id возвращает ErrDuplicateInvoice.
	ProcessInvoice(req *models.ProcessInvoiceRequest) (*models.ProcessInvoiceResponse, error)

	// GetInvoice получает инвойс вместе со счетом и кэшированным
	// результатом проверки, если он еще есть в Redis
	GetInvoice(id string) (*models.Invoice, *models.DetectionResult, error)

	// ListInvoices получает инвойсы по фильтру
	ListInvoices(accountID string, withFraud bool, limit int) ([]*models.Invoice, error)

	// ClearAllInvoices удаляет все инвойсы, счета и кэшированные результаты
	ClearAllInvoices() error
}

// FraudDetector определяет интерфейс для проверки инвойса на мошенничество
type FraudDetector interface {
	DetectFraud(ec *models.EvaluationContext) (*models.DetectionResult, error)
}
