package kafka

import (
	"context"

	"anti-fraud-system/internal/models"
)

// Producer определяет интерфейс для публикации результатов обработки в Kafka
type Producer interface {
	// SendInvoiceProcessed публикует событие invoice.processed
	SendInvoiceProcessed(msg *models.InvoiceProcessedMessage) error

	Close() error
}

// Consumer определяет интерфейс для чтения входящих инвойсов из Kafka
type Consumer interface {
	// Start запускает чтение до отмены контекста
	Start(ctx context.Context) error

	Close() error
}
