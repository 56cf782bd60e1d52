package worker

import (
	"errors"
	"log"

	"anti-fraud-system/internal/logger"
	"anti-fraud-system/internal/models"
	"anti-fraud-system/internal/services"
)

// processPendingInvoice обрабатывает инвойс из Kafka события
func processPendingInvoice(event *models.PendingInvoiceEvent, invoiceService services.InvoiceService) error {
	log.Printf("Processing pending invoice: %s", event.InvoiceID)

	logger.LogEvent(logger.EventKafkaReceived, "anti-fraud-worker", "kafka", map[string]interface{}{
		"invoice_id": event.InvoiceID,
		"account_id": event.AccountID,
		"amount":     event.Amount,
	})

	response, err := invoiceService.ProcessInvoice(&models.ProcessInvoiceRequest{
		InvoiceID: event.InvoiceID,
		AccountID: event.AccountID,
		Amount:    event.Amount,
	})
	if err != nil {
		// Повторная доставка того же события - нормальная ситуация для Kafka,
		// первый результат уже сохранен и опубликован
		if errors.Is(err, models.ErrDuplicateInvoice) {
			log.Printf("Invoice %s already processed, skipping", event.InvoiceID)
			return nil
		}
		log.Printf("Error processing invoice %s: %v", event.InvoiceID, err)
		return err
	}

	log.Printf("Invoice %s processed: status=%s", event.InvoiceID, response.Invoice.Status)
	return nil
}
