package services

import (
	"log"
	"time"

	"anti-fraud-system/internal/kafka"
	"anti-fraud-system/internal/logger"
	"anti-fraud-system/internal/models"
	"anti-fraud-system/internal/redis"
	"anti-fraud-system/internal/storage"
)

const serviceName = "anti-fraud-service"

// invoiceService реализует InvoiceService
type invoiceService struct {
	repo     storage.InvoiceRepository
	detector FraudDetector
	producer kafka.Producer
	cache    redis.ClientInterface // может быть nil, если Redis недоступен
}

// NewInvoiceService создает новый сервис обработки инвойсов
func NewInvoiceService(repo storage.InvoiceRepository, detector FraudDetector, producer kafka.Producer, cache redis.ClientInterface) InvoiceService {
	return &invoiceService{
		repo:     repo,
		detector: detector,
		producer: producer,
		cache:    cache,
	}
}

// ProcessInvoice проверяет инвойс на мошенничество и сохраняет результат.
// Инвойс и запись о мошенничестве сохраняются в одной транзакции, публикация
// в Kafka и кэширование в Redis выполняются после сохранения и не влияют
// на результат.
func (s *invoiceService) ProcessInvoice(req *models.ProcessInvoiceRequest) (*models.ProcessInvoiceResponse, error) {
	logger.LogEvent(logger.EventInvoiceReceived, serviceName, "service", map[string]interface{}{
		"invoice_id": req.InvoiceID,
		"account_id": req.AccountID,
		"amount":     req.Amount,
	})

	// Идемпотентность: уже обработанный инвойс не проверяем повторно
	existing, err := s.repo.FindInvoiceByID(req.InvoiceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrDuplicateInvoice
	}

	account, err := s.repo.UpsertAccount(req.AccountID)
	if err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventFraudCheckStarted, serviceName, "detector", map[string]interface{}{
		"invoice_id": req.InvoiceID,
		"account_id": req.AccountID,
	})

	result, err := s.detector.DetectFraud(&models.EvaluationContext{
		Account:   account,
		InvoiceID: req.InvoiceID,
		Amount:    req.Amount,
	})
	if err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventFraudCheckCompleted, serviceName, "detector", map[string]interface{}{
		"invoice_id": req.InvoiceID,
		"has_fraud":  result.HasFraud,
		"reason":     string(result.Reason),
	})

	invoice := &models.Invoice{
		ID:        req.InvoiceID,
		AccountID: req.AccountID,
		Amount:    req.Amount,
		Status:    models.InvoiceStatusApproved,
		CreatedAt: time.Now(),
		Account:   account,
	}

	var fraudRecord *models.FraudRecord
	if result.HasFraud {
		invoice.Status = models.InvoiceStatusRejected
		fraudRecord = &models.FraudRecord{
			InvoiceID:   req.InvoiceID,
			Reason:      result.Reason,
			Description: result.Description,
			CreatedAt:   invoice.CreatedAt,
		}
	}

	if err := s.repo.CreateInvoice(invoice, fraudRecord); err != nil {
		return nil, err
	}
	invoice.FraudRecord = fraudRecord

	logger.LogEvent(logger.EventInvoiceSaved, serviceName, "sqlite", map[string]interface{}{
		"invoice_id": invoice.ID,
		"status":     string(invoice.Status),
	})

	s.publishResult(invoice)
	s.cacheResult(invoice, result)

	return &models.ProcessInvoiceResponse{
		Invoice:     invoice,
		FraudResult: result,
	}, nil
}

// publishResult публикует событие invoice.processed. Ошибка публикации
// логируется и не откатывает уже сохраненный инвойс.
func (s *invoiceService) publishResult(invoice *models.Invoice) {
	msg := &models.InvoiceProcessedMessage{
		InvoiceID: invoice.ID,
		Status:    invoice.OutcomeStatus(),
	}

	if err := s.producer.SendInvoiceProcessed(msg); err != nil {
		log.Printf("Failed to send invoice processed event to Kafka: %v", err)
		return
	}

	logger.LogEvent(logger.EventKafkaSent, serviceName, "kafka", map[string]interface{}{
		"invoice_id": msg.InvoiceID,
		"status":     msg.Status,
	})
}

// cacheResult кэширует результат проверки и счетчики исходов в Redis
func (s *invoiceService) cacheResult(invoice *models.Invoice, result *models.DetectionResult) {
	if s.cache == nil {
		return
	}

	if err := s.cache.SaveDetection(invoice.ID, result); err != nil {
		log.Printf("Failed to cache detection result in Redis: %v", err)
		return
	}
	if err := s.cache.IncrementOutcomeStats(invoice.OutcomeStatus()); err != nil {
		log.Printf("Failed to increment outcome stats in Redis: %v", err)
	}

	logger.LogEvent(logger.EventRedisSaved, serviceName, "redis", map[string]interface{}{
		"invoice_id": invoice.ID,
	})
}

// GetInvoice получает инвойс вместе со счетом. Кэшированный результат
// проверки возвращается, только если он еще не вытеснен из Redis.
func (s *invoiceService) GetInvoice(id string) (*models.Invoice, *models.DetectionResult, error) {
	invoice, err := s.repo.FindInvoiceWithAccount(id)
	if err != nil {
		return nil, nil, err
	}
	if invoice == nil {
		return nil, nil, models.ErrInvoiceNotFound
	}

	var detection *models.DetectionResult
	if s.cache != nil {
		detection, err = s.cache.GetDetection(id)
		if err != nil {
			log.Printf("Failed to get cached detection result from Redis: %v", err)
			detection = nil
		}
	}

	return invoice, detection, nil
}

// ListInvoices получает инвойсы по фильтру, от новых к старым
func (s *invoiceService) ListInvoices(accountID string, withFraud bool, limit int) ([]*models.Invoice, error) {
	return s.repo.ListInvoices(storage.InvoiceFilter{
		AccountID: accountID,
		WithFraud: withFraud,
	}, limit)
}

// ClearAllInvoices удаляет все инвойсы, счета и кэшированные результаты
func (s *invoiceService) ClearAllInvoices() error {
	if err := s.repo.ClearAllInvoices(); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.ClearDetectionData(); err != nil {
			log.Printf("Failed to clear detection data in Redis: %v", err)
		}
	}

	logger.LogEvent(logger.EventDBUpdated, serviceName, "sqlite", map[string]interface{}{
		"action": "clear_all_invoices",
	})

	return nil
}
