package models

import (
	"time"
)

// InvoiceStatus представляет статус инвойса после проверки на мошенничество
type InvoiceStatus string

const (
	InvoiceStatusApproved InvoiceStatus = "APPROVED"
	InvoiceStatusRejected InvoiceStatus = "REJECTED"
)

// FraudReason представляет причину отклонения инвойса
type FraudReason string

const (
	FraudReasonSuspiciousAccount FraudReason = "SUSPICIOUS_ACCOUNT"
	FraudReasonUnusualPattern    FraudReason = "UNUSUAL_PATTERN"
	FraudReasonFrequentHighValue FraudReason = "FREQUENT_HIGH_VALUE"
)

// Account представляет счет, от имени которого поступают инвойсы.
// Флаг IsSuspicious липкий: однажды установленный, он никогда не снимается.
type Account struct {
	ID           string    `json:"id"`
	IsSuspicious bool      `json:"is_suspicious"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Invoice представляет платежную транзакцию, прошедшую проверку
type Invoice struct {
	ID          string        `json:"id"`
	AccountID   string        `json:"account_id"`
	Amount      float64       `json:"amount"`
	Status      InvoiceStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	Account     *Account      `json:"account,omitempty"`
	FraudRecord *FraudRecord  `json:"fraud_record,omitempty"`
}

// FraudRecord представляет запись о мошенничестве, созданную вместе
// с отклоненным инвойсом
type FraudRecord struct {
	ID          int64       `json:"id"`
	InvoiceID   string      `json:"invoice_id"`
	Reason      FraudReason `json:"reason"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
}

// DetectionResult представляет результат проверки одной спецификацией
// или агрегатом. Причина и описание заполняются только при HasFraud = true.
type DetectionResult struct {
	HasFraud    bool        `json:"has_fraud"`
	Reason      FraudReason `json:"reason,omitempty"`
	Description string      `json:"description,omitempty"`
}

// EvaluationContext представляет входные данные для проверки одного инвойса.
// Собирается заново на каждый вызов и не сохраняется.
type EvaluationContext struct {
	Account   *Account
	InvoiceID string
	Amount    float64
}

// ProcessInvoiceRequest представляет запрос на обработку инвойса
type ProcessInvoiceRequest struct {
	InvoiceID string  `json:"invoice_id" binding:"required"`
	AccountID string  `json:"account_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gte=0"`
}

// ProcessInvoiceResponse представляет ответ на запрос обработки
type ProcessInvoiceResponse struct {
	Invoice     *Invoice         `json:"invoice"`
	FraudResult *DetectionResult `json:"fraud_result"`
}

// InvoiceProcessedMessage представляет исходящее событие invoice.processed.
// Публикуется в Kafka после успешного сохранения инвойса.
type InvoiceProcessedMessage struct {
	InvoiceID string `json:"invoice_id"`
	Status    string `json:"status"` // approved | rejected
}

// PendingInvoiceEvent представляет входящее событие от платежного шлюза
type PendingInvoiceEvent struct {
	InvoiceID string  `json:"invoice_id"`
	AccountID string  `json:"account_id"`
	Amount    float64 `json:"amount"`
}

// OutcomeStatus возвращает статус инвойса в формате исходящего события
func (i *Invoice) OutcomeStatus() string {
	if i.Status == InvoiceStatusRejected {
		return "rejected"
	}
	return "approved"
}
