package fraud

import (
	"fmt"
	"time"

	"anti-fraud-system/config"
	"anti-fraud-system/internal/models"
	"anti-fraud-system/internal/storage"
)

// FrequentHighValueSpecification отклоняет инвойсы счетов, превысивших
// лимит количества инвойсов в скользящем окне. Единственная спецификация
// с побочным эффектом: при срабатывании счет помечается подозрительным
// навсегда, и все последующие инвойсы отклоняет SuspiciousAccountSpecification.
type FrequentHighValueSpecification struct {
	repo storage.InvoiceRepository
	cfg  *config.FraudConfig
}

// NewFrequentHighValueSpecification создает спецификацию частых инвойсов
func NewFrequentHighValueSpecification(repo storage.InvoiceRepository, cfg *config.FraudConfig) *FrequentHighValueSpecification {
	return &FrequentHighValueSpecification{
		repo: repo,
		cfg:  cfg,
	}
}

// Detect считает инвойсы счета в скользящем окне от текущего момента
func (s *FrequentHighValueSpecification) Detect(ec *models.EvaluationContext) (*models.DetectionResult, error) {
	window := time.Duration(s.cfg.SuspiciousTimeframeHours * float64(time.Hour))
	since := time.Now().Add(-window)

	recentInvoices, err := s.repo.FindInvoicesByAccountSince(ec.Account.ID, since)
	if err != nil {
		return nil, err
	}

	if len(recentInvoices) > s.cfg.SuspiciousInvoicesCount {
		if err := s.repo.MarkAccountSuspicious(ec.Account.ID); err != nil {
			return nil, err
		}
		ec.Account.IsSuspicious = true

		return &models.DetectionResult{
			HasFraud: true,
			Reason:   models.FraudReasonFrequentHighValue,
			Description: fmt.Sprintf("%d high-value invoices in the last %s hours",
				len(recentInvoices), formatAmount(s.cfg.SuspiciousTimeframeHours)),
		}, nil
	}

	return noFraud(), nil
}
