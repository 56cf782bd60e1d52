package fraud

import (
	"fmt"

	"anti-fraud-system/config"
	"anti-fraud-system/internal/models"
	"anti-fraud-system/internal/storage"
)

// UnusualAmountSpecification отклоняет инвойсы, сумма которых аномально
// превышает среднее по последним инвойсам счета
type UnusualAmountSpecification struct {
	repo storage.InvoiceRepository
	cfg  *config.FraudConfig
}

// NewUnusualAmountSpecification создает спецификацию аномальной суммы
func NewUnusualAmountSpecification(repo storage.InvoiceRepository, cfg *config.FraudConfig) *UnusualAmountSpecification {
	return &UnusualAmountSpecification{
		repo: repo,
		cfg:  cfg,
	}
}

// Detect сравнивает сумму инвойса со средним по истории счета.
// Без истории правило не срабатывает: базы для сравнения нет.
func (s *UnusualAmountSpecification) Detect(ec *models.EvaluationContext) (*models.DetectionResult, error) {
	previousInvoices, err := s.repo.FindRecentInvoicesByAccount(ec.Account.ID, s.cfg.InvoicesHistoryCount)
	if err != nil {
		return nil, err
	}

	if len(previousInvoices) == 0 {
		return noFraud(), nil
	}

	var totalAmount float64
	for _, invoice := range previousInvoices {
		totalAmount += invoice.Amount
	}
	averageAmount := totalAmount / float64(len(previousInvoices))

	if ec.Amount > averageAmount*(1+s.cfg.SuspiciousVariationPercentage/100)+averageAmount {
		return &models.DetectionResult{
			HasFraud: true,
			Reason:   models.FraudReasonUnusualPattern,
			Description: fmt.Sprintf("Amount %s is higher than the average amount %s",
				formatAmount(ec.Amount), formatAmount(averageAmount)),
		}, nil
	}

	return noFraud(), nil
}
