package fraud

import (
	"anti-fraud-system/internal/models"
)

// SuspiciousAccountSpecification отклоняет инвойсы счетов с установленным
// липким флагом is_suspicious. Чистый предикат, без I/O.
type SuspiciousAccountSpecification struct{}

// NewSuspiciousAccountSpecification создает спецификацию подозрительного счета
func NewSuspiciousAccountSpecification() *SuspiciousAccountSpecification {
	return &SuspiciousAccountSpecification{}
}

// Detect проверяет флаг is_suspicious счета
func (s *SuspiciousAccountSpecification) Detect(ec *models.EvaluationContext) (*models.DetectionResult, error) {
	if ec.Account.IsSuspicious {
		return &models.DetectionResult{
			HasFraud:    true,
			Reason:      models.FraudReasonSuspiciousAccount,
			Description: "Account is flagged as suspicious",
		}, nil
	}

	return noFraud(), nil
}
