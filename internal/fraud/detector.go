package fraud

import (
	"anti-fraud-system/config"
	"anti-fraud-system/internal/models"
	"anti-fraud-system/internal/storage"
)

// FraudDetector проверяет контекст упорядоченным набором спецификаций.
// Первая сработавшая спецификация определяет причину отклонения: остальные
// не выполняются, причины не комбинируются.
type FraudDetector struct {
	specifications []Specification
}

// NewFraudDetector создает детектор со стандартным порядком проверок:
// подозрительный счет, аномальная сумма, частые инвойсы. Порядок
// фиксирован и не зависит от данных.
func NewFraudDetector(repo storage.InvoiceRepository, cfg *config.FraudConfig) *FraudDetector {
	return &FraudDetector{
		specifications: []Specification{
			NewSuspiciousAccountSpecification(),
			NewUnusualAmountSpecification(repo, cfg),
			NewFrequentHighValueSpecification(repo, cfg),
		},
	}
}

// NewFraudDetectorWithSpecifications создает детектор с заданным набором
// спецификаций в заданном порядке
func NewFraudDetectorWithSpecifications(specifications ...Specification) *FraudDetector {
	return &FraudDetector{specifications: specifications}
}

// DetectFraud последовательно выполняет спецификации и возвращает результат
// первой сработавшей. Побочный эффект более поздней спецификации не
// выполняется, если более ранняя уже отклонила инвойс.
func (d *FraudDetector) DetectFraud(ec *models.EvaluationContext) (*models.DetectionResult, error) {
	for _, specification := range d.specifications {
		result, err := specification.Detect(ec)
		if err != nil {
			return nil, err
		}
		if result.HasFraud {
			return result, nil
		}
	}

	return noFraud(), nil
}
