package fraud

import (
	"strconv"

	"anti-fraud-system/internal/models"
)

// Specification определяет интерфейс одного fraud-правила.
// Каждая спецификация проверяет контекст независимо от остальных:
// порядок проверок задает только агрегат.
type Specification interface {
	// Detect проверяет контекст и возвращает результат.
	// Ошибки чтения истории возвращаются без изменений.
	Detect(ec *models.EvaluationContext) (*models.DetectionResult, error)
}

// noFraud используется спецификациями, когда правило не сработало
func noFraud() *models.DetectionResult {
	return &models.DetectionResult{HasFraud: false}
}

// formatAmount форматирует число для описания без лишних нулей
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
