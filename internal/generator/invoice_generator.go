package generator

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"anti-fraud-system/internal/models"
)

type InvoiceGenerator struct {
	rand *rand.Rand
}

func NewInvoiceGenerator() *InvoiceGenerator {
	return &InvoiceGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateInvoice генерирует инвойс с заданным профилем суммы
func (g *InvoiceGenerator) GenerateInvoice(profile string) *models.ProcessInvoiceRequest {
	req := &models.ProcessInvoiceRequest{
		InvoiceID: uuid.New().String(),
		AccountID: g.randomAccountID(),
	}

	switch profile {
	case "low":
		g.generateLowAmount(req)
	case "high":
		g.generateHighAmount(req)
	default:
		g.generateLowAmount(req)
	}

	return req
}

// GenerateRandomInvoice генерирует инвойс со случайным профилем суммы
func (g *InvoiceGenerator) GenerateRandomInvoice() *models.ProcessInvoiceRequest {
	profiles := []string{"low", "low", "low", "high"}
	return g.GenerateInvoice(profiles[g.rand.Intn(len(profiles))])
}

// generateLowAmount генерирует обычную сумму, не выбивающуюся из истории счета
func (g *InvoiceGenerator) generateLowAmount(req *models.ProcessInvoiceRequest) {
	req.Amount = g.roundToTwoDecimals(50.0 + g.rand.Float64()*450.0)
}

// generateHighAmount генерирует аномально крупную сумму
func (g *InvoiceGenerator) generateHighAmount(req *models.ProcessInvoiceRequest) {
	req.Amount = g.roundToTwoDecimals(5000.0 + g.rand.Float64()*45000.0)
}

// randomAccountID выбирает счет из небольшого пула, чтобы у счетов
// накапливалась история инвойсов
func (g *InvoiceGenerator) randomAccountID() string {
	return fmt.Sprintf("ACC-%04d", g.rand.Intn(20))
}

// roundToTwoDecimals округляет число до 2 знаков после запятой
func (g *InvoiceGenerator) roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
