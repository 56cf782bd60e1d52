package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"anti-fraud-system/internal/generator"
	"anti-fraud-system/internal/logger"
	"anti-fraud-system/internal/models"
	"anti-fraud-system/internal/services"
)

type Handlers struct {
	invoiceService services.InvoiceService
	generator      *generator.InvoiceGenerator
}

// Создает новые обработчики REST API
func NewHandlers(invoiceService services.InvoiceService) *Handlers {
	return &Handlers{
		invoiceService: invoiceService,
		generator:      generator.NewInvoiceGenerator(),
	}
}

// ProcessInvoice обрабатывает POST запрос на проверку инвойса
// @Summary Отправить инвойс на проверку
// @Description Принимает инвойс, проверяет его на мошенничество и сохраняет результат. Инвойс получает статус APPROVED или REJECTED, результат публикуется в Kafka. Повторная отправка того же invoice_id отклоняется.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body models.ProcessInvoiceRequest true "Данные инвойса"
// @Success 201 {object} models.ProcessInvoiceResponse "Инвойс обработан"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "Conflict - инвойс уже обработан"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /invoices [post]
func (h *Handlers) ProcessInvoice(c *gin.Context) {
	var req models.ProcessInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.invoiceService.ProcessInvoice(&req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateInvoice) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process invoice"})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListInvoices возвращает список инвойсов
// @Summary Получить список инвойсов
// @Description Возвращает инвойсы от новых к старым, с фильтрацией по счету и по наличию мошенничества
// @Tags invoices
// @Accept json
// @Produce json
// @Param account_id query string false "Фильтр по счету"
// @Param with_fraud query bool false "Только отклоненные инвойсы"
// @Param limit query int false "Лимит результатов (максимум 500)" default(100)
// @Success 200 {object} map[string]interface{} "Список инвойсов"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /invoices [get]
func (h *Handlers) ListInvoices(c *gin.Context) {
	limit := 100
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	accountID := c.Query("account_id")
	withFraud := c.Query("with_fraud") == "true"

	invoices, err := h.invoiceService.ListInvoices(accountID, withFraud, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get invoices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// GetInvoice возвращает инвойс по id
// @Summary Получить инвойс
// @Description Возвращает инвойс вместе со счетом, записью о мошенничестве и кэшированным результатом проверки
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "ID инвойса"
// @Success 200 {object} map[string]interface{} "Инвойс"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /invoices/{invoice_id} [get]
func (h *Handlers) GetInvoice(c *gin.Context) {
	invoiceID := c.Param("invoice_id")

	invoice, detection, err := h.invoiceService.GetInvoice(invoiceID)
	if err != nil {
		if errors.Is(err, models.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get invoice"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoice":   invoice,
		"detection": detection,
	})
}

// ClearAllInvoices очищает все инвойсы
// @Summary Очистить все инвойсы
// @Description Удаляет все инвойсы, счета и записи о мошенничестве из базы данных
// @Tags invoices
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Инвойсы очищены"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /invoices [delete]
func (h *Handlers) ClearAllInvoices(c *gin.Context) {
	if err := h.invoiceService.ClearAllInvoices(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear invoices"})
		return
	}

	logger.LogEvent(logger.EventDBUpdated, "anti-fraud-service", "sqlite", map[string]interface{}{
		"action": "database_cleared",
	})

	c.JSON(http.StatusOK, gin.H{
		"message":       "All invoices cleared successfully",
		"clear_storage": true,
	})
}

// GenerateRandomInvoice генерирует случайный инвойс
// @Summary Сгенерировать случайный инвойс
// @Description Генерирует случайный инвойс для тестирования, без отправки на проверку
// @Tags invoices
// @Accept json
// @Produce json
// @Success 200 {object} models.ProcessInvoiceRequest "Сгенерированный инвойс"
// @Router /invoices/generate [get]
func (h *Handlers) GenerateRandomInvoice(c *gin.Context) {
	req := h.generator.GenerateRandomInvoice()

	c.JSON(http.StatusOK, gin.H{
		"invoice_id": req.InvoiceID,
		"account_id": req.AccountID,
		"amount":     req.Amount,
	})
}
