package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"anti-fraud-system/internal/models"
	servicemocks "anti-fraud-system/internal/services/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(handlers *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	{
		api.POST("/invoices", handlers.ProcessInvoice)
		api.GET("/invoices", handlers.ListInvoices)
		api.GET("/invoices/generate", handlers.GenerateRandomInvoice)
		api.GET("/invoices/:invoice_id", handlers.GetInvoice)
		api.DELETE("/invoices", handlers.ClearAllInvoices)
	}

	return router
}

func TestHandlers_ProcessInvoice_Success(t *testing.T) {
	mockService := new(servicemocks.MockInvoiceService)
	handlers := NewHandlers(mockService)
	router := setupTestRouter(handlers)

	reqBody := models.ProcessInvoiceRequest{
		InvoiceID: "inv-001",
		AccountID: "acc-001",
		Amount:    150.50,
	}

	response := &models.ProcessInvoiceResponse{
		Invoice: &models.Invoice{
			ID:        "inv-001",
			AccountID: "acc-001",
			Amount:    150.50,
			Status:    models.InvoiceStatusApproved,
		},
		FraudResult: &models.DetectionResult{HasFraud: false},
	}

	mockService.On("ProcessInvoice", mock.AnythingOfType("*models.ProcessInvoiceRequest")).Return(response, nil)

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/v1/invoices", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var result models.ProcessInvoiceResponse
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, "inv-001", result.Invoice.ID)
	assert.Equal(t, models.InvoiceStatusApproved, result.Invoice.Status)

	mockService.AssertExpectations(t)
}

func TestHandlers_ProcessInvoice_InvalidJSON(t *testing.T) {
	mockService := new(servicemocks.MockInvoiceService)
	handlers := NewHandlers(mockService)
	router := setupTestRouter(handlers)

	req := httptest.NewRequest("POST", "/api/v1/invoices", bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Contains(t, result, "error")

	mockService.AssertNotCalled(t, "ProcessInvoice")
}

func TestHandlers_ProcessInvoice_MissingFields(t *testing.T) {
	mockService := new(servicemocks.MockInvoiceService)
	handlers := NewHandlers(mockService)
	router := setupTestRouter(handlers)

	body, _ := json.Marshal(map[string]interface{}{"amount": 100.0})
	req := httptest.NewRequest("POST", "/api/v1/invoices", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ProcessInvoice")
}

func TestHandlers_ProcessInvoice_Duplicate(t *testing.T) {
	mockService := new(servicemocks.MockInvoiceService)
	handlers := NewHandlers(mockService)
	router := setupTestRouter(handlers)

	reqBody := models.ProcessInvoiceRequest{
		InvoiceID: "inv-001",
		AccountID: "acc-001",
		Amount:    150.50,
	}

	mockService.On("ProcessInvoice", mock.AnythingOfType("*models.ProcessInvoiceRequest")).Return(nil, models.ErrDuplicateInvoice)

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/v1/invoices", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Contains(t, result["error"], "already been processed")

	mockService.AssertExpectations(t)
}

func TestHandlers_ProcessInvoice_ServiceError(t *testing.T) {
	mockService := new(servicemocks.MockInvoiceService)
	handlers := NewHandlers(mockService)
	router := setupTestRouter(handlers)

	reqBody := models.ProcessInvoiceRequest{
		InvoiceID: "inv-001",
		AccountID: "acc-001",
		Amount:    150.50,
	}

	mockService.On("ProcessInvoice", mock.AnythingOfType("*models.ProcessInvoiceRequest")).Return(nil, errors.New("service error"))

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/v1/invoices", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Contains(t, result["error"], "Failed to process invoice")

	mockService.AssertExpectations(t)
}

func TestHandlers_GetInvoice_Success(t *testing.T) {
	mockService := new(servicemocks.MockInvoiceService)
	handlers := NewHandlers(mockService)
	router := setupTestRouter(handlers)

	invoice := &models.Invoice{
		ID:        "inv-001",
		AccountID: "acc-001",
		Amount:    150.50,
		Status:    models.InvoiceStatusRejected,
		Account:   &models.Account{ID: "acc-001", IsSuspicious: true},
		FraudRecord: &models.FraudRecord{
			InvoiceID:   "inv-001",
			Reason:      models.FraudReasonSuspiciousAccount,
			Description: "Account is flagged as suspicious",
		},
	}

	mockService.On("GetInvoice", "inv-001").Return(invoice, nil, nil)

	req := httptest.NewRequest("GET", "/api/v1/invoices/inv-001", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Contains(t, result, "invoice")

	mockService.AssertExpectations(t)
}

func TestHandlers_GetInvoice_NotFound(t *testing.T) {
	mockService := new(servicemocks.MockInvoiceService)
	handlers := NewHandlers(mockService)
	router := setupTestRouter(handlers)

	mockService.On("GetInvoice", "inv-missing").Return(nil, nil, models.ErrInvoiceNotFound)

	req := httptest.NewRequest("GET", "/api/v1/invoices/inv-missing", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Contains(t, result["error"], "Invoice not found")

	mockService.AssertExpectations(t)
}

func TestHandlers_GetInvoice_ServiceError(t *testing.T) {
	mockService := new(servicemocks.MockInvoiceService)
	handlers := NewHandlers(mockService)
	router := setupTestRouter(handlers)

	mockService.On("GetInvoice", "inv-err").Return(nil, nil, errors.New("database error"))

	req := httptest.NewRequest("GET", "/api/v1/invoices/inv-err", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Contains(t, result["error"], "Failed to get invoice")

	mockService.AssertExpectations(t)
}

func TestHandlers_ListInvoices_Success(t *testing.T) {
	mockService := new(servicemocks.MockInvoiceService)
	handlers := NewHandlers(mockService)
	router := setupTestRouter(handlers)

	invoices := []*models.Invoice{
		{ID: "inv-001", Status: models.InvoiceStatusApproved},
		{ID: "inv-002", Status: models.InvoiceStatusRejected},
	}

	mockService.On("ListInvoices", "", false, 100).Return(invoices, nil)

	req := httptest.NewRequest("GET", "/api/v1/invoices", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Contains(t, result, "invoices")

	mockService.AssertExpectations(t)
}

func TestHandlers_ListInvoices_WithFilters(t *testing.T) {
	mockService := new(servicemocks.MockInvoiceService)
	handlers := NewHandlers(mockService)
	router := setupTestRouter(handlers)

	invoices := []*models.Invoice{}

	mockService.On("ListInvoices", "acc-001", true, 50).Return(invoices, nil)

	req := httptest.NewRequest("GET", "/api/v1/invoices?account_id=acc-001&with_fraud=true&limit=50", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestHandlers_ListInvoices_ServiceError(t *testing.T) {
	mockService := new(servicemocks.MockInvoiceService)
	handlers := NewHandlers(mockService)
	router := setupTestRouter(handlers)

	mockService.On("ListInvoices", "", false, 100).Return(nil, errors.New("database error"))

	req := httptest.NewRequest("GET", "/api/v1/invoices", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Contains(t, result["error"], "Failed to get invoices")

	mockService.AssertExpectations(t)
}

func TestHandlers_ClearAllInvoices_Success(t *testing.T) {
	mockService := new(servicemocks.MockInvoiceService)
	handlers := NewHandlers(mockService)
	router := setupTestRouter(handlers)

	mockService.On("ClearAllInvoices").Return(nil)

	req := httptest.NewRequest("DELETE", "/api/v1/invoices", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Contains(t, result["message"], "All invoices cleared successfully")
	assert.True(t, result["clear_storage"].(bool))

	mockService.AssertExpectations(t)
}

func TestHandlers_ClearAllInvoices_ServiceError(t *testing.T) {
	mockService := new(servicemocks.MockInvoiceService)
	handlers := NewHandlers(mockService)
	router := setupTestRouter(handlers)

	mockService.On("ClearAllInvoices").Return(errors.New("database error"))

	req := httptest.NewRequest("DELETE", "/api/v1/invoices", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Contains(t, result["error"], "Failed to clear invoices")

	mockService.AssertExpectations(t)
}

func TestHandlers_GenerateRandomInvoice(t *testing.T) {
	mockService := new(servicemocks.MockInvoiceService)
	handlers := NewHandlers(mockService)
	router := setupTestRouter(handlers)

	req := httptest.NewRequest("GET", "/api/v1/invoices/generate", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Contains(t, result, "invoice_id")
	assert.Contains(t, result, "account_id")
	assert.Contains(t, result, "amount")
}
