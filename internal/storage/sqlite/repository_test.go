package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anti-fraud-system/config"
	"anti-fraud-system/internal/models"
	"anti-fraud-system/internal/storage"
)

func setupTestDB(t *testing.T) (storage.InvoiceRepository, func()) {
	cfg := &config.Config{
		DB: config.DBConfig{
			DBPath: filepath.Join(t.TempDir(), "test.db"),
		},
	}

	conn, err := NewConnection(cfg)
	require.NoError(t, err)

	repo := NewRepository(conn)

	cleanup := func() {
		conn.Close()
	}

	return repo, cleanup
}

func saveInvoice(t *testing.T, repo storage.InvoiceRepository, id, accountID string, amount float64, createdAt time.Time) {
	t.Helper()
	err := repo.CreateInvoice(&models.Invoice{
		ID:        id,
		AccountID: accountID,
		Amount:    amount,
		Status:    models.InvoiceStatusApproved,
		CreatedAt: createdAt,
	}, nil)
	require.NoError(t, err)
}

func TestRepository_UpsertAccount_CreatesAndReuses(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	account, err := repo.UpsertAccount("acc-1")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "acc-1", account.ID)
	assert.False(t, account.IsSuspicious)

	// Повторный upsert возвращает тот же счет
	again, err := repo.UpsertAccount("acc-1")
	require.NoError(t, err)
	assert.Equal(t, account.ID, again.ID)
	assert.Equal(t, account.CreatedAt, again.CreatedAt)
}

func TestRepository_MarkAccountSuspicious_Sticky(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.UpsertAccount("acc-1")
	require.NoError(t, err)

	err = repo.MarkAccountSuspicious("acc-1")
	require.NoError(t, err)

	// Upsert не сбрасывает установленный флаг
	account, err := repo.UpsertAccount("acc-1")
	require.NoError(t, err)
	assert.True(t, account.IsSuspicious)
}

func TestRepository_CreateInvoice_WithFraudRecord(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.UpsertAccount("acc-1")
	require.NoError(t, err)

	err = repo.CreateInvoice(&models.Invoice{
		ID:        "inv-1",
		AccountID: "acc-1",
		Amount:    500,
		Status:    models.InvoiceStatusRejected,
		CreatedAt: time.Now(),
	}, &models.FraudRecord{
		InvoiceID:   "inv-1",
		Reason:      models.FraudReasonSuspiciousAccount,
		Description: "Account is flagged as suspicious",
	})
	require.NoError(t, err)

	invoice, err := repo.FindInvoiceWithAccount("inv-1")
	require.NoError(t, err)
	require.NotNil(t, invoice)
	assert.Equal(t, models.InvoiceStatusRejected, invoice.Status)

	require.NotNil(t, invoice.Account)
	assert.Equal(t, "acc-1", invoice.Account.ID)

	require.NotNil(t, invoice.FraudRecord)
	assert.Equal(t, models.FraudReasonSuspiciousAccount, invoice.FraudRecord.Reason)
	assert.Equal(t, "Account is flagged as suspicious", invoice.FraudRecord.Description)
}

func TestRepository_CreateInvoice_WithoutFraudRecord(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.UpsertAccount("acc-1")
	require.NoError(t, err)

	saveInvoice(t, repo, "inv-1", "acc-1", 100, time.Now())

	invoice, err := repo.FindInvoiceWithAccount("inv-1")
	require.NoError(t, err)
	require.NotNil(t, invoice)
	assert.Equal(t, models.InvoiceStatusApproved, invoice.Status)
	assert.Nil(t, invoice.FraudRecord)
}

func TestRepository_CreateInvoice_DuplicateID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.UpsertAccount("acc-1")
	require.NoError(t, err)

	saveInvoice(t, repo, "inv-1", "acc-1", 100, time.Now())

	err = repo.CreateInvoice(&models.Invoice{
		ID:        "inv-1",
		AccountID: "acc-1",
		Amount:    200,
		Status:    models.InvoiceStatusApproved,
		CreatedAt: time.Now(),
	}, nil)
	assert.Error(t, err)

	// Первый инвойс не затронут
	invoice, err := repo.FindInvoiceByID("inv-1")
	require.NoError(t, err)
	require.NotNil(t, invoice)
	assert.Equal(t, 100.0, invoice.Amount)
}

func TestRepository_FindInvoiceByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	invoice, err := repo.FindInvoiceByID("missing")
	require.NoError(t, err)
	assert.Nil(t, invoice)

	invoice, err = repo.FindInvoiceWithAccount("missing")
	require.NoError(t, err)
	assert.Nil(t, invoice)
}

func TestRepository_FindRecentInvoicesByAccount_OrderAndLimit(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.UpsertAccount("acc-1")
	require.NoError(t, err)

	now := time.Now()
	saveInvoice(t, repo, "inv-old", "acc-1", 100, now.Add(-3*time.Hour))
	saveInvoice(t, repo, "inv-mid", "acc-1", 200, now.Add(-2*time.Hour))
	saveInvoice(t, repo, "inv-new", "acc-1", 300, now.Add(-1*time.Hour))

	invoices, err := repo.FindRecentInvoicesByAccount("acc-1", 2)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "inv-new", invoices[0].ID)
	assert.Equal(t, "inv-mid", invoices[1].ID)
}

func TestRepository_FindInvoicesByAccountSince(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.UpsertAccount("acc-1")
	require.NoError(t, err)

	now := time.Now()
	saveInvoice(t, repo, "inv-outside", "acc-1", 100, now.Add(-48*time.Hour))
	saveInvoice(t, repo, "inv-inside-1", "acc-1", 200, now.Add(-12*time.Hour))
	saveInvoice(t, repo, "inv-inside-2", "acc-1", 300, now.Add(-1*time.Hour))

	invoices, err := repo.FindInvoicesByAccountSince("acc-1", now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, invoices, 2)

	ids := []string{invoices[0].ID, invoices[1].ID}
	assert.Contains(t, ids, "inv-inside-1")
	assert.Contains(t, ids, "inv-inside-2")
}

func TestRepository_FindInvoicesByAccountSince_OtherAccountExcluded(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.UpsertAccount("acc-1")
	require.NoError(t, err)
	_, err = repo.UpsertAccount("acc-2")
	require.NoError(t, err)

	now := time.Now()
	saveInvoice(t, repo, "inv-1", "acc-1", 100, now)
	saveInvoice(t, repo, "inv-2", "acc-2", 200, now)

	invoices, err := repo.FindInvoicesByAccountSince("acc-1", now.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "inv-1", invoices[0].ID)
}

func TestRepository_ListInvoices_Filters(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.UpsertAccount("acc-1")
	require.NoError(t, err)
	_, err = repo.UpsertAccount("acc-2")
	require.NoError(t, err)

	now := time.Now()
	saveInvoice(t, repo, "inv-1", "acc-1", 100, now.Add(-2*time.Hour))

	err = repo.CreateInvoice(&models.Invoice{
		ID:        "inv-2",
		AccountID: "acc-1",
		Amount:    200,
		Status:    models.InvoiceStatusRejected,
		CreatedAt: now.Add(-time.Hour),
	}, &models.FraudRecord{
		InvoiceID:   "inv-2",
		Reason:      models.FraudReasonUnusualPattern,
		Description: "Amount 200 is higher than the average amount 50",
	})
	require.NoError(t, err)

	saveInvoice(t, repo, "inv-3", "acc-2", 300, now)

	// Без фильтров, от новых к старым
	all, err := repo.ListInvoices(storage.InvoiceFilter{}, 100)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "inv-3", all[0].ID)

	// Фильтр по счету
	byAccount, err := repo.ListInvoices(storage.InvoiceFilter{AccountID: "acc-1"}, 100)
	require.NoError(t, err)
	require.Len(t, byAccount, 2)

	// Только отклоненные
	withFraud, err := repo.ListInvoices(storage.InvoiceFilter{WithFraud: true}, 100)
	require.NoError(t, err)
	require.Len(t, withFraud, 1)
	assert.Equal(t, "inv-2", withFraud[0].ID)

	// Комбинация фильтров
	combined, err := repo.ListInvoices(storage.InvoiceFilter{AccountID: "acc-2", WithFraud: true}, 100)
	require.NoError(t, err)
	assert.Empty(t, combined)
}

func TestRepository_ClearAllInvoices(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.UpsertAccount("acc-1")
	require.NoError(t, err)

	err = repo.CreateInvoice(&models.Invoice{
		ID:        "inv-1",
		AccountID: "acc-1",
		Amount:    100,
		Status:    models.InvoiceStatusRejected,
		CreatedAt: time.Now(),
	}, &models.FraudRecord{
		InvoiceID:   "inv-1",
		Reason:      models.FraudReasonSuspiciousAccount,
		Description: "Account is flagged as suspicious",
	})
	require.NoError(t, err)

	err = repo.ClearAllInvoices()
	require.NoError(t, err)

	invoice, err := repo.FindInvoiceByID("inv-1")
	require.NoError(t, err)
	assert.Nil(t, invoice)

	// Счет создан заново, без флага
	account, err := repo.UpsertAccount("acc-1")
	require.NoError(t, err)
	assert.False(t, account.IsSuspicious)
}
