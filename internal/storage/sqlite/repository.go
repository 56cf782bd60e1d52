package sqlite

import (
	"time"

	"anti-fraud-system/internal/models"
	"anti-fraud-system/internal/storage"
)

const (
	writeMaxRetries = 3
	writeRetryDelay = 50 * time.Millisecond
)

// Repository реализует интерфейс InvoiceRepository для SQLite.
// Операции записи повторяются при блокировке БД.
type Repository struct {
	storage *SQLiteStorage
}

// NewRepository создает новый репозиторий SQLite
func NewRepository(storage *SQLiteStorage) storage.InvoiceRepository {
	return &Repository{storage: storage}
}

// FindInvoiceByID получает инвойс по id
func (r *Repository) FindInvoiceByID(id string) (*models.Invoice, error) {
	return r.storage.FindInvoiceByID(id)
}

// FindInvoiceWithAccount получает инвойс вместе со счетом
func (r *Repository) FindInvoiceWithAccount(id string) (*models.Invoice, error) {
	return r.storage.FindInvoiceWithAccount(id)
}

// CreateInvoice сохраняет инвойс и запись о мошенничестве атомарно
func (r *Repository) CreateInvoice(invoice *models.Invoice, fraudRecord *models.FraudRecord) error {
	return retryOperation(func() error {
		return r.storage.CreateInvoice(invoice, fraudRecord)
	}, writeMaxRetries, writeRetryDelay)
}

// UpsertAccount получает счет по id, создавая его при первом обращении
func (r *Repository) UpsertAccount(accountID string) (*models.Account, error) {
	var account *models.Account
	err := retryOperation(func() error {
		var opErr error
		account, opErr = r.storage.UpsertAccount(accountID)
		return opErr
	}, writeMaxRetries, writeRetryDelay)
	return account, err
}

// MarkAccountSuspicious устанавливает липкий флаг is_suspicious
func (r *Repository) MarkAccountSuspicious(accountID string) error {
	return retryOperation(func() error {
		return r.storage.MarkAccountSuspicious(accountID)
	}, writeMaxRetries, writeRetryDelay)
}

// FindRecentInvoicesByAccount получает последние инвойсы счета
func (r *Repository) FindRecentInvoicesByAccount(accountID string, limit int) ([]*models.Invoice, error) {
	return r.storage.FindRecentInvoicesByAccount(accountID, limit)
}

// FindInvoicesByAccountSince получает инвойсы счета за период
func (r *Repository) FindInvoicesByAccountSince(accountID string, since time.Time) ([]*models.Invoice, error) {
	return r.storage.FindInvoicesByAccountSince(accountID, since)
}

// ListInvoices получает инвойсы по фильтру
func (r *Repository) ListInvoices(filter storage.InvoiceFilter, limit int) ([]*models.Invoice, error) {
	return r.storage.ListInvoices(filter, limit)
}

// ClearAllInvoices удаляет все данные
func (r *Repository) ClearAllInvoices() error {
	return retryOperation(func() error {
		return r.storage.ClearAllInvoices()
	}, writeMaxRetries, writeRetryDelay)
}
