package storage

import (
	"time"

	"anti-fraud-system/internal/models"
)

// InvoiceFilter определяет фильтры для выборки инвойсов
type InvoiceFilter struct {
	AccountID string
	WithFraud bool // только отклоненные инвойсы (status = REJECTED)
}

// InvoiceRepository определяет интерфейс для работы с инвойсами,
// счетами и записями о мошенничестве в хранилище
type InvoiceRepository interface {
	// FindInvoiceByID получает инвойс по id, nil если не найден
	FindInvoiceByID(id string) (*models.Invoice, error)

	// FindInvoiceWithAccount получает инвойс вместе со счетом
	// и записью о мошенничестве, nil если не найден
	FindInvoiceWithAccount(id string) (*models.Invoice, error)

	// CreateInvoice сохраняет инвойс и, если передана, запись о мошенничестве
	// в одной транзакции
	CreateInvoice(invoice *models.Invoice, fraudRecord *models.FraudRecord) error

	// UpsertAccount получает счет по id, создавая его при первом обращении.
	// Существующий флаг is_suspicious никогда не перезаписывается.
	UpsertAccount(accountID string) (*models.Account, error)

	// MarkAccountSuspicious устанавливает липкий флаг is_suspicious
	MarkAccountSuspicious(accountID string) error

	// FindRecentInvoicesByAccount получает последние инвойсы счета,
	// отсортированные от новых к старым
	FindRecentInvoicesByAccount(accountID string, limit int) ([]*models.Invoice, error)

	// FindInvoicesByAccountSince получает инвойсы счета, созданные
	// не раньше указанного момента
	FindInvoicesByAccountSince(accountID string, since time.Time) ([]*models.Invoice, error)

	// ListInvoices получает инвойсы по фильтру, от новых к старым
	ListInvoices(filter InvoiceFilter, limit int) ([]*models.Invoice, error)

	// ClearAllInvoices удаляет все инвойсы, записи о мошенничестве и счета
	ClearAllInvoices() error
}
