package sqlite

import (
	"database/sql"
	"time"

	"anti-fraud-system/internal/models"
	"anti-fraud-system/internal/storage"
)

// FindInvoiceByID получает инвойс по id
func (s *SQLiteStorage) FindInvoiceByID(id string) (*models.Invoice, error) {
	query := `
		SELECT id, account_id, amount, status, created_at
		FROM invoices
		WHERE id = ?
	`

	var invoice models.Invoice
	var status string
	err := s.DB.QueryRow(query, id).Scan(
		&invoice.ID, &invoice.AccountID, &invoice.Amount, &status, &invoice.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	invoice.Status = models.InvoiceStatus(status)
	return &invoice, nil
}

// FindInvoiceWithAccount получает инвойс вместе со счетом и записью
// о мошенничестве, если она есть
func (s *SQLiteStorage) FindInvoiceWithAccount(id string) (*models.Invoice, error) {
	query := `
		SELECT i.id, i.account_id, i.amount, i.status, i.created_at,
		       a.id, a.is_suspicious, a.created_at, a.updated_at,
		       f.id, f.reason, f.description, f.created_at
		FROM invoices i
		JOIN accounts a ON a.id = i.account_id
		LEFT JOIN fraud_records f ON f.invoice_id = i.id
		WHERE i.id = ?
	`

	var invoice models.Invoice
	var account models.Account
	var status string
	var suspicious int
	var fraudID sql.NullInt64
	var fraudReason, fraudDescription sql.NullString
	var fraudCreatedAt sql.NullTime

	err := s.DB.QueryRow(query, id).Scan(
		&invoice.ID, &invoice.AccountID, &invoice.Amount, &status, &invoice.CreatedAt,
		&account.ID, &suspicious, &account.CreatedAt, &account.UpdatedAt,
		&fraudID, &fraudReason, &fraudDescription, &fraudCreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	invoice.Status = models.InvoiceStatus(status)
	account.IsSuspicious = suspicious != 0
	invoice.Account = &account

	if fraudID.Valid {
		invoice.FraudRecord = &models.FraudRecord{
			ID:          fraudID.Int64,
			InvoiceID:   invoice.ID,
			Reason:      models.FraudReason(fraudReason.String),
			Description: fraudDescription.String,
			CreatedAt:   fraudCreatedAt.Time,
		}
	}

	return &invoice, nil
}

// FindRecentInvoicesByAccount получает последние инвойсы счета,
// от новых к старым
func (s *SQLiteStorage) FindRecentInvoicesByAccount(accountID string, limit int) ([]*models.Invoice, error) {
	query := `
		SELECT id, account_id, amount, status, created_at
		FROM invoices
		WHERE account_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := s.DB.Query(query, accountID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInvoices(rows)
}

// FindInvoicesByAccountSince получает инвойсы счета, созданные
// не раньше указанного момента
func (s *SQLiteStorage) FindInvoicesByAccountSince(accountID string, since time.Time) ([]*models.Invoice, error) {
	query := `
		SELECT id, account_id, amount, status, created_at
		FROM invoices
		WHERE account_id = ? AND created_at >= ?
	`

	rows, err := s.DB.Query(query, accountID, since.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInvoices(rows)
}

// ListInvoices получает инвойсы по фильтру, от новых к старым
func (s *SQLiteStorage) ListInvoices(filter storage.InvoiceFilter, limit int) ([]*models.Invoice, error) {
	query := `
		SELECT id, account_id, amount, status, created_at
		FROM invoices
		WHERE 1 = 1
	`
	args := []interface{}{}

	if filter.AccountID != "" {
		query += " AND account_id = ?"
		args = append(args, filter.AccountID)
	}
	if filter.WithFraud {
		query += " AND status = ?"
		args = append(args, string(models.InvoiceStatusRejected))
	}

	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInvoices(rows)
}

func scanInvoices(rows *sql.Rows) ([]*models.Invoice, error) {
	var invoices []*models.Invoice
	for rows.Next() {
		var invoice models.Invoice
		var status string
		err := rows.Scan(
			&invoice.ID, &invoice.AccountID, &invoice.Amount, &status, &invoice.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		invoice.Status = models.InvoiceStatus(status)
		invoices = append(invoices, &invoice)
	}

	return invoices, rows.Err()
}
