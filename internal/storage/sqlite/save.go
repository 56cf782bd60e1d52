package sqlite

import (
	"anti-fraud-system/internal/models"
)

// CreateInvoice сохраняет инвойс и, если передана, запись о мошенничестве
// в одной SQL-транзакции: либо появляются обе записи, либо ни одной
func (s *SQLiteStorage) CreateInvoice(invoice *models.Invoice, fraudRecord *models.FraudRecord) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO invoices (id, account_id, amount, status, created_at) VALUES (?, ?, ?, ?, ?)`,
		invoice.ID, invoice.AccountID, invoice.Amount, string(invoice.Status), invoice.CreatedAt.UTC(),
	)
	if err != nil {
		return err
	}

	if fraudRecord != nil {
		_, err = tx.Exec(
			`INSERT INTO fraud_records (invoice_id, reason, description) VALUES (?, ?, ?)`,
			invoice.ID, string(fraudRecord.Reason), fraudRecord.Description,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
