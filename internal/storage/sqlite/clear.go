package sqlite

// ClearAllInvoices удаляет все инвойсы, записи о мошенничестве и счета
func (s *SQLiteStorage) ClearAllInvoices() error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, query := range []string{
		`DELETE FROM fraud_records`,
		`DELETE FROM invoices`,
		`DELETE FROM accounts`,
	} {
		if _, err := tx.Exec(query); err != nil {
			return err
		}
	}

	return tx.Commit()
}
