package sqlite

import (
	"anti-fraud-system/internal/models"
)

// UpsertAccount получает счет по id, создавая его при первом обращении.
// ON CONFLICT DO NOTHING гарантирует, что существующий флаг is_suspicious
// не перезаписывается.
func (s *SQLiteStorage) UpsertAccount(accountID string) (*models.Account, error) {
	_, err := s.DB.Exec(
		`INSERT INTO accounts (id) VALUES (?) ON CONFLICT(id) DO NOTHING`,
		accountID,
	)
	if err != nil {
		return nil, err
	}

	var account models.Account
	var suspicious int
	err = s.DB.QueryRow(
		`SELECT id, is_suspicious, created_at, updated_at FROM accounts WHERE id = ?`,
		accountID,
	).Scan(&account.ID, &suspicious, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return nil, err
	}

	account.IsSuspicious = suspicious != 0
	return &account, nil
}

// MarkAccountSuspicious устанавливает липкий флаг is_suspicious.
// Обратного пути нет: флаг никогда не снимается.
func (s *SQLiteStorage) MarkAccountSuspicious(accountID string) error {
	query := `
		UPDATE accounts
		SET is_suspicious = 1,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	_, err := s.DB.Exec(query, accountID)
	return err
}
