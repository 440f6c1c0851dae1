package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/repository"
)

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// The settings table holds a single row with a fixed id.
const settingsRowID = 1

func (r *settingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	s := &domain.Settings{}
	err := r.db.QueryRowContext(ctx, `SELECT bank_account, updated_on FROM settings WHERE id = $1`, settingsRowID).
		Scan(&s.BankAccount, &s.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Unconfigured installation: empty settings, not an error.
			return &domain.Settings{}, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *settingsRepository) Update(ctx context.Context, s *domain.Settings) error {
	query := `INSERT INTO settings (id, bank_account, updated_on) VALUES ($1, $2, $3)
	          ON CONFLICT (id) DO UPDATE SET bank_account = EXCLUDED.bank_account, updated_on = EXCLUDED.updated_on`
	now := time.Now()
	s.UpdatedOn = now
	_, err := r.db.ExecContext(ctx, query, settingsRowID, s.BankAccount, now)
	return err
}
