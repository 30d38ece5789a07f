package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/wifikeeper/internal/common"
	"github.com/dmitrijs2005/wifikeeper/internal/dbx"
	"github.com/dmitrijs2005/wifikeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, cred *models.WifiCredential) (*models.WifiCredential, error) {

	query :=
		`INSERT INTO wifi_credentials (id, user_id, ssid, encrypted_password, security_type, is_hidden, qr_code_data)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		cred.ID, cred.UserID, cred.SSID, cred.EncryptedPassword,
		cred.SecurityType, cred.Hidden, cred.QRCodeData).Scan(&cred.CreatedAt, &cred.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cred, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.WifiCredential, error) {
	query :=
		`SELECT id, user_id, ssid, encrypted_password, security_type, is_hidden, qr_code_data, created_at, updated_at
		 FROM wifi_credentials
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.WifiCredential
	for rows.Next() {
		var c models.WifiCredential
		if err := rows.Scan(&c.ID, &c.UserID, &c.SSID, &c.EncryptedPassword,
			&c.SecurityType, &c.Hidden, &c.QRCodeData, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.WifiCredential, error) {
	query :=
		`SELECT id, user_id, ssid, encrypted_password, security_type, is_hidden, qr_code_data, created_at, updated_at
		 FROM wifi_credentials
		 WHERE id = $1
		 `

	c := &models.WifiCredential{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.UserID, &c.SSID, &c.EncryptedPassword,
		&c.SecurityType, &c.Hidden, &c.QRCodeData, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM wifi_credentials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) ListAllWithOwner(ctx context.Context) ([]models.OwnedWifiCredential, error) {
	query :=
		`SELECT c.id, c.user_id, c.ssid, c.encrypted_password, c.security_type, c.is_hidden, c.qr_code_data,
		        c.created_at, c.updated_at, u.email
		 FROM wifi_credentials c
		 JOIN users u ON u.id = c.user_id
		 ORDER BY c.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.OwnedWifiCredential
	for rows.Next() {
		var c models.OwnedWifiCredential
		if err := rows.Scan(&c.ID, &c.UserID, &c.SSID, &c.EncryptedPassword,
			&c.SecurityType, &c.Hidden, &c.QRCodeData, &c.CreatedAt, &c.UpdatedAt, &c.UserEmail); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM wifi_credentials`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
