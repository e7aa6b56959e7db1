package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"crypto-wallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const (
	snapshotBlob = "snapshot"
	logBlob      = "transactions"
)

// WalletStore implements ports.WalletStore on PostgreSQL. Both blobs
// live in a single wallet_blobs table keyed by name; a save upserts the
// whole JSON document.
type WalletStore struct {
	pool Pool
}

// NewWalletStore creates a PostgreSQL-backed wallet store.
func NewWalletStore(pool Pool) *WalletStore {
	return &WalletStore{pool: pool}
}

// EnsureSchema creates the wallet_blobs table if it does not exist.
func (s *WalletStore) EnsureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS wallet_blobs (
		name TEXT PRIMARY KEY,
		data JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("create wallet_blobs table: %w", err)
	}
	return nil
}

// LoadSnapshot retrieves the asset snapshot.
// Returns nil, nil if no snapshot has been saved yet.
func (s *WalletStore) LoadSnapshot(ctx context.Context) ([]domain.Asset, error) {
	data, err := s.loadBlob(ctx, snapshotBlob)
	if err != nil || data == nil {
		return nil, err
	}

	var assets []domain.Asset
	if err := json.Unmarshal(data, &assets); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return assets, nil
}

// SaveSnapshot replaces the stored asset snapshot.
func (s *WalletStore) SaveSnapshot(ctx context.Context, assets []domain.Asset) error {
	data, err := json.Marshal(assets)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return s.saveBlob(ctx, snapshotBlob, data)
}

// LoadLog retrieves the transaction log, newest first.
// Returns nil, nil if no log has been saved yet.
func (s *WalletStore) LoadLog(ctx context.Context) ([]domain.Transaction, error) {
	data, err := s.loadBlob(ctx, logBlob)
	if err != nil || data == nil {
		return nil, err
	}

	var records []domain.Transaction
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding transaction log: %w", err)
	}
	return records, nil
}

// SaveLog replaces the stored transaction log.
func (s *WalletStore) SaveLog(ctx context.Context, records []domain.Transaction) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding transaction log: %w", err)
	}
	return s.saveBlob(ctx, logBlob, data)
}

func (s *WalletStore) loadBlob(ctx context.Context, name string) ([]byte, error) {
	query := `SELECT data FROM wallet_blobs WHERE name = $1`

	var data []byte
	err := s.pool.QueryRow(ctx, query, name).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s blob: %w", name, err)
	}
	return data, nil
}

func (s *WalletStore) saveBlob(ctx context.Context, name string, data []byte) error {
	query := `INSERT INTO wallet_blobs (name, data, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`

	if _, err := s.pool.Exec(ctx, query, name, data); err != nil {
		return fmt.Errorf("upsert %s blob: %w", name, err)
	}
	return nil
}
