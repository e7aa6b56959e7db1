package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"crypto-wallet/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

const (
	snapshotKey = "wallet:snapshot"
	logKey      = "wallet:transactions"
)

// WalletStore implements ports.WalletStore on Redis. Each blob is a
// single JSON value; saves replace the whole blob.
type WalletStore struct {
	client *goredis.Client
}

// NewWalletStore creates a Redis-backed wallet store.
func NewWalletStore(client *goredis.Client) *WalletStore {
	return &WalletStore{client: client}
}

// LoadSnapshot retrieves the asset snapshot.
// Returns nil, nil if no snapshot has been saved yet.
func (s *WalletStore) LoadSnapshot(ctx context.Context) ([]domain.Asset, error) {
	data, err := s.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis snapshot get: %w", err)
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
	if err := s.client.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis snapshot set: %w", err)
	}
	return nil
}

// LoadLog retrieves the transaction log, newest first.
// Returns nil, nil if no log has been saved yet.
func (s *WalletStore) LoadLog(ctx context.Context) ([]domain.Transaction, error) {
	data, err := s.client.Get(ctx, logKey).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis transaction log get: %w", err)
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
	if err := s.client.Set(ctx, logKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis transaction log set: %w", err)
	}
	return nil
}
