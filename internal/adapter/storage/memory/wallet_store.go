package memory

import (
	"context"
	"sync"

	"crypto-wallet/internal/core/domain"
)

// WalletStore implements ports.WalletStore in process memory. It is the
// default driver for demo runs and the backend for integration tests;
// state is lost on restart.
type WalletStore struct {
	mu       sync.RWMutex
	snapshot []domain.Asset
	records  []domain.Transaction
}

// NewWalletStore creates an empty in-memory wallet store.
func NewWalletStore() *WalletStore {
	return &WalletStore{}
}

// LoadSnapshot returns the stored asset snapshot, or nil if none saved.
func (s *WalletStore) LoadSnapshot(ctx context.Context) ([]domain.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, nil
	}
	out := make([]domain.Asset, len(s.snapshot))
	copy(out, s.snapshot)
	return out, nil
}

// SaveSnapshot replaces the stored asset snapshot.
func (s *WalletStore) SaveSnapshot(ctx context.Context, assets []domain.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = make([]domain.Asset, len(assets))
	copy(s.snapshot, assets)
	return nil
}

// LoadLog returns the stored transaction log, or nil if none saved.
func (s *WalletStore) LoadLog(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.records == nil {
		return nil, nil
	}
	out := make([]domain.Transaction, len(s.records))
	copy(out, s.records)
	return out, nil
}

// SaveLog replaces the stored transaction log.
func (s *WalletStore) SaveLog(ctx context.Context, records []domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]domain.Transaction, len(records))
	copy(s.records, records)
	return nil
}
