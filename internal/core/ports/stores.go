package ports

import (
	"context"

	"crypto-wallet/internal/core/domain"
)

// WalletStore is the persistence adapter for wallet state. It reads and
// writes two independent blobs: the balances snapshot and the transaction
// log (newest first). A nil slice from a load means the blob is absent.
// The store has no knowledge of ledger semantics.
type WalletStore interface {
	LoadSnapshot(ctx context.Context) ([]domain.Asset, error)
	SaveSnapshot(ctx context.Context, assets []domain.Asset) error
	LoadLog(ctx context.Context) ([]domain.Transaction, error)
	SaveLog(ctx context.Context, records []domain.Transaction) error
}
