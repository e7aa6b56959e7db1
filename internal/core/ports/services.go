package ports

import (
	"context"

	"crypto-wallet/internal/core/domain"
)

// WalletService is the operation interface exposed to callers. Every
// mutation is a single validate-then-commit step; failures are returned
// as tagged *apperror.AppError values, never panics.
type WalletService interface {
	Send(ctx context.Context, req SendRequest) (*domain.Transaction, error)
	Receive(ctx context.Context, req ReceiveRequest) (*domain.Transaction, error)
	Convert(ctx context.Context, req ConvertRequest) (*domain.Transaction, error)
	SetPrice(ctx context.Context, assetID string, price float64) (*domain.Asset, error)

	ListAssets(ctx context.Context) []domain.Asset
	ListTransactions(ctx context.Context) []domain.Transaction
	TotalValue(ctx context.Context) float64
	AddressFor(assetID string) string
}

// SendRequest holds validated input for an outgoing transfer.
type SendRequest struct {
	AssetID string
	Amount  float64
	Address string
}

// ReceiveRequest holds validated input for an incoming transfer. Source
// is a free-form label for the counterparty.
type ReceiveRequest struct {
	AssetID string
	Amount  float64
	Source  string
}

// ConvertRequest holds validated input for an asset conversion.
type ConvertRequest struct {
	FromAssetID string
	ToAssetID   string
	Amount      float64
}

// AddressDirectory resolves the receiving address for an asset. Unknown
// ids yield a sentinel value, never an error.
type AddressDirectory interface {
	AddressFor(assetID string) string
}
