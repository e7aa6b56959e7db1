package dto

import (
	"time"

	"crypto-wallet/internal/core/domain"
)

// SendRequest is the request body for an outgoing transfer.
type SendRequest struct {
	AssetID string  `json:"asset_id" binding:"required,safe_id"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Address string  `json:"address" binding:"required"`
}

// ReceiveRequest is the request body for an incoming transfer. Source is
// an optional free-form label for where the funds came from.
type ReceiveRequest struct {
	AssetID string  `json:"asset_id" binding:"required,safe_id"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Source  string  `json:"source,omitempty" binding:"max=100"`
}

// ConvertRequest is the request body for an asset conversion.
type ConvertRequest struct {
	FromAssetID string  `json:"from_asset_id" binding:"required,safe_id"`
	ToAssetID   string  `json:"to_asset_id" binding:"required,safe_id"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

// PriceUpdateRequest is the request body for a price refresh.
type PriceUpdateRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// AssetResponse is the response body for a single asset.
type AssetResponse struct {
	ID       string  `json:"id"`
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Balance  float64 `json:"balance"`
	Price    float64 `json:"price"`
	Value    float64 `json:"value"`
	ColorTag string  `json:"color_tag,omitempty"`
}

// TransactionResponse is the response body for a committed transaction.
type TransactionResponse struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Timestamp string  `json:"timestamp"`
	Value     float64 `json:"value"`

	AssetID string  `json:"asset_id,omitempty"`
	Symbol  string  `json:"symbol,omitempty"`
	Amount  float64 `json:"amount,omitempty"`
	Address string  `json:"address,omitempty"`

	FromAssetID string  `json:"from_asset_id,omitempty"`
	ToAssetID   string  `json:"to_asset_id,omitempty"`
	FromSymbol  string  `json:"from_symbol,omitempty"`
	ToSymbol    string  `json:"to_symbol,omitempty"`
	FromAmount  float64 `json:"from_amount,omitempty"`
	ToAmount    float64 `json:"to_amount,omitempty"`
}

// PortfolioResponse is the response for the aggregated portfolio view.
type PortfolioResponse struct {
	TotalValue float64         `json:"total_value"`
	Assets     []AssetResponse `json:"assets"`
}

// AddressResponse is the response for an asset's receiving address.
type AddressResponse struct {
	AssetID string `json:"asset_id"`
	Address string `json:"address"`
}

// FromAsset maps a domain asset to its response form.
func FromAsset(a domain.Asset) AssetResponse {
	return AssetResponse{
		ID:       a.ID,
		Symbol:   a.Symbol,
		Name:     a.Name,
		Balance:  a.Balance,
		Price:    a.Price,
		Value:    a.Value(),
		ColorTag: a.ColorTag,
	}
}

// FromAssets maps a slice of domain assets, preserving order.
func FromAssets(assets []domain.Asset) []AssetResponse {
	out := make([]AssetResponse, len(assets))
	for i, a := range assets {
		out[i] = FromAsset(a)
	}
	return out
}

// FromTransaction maps a domain transaction to its response form.
func FromTransaction(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Kind:        string(t.Kind),
		Timestamp:   t.Timestamp.UTC().Format(time.RFC3339),
		Value:       t.Value,
		AssetID:     t.AssetID,
		Symbol:      t.Symbol,
		Amount:      t.Amount,
		Address:     t.Address,
		FromAssetID: t.FromAssetID,
		ToAssetID:   t.ToAssetID,
		FromSymbol:  t.FromSymbol,
		ToSymbol:    t.ToSymbol,
		FromAmount:  t.FromAmount,
		ToAmount:    t.ToAmount,
	}
}

// FromTransactions maps a slice of domain transactions, preserving order.
func FromTransactions(records []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(records))
	for i, t := range records {
		out[i] = FromTransaction(t)
	}
	return out
}
