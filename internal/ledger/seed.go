package ledger

import "crypto-wallet/internal/core/domain"

// SeedAssets returns the default asset set used when no persisted
// snapshot exists. Prices are starting values only; the pricing
// collaborator refreshes them at runtime.
func SeedAssets() []domain.Asset {
	return []domain.Asset{
		{ID: "bitcoin", Symbol: "BTC", Name: "Bitcoin", Balance: 0.5, Price: 65000, ColorTag: "#F7931A"},
		{ID: "ethereum", Symbol: "ETH", Name: "Ethereum", Balance: 5.2, Price: 3500, ColorTag: "#627EEA"},
		{ID: "solana", Symbol: "SOL", Name: "Solana", Balance: 25, Price: 150, ColorTag: "#14F195"},
		{ID: "cardano", Symbol: "ADA", Name: "Cardano", Balance: 1000, Price: 0.5, ColorTag: "#0033AD"},
		{ID: "ripple", Symbol: "XRP", Name: "Ripple", Balance: 2500, Price: 0.6, ColorTag: "#23292F"},
	}
}
