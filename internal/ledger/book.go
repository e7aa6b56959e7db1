// Package ledger holds the in-memory authoritative wallet state: the
// asset book and the append-only transaction log. All balance mutation
// goes through Book.ApplyDelta; there is no direct balance setter.
package ledger

import (
	"crypto-wallet/internal/core/domain"
	"crypto-wallet/pkg/apperror"
)

// Book is the authoritative set of asset records. Assets are created once
// at construction and live for the process lifetime; iteration order is
// insertion order.
type Book struct {
	order  []string
	assets map[string]*domain.Asset
}

// NewBook builds a Book from a snapshot. The caller seeds it with either
// a restored snapshot or the default asset list.
func NewBook(snapshot []domain.Asset) *Book {
	b := &Book{
		order:  make([]string, 0, len(snapshot)),
		assets: make(map[string]*domain.Asset, len(snapshot)),
	}
	for _, a := range snapshot {
		if _, exists := b.assets[a.ID]; exists {
			continue
		}
		asset := a
		b.order = append(b.order, a.ID)
		b.assets[a.ID] = &asset
	}
	return b
}

// Get returns a copy of the asset with the given id.
func (b *Book) Get(id string) (domain.Asset, error) {
	a, ok := b.assets[id]
	if !ok {
		return domain.Asset{}, apperror.ErrAssetNotFound(id)
	}
	return *a, nil
}

// List returns copies of all assets in insertion order.
func (b *Book) List() []domain.Asset {
	out := make([]domain.Asset, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.assets[id])
	}
	return out
}

// ApplyDelta adjusts an asset's balance by delta and returns the updated
// asset. The balance invariant is enforced here: a delta that would take
// the balance below zero is rejected and nothing changes.
func (b *Book) ApplyDelta(id string, delta float64) (domain.Asset, error) {
	a, ok := b.assets[id]
	if !ok {
		return domain.Asset{}, apperror.ErrAssetNotFound(id)
	}
	next := a.Balance + delta
	if next < 0 {
		return domain.Asset{}, apperror.ErrInsufficientBalance(a.Symbol)
	}
	a.Balance = next
	return *a, nil
}

// SetPrice updates an asset's externally supplied unit price.
func (b *Book) SetPrice(id string, price float64) (domain.Asset, error) {
	a, ok := b.assets[id]
	if !ok {
		return domain.Asset{}, apperror.ErrAssetNotFound(id)
	}
	a.Price = price
	return *a, nil
}

// Snapshot returns a deep copy of the book suitable for persistence.
func (b *Book) Snapshot() []domain.Asset {
	return b.List()
}

// TotalValue sums balance * price over a set of assets. Pure function,
// recomputed on demand.
func TotalValue(assets []domain.Asset) float64 {
	var total float64
	for _, a := range assets {
		total += a.Balance * a.Price
	}
	return total
}
