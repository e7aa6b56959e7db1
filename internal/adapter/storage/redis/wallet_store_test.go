package redis

import (
	"context"
	"testing"
	"time"

	"crypto-wallet/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*WalletStore, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	return NewWalletStore(client), s
}

func TestWalletStore_SnapshotRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	// Empty store => nil, nil
	assets, err := store.LoadSnapshot(ctx)
	assert.NoError(t, err)
	assert.Nil(t, assets)

	saved := []domain.Asset{
		{ID: "bitcoin", Symbol: "BTC", Name: "Bitcoin", Balance: 0.5, Price: 65000, ColorTag: "#F7931A"},
		{ID: "ethereum", Symbol: "ETH", Name: "Ethereum", Balance: 5.2, Price: 3500, ColorTag: "#627EEA"},
	}
	require.NoError(t, store.SaveSnapshot(ctx, saved))

	assets, err = store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, assets)
}

func TestWalletStore_SnapshotOverwrite(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := []domain.Asset{{ID: "bitcoin", Symbol: "BTC", Balance: 0.5, Price: 65000}}
	require.NoError(t, store.SaveSnapshot(ctx, first))

	second := []domain.Asset{{ID: "bitcoin", Symbol: "BTC", Balance: 0.4, Price: 65000}}
	require.NoError(t, store.SaveSnapshot(ctx, second))

	assets, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, assets, "a save replaces the whole blob")
}

func TestWalletStore_LogRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	records, err := store.LoadLog(ctx)
	assert.NoError(t, err)
	assert.Nil(t, records)

	saved := []domain.Transaction{
		{
			ID:        uuid.New(),
			Kind:      domain.TransactionKindConvert,
			Timestamp: time.Now().UTC().Truncate(time.Second),
			Value:     6500,
			FromAssetID: "bitcoin", ToAssetID: "ethereum",
			FromSymbol: "BTC", ToSymbol: "ETH",
			FromAmount: 0.1, ToAmount: 1.8385714285714285,
		},
		{
			ID:        uuid.New(),
			Kind:      domain.TransactionKindSend,
			Timestamp: time.Now().UTC().Truncate(time.Second),
			Value:     3500,
			AssetID:   "ethereum", Symbol: "ETH", Amount: 1,
			Address: "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
		},
	}
	require.NoError(t, store.SaveLog(ctx, saved))

	records, err = store.LoadLog(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, records, "stored order survives the round trip")
}

func TestWalletStore_CorruptBlob(t *testing.T) {
	store, s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set("wallet:snapshot", "not-json"))

	_, err := store.LoadSnapshot(ctx)
	assert.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	hc := NewHealthCheck(client)

	assert.Equal(t, "redis", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))

	s.Close()
	assert.Error(t, hc.Ping(context.Background()))
}
