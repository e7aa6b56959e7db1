package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	httpHandler "crypto-wallet/internal/adapter/http/handler"
	redisStorage "crypto-wallet/internal/adapter/storage/redis"
	"crypto-wallet/internal/core/ports"
	"crypto-wallet/internal/service"
	"crypto-wallet/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack over miniredis. It exercises
// the real HTTP layer, middleware, handlers, wallet service, and the
// Redis wallet store end-to-end.

type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
}

const btcAddress = "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh"

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	return newTestAppOn(t, mr)
}

// newTestAppOn builds a fresh stack over an existing miniredis, so tests
// can simulate a process restart against surviving storage.
func newTestAppOn(t *testing.T, mr *miniredis.Miniredis) *testApp {
	t.Helper()

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	store := redisStorage.NewWalletStore(rdb)
	log := logger.New("error", false)

	book, txLog, err := service.LoadWalletState(t.Context(), store)
	require.NoError(t, err)

	walletSvc := service.NewWalletService(book, txLog, store, service.NewAddressDirectory(nil), log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{server: server, redis: mr}
}

func (app *testApp) do(t *testing.T, method, path string, body any) (int, map[string]json.RawMessage) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, app.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func (app *testApp) assets(t *testing.T) []map[string]any {
	t.Helper()
	status, envelope := app.do(t, http.MethodGet, "/api/v1/assets", nil)
	require.Equal(t, http.StatusOK, status)

	var assets []map[string]any
	require.NoError(t, json.Unmarshal(envelope["data"], &assets))
	return assets
}

func (app *testApp) balance(t *testing.T, assetID string) float64 {
	t.Helper()
	for _, a := range app.assets(t) {
		if a["id"] == assetID {
			return a["balance"].(float64)
		}
	}
	t.Fatalf("asset %s not listed", assetID)
	return 0
}

func TestSeededWallet(t *testing.T) {
	app := newTestApp(t)

	assets := app.assets(t)
	require.Len(t, assets, 5)
	assert.Equal(t, "bitcoin", assets[0]["id"], "seed order is preserved")
	assert.Equal(t, "ripple", assets[4]["id"])

	status, envelope := app.do(t, http.MethodGet, "/api/v1/portfolio", nil)
	require.Equal(t, http.StatusOK, status)

	var portfolio struct {
		TotalValue float64 `json:"total_value"`
	}
	require.NoError(t, json.Unmarshal(envelope["data"], &portfolio))
	assert.InDelta(t, 56450, portfolio.TotalValue, 1e-6)
}

func TestTransferFlow(t *testing.T) {
	app := newTestApp(t)

	// O1: send 0.1 BTC
	status, _ := app.do(t, http.MethodPost, "/api/v1/transfers/send", map[string]any{
		"asset_id": "bitcoin",
		"amount":   0.1,
		"address":  btcAddress,
	})
	require.Equal(t, http.StatusCreated, status)
	assert.InDelta(t, 0.4, app.balance(t, "bitcoin"), 1e-12)

	// O2: receive 3 SOL without a source label
	status, envelope := app.do(t, http.MethodPost, "/api/v1/transfers/receive", map[string]any{
		"asset_id": "solana",
		"amount":   3,
	})
	require.Equal(t, http.StatusCreated, status)

	var received map[string]any
	require.NoError(t, json.Unmarshal(envelope["data"], &received))
	assert.Equal(t, "External Wallet", received["address"])
	assert.InDelta(t, 28, app.balance(t, "solana"), 1e-12)

	// O3: convert 100 ADA to XRP
	status, _ = app.do(t, http.MethodPost, "/api/v1/transfers/convert", map[string]any{
		"from_asset_id": "cardano",
		"to_asset_id":   "ripple",
		"amount":        100,
	})
	require.Equal(t, http.StatusCreated, status)

	// The log lists newest first: O3, O2, O1.
	status, envelope = app.do(t, http.MethodGet, "/api/v1/transactions", nil)
	require.Equal(t, http.StatusOK, status)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(envelope["data"], &records))
	require.Len(t, records, 3)
	assert.Equal(t, "convert", records[0]["kind"])
	assert.Equal(t, "receive", records[1]["kind"])
	assert.Equal(t, "send", records[2]["kind"])
}

func TestConvertFee(t *testing.T) {
	app := newTestApp(t)

	status, envelope := app.do(t, http.MethodPost, "/api/v1/transfers/convert", map[string]any{
		"from_asset_id": "bitcoin",
		"to_asset_id":   "ethereum",
		"amount":        0.1,
	})
	require.Equal(t, http.StatusCreated, status)

	var txn map[string]any
	require.NoError(t, json.Unmarshal(envelope["data"], &txn))

	// 0.1 BTC at 65000 is 6500; minus the 1% fee leaves 6435, which buys
	// 6435 / 3500 ETH.
	assert.InDelta(t, 1.83857142857, txn["to_amount"].(float64), 1e-9)

	// Converting the proceeds back loses value to the second fee.
	status, envelope = app.do(t, http.MethodPost, "/api/v1/transfers/convert", map[string]any{
		"from_asset_id": "ethereum",
		"to_asset_id":   "bitcoin",
		"amount":        txn["to_amount"],
	})
	require.Equal(t, http.StatusCreated, status)
	require.NoError(t, json.Unmarshal(envelope["data"], &txn))
	assert.Less(t, txn["to_amount"].(float64), 0.1)
	assert.Less(t, app.balance(t, "bitcoin"), 0.5)
}

func TestValidationErrors(t *testing.T) {
	app := newTestApp(t)

	errorCode := func(envelope map[string]json.RawMessage) string {
		var code string
		_ = json.Unmarshal(envelope["error_code"], &code)
		return code
	}

	// Short address
	status, envelope := app.do(t, http.MethodPost, "/api/v1/transfers/send", map[string]any{
		"asset_id": "bitcoin",
		"amount":   0.1,
		"address":  "short",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "WAL_002", errorCode(envelope))

	// Unknown asset
	status, envelope = app.do(t, http.MethodPost, "/api/v1/transfers/send", map[string]any{
		"asset_id": "dogecoin",
		"amount":   1,
		"address":  btcAddress,
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "WAL_003", errorCode(envelope))

	// Insufficient balance
	status, envelope = app.do(t, http.MethodPost, "/api/v1/transfers/send", map[string]any{
		"asset_id": "bitcoin",
		"amount":   10,
		"address":  btcAddress,
	})
	assert.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, "WAL_004", errorCode(envelope))

	// Same-asset conversion
	status, envelope = app.do(t, http.MethodPost, "/api/v1/transfers/convert", map[string]any{
		"from_asset_id": "bitcoin",
		"to_asset_id":   "bitcoin",
		"amount":        0.1,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "WAL_005", errorCode(envelope))

	// Rejected operations never leave a record or move a balance.
	status, envelope = app.do(t, http.MethodGet, "/api/v1/transactions", nil)
	require.Equal(t, http.StatusOK, status)
	var records []map[string]any
	require.NoError(t, json.Unmarshal(envelope["data"], &records))
	assert.Empty(t, records)
	assert.Equal(t, 0.5, app.balance(t, "bitcoin"))
}

func TestAddressAndPrice(t *testing.T) {
	app := newTestApp(t)

	status, envelope := app.do(t, http.MethodGet, "/api/v1/assets/bitcoin/address", nil)
	require.Equal(t, http.StatusOK, status)
	var addr map[string]string
	require.NoError(t, json.Unmarshal(envelope["data"], &addr))
	assert.Equal(t, btcAddress, addr["address"])

	status, envelope = app.do(t, http.MethodGet, "/api/v1/assets/dogecoin/address", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(envelope["data"], &addr))
	assert.Equal(t, "Address not available", addr["address"])

	status, envelope = app.do(t, http.MethodPut, "/api/v1/assets/bitcoin/price", map[string]any{
		"price": 70000,
	})
	require.Equal(t, http.StatusOK, status)
	var asset map[string]any
	require.NoError(t, json.Unmarshal(envelope["data"], &asset))
	assert.Equal(t, 70000.0, asset["price"])
	assert.Equal(t, 0.5, asset["balance"], "a price refresh never touches balances")
}

func TestStateSurvivesRestart(t *testing.T) {
	mr := miniredis.RunT(t)
	app := newTestAppOn(t, mr)

	status, _ := app.do(t, http.MethodPost, "/api/v1/transfers/send", map[string]any{
		"asset_id": "bitcoin",
		"amount":   0.2,
		"address":  btcAddress,
	})
	require.Equal(t, http.StatusCreated, status)

	// A fresh stack over the same Redis restores the saved state instead
	// of reseeding.
	restarted := newTestAppOn(t, mr)
	assert.InDelta(t, 0.3, restarted.balance(t, "bitcoin"), 1e-12)

	status, envelope := restarted.do(t, http.MethodGet, "/api/v1/transactions", nil)
	require.Equal(t, http.StatusOK, status)
	var records []map[string]any
	require.NoError(t, json.Unmarshal(envelope["data"], &records))
	require.Len(t, records, 1)
	assert.Equal(t, "send", records[0]["kind"])
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	app.redis.Close()

	resp2, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp2.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(fmt.Sprintf("%s/api/v1/unknown", app.server.URL))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
