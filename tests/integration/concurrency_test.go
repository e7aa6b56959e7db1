package integration

import (
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentSends fires parallel sends against a single asset. The
// wallet service serialises commits, so exactly as many sends succeed as
// the balance covers and the balance never goes negative.
func TestConcurrentSends(t *testing.T) {
	app := newTestApp(t)

	const workers = 20
	var succeeded atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, _ := app.do(t, http.MethodPost, "/api/v1/transfers/send", map[string]any{
				"asset_id": "bitcoin",
				"amount":   0.1,
				"address":  btcAddress,
			})
			if status == http.StatusCreated {
				succeeded.Add(1)
			} else {
				assert.Equal(t, http.StatusPaymentRequired, status)
			}
		}()
	}
	wg.Wait()

	// Balance 0.5 covers five 0.1 sends.
	assert.EqualValues(t, 5, succeeded.Load())
	assert.GreaterOrEqual(t, app.balance(t, "bitcoin"), 0.0)

	status, envelope := app.do(t, http.MethodGet, "/api/v1/transactions", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(envelope["data"]), "send")
}
