package ledger

import (
	"testing"
	"time"

	"crypto-wallet/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendRecord(assetID string, amount float64) domain.Transaction {
	return domain.Transaction{
		ID:        uuid.New(),
		Kind:      domain.TransactionKindSend,
		Timestamp: time.Now().UTC(),
		AssetID:   assetID,
		Amount:    amount,
	}
}

func TestLog_Append_NewestFirst(t *testing.T) {
	l := NewLog(nil)

	first := sendRecord("bitcoin", 0.1)
	second := sendRecord("ethereum", 1)
	third := sendRecord("solana", 5)

	l.Append(first)
	l.Append(second)
	l.Append(third)

	records := l.List()
	require.Len(t, records, 3)
	assert.Equal(t, third.ID, records[0].ID)
	assert.Equal(t, second.ID, records[1].ID)
	assert.Equal(t, first.ID, records[2].ID)
}

func TestLog_List_ReturnsCopy(t *testing.T) {
	l := NewLog(nil)
	l.Append(sendRecord("bitcoin", 0.1))

	records := l.List()
	records[0].Amount = 999

	assert.Equal(t, 0.1, l.List()[0].Amount, "mutating a listed copy must not touch the log")
}

func TestNewLog_RestoresRecords(t *testing.T) {
	newest := sendRecord("ethereum", 2)
	oldest := sendRecord("bitcoin", 0.3)

	l := NewLog([]domain.Transaction{newest, oldest})
	require.Equal(t, 2, l.Len())

	records := l.List()
	assert.Equal(t, newest.ID, records[0].ID, "restored order is preserved")
	assert.Equal(t, oldest.ID, records[1].ID)
}

func TestNewLog_Empty(t *testing.T) {
	l := NewLog(nil)
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.List())
}
