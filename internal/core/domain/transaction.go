package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind represents the kind of balance movement.
type TransactionKind string

const (
	TransactionKindSend    TransactionKind = "send"
	TransactionKindReceive TransactionKind = "receive"
	TransactionKindConvert TransactionKind = "convert"
)

// Transaction is an immutable log entry describing one committed balance
// movement. Value is the reference-currency value at commit time. The
// kind-specific fields follow the persisted blob layout: send and receive
// fill AssetID/Symbol/Amount/Address, convert fills the From*/To* fields.
type Transaction struct {
	ID        uuid.UUID       `json:"id"`
	Kind      TransactionKind `json:"kind"`
	Timestamp time.Time       `json:"timestamp"`
	Value     float64         `json:"value"`

	AssetID string  `json:"assetId,omitempty"`
	Symbol  string  `json:"symbol,omitempty"`
	Amount  float64 `json:"amount,omitempty"`
	Address string  `json:"address,omitempty"`

	FromAssetID string  `json:"fromAssetId,omitempty"`
	ToAssetID   string  `json:"toAssetId,omitempty"`
	FromSymbol  string  `json:"fromSymbol,omitempty"`
	ToSymbol    string  `json:"toSymbol,omitempty"`
	FromAmount  float64 `json:"fromAmount,omitempty"`
	ToAmount    float64 `json:"toAmount,omitempty"`
}

// IsTransfer returns true for movements against a single asset.
func (t *Transaction) IsTransfer() bool {
	return t.Kind == TransactionKindSend || t.Kind == TransactionKindReceive
}
