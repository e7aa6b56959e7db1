package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"crypto-wallet/internal/core/domain"
	"crypto-wallet/internal/core/ports"
	"crypto-wallet/internal/ledger"
	"crypto-wallet/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// convertFeeRate is charged in reference-currency terms before the
	// converted amount is computed.
	convertFeeRate = 0.01

	// minAddressLen gates outgoing transfers only; incoming transfers
	// carry a free-form source label.
	minAddressLen = 10

	defaultSourceLabel = "External Wallet"
)

// WalletServiceImpl implements ports.WalletService. It is the only
// component that mutates the ledger book and appends to the transaction
// log. Each operation is validate-then-commit: validation failures leave
// state untouched, and once commit begins the deltas, the log append and
// the write-through save run as one unit under the mutex.
type WalletServiceImpl struct {
	mu        sync.Mutex
	book      *ledger.Book
	txLog     *ledger.Log
	store     ports.WalletStore
	directory ports.AddressDirectory
	log       zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	book *ledger.Book,
	txLog *ledger.Log,
	store ports.WalletStore,
	directory ports.AddressDirectory,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		book:      book,
		txLog:     txLog,
		store:     store,
		directory: directory,
		log:       log,
	}
}

// LoadWalletState restores the ledger book and transaction log from the
// store. An absent snapshot falls back to the seed asset list.
func LoadWalletState(ctx context.Context, store ports.WalletStore) (*ledger.Book, *ledger.Log, error) {
	snapshot, err := store.LoadSnapshot(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load snapshot: %w", err)
	}
	if len(snapshot) == 0 {
		snapshot = ledger.SeedAssets()
	}

	records, err := store.LoadLog(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load transaction log: %w", err)
	}

	return ledger.NewBook(snapshot), ledger.NewLog(records), nil
}

// Send debits an asset and records an outgoing transfer.
func (s *WalletServiceImpl) Send(ctx context.Context, req ports.SendRequest) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(req.Address) < minAddressLen {
		return nil, apperror.ErrInvalidAddress()
	}
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	asset, err := s.book.Get(req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.Balance < req.Amount {
		return nil, apperror.ErrInsufficientBalance(asset.Symbol)
	}

	// Commit
	if _, err := s.book.ApplyDelta(req.AssetID, -req.Amount); err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		ID:        uuid.New(),
		Kind:      domain.TransactionKindSend,
		Timestamp: time.Now().UTC(),
		Value:     req.Amount * asset.Price,
		AssetID:   asset.ID,
		Symbol:    asset.Symbol,
		Amount:    req.Amount,
		Address:   req.Address,
	}
	s.txLog.Append(txn)

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("asset", asset.ID).
		Float64("amount", req.Amount).
		Float64("value", txn.Value).
		Msg("send committed")

	return &txn, s.persist(ctx)
}

// Receive credits an asset and records an incoming transfer. Incoming
// transfers are not address-gated; an empty source label gets a default.
func (s *WalletServiceImpl) Receive(ctx context.Context, req ports.ReceiveRequest) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	asset, err := s.book.Get(req.AssetID)
	if err != nil {
		return nil, err
	}

	source := req.Source
	if source == "" {
		source = defaultSourceLabel
	}

	// Commit
	if _, err := s.book.ApplyDelta(req.AssetID, req.Amount); err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		ID:        uuid.New(),
		Kind:      domain.TransactionKindReceive,
		Timestamp: time.Now().UTC(),
		Value:     req.Amount * asset.Price,
		AssetID:   asset.ID,
		Symbol:    asset.Symbol,
		Amount:    req.Amount,
		Address:   source,
	}
	s.txLog.Append(txn)

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("asset", asset.ID).
		Float64("amount", req.Amount).
		Msg("receive committed")

	return &txn, s.persist(ctx)
}

// Convert debits the source asset and credits the destination with the
// net converted amount. A 1% fee is taken in reference-currency terms
// before conversion.
func (s *WalletServiceImpl) Convert(ctx context.Context, req ports.ConvertRequest) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.FromAssetID == req.ToAssetID {
		return nil, apperror.ErrInvalidConversion()
	}
	from, err := s.book.Get(req.FromAssetID)
	if err != nil {
		return nil, err
	}
	to, err := s.book.Get(req.ToAssetID)
	if err != nil {
		return nil, err
	}
	if from.Balance < req.Amount {
		return nil, apperror.ErrInsufficientBalance(from.Symbol)
	}

	fromValue := req.Amount * from.Price
	fee := fromValue * convertFeeRate
	toAmount := (fromValue - fee) / to.Price

	// Commit: both deltas are pre-validated, so neither can fail here.
	if _, err := s.book.ApplyDelta(req.FromAssetID, -req.Amount); err != nil {
		return nil, err
	}
	if _, err := s.book.ApplyDelta(req.ToAssetID, toAmount); err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		ID:          uuid.New(),
		Kind:        domain.TransactionKindConvert,
		Timestamp:   time.Now().UTC(),
		Value:       fromValue,
		FromAssetID: from.ID,
		ToAssetID:   to.ID,
		FromSymbol:  from.Symbol,
		ToSymbol:    to.Symbol,
		FromAmount:  req.Amount,
		ToAmount:    toAmount,
	}
	s.txLog.Append(txn)

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("from", from.ID).
		Str("to", to.ID).
		Float64("from_amount", req.Amount).
		Float64("to_amount", toAmount).
		Float64("fee", fee).
		Msg("convert committed")

	return &txn, s.persist(ctx)
}

// SetPrice updates an asset's externally supplied price and persists the
// refreshed snapshot. Balances are untouched and no record is logged.
func (s *WalletServiceImpl) SetPrice(ctx context.Context, assetID string, price float64) (*domain.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if price <= 0 {
		return nil, apperror.Validation("Price must be greater than 0")
	}
	asset, err := s.book.SetPrice(assetID, price)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("asset", assetID).
		Float64("price", price).
		Msg("price updated")

	return &asset, s.persist(ctx)
}

// ListAssets returns all assets in insertion order.
func (s *WalletServiceImpl) ListAssets(ctx context.Context) []domain.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.List()
}

// ListTransactions returns all committed records, newest first.
func (s *WalletServiceImpl) ListTransactions(ctx context.Context) []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txLog.List()
}

// TotalValue returns the portfolio value at current prices.
func (s *WalletServiceImpl) TotalValue(ctx context.Context) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ledger.TotalValue(s.book.List())
}

// AddressFor resolves the receiving address for an asset.
func (s *WalletServiceImpl) AddressFor(assetID string) string {
	return s.directory.AddressFor(assetID)
}

// persist writes both blobs through to the store. A failed save is
// surfaced as PersistenceUnavailable, but the in-memory commit stands:
// the book and log remain the source of truth for the session, so the
// caller receives the committed transaction alongside the error.
func (s *WalletServiceImpl) persist(ctx context.Context) error {
	if err := s.store.SaveSnapshot(ctx, s.book.Snapshot()); err != nil {
		s.log.Warn().Err(err).Msg("snapshot save failed, in-memory state retained")
		return apperror.ErrPersistenceUnavailable(fmt.Errorf("save snapshot: %w", err))
	}
	if err := s.store.SaveLog(ctx, s.txLog.List()); err != nil {
		s.log.Warn().Err(err).Msg("transaction log save failed, in-memory state retained")
		return apperror.ErrPersistenceUnavailable(fmt.Errorf("save transaction log: %w", err))
	}
	return nil
}
