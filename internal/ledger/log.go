package ledger

import "crypto-wallet/internal/core/domain"

// Log is the append-only record of committed movements, kept newest
// first. Records are frozen on insertion; there is no mutation or
// deletion API.
type Log struct {
	records []domain.Transaction
}

// NewLog builds a Log from restored records (already newest first), or an
// empty log when records is nil.
func NewLog(records []domain.Transaction) *Log {
	l := &Log{}
	if len(records) > 0 {
		l.records = make([]domain.Transaction, len(records))
		copy(l.records, records)
	}
	return l
}

// Append prepends a committed transaction so the most recent record is
// retrievable first.
func (l *Log) Append(tx domain.Transaction) {
	l.records = append([]domain.Transaction{tx}, l.records...)
}

// List returns a copy of all records, newest first.
func (l *Log) List() []domain.Transaction {
	out := make([]domain.Transaction, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Log) Len() int {
	return len(l.records)
}
