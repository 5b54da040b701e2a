package domain

// JournalBatch is the set of records changed by one committed operation.
// It is written after the in-memory commit; the in-memory state stays authoritative.
type JournalBatch struct {
	AccountID    string
	Wallets      []Wallet
	Transactions []Transaction
	Escrows      []Escrow
}

// IsEmpty returns true when the batch carries nothing to persist.
func (b *JournalBatch) IsEmpty() bool {
	return len(b.Wallets) == 0 && len(b.Transactions) == 0 && len(b.Escrows) == 0
}

// AccountSnapshot is the persisted state of an account used to restore a session.
type AccountSnapshot struct {
	AccountID    string
	Wallets      []Wallet
	Transactions []Transaction // oldest first
	Escrows      []Escrow
}
