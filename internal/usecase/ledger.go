package usecase

import (
	"sort"

	"github.com/api-sage/payment-engine/internal/domain"
)

// Ledger owns every account keyed by client id. All account state is
// mutated exclusively through its operations; no operation panics on
// invalid input, every failure mode is a typed domain error the caller
// inspects.
type Ledger struct {
	accounts map[domain.ClientID]*domain.Account
}

func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[domain.ClientID]*domain.Account),
	}
}

// GetOrCreate returns the account for clientID, creating a zeroed,
// unlocked account the first time the id is referenced. Never fails.
func (l *Ledger) GetOrCreate(clientID domain.ClientID) *domain.Account {
	account, ok := l.accounts[clientID]
	if !ok {
		account = domain.NewAccount(clientID)
		l.accounts[clientID] = account
	}

	return account
}

// CreditAvailable increases the account's available funds. It succeeds
// even on a locked account: a dispute resolution still has to be able
// to move funds after a chargeback locked the owner.
func (l *Ledger) CreditAvailable(clientID domain.ClientID, amount domain.Amount) error {
	return l.GetOrCreate(clientID).Balance.Credit(amount)
}

// DebitAvailable decreases the account's available funds, failing with
// ErrInsufficientFunds if they cannot cover the amount.
func (l *Ledger) DebitAvailable(clientID domain.ClientID, amount domain.Amount) error {
	return l.GetOrCreate(clientID).Balance.Debit(amount)
}

// MoveAvailableToHeld places a dispute hold on the amount.
func (l *Ledger) MoveAvailableToHeld(clientID domain.ClientID, amount domain.Amount) error {
	return l.GetOrCreate(clientID).Balance.Hold(amount)
}

// MoveHeldToAvailable releases a dispute hold back to available funds.
func (l *Ledger) MoveHeldToAvailable(clientID domain.ClientID, amount domain.Amount) error {
	return l.GetOrCreate(clientID).Balance.Release(amount)
}

// RemoveHeld withdraws held funds from the account entirely; used only
// by a chargeback.
func (l *Ledger) RemoveHeld(clientID domain.ClientID, amount domain.Amount) error {
	return l.GetOrCreate(clientID).Balance.RemoveHeld(amount)
}

// Lock permanently locks the account. Idempotent.
func (l *Ledger) Lock(clientID domain.ClientID) {
	l.GetOrCreate(clientID).Lock()
}

// Snapshot returns the state of every known account, zero balances
// included, sorted by client id so output is deterministic.
func (l *Ledger) Snapshot() []domain.AccountSnapshot {
	snapshots := make([]domain.AccountSnapshot, 0, len(l.accounts))
	for _, account := range l.accounts {
		snapshots = append(snapshots, account.Snapshot())
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].ClientID < snapshots[j].ClientID
	})

	return snapshots
}
