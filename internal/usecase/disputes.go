package usecase

import (
	"github.com/api-sage/payment-engine/internal/domain"
)

type bookedDeposit struct {
	clientID domain.ClientID
	amount   domain.Amount
	state    domain.DisputeState
}

// DisputeTracker owns the dispute lifecycle of every deposit and the
// global transaction-id registry. Only deposits ever acquire a dispute
// state; withdrawal ids are recorded as consumed so they can never be
// reused, but they never become disputable. Entries only grow, they are
// never removed.
type DisputeTracker struct {
	deposits map[domain.TransactionID]*bookedDeposit
	consumed map[domain.TransactionID]struct{}
}

func NewDisputeTracker() *DisputeTracker {
	return &DisputeTracker{
		deposits: make(map[domain.TransactionID]*bookedDeposit),
		consumed: make(map[domain.TransactionID]struct{}),
	}
}

// Seen reports whether the id was already used by any prior deposit or
// withdrawal.
func (t *DisputeTracker) Seen(txID domain.TransactionID) bool {
	if _, ok := t.deposits[txID]; ok {
		return true
	}
	_, ok := t.consumed[txID]

	return ok
}

// MarkConsumed records a withdrawal id so the global uniqueness
// invariant holds without making the id disputable.
func (t *DisputeTracker) MarkConsumed(txID domain.TransactionID) {
	t.consumed[txID] = struct{}{}
}

// RecordDeposit remembers the amount and owner of a successful deposit
// so a later dispute, resolve or chargeback can recover them without
// re-reading the input stream.
func (t *DisputeTracker) RecordDeposit(txID domain.TransactionID, amount domain.Amount, clientID domain.ClientID) {
	t.deposits[txID] = &bookedDeposit{
		clientID: clientID,
		amount:   amount,
		state:    domain.DisputeStateNormal,
	}
}

// StatusOf returns the dispute state of the deposit, or Unknown if the
// id was never seen as a deposit.
func (t *DisputeTracker) StatusOf(txID domain.TransactionID) domain.DisputeState {
	deposit, ok := t.deposits[txID]
	if !ok {
		return domain.DisputeStateUnknown
	}

	return deposit.state
}

// DepositOf returns the recorded amount and owner of the deposit.
func (t *DisputeTracker) DepositOf(txID domain.TransactionID) (domain.Amount, domain.ClientID, bool) {
	deposit, ok := t.deposits[txID]
	if !ok {
		return 0, 0, false
	}

	return deposit.amount, deposit.clientID, true
}

// MarkDisputed transitions Normal -> Disputed.
func (t *DisputeTracker) MarkDisputed(txID domain.TransactionID) error {
	return t.transition(txID, domain.DisputeStateNormal, domain.DisputeStateDisputed)
}

// MarkResolved transitions Disputed -> Resolved. Terminal.
func (t *DisputeTracker) MarkResolved(txID domain.TransactionID) error {
	return t.transition(txID, domain.DisputeStateDisputed, domain.DisputeStateResolved)
}

// MarkChargedBack transitions Disputed -> ChargedBack. Terminal.
func (t *DisputeTracker) MarkChargedBack(txID domain.TransactionID) error {
	return t.transition(txID, domain.DisputeStateDisputed, domain.DisputeStateChargedBack)
}

func (t *DisputeTracker) transition(txID domain.TransactionID, from, to domain.DisputeState) error {
	deposit, ok := t.deposits[txID]
	if !ok {
		return domain.ErrUnknownTransaction
	}
	if deposit.state != from {
		return domain.ErrInvalidTransition
	}

	deposit.state = to

	return nil
}
