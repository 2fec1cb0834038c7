package usecase

import (
	"github.com/api-sage/payment-engine/internal/domain"
)

// Engine is the transaction dispatcher: it interprets one record at a
// time, in input order, against the Ledger and the DisputeTracker and
// applies or rejects it atomically. It holds no persistent state of its
// own.
//
// Every precondition is validated before the first mutation and the
// only fallible mutation of each flow runs before the infallible state
// machine marks, so a rejected record never leaves partial state behind
// and no rollback is ever needed. A rejection is local to its record:
// Process returns a typed domain error and the run continues.
type Engine struct {
	ledger   *Ledger
	disputes *DisputeTracker
}

func NewEngine(ledger *Ledger, disputes *DisputeTracker) *Engine {
	return &Engine{
		ledger:   ledger,
		disputes: disputes,
	}
}

func (e *Engine) Process(tx domain.Transaction) error {
	// An account exists from the first time any record references its
	// client id, even if that record is rejected.
	account := e.ledger.GetOrCreate(tx.ClientID)

	switch tx.Type {
	case domain.TransactionTypeDeposit:
		return e.deposit(account, tx)
	case domain.TransactionTypeWithdrawal:
		return e.withdraw(account, tx)
	case domain.TransactionTypeDispute:
		return e.dispute(tx)
	case domain.TransactionTypeResolve:
		return e.resolve(tx)
	case domain.TransactionTypeChargeback:
		return e.chargeback(tx)
	default:
		return domain.ErrUnknownTransaction
	}
}

// Snapshot exposes the final state of every known account. Read-only,
// meant to be called after the stream is exhausted.
func (e *Engine) Snapshot() []domain.AccountSnapshot {
	return e.ledger.Snapshot()
}

func (e *Engine) deposit(account *domain.Account, tx domain.Transaction) error {
	if e.disputes.Seen(tx.TransactionID) {
		return domain.ErrDuplicateTransactionID
	}
	if account.Locked {
		return domain.ErrAccountLocked
	}

	if err := e.ledger.CreditAvailable(tx.ClientID, tx.Amount); err != nil {
		return err
	}
	e.disputes.RecordDeposit(tx.TransactionID, tx.Amount, tx.ClientID)

	return nil
}

func (e *Engine) withdraw(account *domain.Account, tx domain.Transaction) error {
	if account.Locked {
		return domain.ErrAccountLocked
	}
	if e.disputes.Seen(tx.TransactionID) {
		return domain.ErrDuplicateTransactionID
	}

	if err := e.ledger.DebitAvailable(tx.ClientID, tx.Amount); err != nil {
		return err
	}

	// Consumed ids keep the global uniqueness invariant, but a
	// withdrawal never becomes disputable.
	e.disputes.MarkConsumed(tx.TransactionID)

	return nil
}

func (e *Engine) dispute(tx domain.Transaction) error {
	amount, err := e.referencedDeposit(tx, domain.DisputeStateNormal)
	if err != nil {
		return err
	}

	if err := e.ledger.MoveAvailableToHeld(tx.ClientID, amount); err != nil {
		return err
	}

	return e.disputes.MarkDisputed(tx.TransactionID)
}

func (e *Engine) resolve(tx domain.Transaction) error {
	amount, err := e.referencedDeposit(tx, domain.DisputeStateDisputed)
	if err != nil {
		return err
	}

	if err := e.ledger.MoveHeldToAvailable(tx.ClientID, amount); err != nil {
		return err
	}

	return e.disputes.MarkResolved(tx.TransactionID)
}

func (e *Engine) chargeback(tx domain.Transaction) error {
	amount, err := e.referencedDeposit(tx, domain.DisputeStateDisputed)
	if err != nil {
		return err
	}

	// The charged back amount leaves the system entirely; it is not
	// returned to available.
	if err := e.ledger.RemoveHeld(tx.ClientID, amount); err != nil {
		return err
	}
	if err := e.disputes.MarkChargedBack(tx.TransactionID); err != nil {
		return err
	}
	e.ledger.Lock(tx.ClientID)

	return nil
}

// referencedDeposit validates that the record references a known
// deposit, owned by the record's client, currently in the given dispute
// state, and returns the stored deposit amount.
func (e *Engine) referencedDeposit(tx domain.Transaction, want domain.DisputeState) (domain.Amount, error) {
	amount, owner, ok := e.disputes.DepositOf(tx.TransactionID)
	if !ok {
		return 0, domain.ErrUnknownTransaction
	}
	if owner != tx.ClientID {
		return 0, domain.ErrInvalidTransition
	}
	if e.disputes.StatusOf(tx.TransactionID) != want {
		return 0, domain.ErrInvalidTransition
	}

	return amount, nil
}
