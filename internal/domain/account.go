package domain

// ClientID identifies a client account. Ids are small unsigned
// integers, globally unique, assigned by the upstream system.
type ClientID uint16

// TransactionID identifies a deposit or withdrawal. Ids are globally
// unique across the whole stream and never reused.
type TransactionID uint32

// Account is the full state of one client. Accounts are created lazily
// the first time a transaction references their client id and are never
// destroyed during a processing run.
type Account struct {
	ClientID ClientID
	Balance  Balance
	Locked   bool
}

func NewAccount(clientID ClientID) *Account {
	return &Account{ClientID: clientID}
}

// Lock marks the account as locked. Locked accounts reject all further
// deposits and withdrawals permanently. Idempotent.
func (a *Account) Lock() {
	a.Locked = true
}

// AccountSnapshot is the read-only view of one account exposed after
// the stream has been fully processed.
type AccountSnapshot struct {
	ClientID  ClientID
	Available Amount
	Held      Amount
	Total     Amount
	Locked    bool
}

func (a *Account) Snapshot() AccountSnapshot {
	return AccountSnapshot{
		ClientID:  a.ClientID,
		Available: a.Balance.Available(),
		Held:      a.Balance.Held(),
		Total:     a.Balance.Total(),
		Locked:    a.Locked,
	}
}
