package domain

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeDispute    TransactionType = "dispute"
	TransactionTypeResolve    TransactionType = "resolve"
	TransactionTypeChargeback TransactionType = "chargeback"
)

// Transaction is one well-typed record from the input stream. Amount is
// only meaningful for deposits and withdrawals; dispute, resolve and
// chargeback records reference the deposit named by TransactionID and
// any amount present in the source encoding has already been discarded.
type Transaction struct {
	Type          TransactionType
	ClientID      ClientID
	TransactionID TransactionID
	Amount        Amount
}

// DisputeState tracks the dispute lifecycle of one deposit.
//
//	Normal --dispute--> Disputed --resolve--> Resolved
//	                          \--chargeback--> ChargedBack
//
// Resolved and ChargedBack are terminal. Unknown is returned for ids
// never seen as a deposit; withdrawals are never disputable.
type DisputeState int

const (
	DisputeStateUnknown DisputeState = iota
	DisputeStateNormal
	DisputeStateDisputed
	DisputeStateResolved
	DisputeStateChargedBack
)

func (s DisputeState) String() string {
	switch s {
	case DisputeStateNormal:
		return "NORMAL"
	case DisputeStateDisputed:
		return "DISPUTED"
	case DisputeStateResolved:
		return "RESOLVED"
	case DisputeStateChargedBack:
		return "CHARGED_BACK"
	default:
		return "UNKNOWN"
	}
}
