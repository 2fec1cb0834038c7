package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/api-sage/payment-engine/internal/domain"
)

// ErrSkipRecord marks a row that could not be parsed into a valid
// transaction. The caller logs and skips it; the stream never aborts
// over a single bad row.
var ErrSkipRecord = errors.New("Unparseable transaction record")

// Reader streams transaction records out of a CSV source with the
// columns type,client,tx,amount. Rows are read lazily, one at a time,
// so arbitrarily large inputs are never buffered in full.
type Reader struct {
	csv       *csv.Reader
	skipFirst bool
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	return &Reader{csv: cr, skipFirst: true}
}

// Read returns the next transaction in the stream. It returns io.EOF
// once the source is exhausted and wraps any row-local problem in
// ErrSkipRecord so the caller can keep going.
func (r *Reader) Read() (domain.Transaction, error) {
	for {
		row, err := r.csv.Read()
		if err == io.EOF {
			return domain.Transaction{}, io.EOF
		}
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("%w: %s", ErrSkipRecord, err)
		}

		if r.skipFirst {
			r.skipFirst = false
			if isHeader(row) {
				continue
			}
		}

		tx, err := parseRow(row)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("%w: %s", ErrSkipRecord, err)
		}

		return tx, nil
	}
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "type")
}

func parseRow(row []string) (domain.Transaction, error) {
	if len(row) < 3 {
		return domain.Transaction{}, fmt.Errorf("expected at least 3 columns, got %d", len(row))
	}

	txType := domain.TransactionType(strings.ToLower(strings.TrimSpace(row[0])))

	clientID, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid client id %q", row[1])
	}

	txID, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid transaction id %q", row[2])
	}

	tx := domain.Transaction{
		Type:          txType,
		ClientID:      domain.ClientID(clientID),
		TransactionID: domain.TransactionID(txID),
	}

	switch txType {
	case domain.TransactionTypeDeposit, domain.TransactionTypeWithdrawal:
		if len(row) < 4 || strings.TrimSpace(row[3]) == "" {
			return domain.Transaction{}, fmt.Errorf("%s requires an amount", txType)
		}
		amount, err := domain.ParseAmount(row[3])
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("invalid amount %q: %s", row[3], err)
		}
		tx.Amount = amount
	case domain.TransactionTypeDispute, domain.TransactionTypeResolve, domain.TransactionTypeChargeback:
		// The amount column is a placeholder on these rows and is
		// ignored entirely, valid or not.
	default:
		return domain.Transaction{}, fmt.Errorf("unknown transaction type %q", row[0])
	}

	return tx, nil
}
