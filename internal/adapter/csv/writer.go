package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/api-sage/payment-engine/internal/domain"
)

// WriteSnapshot renders the final account snapshot as CSV with the
// columns client,available,held,total,locked. Amount fields carry
// exactly four fractional digits.
func WriteSnapshot(w io.Writer, snapshots []domain.AccountSnapshot) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("write snapshot header: %w", err)
	}

	for _, s := range snapshots {
		row := []string{
			strconv.FormatUint(uint64(s.ClientID), 10),
			s.Available.String(),
			s.Held.String(),
			s.Total.String(),
			strconv.FormatBool(s.Locked),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write snapshot row for client %d: %w", s.ClientID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}
