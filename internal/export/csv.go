// Package export renders the full transaction history as CSV.
//
// The row format is fixed by what downstream spreadsheets already ingest:
// the description is always wrapped in quotes with embedded quotes doubled,
// while the remaining fields are written bare. encoding/csv quotes only
// when it must, so rows are assembled by hand to keep the output stable.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/dompet-dev/dompet/internal/dates"
	"github.com/dompet-dev/dompet/internal/model"
)

// Header is the exported CSV header row.
const Header = "Tanggal,Deskripsi,Tipe,Kategori,Jumlah"

// WriteTransactions writes the header and one row per transaction, in
// store order (newest first).
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range txs {
		if _, err := fmt.Fprintln(w, marshalRow(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return nil
}

func marshalRow(tx model.Transaction) string {
	desc := `"` + strings.ReplaceAll(tx.Description, `"`, `""`) + `"`
	return strings.Join([]string{
		tx.Date.String(),
		desc,
		string(tx.Type),
		tx.Category,
		tx.Amount.String(),
	}, ",")
}

// Filename returns the conventional export file name for a given day.
func Filename(today dates.Day) string {
	return "transaksi_dompet_" + today.String() + ".csv"
}
