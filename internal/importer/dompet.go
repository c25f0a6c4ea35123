package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/dompet-dev/dompet/internal/dates"
	"github.com/dompet-dev/dompet/internal/model"
)

// DompetParser reads the CSV format produced by the export command
// (Tanggal,Deskripsi,Tipe,Kategori,Jumlah).
type DompetParser struct{}

const (
	numFields = 5
	colDate   = 0
	colDesc   = 1
	colType   = 2
	colCat    = 3
	colAmount = 4
)

// Format returns the parser's registry key.
func (*DompetParser) Format() string { return "dompet" }

// Parse reads all rows after the header. Rows keep file order.
func (*DompetParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transaction CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txs []model.Transaction
	for i, rec := range records[1:] {
		tx, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func unmarshalRow(rec []string) (model.Transaction, error) {
	day, err := dates.Parse(rec[colDate])
	if err != nil {
		return model.Transaction{}, err
	}

	typ := model.TransactionType(rec[colType])
	if !typ.Valid() {
		return model.Transaction{}, fmt.Errorf("unknown transaction type %q", rec[colType])
	}

	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}
	if amount.IsNegative() {
		return model.Transaction{}, fmt.Errorf("negative amount %s", amount)
	}

	return model.Transaction{
		Date:        day,
		Description: rec[colDesc],
		Amount:      amount,
		Type:        typ,
		Category:    rec[colCat],
	}, nil
}
