package importer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dompet-dev/dompet/internal/dates"
	"github.com/dompet-dev/dompet/internal/export"
	"github.com/dompet-dev/dompet/internal/model"
)

func TestDompetParser_Parse(t *testing.T) {
	input := strings.Join([]string{
		"Tanggal,Deskripsi,Tipe,Kategori,Jumlah",
		`2024-01-10,"Makan siang",EXPENSE,Makan,400`,
		`2024-01-05,"Gaji bulanan",INCOME,Gaji,1000`,
	}, "\n")

	txs, err := (&DompetParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, txs, 2)
	assert.Equal(t, "2024-01-10", txs[0].Date.String())
	assert.Equal(t, "Makan siang", txs[0].Description)
	assert.Equal(t, model.TypeExpense, txs[0].Type)
	assert.Equal(t, "Makan", txs[0].Category)
	assert.True(t, txs[0].Amount.Equal(decimal.NewFromInt(400)))
	assert.Empty(t, txs[0].ID, "ids are assigned by the store, not the parser")
}

func TestDompetParser_ExportRoundTrip(t *testing.T) {
	orig := []model.Transaction{
		{Date: dates.MustParse("2024-01-10"), Description: `He said "hi"`, Amount: decimal.NewFromInt(400), Type: model.TypeExpense, Category: "Makan"},
		{Date: dates.MustParse("2024-01-05"), Description: "Gaji, bulanan", Amount: decimal.NewFromInt(1000), Type: model.TypeIncome, Category: "Gaji"},
	}

	var sb strings.Builder
	require.NoError(t, export.WriteTransactions(&sb, orig))

	txs, err := (&DompetParser{}).Parse(strings.NewReader(sb.String()))
	require.NoError(t, err)

	require.Len(t, txs, 2)
	for i := range orig {
		assert.Equal(t, orig[i].Date, txs[i].Date)
		assert.Equal(t, orig[i].Description, txs[i].Description)
		assert.Equal(t, orig[i].Type, txs[i].Type)
		assert.Equal(t, orig[i].Category, txs[i].Category)
		assert.True(t, orig[i].Amount.Equal(txs[i].Amount))
	}
}

func TestDompetParser_BadRows(t *testing.T) {
	cases := []struct {
		name  string
		row   string
	}{
		{"bad date", `10-01-2024,x,EXPENSE,Makan,400`},
		{"bad type", `2024-01-10,x,TRANSFER,Makan,400`},
		{"bad amount", `2024-01-10,x,EXPENSE,Makan,abc`},
		{"negative amount", `2024-01-10,x,EXPENSE,Makan,-400`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := "Tanggal,Deskripsi,Tipe,Kategori,Jumlah\n" + tc.row
			_, err := (&DompetParser{}).Parse(strings.NewReader(input))
			require.Error(t, err)
		})
	}
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("dompet"))
	assert.NotNil(t, r.Get("DOMPET"), "lookup is case-insensitive")
	assert.Nil(t, r.Get("chase"))
}
