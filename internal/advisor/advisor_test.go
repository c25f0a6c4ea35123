package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dompet-dev/dompet/internal/dates"
	"github.com/dompet-dev/dompet/internal/model"
)

type stubGen struct {
	reply  string
	err    error
	prompt string
}

func (s *stubGen) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.reply, s.err
}

func sampleState() *model.AppState {
	return &model.AppState{
		Transactions: []model.Transaction{
			{ID: "t1", Date: dates.MustParse("2024-01-05"), Description: "Gaji", Amount: decimal.NewFromInt(1000), Type: model.TypeIncome, Category: "Gaji"},
			{ID: "t2", Date: dates.MustParse("2024-01-10"), Description: "Makan", Amount: decimal.NewFromInt(400), Type: model.TypeExpense, Category: "Makan"},
		},
		Investments: []model.Investment{
			{ID: "i1", Symbol: "BBCA", Name: "Bank Central Asia", Type: model.InvestmentStock, Quantity: decimal.NewFromInt(100), AvgBuyPrice: decimal.NewFromInt(9500), CurrentPrice: decimal.NewFromInt(9700)},
		},
		Goals: []model.SavingsGoal{
			{ID: "g1", Name: "Dana darurat", Type: model.GoalEmergency, TargetAmount: decimal.NewFromInt(1000), CurrentAmount: decimal.NewFromInt(200)},
		},
	}
}

func TestBuildContext_Deterministic(t *testing.T) {
	st := sampleState()
	first := BuildContext(st, "Apakah pengeluaran saya wajar?")
	second := BuildContext(st, "Apakah pengeluaran saya wajar?")
	assert.Equal(t, first, second)
}

func TestBuildContext_Content(t *testing.T) {
	got := BuildContext(sampleState(), "Apakah pengeluaran saya wajar?")

	assert.Contains(t, got, "- Total Pemasukan: Rp1.000")
	assert.Contains(t, got, "- Total Pengeluaran: Rp400")
	assert.Contains(t, got, "- Sisa Saldo Kas: Rp600")
	assert.Contains(t, got, "- Nilai Portofolio Investasi: Rp970.000")
	assert.Contains(t, got, "- Bank Central Asia (Saham): 100 unit @ Rp9.700")
	assert.Contains(t, got, "- Dana darurat (Dana Darurat): Tercapai Rp200 / Target Rp1.000")
	assert.Contains(t, got, `Pertanyaan Pengguna: "Apakah pengeluaran saya wajar?"`)
}

func TestAsk_PassesContextPrompt(t *testing.T) {
	gen := &stubGen{reply: "Kurangi makan di luar."}
	a := New(gen)

	got := a.Ask(context.Background(), "Bagaimana?", sampleState())

	assert.Equal(t, "Kurangi makan di luar.", got)
	require.Contains(t, gen.prompt, "Konteks Keuangan Pengguna:")
	require.Contains(t, gen.prompt, `Pertanyaan Pengguna: "Bagaimana?"`)
}

func TestAsk_GeneratorFailure(t *testing.T) {
	a := New(&stubGen{err: errors.New("quota exceeded")})
	got := a.Ask(context.Background(), "Bagaimana?", sampleState())
	assert.Equal(t, Unavailable, got, "model failure degrades, never propagates")
}

func TestAsk_EmptyReply(t *testing.T) {
	a := New(&stubGen{reply: "  \n"})
	got := a.Ask(context.Background(), "Bagaimana?", sampleState())
	assert.Equal(t, Unavailable, got)
}
