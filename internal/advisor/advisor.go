package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"github.com/dompet-dev/dompet/internal/model"
	"github.com/dompet-dev/dompet/internal/render"
	"github.com/dompet-dev/dompet/internal/report"
)

// Unavailable is the reply shown when the model cannot be reached. Model
// failures degrade to this text; they never surface as fatal errors.
const Unavailable = "Maaf, asisten AI sedang tidak tersedia saat ini. Coba lagi nanti."

// Generator is the model boundary: one prompt in, one reply out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Advisor turns a user question plus the current snapshot into advice text.
type Advisor struct {
	gen Generator
}

// New creates an Advisor over a Generator.
func New(gen Generator) *Advisor {
	return &Advisor{gen: gen}
}

// Ask builds the context prompt from the snapshot and asks the model.
// Any generation error or empty reply yields Unavailable.
func (a *Advisor) Ask(ctx context.Context, query string, st *model.AppState) string {
	reply, err := a.gen.Generate(ctx, BuildContext(st, query))
	if err != nil || strings.TrimSpace(reply) == "" {
		return Unavailable
	}
	return reply
}

// BuildContext renders the deterministic plain-text summary of the
// snapshot that accompanies every question: totals over the full history,
// one line per holding, one line per goal.
func BuildContext(st *model.AppState, query string) string {
	income, expense := report.FlowTotals(st.Transactions)

	var portfolio decimal.Decimal
	for _, inv := range st.Investments {
		portfolio = portfolio.Add(inv.Value())
	}

	var sb strings.Builder
	sb.WriteString("Konteks Keuangan Pengguna:\n")
	fmt.Fprintf(&sb, "- Total Pemasukan: %s\n", render.IDR(income))
	fmt.Fprintf(&sb, "- Total Pengeluaran: %s\n", render.IDR(expense))
	fmt.Fprintf(&sb, "- Sisa Saldo Kas: %s\n", render.IDR(income.Sub(expense)))
	fmt.Fprintf(&sb, "- Nilai Portofolio Investasi: %s\n", render.IDR(portfolio))

	sb.WriteString("\nDetail Investasi:\n")
	for _, inv := range st.Investments {
		fmt.Fprintf(&sb, "- %s (%s): %s unit @ %s\n",
			inv.Name, inv.Type.Label(), inv.Quantity.String(), render.IDR(inv.CurrentPrice))
	}

	sb.WriteString("\nTujuan Tabungan:\n")
	for _, g := range st.Goals {
		fmt.Fprintf(&sb, "- %s (%s): Tercapai %s / Target %s\n",
			g.Name, g.Type.Label(), render.IDR(g.CurrentAmount), render.IDR(g.TargetAmount))
	}

	fmt.Fprintf(&sb, "\nPertanyaan Pengguna: %q\n", query)
	sb.WriteString("\nBerikan saran keuangan yang bijak, ringkas, dan dapat ditindaklanjuti dalam Bahasa Indonesia. Fokus pada alokasi aset, manajemen risiko, dan pencapaian tujuan.\n")
	return sb.String()
}

// Gemini is the Generator backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates the Gemini generator. The client reads its API key
// from the environment (GEMINI_API_KEY).
func NewGemini(ctx context.Context, modelName string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing Gemini client: %w", err)
	}
	return &Gemini{client: client, model: modelName}, nil
}

// Generate sends the prompt and returns the model's text reply.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generating advice: %w", err)
	}
	return resp.Text(), nil
}
