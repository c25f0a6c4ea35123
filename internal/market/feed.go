package market

import (
	"context"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dompet-dev/dompet/internal/model"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Book is the slice of the store the feed needs: read the latest snapshot,
// swap in new prices atomically.
type Book interface {
	State() *model.AppState
	SetPrices(map[string]decimal.Decimal)
}

// Feed simulates market movement: at a fixed interval every holding's
// current price moves by an independent random factor in [0.99, 1.01] and
// is rounded to the nearest whole currency unit. Each tick computes
// entirely from the latest snapshot, so stopping the feed needs no cleanup.
type Feed struct {
	book     Book
	interval time.Duration
	mul      func() float64
}

// NewFeed creates a feed over book ticking at the given interval.
func NewFeed(book Book, interval time.Duration) *Feed {
	return &Feed{
		book:     book,
		interval: interval,
		mul:      func() float64 { return 0.99 + rand.Float64()*0.02 },
	}
}

// Run ticks until ctx is cancelled.
func (f *Feed) Run(ctx context.Context) {
	logger.Info().Dur("interval", f.interval).Msg("price feed started")
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("price feed stopped")
			return
		case <-ticker.C:
			f.tick()
		}
	}
}

func (f *Feed) tick() {
	st := f.book.State()
	prices := NextPrices(st.Investments, f.mul)
	if len(prices) == 0 {
		return
	}
	f.book.SetPrices(prices)
	logger.Debug().Int("holdings", len(prices)).Msg("prices updated")
}

// NextPrices computes the post-tick price for each holding, keyed by
// investment id. mul is called once per holding and must return a factor
// in [0.99, 1.01]; the result is rounded to whole currency units.
func NextPrices(invs []model.Investment, mul func() float64) map[string]decimal.Decimal {
	prices := make(map[string]decimal.Decimal, len(invs))
	for _, inv := range invs {
		factor := decimal.NewFromFloat(mul())
		prices[inv.ID] = inv.CurrentPrice.Mul(factor).Round(0)
	}
	return prices
}
