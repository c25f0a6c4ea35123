package model

import "github.com/shopspring/decimal"

// InvestmentType classifies an investment holding.
type InvestmentType string

const (
	InvestmentStock  InvestmentType = "STOCK"
	InvestmentCrypto InvestmentType = "CRYPTO"
	InvestmentGold   InvestmentType = "GOLD"
)

// Valid reports whether t is a known investment type.
func (t InvestmentType) Valid() bool {
	switch t {
	case InvestmentStock, InvestmentCrypto, InvestmentGold:
		return true
	}
	return false
}

// Label returns the display name for the type.
func (t InvestmentType) Label() string {
	switch t {
	case InvestmentStock:
		return "Saham"
	case InvestmentCrypto:
		return "Crypto"
	case InvestmentGold:
		return "Emas"
	}
	return string(t)
}

// Investment is a single holding. CurrentPrice starts equal to
// AvgBuyPrice and is replaced by the price feed afterwards.
type Investment struct {
	ID           string          `json:"id"`
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Type         InvestmentType  `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	AvgBuyPrice  decimal.Decimal `json:"avgBuyPrice"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
}

// Value returns quantity x current price.
func (i Investment) Value() decimal.Decimal { return i.Quantity.Mul(i.CurrentPrice) }

// Cost returns the cost basis, quantity x average buy price.
func (i Investment) Cost() decimal.Decimal { return i.Quantity.Mul(i.AvgBuyPrice) }
