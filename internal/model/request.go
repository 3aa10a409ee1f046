package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MintRequest is one position to size, read from a JSONL line.
type MintRequest struct {
	ID        string          `json:"id"`
	Amount0   decimal.Decimal `json:"amount0"`
	Amount1   decimal.Decimal `json:"amount1"`
	PriceLow  float64         `json:"price_low"`
	PriceCur  float64         `json:"price_cur"`
	PriceUpp  float64         `json:"price_upp"`
	Decimals0 *uint8          `json:"decimals0,omitempty"`
	Decimals1 *uint8          `json:"decimals1,omitempty"`
}

// TokenDecimals returns the per-token units, falling back to def.
func (r MintRequest) TokenDecimals(def uint8) (uint8, uint8) {
	d0, d1 := def, def
	if r.Decimals0 != nil {
		d0 = *r.Decimals0
	}
	if r.Decimals1 != nil {
		d1 = *r.Decimals1
	}
	return d0, d1
}

// Validate rejects requests that cannot be sized at all.
func (r MintRequest) Validate() error {
	if r.Amount0.IsNegative() || r.Amount1.IsNegative() {
		return fmt.Errorf("amounts must be non-negative")
	}
	return nil
}
