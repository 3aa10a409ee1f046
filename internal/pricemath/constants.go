package pricemath

import "math/big"

const (
	// MinTick is the lowest tick whose price is representable as a Q64.96 sqrt ratio.
	MinTick = -887272
	// MaxTick is the highest tick whose price is representable as a Q64.96 sqrt ratio.
	MaxTick = 887272

	// TickBase is the price ratio between adjacent ticks.
	TickBase = 1.0001

	// TokenDecimals is the fixed-point scale used by Mint for whole-token amounts.
	TokenDecimals = 18

	q96Bits   = 96
	floatPrec = 256
)

var (
	q96       = new(big.Int).Lsh(big.NewInt(1), q96Bits)
	tokenUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(TokenDecimals), nil)
	logBase   = logTickBase()
)

// Q96 returns a fresh copy of 2^96.
func Q96() *big.Int {
	return new(big.Int).Set(q96)
}

// TokenUnit returns a fresh copy of 10^18.
func TokenUnit() *big.Int {
	return new(big.Int).Set(tokenUnit)
}

// ValidTick reports whether t lies within [MinTick, MaxTick].
func ValidTick(t int) bool {
	return t >= MinTick && t <= MaxTick
}
