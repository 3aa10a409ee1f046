package pricemath

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Token identifies one side of a pool.
type Token int

const (
	Token0 Token = iota
	Token1
)

func (t Token) String() string {
	switch t {
	case Token0:
		return "token0"
	case Token1:
		return "token1"
	default:
		return fmt.Sprintf("token(%d)", int(t))
	}
}

// MintResult is the sizing of a liquidity position. Liquidity, Amount0 and
// Amount1 are the position itself; the remaining fields describe how it was
// derived.
type MintResult struct {
	Liquidity *big.Int
	Amount0   decimal.Decimal
	Amount1   decimal.Decimal

	Amount0Raw      *big.Int
	Amount1Raw      *big.Int
	SqrtPriceLowX96 *big.Int
	SqrtPriceCurX96 *big.Int
	SqrtPriceUppX96 *big.Int
	// Binding is the token whose budget limited the liquidity.
	Binding Token
}

// Mint sizes the largest position over [priceLow, priceUpp] that stays within
// both whole-token budgets at priceCur, using 18-decimal units for both
// tokens.
//
// priceLow <= priceCur <= priceUpp is required; ErrPriceOutOfRange is
// returned otherwise. A current price sitting exactly on a bound leaves one
// leg with zero width and fails with ErrDivisionByZero.
func Mint(amount0, amount1 decimal.Decimal, priceLow, priceCur, priceUpp float64) (MintResult, error) {
	return MintWithDecimals(amount0, amount1, TokenDecimals, TokenDecimals, priceLow, priceCur, priceUpp)
}

// MintWithDecimals is Mint with an explicit unit per token.
func MintWithDecimals(amount0, amount1 decimal.Decimal, decimals0, decimals1 uint8, priceLow, priceCur, priceUpp float64) (MintResult, error) {
	sqrtLow, err := PriceToSqrtPriceX96(priceLow)
	if err != nil {
		return MintResult{}, fmt.Errorf("price low: %w", err)
	}
	sqrtCur, err := PriceToSqrtPriceX96(priceCur)
	if err != nil {
		return MintResult{}, fmt.Errorf("price cur: %w", err)
	}
	sqrtUpp, err := PriceToSqrtPriceX96(priceUpp)
	if err != nil {
		return MintResult{}, fmt.Errorf("price upp: %w", err)
	}
	if priceCur < priceLow || priceCur > priceUpp {
		return MintResult{}, fmt.Errorf("%w: %v not in [%v, %v]", ErrPriceOutOfRange, priceCur, priceLow, priceUpp)
	}

	raw0 := ScaleAmount(amount0, decimals0)
	raw1 := ScaleAmount(amount1, decimals1)

	liq0, err := Liquidity0X96(raw0, sqrtCur, sqrtUpp)
	if err != nil {
		return MintResult{}, fmt.Errorf("liquidity0: %w", err)
	}
	liq1, err := Liquidity1X96(raw1, sqrtCur, sqrtLow)
	if err != nil {
		return MintResult{}, fmt.Errorf("liquidity1: %w", err)
	}

	binding := Token0
	bound := liq0
	if liq1.Cmp(liq0) < 0 {
		binding = Token1
		bound = liq1
	}
	liq := FloorLiquidity(bound)

	used0, err := CalcAmount0(liq, sqrtCur, sqrtUpp)
	if err != nil {
		return MintResult{}, fmt.Errorf("amount0: %w", err)
	}
	used1, err := CalcAmount1(liq, sqrtLow, sqrtCur)
	if err != nil {
		return MintResult{}, fmt.Errorf("amount1: %w", err)
	}

	return MintResult{
		Liquidity:       liq,
		Amount0:         DescaleAmount(used0, decimals0),
		Amount1:         DescaleAmount(used1, decimals1),
		Amount0Raw:      used0,
		Amount1Raw:      used1,
		SqrtPriceLowX96: sqrtLow,
		SqrtPriceCurX96: sqrtCur,
		SqrtPriceUppX96: sqrtUpp,
		Binding:         binding,
	}, nil
}

// ScaleAmount converts whole tokens to base units, dropping any fraction
// finer than one unit.
func ScaleAmount(amount decimal.Decimal, decimals uint8) *big.Int {
	return amount.Shift(int32(decimals)).BigInt()
}

// DescaleAmount converts base units back to whole tokens.
func DescaleAmount(raw *big.Int, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(raw, -int32(decimals))
}
