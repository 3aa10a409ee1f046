package pricemath

import (
	"fmt"
	"math/big"
)

// Liquidity0X96 returns the liquidity implied by amount of token0 deployed
// over [pa, pb]: (amount * pa * pb / 2^96) / (pb - pa). Bounds are
// SqrtPriceX96 values and may be given in either order.
func Liquidity0X96(amount, pa, pb *big.Int) (*big.Float, error) {
	lo, hi, width, err := orderRange(pa, pb)
	if err != nil {
		return nil, err
	}

	num := new(big.Int).Mul(amount, lo)
	num.Mul(num, hi)
	den := new(big.Int).Lsh(width, q96Bits)
	return quoFloor(num, den), nil
}

// Liquidity1X96 returns the liquidity implied by amount of token1 deployed
// over [pa, pb]: amount * 2^96 / (pb - pa).
func Liquidity1X96(amount, pa, pb *big.Int) (*big.Float, error) {
	_, _, width, err := orderRange(pa, pb)
	if err != nil {
		return nil, err
	}

	num := new(big.Int).Lsh(amount, q96Bits)
	return quoFloor(num, width), nil
}

// CalcAmount0 returns floor(liq * 2^96 * (pb - pa) / pb / pa).
func CalcAmount0(liq, pa, pb *big.Int) (*big.Int, error) {
	lo, hi, width, err := orderRange(pa, pb)
	if err != nil {
		return nil, err
	}
	if lo.Sign() == 0 {
		return nil, fmt.Errorf("%w: zero lower sqrt price", ErrDivisionByZero)
	}

	num := new(big.Int).Lsh(liq, q96Bits)
	num.Mul(num, width)
	den := new(big.Int).Mul(lo, hi)
	return floorDiv(num, den), nil
}

// CalcAmount1 returns floor(liq * (pb - pa) / 2^96).
func CalcAmount1(liq, pa, pb *big.Int) (*big.Int, error) {
	_, _, width, err := orderRange(pa, pb)
	if err != nil {
		return nil, err
	}

	num := new(big.Int).Mul(liq, width)
	return floorDiv(num, q96), nil
}

// FloorLiquidity returns floor(liq).
func FloorLiquidity(liq *big.Float) *big.Int {
	if liq == nil {
		return new(big.Int)
	}
	out, acc := liq.Int(nil)
	if acc == big.Above {
		out.Sub(out, big.NewInt(1))
	}
	return out
}

// orderRange sorts the bounds and returns their difference. A zero-width
// range cannot be divided by.
func orderRange(pa, pb *big.Int) (*big.Int, *big.Int, *big.Int, error) {
	if pa == nil || pb == nil {
		return nil, nil, nil, fmt.Errorf("%w: missing sqrt price bound", ErrDomain)
	}
	lo, hi := pa, pb
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	width := new(big.Int).Sub(hi, lo)
	if width.Sign() == 0 {
		return nil, nil, nil, fmt.Errorf("%w: zero-width range at %s", ErrDivisionByZero, lo)
	}
	return lo, hi, width, nil
}

// quoFloor divides two exact integers into a 256-bit float rounded toward
// zero, so that flooring the result never exceeds the exact quotient.
func quoFloor(num, den *big.Int) *big.Float {
	n := new(big.Float).SetInt(num)
	d := new(big.Float).SetInt(den)
	return new(big.Float).SetPrec(floatPrec).SetMode(big.ToZero).Quo(n, d)
}

// floorDiv is integer division rounding toward negative infinity.
func floorDiv(num, den *big.Int) *big.Int {
	q, m := new(big.Int).DivMod(num, den, new(big.Int))
	if m.Sign() != 0 && den.Sign() < 0 {
		q.Sub(q, big.NewInt(1))
	}
	return q
}
