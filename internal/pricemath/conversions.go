package pricemath

import (
	"fmt"
	"math"
	"math/big"
)

func logTickBase() float64 {
	return math.Log(TickBase)
}

// PriceToTick returns floor(log_1.0001(p)): the greatest tick t with
// TickToPrice(t) <= p. The tick is not clamped to [MinTick, MaxTick].
//
// The logarithm only gives a first estimate. A price produced by TickToPrice
// sits within one rounding of the exact power, which can put the estimate one
// tick low, so the estimate is settled against the tick grid itself.
func PriceToTick(p float64) (int, error) {
	if err := checkPrice(p); err != nil {
		return 0, err
	}
	t := int(math.Floor(math.Log(p) / logBase))
	for TickToPrice(t+1) <= p {
		t++
	}
	for TickToPrice(t) > p {
		t--
	}
	return t, nil
}

// TickToPrice returns 1.0001^t rounded once to float64.
func TickToPrice(t int) float64 {
	p, _ := tickBasePow(t).Float64()
	return p
}

// PriceToSqrtPriceX96 returns floor(sqrt(p) * 2^96).
func PriceToSqrtPriceX96(p float64) (*big.Int, error) {
	if err := checkPrice(p); err != nil {
		return nil, err
	}
	return scaleX96(math.Sqrt(p))
}

// SqrtPriceX96ToPrice returns (x / 2^96)^2. It inverts PriceToSqrtPriceX96
// only up to the truncation applied when x was built.
func SqrtPriceX96ToPrice(x *big.Int) (float64, error) {
	ratio, err := unscaleX96(x)
	if err != nil {
		return 0, err
	}
	return ratio * ratio, nil
}

// TickToSqrtPriceX96 returns floor(1.0001^(t/2) * 2^96).
//
// The half power is taken directly, so the result can differ in its low bits
// from PriceToSqrtPriceX96(TickToPrice(t)). Both paths are kept as they are.
func TickToSqrtPriceX96(t int) (*big.Int, error) {
	half := new(big.Float).SetPrec(floatPrec).Sqrt(tickBasePow(t))
	v, _ := half.Float64()
	return scaleX96(v)
}

// SqrtPriceX96ToTick returns floor(2 * log_1.0001(x / 2^96)), evaluated as a
// single formula rather than through SqrtPriceX96ToPrice and PriceToTick.
// Like PriceToTick, the estimate is settled so that the result is the greatest
// tick t with TickToSqrtPriceX96(t) <= x.
func SqrtPriceX96ToTick(x *big.Int) (int, error) {
	ratio, err := unscaleX96(x)
	if err != nil {
		return 0, err
	}
	if ratio == 0 || math.IsInf(ratio, 0) {
		return 0, fmt.Errorf("%w: sqrt price %s outside float64 range", ErrDomain, x)
	}
	t := int(math.Floor(2 * math.Log(ratio) / logBase))
	for sqrtPriceAtOrBelow(t+1, x) {
		t++
	}
	for !sqrtPriceAtOrBelow(t, x) {
		t--
	}
	return t, nil
}

func sqrtPriceAtOrBelow(t int, x *big.Int) bool {
	s, err := TickToSqrtPriceX96(t)
	return err == nil && s.Cmp(x) <= 0
}

// tickBasePow returns TickBase^t at floatPrec bits by repeated squaring.
// The error stays far below one float64 ulp for any tick that fits a float64
// price, so rounding the result once gives the correctly rounded power.
func tickBasePow(t int) *big.Float {
	n := t
	if n < 0 {
		n = -n
	}
	base := new(big.Float).SetPrec(floatPrec).SetFloat64(TickBase)
	out := new(big.Float).SetPrec(floatPrec).SetInt64(1)
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			out.Mul(out, base)
		}
		base.Mul(base, base)
	}
	if t < 0 {
		one := new(big.Float).SetPrec(floatPrec).SetInt64(1)
		out.Quo(one, out)
	}
	return out
}

func checkPrice(p float64) error {
	if !(p > 0) || math.IsInf(p, 0) {
		return fmt.Errorf("%w: price %v", ErrDomain, p)
	}
	return nil
}

// scaleX96 truncates v * 2^96 to an integer. Multiplying by a power of two is
// exact, so the only rounding is the final truncation.
func scaleX96(v float64) (*big.Int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil, fmt.Errorf("%w: sqrt ratio %v", ErrDomain, v)
	}
	f := new(big.Float).SetFloat64(v)
	f.SetMantExp(f, q96Bits)
	out, _ := f.Int(nil)
	return out, nil
}

// unscaleX96 returns x / 2^96 correctly rounded to float64.
func unscaleX96(x *big.Int) (float64, error) {
	if x == nil || x.Sign() <= 0 {
		return 0, fmt.Errorf("%w: sqrt price %v", ErrDomain, x)
	}
	f := new(big.Float).SetInt(x)
	f.SetMantExp(f, -q96Bits)
	ratio, _ := f.Float64()
	return ratio, nil
}
