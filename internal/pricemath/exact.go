package pricemath

import (
	"fmt"
	"math/big"

	"github.com/daoleno/uniswapv3-sdk/utils"
)

// The functions below use the integer tick math of the on-chain pool. They
// give reference values to compare the float formulas against and never
// feed back into them.

// ExactSqrtPriceX96AtTick returns the pool's sqrt ratio at tick t.
func ExactSqrtPriceX96AtTick(t int) (*big.Int, error) {
	if !ValidTick(t) {
		return nil, fmt.Errorf("%w: tick %d outside [%d, %d]", ErrDomain, t, MinTick, MaxTick)
	}
	return utils.GetSqrtRatioAtTick(t)
}

// ExactTickAtSqrtPriceX96 returns the greatest tick whose sqrt ratio is <= x.
func ExactTickAtSqrtPriceX96(x *big.Int) (int, error) {
	if x == nil || x.Sign() <= 0 {
		return 0, fmt.Errorf("%w: sqrt price %v", ErrDomain, x)
	}
	return utils.GetTickAtSqrtRatio(x)
}

// ExactMintLiquidity returns the liquidity the pool itself would credit for
// the given raw amounts, with cur, low and upp as sqrt ratios.
func ExactMintLiquidity(cur, low, upp, amount0, amount1 *big.Int) (*big.Int, error) {
	if cur == nil || low == nil || upp == nil {
		return nil, fmt.Errorf("%w: missing sqrt price", ErrDomain)
	}
	if low.Cmp(upp) == 0 {
		return nil, fmt.Errorf("%w: zero-width range at %s", ErrDivisionByZero, low)
	}
	return utils.MaxLiquidityForAmounts(cur, low, upp, amount0, amount1, true), nil
}
