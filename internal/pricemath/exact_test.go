package pricemath

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactSqrtPriceX96AtTick(t *testing.T) {
	x, err := ExactSqrtPriceX96AtTick(0)
	require.NoError(t, err)
	assert.Zero(t, x.Cmp(Q96()))

	x, err = ExactSqrtPriceX96AtTick(MinTick)
	require.NoError(t, err)
	assert.Zero(t, x.Cmp(fromString("4295128739")))

	x, err = ExactSqrtPriceX96AtTick(MaxTick)
	require.NoError(t, err)
	assert.Zero(t, x.Cmp(fromString("1461446703485210103287273052203988822378723970342")))

	_, err = ExactSqrtPriceX96AtTick(MaxTick + 1)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestExactAgreesWithFloatPath(t *testing.T) {
	for _, tick := range []int{-400000, -60, -1, 1, 60, 400000} {
		exact, err := ExactSqrtPriceX96AtTick(tick)
		require.NoError(t, err)
		approx, err := TickToSqrtPriceX96(tick)
		require.NoError(t, err)
		assertRelClose(t, exact, approx, 1e-9)

		got, err := ExactTickAtSqrtPriceX96(exact)
		require.NoError(t, err)
		assert.Equal(t, tick, got)
	}
}

func TestExactTickAtSqrtPriceX96Rejects(t *testing.T) {
	_, err := ExactTickAtSqrtPriceX96(big.NewInt(0))
	assert.ErrorIs(t, err, ErrDomain)
	_, err = ExactTickAtSqrtPriceX96(nil)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestExactMintLiquidityCloseToMint(t *testing.T) {
	res, err := Mint(decimalFromInt(3), decimalFromInt(5000), 1500, 2000, 2600)
	require.NoError(t, err)

	raw0 := new(big.Int).Mul(big.NewInt(3), TokenUnit())
	raw1 := new(big.Int).Mul(big.NewInt(5000), TokenUnit())
	exact, err := ExactMintLiquidity(res.SqrtPriceCurX96, res.SqrtPriceLowX96, res.SqrtPriceUppX96, raw0, raw1)
	require.NoError(t, err)
	assertRelClose(t, exact, res.Liquidity, 1e-12)

	_, err = ExactMintLiquidity(res.SqrtPriceCurX96, res.SqrtPriceLowX96, res.SqrtPriceLowX96, raw0, raw1)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}
