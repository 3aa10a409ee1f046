package pricemath

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintBalancedRange(t *testing.T) {
	one := decimal.NewFromInt(1)

	res, err := Mint(one, one, 0.9, 1.0, 1.1)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Liquidity.Sign())
	assert.True(t, res.Amount0.LessThanOrEqual(one), "amount0 %s", res.Amount0)
	assert.True(t, res.Amount1.LessThanOrEqual(one), "amount1 %s", res.Amount1)
	assert.True(t, res.Amount0.IsPositive())
	assert.True(t, res.Amount1.IsPositive())

	// [0.9, 1.0] is wider in sqrt space than [1.0, 1.1], so token1 binds and
	// is spent almost entirely.
	assert.Equal(t, Token1, res.Binding)
	assert.True(t, res.Amount1.GreaterThan(decimal.RequireFromString("0.999999999999")), "amount1 %s", res.Amount1)

	assert.Zero(t, res.SqrtPriceCurX96.Cmp(Q96()))
	assert.Equal(t, -1, res.SqrtPriceLowX96.Cmp(res.SqrtPriceCurX96))
	assert.Equal(t, 1, res.SqrtPriceUppX96.Cmp(res.SqrtPriceCurX96))
}

func TestMintMatchesComposition(t *testing.T) {
	amount0 := decimal.RequireFromString("2.5")
	amount1 := decimal.RequireFromString("4000")

	res, err := Mint(amount0, amount1, 1500, 2000, 2600)
	require.NoError(t, err)

	low := mustSqrtPrice(t, 1500)
	cur := mustSqrtPrice(t, 2000)
	upp := mustSqrtPrice(t, 2600)
	raw0 := new(big.Int).Mul(big.NewInt(25), new(big.Int).Div(TokenUnit(), big.NewInt(10)))
	raw1 := new(big.Int).Mul(big.NewInt(4000), TokenUnit())

	liq0, err := Liquidity0X96(raw0, cur, upp)
	require.NoError(t, err)
	liq1, err := Liquidity1X96(raw1, low, cur)
	require.NoError(t, err)
	want := FloorLiquidity(liq0)
	if liq1.Cmp(liq0) < 0 {
		want = FloorLiquidity(liq1)
	}
	assert.Zero(t, want.Cmp(res.Liquidity))

	used0, err := CalcAmount0(want, cur, upp)
	require.NoError(t, err)
	used1, err := CalcAmount1(want, low, cur)
	require.NoError(t, err)
	assert.Zero(t, used0.Cmp(res.Amount0Raw))
	assert.Zero(t, used1.Cmp(res.Amount1Raw))
	assert.True(t, res.Amount0.Equal(decimal.NewFromBigInt(used0, -18)))
	assert.True(t, res.Amount1.Equal(decimal.NewFromBigInt(used1, -18)))

	assert.True(t, res.Amount0.LessThanOrEqual(amount0))
	assert.True(t, res.Amount1.LessThanOrEqual(amount1))
}

func TestMintWithDecimals(t *testing.T) {
	// 6-decimal token1 (USDC-like) against an 18-decimal token0.
	amount0 := decimal.NewFromInt(1)
	amount1 := decimal.NewFromInt(2000)

	res, err := MintWithDecimals(amount0, amount1, 18, 6, 1e-9, 2e-9, 3e-9)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Liquidity.Sign())
	assert.True(t, res.Amount0.LessThanOrEqual(amount0))
	assert.True(t, res.Amount1.LessThanOrEqual(amount1))
	assert.LessOrEqual(t, -res.Amount1.Exponent(), int32(6))
}

func TestMintPriceOutOfRange(t *testing.T) {
	one := decimal.NewFromInt(1)

	_, err := Mint(one, one, 0.9, 0.8, 1.1)
	assert.ErrorIs(t, err, ErrPriceOutOfRange)

	_, err = Mint(one, one, 0.9, 1.2, 1.1)
	assert.ErrorIs(t, err, ErrPriceOutOfRange)
}

func TestMintPropagatesErrors(t *testing.T) {
	one := decimal.NewFromInt(1)

	_, err := Mint(one, one, 0, 1.0, 1.1)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = Mint(one, one, -1, 1.0, 1.1)
	assert.ErrorIs(t, err, ErrDomain)

	// Current price on the lower bound leaves token1 with no width.
	_, err = Mint(one, one, 1.0, 1.0, 1.1)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Mint(one, one, 0.9, 1.1, 1.1)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestMintZeroBudget(t *testing.T) {
	res, err := Mint(decimal.Zero, decimal.NewFromInt(5), 0.9, 1.0, 1.1)
	require.NoError(t, err)
	assert.Zero(t, res.Liquidity.Sign())
	assert.Equal(t, Token0, res.Binding)
	assert.True(t, res.Amount0.IsZero())
	assert.True(t, res.Amount1.IsZero())
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "token0", Token0.String())
	assert.Equal(t, "token1", Token1.String())
	assert.Equal(t, "token(7)", Token(7).String())
}

func TestScaleAmount(t *testing.T) {
	tests := []struct {
		amount   string
		decimals uint8
		want     string
	}{
		{"1", 18, "1000000000000000000"},
		{"1.2345678", 6, "1234567"},
		{"0.0000001", 6, "0"},
		{"2000", 0, "2000"},
	}
	for _, tt := range tests {
		got := ScaleAmount(decimal.RequireFromString(tt.amount), tt.decimals)
		assert.Equal(t, tt.want, got.String(), "amount %s decimals %d", tt.amount, tt.decimals)
	}

	back := DescaleAmount(big.NewInt(1234567), 6)
	assert.True(t, back.Equal(decimal.RequireFromString("1.234567")), "got %s", back)
}
