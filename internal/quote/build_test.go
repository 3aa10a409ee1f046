package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liquidityMath/internal/model"
	"liquidityMath/internal/pricemath"
)

func TestExactLiquidityUsesMintScaling(t *testing.T) {
	d1 := uint8(6)
	req := model.MintRequest{
		ID:        "usdc",
		Amount0:   decimal.RequireFromString("1.5"),
		Amount1:   decimal.RequireFromString("2500.1234567"),
		PriceLow:  1e-9,
		PriceCur:  2e-9,
		PriceUpp:  3e-9,
		Decimals1: &d1,
	}
	d0, d1 := req.TokenDecimals(18)

	res, err := pricemath.MintWithDecimals(req.Amount0, req.Amount1, d0, d1, req.PriceLow, req.PriceCur, req.PriceUpp)
	require.NoError(t, err)

	got, err := ExactLiquidity(res, req, d0, d1)
	require.NoError(t, err)

	want, err := pricemath.ExactMintLiquidity(res.SqrtPriceCurX96, res.SqrtPriceLowX96, res.SqrtPriceUppX96,
		pricemath.ScaleAmount(req.Amount0, d0), pricemath.ScaleAmount(req.Amount1, d1))
	require.NoError(t, err)
	assert.Zero(t, want.Cmp(got))

	q := BuildMintQuote(req.ID, res, got)
	assert.Equal(t, got.String(), q.ExactLiquidity)
	assert.Equal(t, res.Liquidity.String(), q.Liquidity)
	assert.Equal(t, "usdc", q.ID)
}
