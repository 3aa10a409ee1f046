package quote

import (
	"math/big"

	"liquidityMath/internal/model"
	"liquidityMath/internal/pricemath"
)

// BuildMintQuote renders a mint result. exact may be nil.
func BuildMintQuote(id string, res pricemath.MintResult, exact *big.Int) model.MintQuote {
	q := model.MintQuote{
		ID:              id,
		Liquidity:       res.Liquidity.String(),
		Amount0:         res.Amount0.String(),
		Amount1:         res.Amount1.String(),
		Amount0Raw:      res.Amount0Raw.String(),
		Amount1Raw:      res.Amount1Raw.String(),
		SqrtPriceLowX96: res.SqrtPriceLowX96.String(),
		SqrtPriceCurX96: res.SqrtPriceCurX96.String(),
		SqrtPriceUppX96: res.SqrtPriceUppX96.String(),
		Binding:         res.Binding.String(),
	}
	if word, err := pricemath.Word(res.Liquidity); err == nil {
		q.LiquidityHex = word.Hex()
	}
	if exact != nil {
		q.ExactLiquidity = exact.String()
	}
	return q
}

// ExactLiquidity recomputes the liquidity of res with the pool's integer
// math from the raw budgets.
func ExactLiquidity(res pricemath.MintResult, req model.MintRequest, decimals0, decimals1 uint8) (*big.Int, error) {
	raw0 := pricemath.ScaleAmount(req.Amount0, decimals0)
	raw1 := pricemath.ScaleAmount(req.Amount1, decimals1)
	return pricemath.ExactMintLiquidity(res.SqrtPriceCurX96, res.SqrtPriceLowX96, res.SqrtPriceUppX96, raw0, raw1)
}
