package model

// MintQuote is the sizing of one position. Integers are decimal strings.
type MintQuote struct {
	ID              string `json:"id,omitempty"`
	Liquidity       string `json:"liquidity"`
	LiquidityHex    string `json:"liquidity_hex,omitempty"`
	Amount0         string `json:"amount0"`
	Amount1         string `json:"amount1"`
	Amount0Raw      string `json:"amount0_raw"`
	Amount1Raw      string `json:"amount1_raw"`
	SqrtPriceLowX96 string `json:"sqrt_price_low_x96"`
	SqrtPriceCurX96 string `json:"sqrt_price_cur_x96"`
	SqrtPriceUppX96 string `json:"sqrt_price_upp_x96"`
	Binding         string `json:"binding"`
	ExactLiquidity  string `json:"exact_liquidity,omitempty"`
}

// Conversion holds every representation of one price point.
type Conversion struct {
	Price             float64 `json:"price"`
	Tick              int     `json:"tick"`
	AlignedTick       *int    `json:"aligned_tick,omitempty"`
	SqrtPriceX96      string  `json:"sqrt_price_x96"`
	SqrtPriceX96Tick  string  `json:"sqrt_price_x96_from_tick,omitempty"`
	ExactSqrtPriceX96 string  `json:"exact_sqrt_price_x96,omitempty"`
	ExactTick         *int    `json:"exact_tick,omitempty"`
}

// LiquidityQuote is the liquidity implied by a raw amount over a range.
type LiquidityQuote struct {
	Amount     string `json:"amount"`
	Liquidity0 string `json:"liquidity0"`
	Liquidity1 string `json:"liquidity1"`
}

// AmountsQuote is the raw token amounts backing a liquidity over a range.
type AmountsQuote struct {
	Liquidity string `json:"liquidity"`
	Amount0   string `json:"amount0"`
	Amount1   string `json:"amount1"`
}
