package main

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"liquidityMath/internal/config"
	"liquidityMath/internal/model"
	"liquidityMath/internal/pricemath"
	"liquidityMath/internal/quote"
)

func runMint(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadMint(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	req, err := mintRequest(cfg)
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	res, err := pricemath.MintWithDecimals(req.Amount0, req.Amount1, cfg.Decimals0, cfg.Decimals1, req.PriceLow, req.PriceCur, req.PriceUpp)
	if err != nil {
		return err
	}

	var exact *big.Int
	if cfg.Exact {
		exact, err = quote.ExactLiquidity(res, req, cfg.Decimals0, cfg.Decimals1)
		if err != nil {
			return fmt.Errorf("exact liquidity: %w", err)
		}
	}

	logger.Debug("minted",
		zap.String("liquidity", res.Liquidity.String()),
		zap.Stringer("binding", res.Binding),
	)
	return writeOne(quote.BuildMintQuote("", res, exact))
}

func mintRequest(cfg config.MintConfig) (model.MintRequest, error) {
	amount0, err := parseAmount("amount0", cfg.Amount0)
	if err != nil {
		return model.MintRequest{}, err
	}
	amount1, err := parseAmount("amount1", cfg.Amount1)
	if err != nil {
		return model.MintRequest{}, err
	}
	return model.MintRequest{
		Amount0:   amount0,
		Amount1:   amount1,
		PriceLow:  cfg.PriceLow,
		PriceCur:  cfg.PriceCur,
		PriceUpp:  cfg.PriceUpp,
		Decimals0: &cfg.Decimals0,
		Decimals1: &cfg.Decimals1,
	}, nil
}

func parseAmount(name, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, fmt.Errorf("%s is required", name)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}
