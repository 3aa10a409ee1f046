package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"liquidityMath/internal/config"
	"liquidityMath/internal/model"
	"liquidityMath/internal/pricemath"
	"liquidityMath/internal/quote"
)

func runConvert(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConvert(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	conv, err := convert(cfg)
	if err != nil {
		return err
	}
	logger.Debug("converted", zap.Int("tick", conv.Tick), zap.String("sqrt_price_x96", conv.SqrtPriceX96))

	return writeOne(conv)
}

func convert(cfg config.ConvertConfig) (model.Conversion, error) {
	var conv model.Conversion

	switch {
	case cfg.HasSqrtPrice:
		x, err := model.ParseBigInt(cfg.SqrtPriceX96)
		if err != nil {
			return conv, fmt.Errorf("sqrt-price-x96: %w", err)
		}
		price, err := pricemath.SqrtPriceX96ToPrice(x)
		if err != nil {
			return conv, err
		}
		tick, err := pricemath.SqrtPriceX96ToTick(x)
		if err != nil {
			return conv, err
		}
		conv.Price = price
		conv.Tick = tick
		conv.SqrtPriceX96 = x.String()
		if exact, err := pricemath.ExactTickAtSqrtPriceX96(x); err == nil {
			conv.ExactTick = &exact
		}
	case cfg.HasTick:
		if !pricemath.ValidTick(cfg.Tick) {
			return conv, fmt.Errorf("tick %d: %w", cfg.Tick, pricemath.ErrDomain)
		}
		x, err := pricemath.PriceToSqrtPriceX96(pricemath.TickToPrice(cfg.Tick))
		if err != nil {
			return conv, err
		}
		conv.Price = pricemath.TickToPrice(cfg.Tick)
		conv.Tick = cfg.Tick
		conv.SqrtPriceX96 = x.String()
	case cfg.HasPrice:
		tick, err := pricemath.PriceToTick(cfg.Price)
		if err != nil {
			return conv, err
		}
		x, err := pricemath.PriceToSqrtPriceX96(cfg.Price)
		if err != nil {
			return conv, err
		}
		conv.Price = cfg.Price
		conv.Tick = tick
		conv.SqrtPriceX96 = x.String()
	default:
		return conv, fmt.Errorf("one of --price, --tick or --sqrt-price-x96 is required")
	}

	if fromTick, err := pricemath.TickToSqrtPriceX96(conv.Tick); err == nil {
		conv.SqrtPriceX96Tick = fromTick.String()
	}
	if pricemath.ValidTick(conv.Tick) {
		if exact, err := pricemath.ExactSqrtPriceX96AtTick(conv.Tick); err == nil {
			conv.ExactSqrtPriceX96 = exact.String()
		}
	}

	if cfg.TickSpacing != 0 {
		aligned, err := pricemath.AlignTick(conv.Tick, cfg.TickSpacing)
		if err != nil {
			return conv, err
		}
		conv.AlignedTick = &aligned
	}
	return conv, nil
}

func runLiquidity(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadRange(cfgFile, cmd.Flags(), "amount")
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	amount, pa, pb, err := parseRange(cfg, "amount")
	if err != nil {
		return err
	}

	liq0, err := pricemath.Liquidity0X96(amount, pa, pb)
	if err != nil {
		return err
	}
	liq1, err := pricemath.Liquidity1X96(amount, pa, pb)
	if err != nil {
		return err
	}

	return writeOne(model.LiquidityQuote{
		Amount:     amount.String(),
		Liquidity0: pricemath.FloorLiquidity(liq0).String(),
		Liquidity1: pricemath.FloorLiquidity(liq1).String(),
	})
}

func runAmounts(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadRange(cfgFile, cmd.Flags(), "liquidity")
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	liq, pa, pb, err := parseRange(cfg, "liquidity")
	if err != nil {
		return err
	}

	amount0, err := pricemath.CalcAmount0(liq, pa, pb)
	if err != nil {
		return err
	}
	amount1, err := pricemath.CalcAmount1(liq, pa, pb)
	if err != nil {
		return err
	}

	return writeOne(model.AmountsQuote{
		Liquidity: liq.String(),
		Amount0:   amount0.String(),
		Amount1:   amount1.String(),
	})
}

func parseRange(cfg config.RangeConfig, valueName string) (*big.Int, *big.Int, *big.Int, error) {
	value, err := model.ParseBigInt(cfg.Value)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", valueName, err)
	}
	pa, err := model.ParseBigInt(cfg.PA)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("pa: %w", err)
	}
	pb, err := model.ParseBigInt(cfg.PB)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("pb: %w", err)
	}
	return value, pa, pb, nil
}

func writeOne(value interface{}) error {
	w := quote.NewJSONLWriter(os.Stdout)
	if err := w.Write(value); err != nil {
		return err
	}
	return w.Close()
}
