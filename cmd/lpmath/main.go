package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "lpmath",
		Short:        "Concentrated-liquidity price and position math",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between price, tick and sqrtPriceX96",
		RunE:  runConvert,
	}

	convertCmd.Flags().Float64("price", 0, "price (token1 per token0)")
	convertCmd.Flags().Int("tick", 0, "tick index")
	convertCmd.Flags().String("sqrt-price-x96", "", "sqrtPriceX96 (decimal or 0x hex)")
	convertCmd.Flags().Int("tick-spacing", 0, "align the tick to this spacing (0 disables)")
	convertCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	convertCmd.MarkFlagsMutuallyExclusive("price", "tick", "sqrt-price-x96")

	root.AddCommand(convertCmd)

	liquidityCmd := &cobra.Command{
		Use:   "liquidity",
		Short: "Liquidity implied by a raw token amount over a sqrt price range",
		RunE:  runLiquidity,
	}

	liquidityCmd.Flags().String("amount", "", "raw token amount (decimal or 0x hex)")
	liquidityCmd.Flags().String("pa", "", "first sqrtPriceX96 bound")
	liquidityCmd.Flags().String("pb", "", "second sqrtPriceX96 bound")
	liquidityCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(liquidityCmd)

	amountsCmd := &cobra.Command{
		Use:   "amounts",
		Short: "Raw token amounts backing a liquidity over a sqrt price range",
		RunE:  runAmounts,
	}

	amountsCmd.Flags().String("liquidity", "", "liquidity (decimal or 0x hex)")
	amountsCmd.Flags().String("pa", "", "first sqrtPriceX96 bound")
	amountsCmd.Flags().String("pb", "", "second sqrtPriceX96 bound")
	amountsCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(amountsCmd)

	mintCmd := &cobra.Command{
		Use:   "mint",
		Short: "Size a liquidity position from token budgets",
		RunE:  runMint,
	}

	mintCmd.Flags().String("amount0", "", "token0 budget in whole tokens")
	mintCmd.Flags().String("amount1", "", "token1 budget in whole tokens")
	mintCmd.Flags().Float64("price-low", 0, "lower price bound")
	mintCmd.Flags().Float64("price-cur", 0, "current price")
	mintCmd.Flags().Float64("price-upp", 0, "upper price bound")
	mintCmd.Flags().Int("decimals0", 18, "token0 decimals")
	mintCmd.Flags().Int("decimals1", 18, "token1 decimals")
	mintCmd.Flags().Bool("exact", false, "include the pool's integer-math liquidity")
	mintCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(mintCmd)

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Size positions from a JSONL file of mint requests",
		RunE:  runBatch,
	}

	batchCmd.Flags().StringSlice("in", nil, "input request JSONL files, - for stdin (comma-separated)")
	batchCmd.Flags().String("out", "-", "output quotes JSONL, - for stdout")
	batchCmd.Flags().String("errors", "", "failed requests JSONL (empty logs failures only)")
	batchCmd.Flags().Int("decimals", 18, "default token decimals")
	batchCmd.Flags().Bool("exact", false, "include the pool's integer-math liquidity")
	batchCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(batchCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
