package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"liquidityMath/internal/config"
	"liquidityMath/internal/quote"
)

func runBatch(cmd *cobra.Command, _ []string) (err error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadBatch(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if len(cfg.Inputs) == 0 {
		return fmt.Errorf("at least one input is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := quote.OpenJSONL(cfg.Out)
	if err != nil {
		return err
	}
	defer closeInto(&err, "output", out)

	var errs quote.Sink
	if cfg.Errors != "" {
		errWriter, openErr := quote.OpenJSONL(cfg.Errors)
		if openErr != nil {
			return openErr
		}
		defer closeInto(&err, "errors output", errWriter)
		errs = errWriter
	}

	runner := quote.NewRunner(quote.Config{
		DefaultDecimals: cfg.Decimals,
		Exact:           cfg.Exact,
	}, out, errs, logger)

	var total quote.Stats
	for _, input := range cfg.Inputs {
		stats, err := runInput(ctx, runner, input)
		total.Total += stats.Total
		total.Quoted += stats.Quoted
		total.Failed += stats.Failed
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		logger.Info("input complete", zap.String("input", input), zap.Int("quoted", stats.Quoted), zap.Int("failed", stats.Failed))
	}

	logger.Info("batch summary",
		zap.Int("inputs", len(cfg.Inputs)),
		zap.Int("total", total.Total),
		zap.Int("quoted", total.Quoted),
		zap.Int("failed", total.Failed),
	)
	return nil
}

func runInput(ctx context.Context, runner *quote.Runner, input string) (quote.Stats, error) {
	var in io.Reader = os.Stdin
	if input != "-" {
		file, err := os.Open(input)
		if err != nil {
			return quote.Stats{}, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		in = file
	}
	return runner.Run(ctx, in)
}

// closeInto closes c and reports its error through errp unless an earlier
// error is already set. Buffered lines are only flushed here.
func closeInto(errp *error, name string, c io.Closer) {
	if cerr := c.Close(); cerr != nil && *errp == nil {
		*errp = fmt.Errorf("close %s: %w", name, cerr)
	}
}
