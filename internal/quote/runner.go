package quote

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"go.uber.org/zap"

	"liquidityMath/internal/model"
	"liquidityMath/internal/pricemath"
)

// Config controls batch quoting.
type Config struct {
	// DefaultDecimals applies to requests without per-token decimals. Zero
	// means 18.
	DefaultDecimals uint8
	// Exact adds the pool's integer-math liquidity to every quote.
	Exact bool
}

// Stats counts processed request lines.
type Stats struct {
	Total  int
	Quoted int
	Failed int
}

// Runner sizes mint requests read as JSON lines.
type Runner struct {
	cfg    Config
	out    Sink
	errs   Sink
	logger *zap.Logger
}

// NewRunner builds a Runner. errs may be nil, in which case failed lines are
// only logged.
func NewRunner(cfg Config, out Sink, errs Sink, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DefaultDecimals == 0 {
		cfg.DefaultDecimals = pricemath.TokenDecimals
	}
	return &Runner{
		cfg:    cfg,
		out:    out,
		errs:   errs,
		logger: logger,
	}
}

// Run reads requests from in until EOF or ctx is done.
func (r *Runner) Run(ctx context.Context, in io.Reader) (Stats, error) {
	var stats Stats
	if r.out == nil {
		return stats, fmt.Errorf("output sink is nil")
	}

	scanner := bufio.NewScanner(in)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		stats.Total++

		var req model.MintRequest
		if err := json.Unmarshal(line, &req); err != nil {
			stats.Failed++
			r.fail(lineNo, "", fmt.Errorf("decode request: %w", err))
			continue
		}

		q, err := r.quote(req)
		if err != nil {
			stats.Failed++
			r.fail(lineNo, req.ID, err)
			continue
		}

		if err := r.out.Write(q); err != nil {
			return stats, err
		}
		stats.Quoted++
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("scan input: %w", err)
	}

	r.logger.Info("batch complete",
		zap.Int("total", stats.Total),
		zap.Int("quoted", stats.Quoted),
		zap.Int("failed", stats.Failed),
	)
	return stats, nil
}

func (r *Runner) quote(req model.MintRequest) (model.MintQuote, error) {
	if err := req.Validate(); err != nil {
		return model.MintQuote{}, err
	}

	decimals0, decimals1 := req.TokenDecimals(r.cfg.DefaultDecimals)
	res, err := pricemath.MintWithDecimals(req.Amount0, req.Amount1, decimals0, decimals1, req.PriceLow, req.PriceCur, req.PriceUpp)
	if err != nil {
		return model.MintQuote{}, err
	}

	var exact *big.Int
	if r.cfg.Exact {
		exact, err = ExactLiquidity(res, req, decimals0, decimals1)
		if err != nil {
			return model.MintQuote{}, fmt.Errorf("exact liquidity: %w", err)
		}
	}
	return BuildMintQuote(req.ID, res, exact), nil
}

func (r *Runner) fail(lineNo int, id string, err error) {
	r.logger.Warn("quote request", zap.Int("line", lineNo), zap.String("id", id), zap.Error(err))
	if r.errs == nil {
		return
	}
	if werr := r.errs.Write(model.QuoteError{Line: lineNo, ID: id, Error: err.Error()}); werr != nil {
		r.logger.Warn("write quote error", zap.Error(werr))
	}
}
