package app

import (
	"context"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// Run executes the demo scenario against stdout. It is the single wiring
// point for the order-demo binary.
func Run(ctx context.Context, lg *zap.Logger, cfg *Config) error {
	lg.Info("Running order scenario",
		zap.String("customer_tier", cfg.CustomerTier),
		zap.String("order_tier", cfg.OrderTier),
		zap.Bool("no_discount", cfg.NoDiscount),
	)

	if _, err := RunScenario(zctx.Base(ctx, lg), os.Stdout, cfg); err != nil {
		return errors.Wrap(err, "run scenario")
	}
	return nil
}
