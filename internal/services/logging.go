package services

import (
	"context"

	"github.com/rs/zerolog"
)

const (
	componentTransactions = "transaction_service"
	componentHistory      = "history_service"
	componentStats        = "stats_service"
	componentCategories   = "category_service"
	componentSettings     = "user_settings_service"
)

// requestLogger returns the trace-scoped logger the request middleware put on
// ctx, tagged with component. Without one it falls back to base.
func requestLogger(ctx context.Context, base zerolog.Logger, component string) *zerolog.Logger {
	scoped := zerolog.Ctx(ctx)
	if scoped.GetLevel() == zerolog.Disabled {
		return &base
	}
	l := scoped.With().Str("component", component).Logger()
	return &l
}
