package defaults

import (
	"github.com/apiarycd/gg/pkg/badgerfx"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"defaults",
		logger.WithNamedLogger("defaults"),
		fx.Provide(NewStore),
	)
}

// NewStore returns the store for the configured backend.
func NewStore(cfg Config, handle *badgerfx.Handle, logger *zap.Logger) Store {
	if cfg.Backend == BackendBadger {
		return NewBadgerStore(handle, logger)
	}

	return NewFileStore(cfg.File, logger)
}
