package metrics

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"metrics",
		logger.WithNamedLogger("metrics"),
		fx.Provide(NewExporter),
	)
}
