package status

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"status",
		logger.WithNamedLogger("status"),
		fx.Provide(NewDetector, fx.Private),
		fx.Provide(NewClassifier, fx.Private),
		fx.Provide(NewService),
	)
}
