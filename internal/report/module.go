package report

import (
	"github.com/apiarycd/gg/internal/status"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"report",
		logger.WithNamedLogger("report"),
		fx.Provide(func(svc *status.Service) Checker { return svc }, fx.Private),
		fx.Provide(NewAggregator),
	)
}
