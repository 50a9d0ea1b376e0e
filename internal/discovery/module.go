package discovery

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"discovery",
		logger.WithNamedLogger("discovery"),
		fx.Provide(NewEnumerator),
	)
}
