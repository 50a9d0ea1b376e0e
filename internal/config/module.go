package config

import (
	"github.com/apiarycd/gg/internal/defaults"
	"github.com/apiarycd/gg/internal/metrics"
	"github.com/apiarycd/gg/pkg/badgerfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) badgerfx.Config {
			return badgerfx.Config{
				Dir: cfg.Storage.DataDir,
			}
		}),
		fx.Provide(func(cfg Config) defaults.Config {
			return defaults.Config{
				Backend: defaults.Backend(cfg.Defaults.Backend),
				File:    cfg.Defaults.File,
			}
		}),
		fx.Provide(func(cfg Config) metrics.Config {
			return metrics.Config{
				Textfile: cfg.Metrics.Textfile,
			}
		}),
	)
}
