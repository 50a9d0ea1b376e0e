package internal

import (
	"github.com/apiarycd/gg/internal/cli"
	"github.com/apiarycd/gg/internal/config"
	"github.com/apiarycd/gg/internal/defaults"
	"github.com/apiarycd/gg/internal/discovery"
	"github.com/apiarycd/gg/internal/git"
	"github.com/apiarycd/gg/internal/metrics"
	"github.com/apiarycd/gg/internal/report"
	"github.com/apiarycd/gg/internal/status"
	"github.com/apiarycd/gg/pkg/badgerfx"
	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Options(args []string) fx.Option {
	return fx.Options(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		badgerfx.Module(),
		validator.Module,
		//
		// APP MODULES
		config.Module(),
		metrics.Module(),
		defaults.Module(),
		//
		// BUSINESS MODULES
		git.Module(),
		status.Module(),
		discovery.Module(),
		report.Module(),
		//
		// ENTRY POINT
		cli.Module(args),
	)
}

func Run(args []string) {
	fx.New(Options(args)).Run()
}
