package cli

import (
	"context"
	"io"
	"os"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module runs the command once the application has started and shuts the
// application down with the command's exit code.
func Module(args []string) fx.Option {
	return fx.Module(
		"cli",
		logger.WithNamedLogger("cli"),
		fx.Supply(Args(args)),
		fx.Provide(func() io.Writer { return os.Stdout }, fx.Private),
		fx.Provide(NewRunner),
		fx.Invoke(func(lc fx.Lifecycle, shutdowner fx.Shutdowner, runner *Runner, args Args, logger *zap.Logger) {
			ctx, cancel := context.WithCancel(context.Background())

			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					go func() {
						code := runner.Run(ctx, args)
						if err := shutdowner.Shutdown(fx.ExitCode(code)); err != nil {
							logger.Error("failed to shut down", zap.Error(err))
						}
					}()
					return nil
				},
				OnStop: func(_ context.Context) error {
					cancel()
					return nil
				},
			})
		}),
	)
}
