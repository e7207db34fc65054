package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kbukum/voicerouter/config"
	"github.com/kbukum/voicerouter/logger"
	"github.com/kbukum/voicerouter/normalize"
	"github.com/kbukum/voicerouter/observability"
	"github.com/kbukum/voicerouter/server"
	"github.com/kbukum/voicerouter/webhook"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP webhook receiver",
		Long: `Run the HTTP webhook receiver.

Routes:
  POST /webhooks              detect the provider and normalize a callback
  POST /webhooks/:provider    normalize a callback for a known provider
  POST /normalize/:provider   map a raw response (?status=, ?success=)
  GET  /health                service health`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			if port, _ := cmd.Flags().GetInt("port"); port > 0 {
				cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			shutdownTelemetry, err := initTelemetry(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer shutdownTelemetry()

			srv, err := buildServer(cfg)
			if err != nil {
				return err
			}
			if err := srv.Start(ctx); err != nil {
				return err
			}

			<-ctx.Done()
			return srv.Stop(context.WithoutCancel(ctx))
		},
	}
	cmd.Flags().Int("port", 0, "override server.port")
	return cmd
}

// buildServer wires the assembler and webhook normalizer into the receiver.
func buildServer(cfg *config.Config) (*server.Server, error) {
	metrics, err := observability.NewMetrics(observability.Meter(cfg.Name))
	if err != nil {
		return nil, err
	}

	asm := normalize.NewAssembler(cfg.Normalizer.Options()...)
	hooks := webhook.NewNormalizer(
		webhook.WithMapOptions(cfg.Normalizer.MapOptions()),
		webhook.WithLogger(logger.Get("webhook")),
		webhook.WithMetrics(metrics),
	)

	srv := server.New(cfg.Server, logger.GetGlobalLogger())
	srv.ApplyMiddleware()
	srv.RegisterRoutes(server.Routes{
		Service:    cfg.Name,
		Normalizer: normalize.Instrumented(asm, metrics, logger.Get("normalize")),
		Assembler:  asm,
		Webhooks:   hooks,
	})
	return srv, nil
}

// initTelemetry starts the OTLP tracer and meter providers when enabled and
// returns a func that flushes and stops them.
func initTelemetry(ctx context.Context, cfg *config.Config, log *logger.Logger) (func(), error) {
	if !cfg.Telemetry.Enabled {
		return func() {}, nil
	}

	tel, err := observability.Start(ctx, cfg.TracerConfig(), cfg.MeterConfig())
	if err != nil {
		return nil, err
	}
	log.Info("Telemetry enabled", map[string]any{"endpoint": cfg.Telemetry.Endpoint})

	return func() {
		shutdownCtx := context.WithoutCancel(ctx)
		if err := tel.Shutdown(shutdownCtx); err != nil {
			log.Warn("Telemetry shutdown failed", map[string]any{logger.FieldError: err.Error()})
		}
	}, nil
}
