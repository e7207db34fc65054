package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/voicerouter/errors"
	"github.com/kbukum/voicerouter/logger"
	"github.com/kbukum/voicerouter/observability"
	"github.com/kbukum/voicerouter/transcription"
	"github.com/kbukum/voicerouter/webhook"
)

func newWebhookCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook [file|-]",
		Short: "Normalize a provider webhook callback into an event",
		Long: `Normalize a provider webhook callback into an event.

Without --provider the provider is detected from the body. On failure the
error envelope is printed and the command exits non-zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			providerName, _ := cmd.Flags().GetString("provider")

			var hint *transcription.Provider
			if providerName != "" {
				p, err := transcription.ParseProvider(providerName)
				if err != nil {
					return err
				}
				hint = &p
			}

			cfg, _, err := opts.load()
			if err != nil {
				return err
			}
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			metrics, err := observability.NewMetrics(observability.Meter(cfg.Name))
			if err != nil {
				return err
			}
			n := webhook.NewNormalizer(
				webhook.WithMapOptions(cfg.Normalizer.MapOptions()),
				webhook.WithLogger(logger.Get("webhook")),
				webhook.WithMetrics(metrics),
			)

			ev, err := n.Normalize(cmd.Context(), raw, hint)
			if err != nil {
				se := errors.FromException(err, errors.ErrCodeUnknown, 0)
				if werr := writeJSON(cmd.OutOrStdout(), se.ToResponse()); werr != nil {
					return werr
				}
				return se
			}
			return writeJSON(cmd.OutOrStdout(), ev)
		},
	}

	cmd.Flags().StringP("provider", "p", "", "provider that sent the callback (default: detect)")

	return cmd
}
