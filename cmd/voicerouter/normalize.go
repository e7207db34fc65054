package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/voicerouter/logger"
	"github.com/kbukum/voicerouter/normalize"
	"github.com/kbukum/voicerouter/observability"
	"github.com/kbukum/voicerouter/transcription"
	"github.com/kbukum/voicerouter/transport"
)

func newNormalizeCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [file|-]",
		Short: "Map a raw provider response to the unified transcript envelope",
		Long: `Map a raw provider response to the unified transcript envelope.

The body is read from the file argument or stdin. --status is the HTTP status
the provider answered with; non-2xx statuses and --failed produce a failure
envelope. --transport-error describes a call that never got a response.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			providerName, _ := cmd.Flags().GetString("provider")
			status, _ := cmd.Flags().GetInt("status")
			failed, _ := cmd.Flags().GetBool("failed")
			audioHash, _ := cmd.Flags().GetString("audio-hash")
			requestID, _ := cmd.Flags().GetString("request-id")
			transportErr, _ := cmd.Flags().GetString("transport-error")
			timeout, _ := cmd.Flags().GetBool("timeout")

			p, err := transcription.ParseProvider(providerName)
			if err != nil {
				return err
			}
			if status < 100 || status > 599 {
				return fmt.Errorf("--status must be an HTTP status code (got %d)", status)
			}

			cfg, _, err := opts.load()
			if err != nil {
				return err
			}

			var raw []byte
			if transportErr == "" || len(args) > 0 {
				raw, err = readInput(cmd, args)
				if err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
			}

			metrics, err := observability.NewMetrics(observability.Meter(cfg.Name))
			if err != nil {
				return err
			}
			asmOpts := cfg.Normalizer.Options()
			if audioHash != "" || requestID != "" {
				asmOpts = append(asmOpts, normalize.WithTracking(true))
			}
			n := normalize.Instrumented(normalize.NewAssembler(asmOpts...), metrics, logger.Get("normalize"))

			var callOpts []normalize.CallOption
			if audioHash != "" {
				callOpts = append(callOpts, normalize.WithAudioHash(audioHash))
			}
			if requestID != "" {
				callOpts = append(callOpts, normalize.WithRequestID(requestID))
			}

			ctx := cmd.Context()
			var resp *transcription.UnifiedTranscriptResponse
			if transportErr != "" {
				cause := transport.NewConnectionError(errors.New(transportErr))
				if timeout {
					cause = transport.NewTimeoutError(errors.New(transportErr))
				}
				resp = n.AssembleFailure(ctx, p, cause, raw, callOpts...)
			} else {
				success := !failed && status >= 200 && status < 300
				resp = n.Assemble(ctx, p, raw, success, status, callOpts...)
			}
			return writeJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringP("provider", "p", "", "provider that produced the response ("+providerList()+")")
	cmd.Flags().Int("status", 200, "HTTP status of the provider response")
	cmd.Flags().Bool("failed", false, "treat the response as a failed call regardless of status")
	cmd.Flags().String("audio-hash", "", "audio fingerprint to record in tracking")
	cmd.Flags().String("request-id", "", "request id to record in tracking")
	cmd.Flags().String("transport-error", "", "message of a transport failure; the input is optional")
	cmd.Flags().Bool("timeout", false, "classify --transport-error as a timeout")
	_ = cmd.MarkFlagRequired("provider")

	return cmd
}

func providerList() string {
	var names []string
	for _, p := range transcription.Providers() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}
