package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/voicerouter/config"
	"github.com/kbukum/voicerouter/logger"
	"github.com/kbukum/voicerouter/version"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	configFile string
	envFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "voicerouter",
		Short:         "Normalize speech-to-text provider responses and webhooks",
		Version:       version.Get().Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default: searched in ./cmd/voicerouter, ./config and .)")
	flags.StringVar(&opts.envFile, "env-file", "", ".env file (default: searched next to the config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error, disabled)")

	rootCmd.AddCommand(newNormalizeCmd(opts))
	rootCmd.AddCommand(newWebhookCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// load reads the configuration and initializes the global logger.
func (o *globalOptions) load() (*config.Config, *logger.Logger, error) {
	var lo []config.LoaderOption
	if o.configFile != "" {
		lo = append(lo, config.WithConfigFile(o.configFile))
	}
	if o.envFile != "" {
		lo = append(lo, config.WithEnvFile(o.envFile))
	}

	cfg, err := config.Load(lo...)
	if err != nil {
		return nil, nil, err
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
		if err := cfg.Logging.Validate(); err != nil {
			return nil, nil, err
		}
	}

	logger.Init(cfg.Logging)
	return cfg, logger.GetGlobalLogger(), nil
}

// readInput returns the named file, or stdin for "-" or no argument.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
