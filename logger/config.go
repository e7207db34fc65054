package logger

import "github.com/kbukum/voicerouter/validation"

// Config contains logging configuration.
type Config struct {
	Level     string `yaml:"level" mapstructure:"level"`
	Format    string `yaml:"format" mapstructure:"format"`
	Output    string `yaml:"output" mapstructure:"output"`
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller    bool   `yaml:"caller" mapstructure:"caller"`
}

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "disabled"}
	validFormats = []string{"json", "console", FormatPretty}
	validOutputs = []string{"stdout", "stderr"}
)

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
	c.Timestamp = true
}

// Validate reports level, format or output values the logger does not
// know. Empty values are left to ApplyDefaults.
func (c *Config) Validate() error {
	return c.ValidateInto(validation.New()).Err()
}

// ValidateInto records the logging checks on v under "logging.*" names.
func (c *Config) ValidateInto(v *validation.Validator) *validation.Validator {
	return v.
		OneOf("logging.level", c.Level, validLevels...).
		OneOf("logging.format", c.Format, validFormats...).
		OneOf("logging.output", c.Output, validOutputs...)
}
