package config

import (
	"strings"
	"time"

	"github.com/kbukum/voicerouter/logger"
	"github.com/kbukum/voicerouter/normalize"
	"github.com/kbukum/voicerouter/observability"
	"github.com/kbukum/voicerouter/server"
	"github.com/kbukum/voicerouter/transcription"
	"github.com/kbukum/voicerouter/validation"
	"github.com/kbukum/voicerouter/version"
)

// ServiceName names the binary for file resolution and telemetry.
const ServiceName = "voicerouter"

// Config is the voicerouter binary configuration.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging    logger.Config    `yaml:"logging" mapstructure:"logging"`
	Normalizer NormalizerConfig `yaml:"normalizer" mapstructure:"normalizer"`
	Server     server.Config    `yaml:"server" mapstructure:"server"`
	Telemetry  TelemetryConfig  `yaml:"telemetry" mapstructure:"telemetry"`
}

// NormalizerConfig tunes response assembly and webhook mapping.
type NormalizerConfig struct {
	DefaultStatus string `yaml:"default_status" mapstructure:"default_status" validate:"oneof=queued processing completed error"`
	// SpeakerLabelFormat replaces "{id}" with the provider speaker id.
	SpeakerLabelFormat string `yaml:"speaker_label_format" mapstructure:"speaker_label_format" validate:"required,contains={id}"`
	RetainRaw          *bool  `yaml:"retain_raw" mapstructure:"retain_raw"`
	Tracking           bool   `yaml:"tracking" mapstructure:"tracking"`
}

// TelemetryConfig configures the OTLP exporters used by `serve`.
type TelemetryConfig struct {
	Enabled        bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint       string  `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true"`
	Insecure       bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate     float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`   // 0 selects 1.0
	MetricInterval int     `yaml:"metric_interval" mapstructure:"metric_interval" validate:"gte=0"` // seconds
}

// Load reads the configuration, applies defaults and validates it.
func Load(opts ...LoaderOption) (*Config, error) {
	var cfg Config
	if err := LoadConfig(ServiceName, &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = ServiceName
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Version == "" {
		c.Version = version.Get().Short()
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	if c.Debug && c.Logging.Level == "info" {
		c.Logging.Level = "debug"
	}
	c.Normalizer.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

// Validate checks every section and reports all failures as one
// INVALID_INPUT StandardError.
func (c *Config) Validate() error {
	return c.Logging.ValidateInto(validation.New().Struct(c)).Err()
}

// ApplyDefaults fills unset normalizer fields.
func (c *NormalizerConfig) ApplyDefaults() {
	if c.DefaultStatus == "" {
		c.DefaultStatus = string(transcription.StatusQueued)
	}
	if c.SpeakerLabelFormat == "" {
		c.SpeakerLabelFormat = "Speaker {id}"
	}
	if c.RetainRaw == nil {
		retain := true
		c.RetainRaw = &retain
	}
}

// SpeakerLabel formats a speaker id with SpeakerLabelFormat.
func (c NormalizerConfig) SpeakerLabel(id string) string {
	return strings.ReplaceAll(c.SpeakerLabelFormat, "{id}", id)
}

// MapOptions returns the mapping options shared by the assembler and the
// webhook normalizer.
func (c NormalizerConfig) MapOptions() transcription.MapOptions {
	return transcription.MapOptions{
		DefaultStatus: transcription.Status(c.DefaultStatus),
		SpeakerLabel:  c.SpeakerLabel,
	}
}

// Options returns the assembler options for this configuration.
func (c NormalizerConfig) Options() []normalize.Option {
	opts := []normalize.Option{
		normalize.WithDefaultStatus(transcription.Status(c.DefaultStatus)),
		normalize.WithSpeakerLabel(c.SpeakerLabel),
		normalize.WithTracking(c.Tracking),
	}
	if c.RetainRaw != nil {
		opts = append(opts, normalize.WithRetainRaw(*c.RetainRaw))
	}
	return opts
}

// ApplyDefaults fills unset telemetry fields.
func (c *TelemetryConfig) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
	if c.MetricInterval == 0 {
		c.MetricInterval = 15
	}
}

// TracerConfig converts to the observability tracer settings.
func (c *Config) TracerConfig() *observability.TracerConfig {
	tc := observability.DefaultTracerConfig(c.Name)
	tc.ServiceVersion = c.Version
	tc.Environment = c.Environment
	tc.Endpoint = c.Telemetry.Endpoint
	tc.Insecure = c.Telemetry.Insecure
	tc.SampleRate = c.Telemetry.SampleRate
	return &tc
}

// MeterConfig converts to the observability meter settings.
func (c *Config) MeterConfig() *observability.MeterConfig {
	mc := observability.DefaultMeterConfig(c.Name)
	mc.ServiceVersion = c.Version
	mc.Environment = c.Environment
	mc.Endpoint = c.Telemetry.Endpoint
	mc.Insecure = c.Telemetry.Insecure
	mc.Interval = time.Duration(c.Telemetry.MetricInterval) * time.Second
	return &mc
}
