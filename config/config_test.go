package config

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/kbukum/voicerouter/errors"
	"github.com/kbukum/voicerouter/transcription"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Name != "voicerouter" {
		t.Errorf("expected name 'voicerouter', got %q", cfg.Name)
	}
	if cfg.Environment != "development" || !cfg.Debug {
		t.Errorf("expected development with debug, got %q debug=%v", cfg.Environment, cfg.Debug)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug log level in development, got %q", cfg.Logging.Level)
	}
	if cfg.Version == "" {
		t.Error("expected version to default to the build version")
	}
	if cfg.Normalizer.DefaultStatus != "queued" {
		t.Errorf("expected default status 'queued', got %q", cfg.Normalizer.DefaultStatus)
	}
	if cfg.Normalizer.RetainRaw == nil || !*cfg.Normalizer.RetainRaw {
		t.Error("expected retain_raw to default to true")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Telemetry.SampleRate != 1.0 || cfg.Telemetry.MetricInterval != 15 {
		t.Errorf("unexpected telemetry defaults %+v", cfg.Telemetry)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestConfigApplyDefaults_ProductionKeepsInfo(t *testing.T) {
	cfg := Config{Environment: "production"}
	cfg.ApplyDefaults()
	if cfg.Debug {
		t.Error("expected debug=false for production")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected info log level, got %q", cfg.Logging.Level)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad environment", func(c *Config) { c.Environment = "qa" }, "environment"},
		{"bad default status", func(c *Config) { c.Normalizer.DefaultStatus = "done" }, "default_status"},
		{"label without placeholder", func(c *Config) { c.Normalizer.SpeakerLabelFormat = "Speaker" }, "speaker_label_format"},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "port"},
		{"bad sample rate", func(c *Config) { c.Telemetry.SampleRate = 2 }, "sample_rate"},
		{"telemetry without endpoint", func(c *Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Endpoint = ""
		}, "endpoint"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var cfg Config
			cfg.ApplyDefaults()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			se, ok := errors.AsStandardError(err)
			if !ok || se.Code != errors.ErrCodeInvalidInput {
				t.Fatalf("expected INVALID_INPUT, got %v", err)
			}
			if !strings.Contains(strings.ToLower(se.Message), tc.field) {
				t.Errorf("expected message to name %q, got %q", tc.field, se.Message)
			}
		})
	}
}

func TestConfigValidate_Logging(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Errorf("expected logging.format error, got %v", err)
	}
}

func TestNormalizerConfig(t *testing.T) {
	nc := NormalizerConfig{DefaultStatus: "processing", SpeakerLabelFormat: "Voice #{id}"}

	if got := nc.SpeakerLabel("2"); got != "Voice #2" {
		t.Errorf("expected 'Voice #2', got %q", got)
	}

	mo := nc.MapOptions()
	if mo.DefaultStatus != transcription.StatusProcessing {
		t.Errorf("expected processing, got %s", mo.DefaultStatus)
	}
	if got := mo.Label("A"); got != "Voice #A" {
		t.Errorf("expected 'Voice #A', got %q", got)
	}

	if n := len(nc.Options()); n != 3 {
		t.Errorf("expected 3 options without retain_raw, got %d", n)
	}
	nc.ApplyDefaults()
	if n := len(nc.Options()); n != 4 {
		t.Errorf("expected 4 options with retain_raw, got %d", n)
	}
}

func TestTelemetryConversion(t *testing.T) {
	cfg := Config{Environment: "staging", Version: "1.4.0"}
	cfg.Telemetry = TelemetryConfig{Enabled: true, Endpoint: "otel:4318", SampleRate: 0.25, MetricInterval: 30}
	cfg.ApplyDefaults()

	tc := cfg.TracerConfig()
	if tc.ServiceName != "voicerouter" || tc.Endpoint != "otel:4318" || tc.SampleRate != 0.25 {
		t.Errorf("unexpected tracer config %+v", tc)
	}
	if tc.ServiceVersion != "1.4.0" || tc.Environment != "staging" {
		t.Errorf("expected version and environment to carry over, got %+v", tc)
	}

	mc := cfg.MeterConfig()
	if mc.Interval.Seconds() != 30 {
		t.Errorf("expected 30s interval, got %v", mc.Interval)
	}
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", `
name: voicerouter
environment: staging
normalizer:
  default_status: processing
  speaker_label_format: "Spk {id}"
  retain_raw: false
  tracking: true
server:
  port: 9000
  max_body_size: 2MB
`)

	cfg, err := Load(WithConfigFile(path), WithEnvFile(filepath.Join(dir, "missing.env")))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected environment 'staging', got %q", cfg.Environment)
	}
	if cfg.Normalizer.DefaultStatus != "processing" || !cfg.Normalizer.Tracking {
		t.Errorf("unexpected normalizer config %+v", cfg.Normalizer)
	}
	if cfg.Normalizer.RetainRaw == nil || *cfg.Normalizer.RetainRaw {
		t.Error("expected retain_raw false from file")
	}
	if cfg.Server.Port != 9000 || cfg.Server.MaxBodySize != "2MB" {
		t.Errorf("unexpected server config %+v", cfg.Server)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "server:\n  port: 9000\n")
	t.Setenv("VOICEROUTER_SERVER_PORT", "9100")
	t.Setenv("VOICEROUTER_NORMALIZER_DEFAULT_STATUS", "error")
	t.Setenv("SERVER_PORT", "1")

	cfg, err := Load(WithConfigFile(path), WithEnvFile(filepath.Join(dir, "missing.env")))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("expected env port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Normalizer.DefaultStatus != "error" {
		t.Errorf("expected env default status 'error', got %q", cfg.Normalizer.DefaultStatus)
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "VOICEROUTER_TELEMETRY_SAMPLE_RATE=0.5\n")
	t.Setenv("VOICEROUTER_TELEMETRY_SAMPLE_RATE", "")
	os.Unsetenv("VOICEROUTER_TELEMETRY_SAMPLE_RATE")

	cfg, err := Load(WithConfigFile(filepath.Join(dir, "none.yml")), WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Telemetry.SampleRate != 0.5 {
		t.Errorf("expected sample rate 0.5 from .env, got %v", cfg.Telemetry.SampleRate)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "server: [unclosed\n")
	var cfg Config
	if err := LoadConfig(ServiceName, &cfg, WithConfigFile(path)); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg Config
	err := LoadConfig(ServiceName, &cfg, WithConfigFile("/nonexistent/path.yml"), WithEnvFile("/nonexistent/.env"))
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) LoadEnv(string) error    { return nil }

func TestResolverWithMockFS(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]bool
		configFile string
		envFile    string
	}{
		{
			"cmd directory wins",
			map[string]bool{"./cmd/voicerouter/config.yml": true, "./config.yml": true, "./.env": true},
			"./cmd/voicerouter/config.yml", "./.env",
		},
		{
			"root fallback",
			map[string]bool{"./config.yaml": true, "./.env.voicerouter": true},
			"./config.yaml", "./.env.voicerouter",
		},
		{"nothing found", map[string]bool{}, "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Resolver{FileSystem: &mockFS{files: tc.files}, Service: ServiceName}
			files := r.Resolve(Sources{})
			if files.ConfigFile != tc.configFile {
				t.Errorf("expected config file %q, got %q", tc.configFile, files.ConfigFile)
			}
			if files.EnvFile != tc.envFile {
				t.Errorf("expected env file %q, got %q", tc.envFile, files.EnvFile)
			}
		})
	}
}

func TestResolverExplicitPaths(t *testing.T) {
	r := Resolver{FileSystem: &mockFS{files: map[string]bool{"./config.yml": true}}, Service: ServiceName}
	files := r.Resolve(Sources{ConfigFile: "/etc/vr.yml", EnvFile: "/etc/vr.env"})
	if files.ConfigFile != "/etc/vr.yml" || files.EnvFile != "/etc/vr.env" {
		t.Errorf("expected explicit paths, got %+v", files)
	}
}

func TestSettingKeys(t *testing.T) {
	keys := settingKeys(reflect.TypeOf(&Config{}), "")
	for _, want := range []string{
		"name",
		"logging.level",
		"normalizer.retain_raw",
		"server.max_body_size",
		"telemetry.sample_rate",
	} {
		if !slices.Contains(keys, want) {
			t.Errorf("expected %q in %v", want, keys)
		}
	}
	if slices.Contains(keys, "server") {
		t.Error("expected nested sections to expand into leaf keys")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("server.max_body_size"); got != "VOICEROUTER_SERVER_MAX_BODY_SIZE" {
		t.Errorf("expected VOICEROUTER_SERVER_MAX_BODY_SIZE, got %q", got)
	}
}

func TestLoadConfigFileSystemOverride(t *testing.T) {
	fs := &mockFS{files: map[string]bool{}}
	var cfg Config
	if err := LoadConfig(ServiceName, &cfg, WithFileSystem(fs), WithConfigFile("/etc/vr.yml")); err != nil {
		t.Fatalf("expected missing files to be skipped, got %v", err)
	}
	if cfg.Server.Port != 0 {
		t.Errorf("expected zero port without sources, got %d", cfg.Server.Port)
	}
}
