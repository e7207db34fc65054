package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the loader binds.
const EnvPrefix = "VOICEROUTER_"

// FileSystem is the file access the loader needs.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

type osFS struct{}

func (osFS) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// LoadEnv sets variables from a .env file without overriding ones already
// present in the process environment.
func (osFS) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Sources are the files one load reads. Empty means none.
type Sources struct {
	ConfigFile string
	EnvFile    string
}

// Resolver locates the config and .env files of a service.
type Resolver struct {
	FileSystem FileSystem
	Service    string
}

// Resolve keeps explicit paths and searches for the rest.
func (r Resolver) Resolve(explicit Sources) Sources {
	src := explicit
	if src.ConfigFile == "" {
		src.ConfigFile = r.find(r.configCandidates())
	}
	if src.EnvFile == "" {
		src.EnvFile = r.find(r.envCandidates())
	}
	return src
}

func (r Resolver) find(candidates []string) string {
	for _, c := range candidates {
		if r.FileSystem.Exists(c) {
			return c
		}
	}
	return ""
}

// configCandidates lists lookup locations, most specific first: the
// binary's cmd directory, ./config, the working directory, then the
// user config directory.
func (r Resolver) configCandidates() []string {
	names := []string{"config.yml", "config.yaml", r.Service + ".yml", r.Service + ".yaml"}

	var out []string
	for _, dir := range []string{"./cmd/" + r.Service, "./config"} {
		for _, name := range names {
			out = append(out, dir+"/"+name)
		}
	}
	out = append(out, "./config.yml", "./config.yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		out = append(out, filepath.Join(dir, r.Service, "config.yml"))
	}
	return out
}

func (r Resolver) envCandidates() []string {
	return []string{"./cmd/" + r.Service + "/.env", "./config/.env", "./.env." + r.Service, "./.env"}
}

type loader struct {
	fs       FileSystem
	explicit Sources
}

// LoaderOption customizes LoadConfig.
type LoaderOption func(*loader)

// WithFileSystem replaces the OS file system.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(l *loader) { l.fs = fs }
}

// WithConfigFile skips the search for a YAML file.
func WithConfigFile(path string) LoaderOption {
	return func(l *loader) { l.explicit.ConfigFile = path }
}

// WithEnvFile skips the search for a .env file.
func WithEnvFile(path string) LoaderOption {
	return func(l *loader) { l.explicit.EnvFile = path }
}

// LoadConfig merges the YAML file, the .env file and the process
// environment into cfg, which must be a pointer to a struct with
// mapstructure tags. Files that do not exist are skipped; files that exist
// but do not parse are errors.
func LoadConfig(service string, cfg any, opts ...LoaderOption) error {
	l := loader{fs: osFS{}}
	for _, opt := range opts {
		opt(&l)
	}
	src := Resolver{FileSystem: l.fs, Service: service}.Resolve(l.explicit)

	v := viper.New()
	if src.ConfigFile != "" && l.fs.Exists(src.ConfigFile) {
		v.SetConfigFile(src.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", src.ConfigFile, err)
		}
	}
	if src.EnvFile != "" && l.fs.Exists(src.EnvFile) {
		if err := l.fs.LoadEnv(src.EnvFile); err != nil {
			return fmt.Errorf("load env file %s: %w", src.EnvFile, err)
		}
	}
	for _, key := range settingKeys(reflect.TypeOf(cfg), "") {
		if err := v.BindEnv(key, EnvVar(key)); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("decode %s config: %w", service, err)
	}
	return nil
}

// EnvVar returns the variable that overrides a dotted setting key:
// server.max_body_size is VOICEROUTER_SERVER_MAX_BODY_SIZE.
func EnvVar(key string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// settingKeys lists the dotted mapstructure paths of every leaf field of t.
func settingKeys(t reflect.Type, prefix string) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var keys []string
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "-" {
			continue
		}
		if opts == "squash" {
			keys = append(keys, settingKeys(f.Type, prefix)...)
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}

		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			keys = append(keys, settingKeys(ft, prefix+name+".")...)
			continue
		}
		keys = append(keys, prefix+name)
	}
	return keys
}
