package server

import (
	"github.com/kbukum/voicerouter/util"
	"github.com/kbukum/voicerouter/validation"
)

// Config holds HTTP receiver configuration.
type Config struct {
	Host            string `yaml:"host" mapstructure:"host"`
	Port            int    `yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
	ReadTimeout     int    `yaml:"read_timeout" mapstructure:"read_timeout" validate:"gte=0"`         // seconds
	WriteTimeout    int    `yaml:"write_timeout" mapstructure:"write_timeout" validate:"gte=0"`       // seconds
	IdleTimeout     int    `yaml:"idle_timeout" mapstructure:"idle_timeout" validate:"gte=0"`         // seconds
	ShutdownTimeout int    `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout" validate:"gte=0"` // seconds
	MaxBodySize     string `yaml:"max_body_size" mapstructure:"max_body_size"`                        // e.g. "10MB"
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 15
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 15
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 5
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "10MB"
	}
}

// Validate checks ranges and that MaxBodySize is a readable size.
func (c *Config) Validate() error {
	sizeOK := c.MaxBodySize == "" || util.ParseSize(c.MaxBodySize, -1) > 0
	return validation.New().
		Struct(c).
		Check(sizeOK, "max_body_size", "%q is not a size such as 10MB", c.MaxBodySize).
		Err()
}
