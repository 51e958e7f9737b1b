package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/DjordjeVuckovic/fhs-news/pkg/config/env"
)

type Config struct {
	Host           string `yaml:"hostname"`
	Port           string `yaml:"port"`
	UseHttp2       bool   `yaml:"use_http2"`
	SwaggerEnabled bool   `yaml:"swagger_enabled"`
}

// ApplyEnv overrides fields from HOST, PORT, USE_HTTP2 and SWAGGER_ENABLED and
// fills defaults for anything still empty.
func (c *Config) ApplyEnv() {
	c.Host = env.GetOrDefault("HOST", c.Host)
	c.Port = env.GetOrDefault("PORT", c.Port)
	c.UseHttp2 = env.GetBool("USE_HTTP2", c.UseHttp2)
	c.SwaggerEnabled = env.GetBool("SWAGGER_ENABLED", c.SwaggerEnabled)

	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == "" {
		c.Port = "8080"
	}
}

func (c *Config) Validate() error {
	if err := validatePort(c.Port); err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}
	return nil
}

func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
