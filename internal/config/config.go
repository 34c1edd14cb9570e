package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds runtime settings for the storefront shell. Every field can be
// set through the environment with the STOREFRONT_ prefix, e.g. STOREFRONT_HTTP_PORT.
type Config struct {
	HTTPHost          string        `envconfig:"HTTP_HOST" default:"localhost"`
	HTTPPort          string        `envconfig:"HTTP_PORT" default:"8093"`
	ReadHeaderTimeout time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"20s"`
	// StorePath points at the JSON file backing the local store. Empty means
	// keep everything in memory.
	StorePath string `envconfig:"STORE_PATH" default:""`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (Config, error) {
	var conf Config

	if err := envconfig.Process("storefront", &conf); err != nil {
		return Config{}, errors.Wrap(err, "process env config")
	}

	return conf, nil
}
