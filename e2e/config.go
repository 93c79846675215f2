package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_BIND_HOST is the loopback address both peers bind to
	BindHost string `envconfig:"E2E_BIND_HOST" default:"127.0.0.1"`
	// E2E_WAIT bounds how long a datagram may take to show up on the other peer
	Wait time.Duration `envconfig:"E2E_WAIT" default:"2s"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
