package config

import (
	"errors"
	"net/url"
)

// ChainConfig points at the chain query endpoint used to resolve the current
// domain epoch index and block number.
type ChainConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Timeout  int    `mapstructure:"timeout"`
}

func (cfg *ChainConfig) Validate() error {
	if cfg.Endpoint == "" {
		return errors.New("chain endpoint cannot be empty")
	}

	if cfg.Timeout <= 0 {
		return errors.New("chain timeout cannot be smaller or equal to 0")
	}

	parsedURL, err := url.ParseRequestURI(cfg.Endpoint)
	if err != nil {
		return errors.New("invalid chain endpoint")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("chain endpoint must start with http or https")
	}

	return nil
}
