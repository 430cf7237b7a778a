package config

import (
	"errors"
	"net/url"
)

// IndexerConfig points at the GraphQL staking indexer the portal reads
// deposits, withdrawals and share prices from.
type IndexerConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Timeout  int    `mapstructure:"timeout"`
}

func (cfg *IndexerConfig) Validate() error {
	if cfg.Endpoint == "" {
		return errors.New("indexer endpoint cannot be empty")
	}

	if cfg.Timeout <= 0 {
		return errors.New("indexer timeout cannot be smaller or equal to 0")
	}

	parsedURL, err := url.ParseRequestURI(cfg.Endpoint)
	if err != nil {
		return errors.New("invalid indexer endpoint")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("indexer endpoint must start with http or https")
	}

	return nil
}
