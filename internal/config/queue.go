package config

import (
	"fmt"
)

type QueueConfig struct {
	Url                    string `mapstructure:"url"`
	QueueUser              string `mapstructure:"queue-user"`
	QueuePassword          string `mapstructure:"queue-password"`
	DepositQueueName       string `mapstructure:"deposit-queue-name"`
	WithdrawalQueueName    string `mapstructure:"withdrawal-queue-name"`
	QueueProcessingTimeout int    `mapstructure:"queue-processing-timeout"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.Url == "" {
		return fmt.Errorf("missing queue url")
	}

	if cfg.QueueUser == "" {
		return fmt.Errorf("missing queue user")
	}

	if cfg.QueuePassword == "" {
		return fmt.Errorf("missing queue password")
	}

	if cfg.DepositQueueName == "" {
		return fmt.Errorf("missing deposit queue name")
	}

	if cfg.WithdrawalQueueName == "" {
		return fmt.Errorf("missing withdrawal queue name")
	}

	if cfg.QueueProcessingTimeout <= 0 {
		return fmt.Errorf("queue processing timeout must be a positive integer")
	}

	return nil
}
