package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/autonomys/staking-portal-api/internal/config"
	"github.com/autonomys/staking-portal-api/internal/observability/metrics"
	"github.com/autonomys/staking-portal-api/internal/queue/client"
	"github.com/autonomys/staking-portal-api/internal/queue/handlers"
	"github.com/autonomys/staking-portal-api/internal/services"
)

type MessageHandler func(ctx context.Context, messageBody string) error

type Queues struct {
	DepositQueueClient    client.QueueClient
	WithdrawalQueueClient client.QueueClient
	Handlers              *handlers.QueueHandler
	services              *services.Services
	processingTimeout     time.Duration
}

func New(cfg config.QueueConfig, service *services.Services) *Queues {
	depositQueueClient, err := client.NewQueueClient(
		cfg.Url, cfg.QueueUser, cfg.QueuePassword, cfg.DepositQueueName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating DepositQueueClient")
	}
	withdrawalQueueClient, err := client.NewQueueClient(
		cfg.Url, cfg.QueueUser, cfg.QueuePassword, cfg.WithdrawalQueueName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating WithdrawalQueueClient")
	}
	handlers := handlers.NewQueueHandler(service)
	return &Queues{
		DepositQueueClient:    depositQueueClient,
		WithdrawalQueueClient: withdrawalQueueClient,
		Handlers:              handlers,
		services:              service,
		processingTimeout:     time.Duration(cfg.QueueProcessingTimeout) * time.Second,
	}
}

// Start all message processing
func (q *Queues) StartReceivingMessages() {
	q.startQueueMessageProcessing(q.DepositQueueClient, q.Handlers.StakingDepositHandler, log.Logger)
	q.startQueueMessageProcessing(q.WithdrawalQueueClient, q.Handlers.StakingWithdrawalHandler, log.Logger)
}

// Turn off all message processing
func (q *Queues) StopReceivingMessages() {
	if err := q.DepositQueueClient.Stop(); err != nil {
		log.Error().Err(err).Str("queueName", q.DepositQueueClient.GetQueueName()).Msg("error while stopping queue client")
	}
	if err := q.WithdrawalQueueClient.Stop(); err != nil {
		log.Error().Err(err).Str("queueName", q.WithdrawalQueueClient.GetQueueName()).Msg("error while stopping queue client")
	}
}

// IsConnectionHealthy pings every queue connection.
func (q *Queues) IsConnectionHealthy() error {
	if err := q.DepositQueueClient.Ping(); err != nil {
		return err
	}
	return q.WithdrawalQueueClient.Ping()
}

func (q *Queues) startQueueMessageProcessing(
	queueClient client.QueueClient, handler MessageHandler, logger zerolog.Logger,
) {
	messagesChan, err := queueClient.ReceiveMessages()
	if err != nil {
		logger.Fatal().Err(err).Str("queueName", queueClient.GetQueueName()).Msg("error setting up message channel from queue")
	}

	go func() {
		for message := range messagesChan {
			// For each message, create a new context with a deadline or timeout
			ctx, cancel := context.WithTimeout(context.Background(), q.processingTimeout)
			err := handler(ctx, message.Body)
			if err != nil {
				metrics.RecordQueueEvent(queueClient.GetQueueName(), metrics.Error)
				logger.Error().Err(err).Str("queueName", queueClient.GetQueueName()).Msg("error while processing message from queue")
				// Park the message for manual inspection; if parking fails
				// the message stays unacknowledged and is redelivered.
				if saveErr := q.services.SaveUnprocessableMessages(ctx, message.Body, message.Receipt); saveErr != nil {
					cancel()
					continue
				}
			} else {
				metrics.RecordQueueEvent(queueClient.GetQueueName(), metrics.Success)
			}

			delErr := queueClient.DeleteMessage(message.Receipt)
			if delErr != nil {
				logger.Error().Err(delErr).Str("queueName", queueClient.GetQueueName()).Msg("error while deleting message from queue")
			}
			cancel()
		}
	}()
}
