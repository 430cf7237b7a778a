package scripts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/autonomys/staking-portal-api/internal/config"
	"github.com/autonomys/staking-portal-api/internal/db"
	"github.com/autonomys/staking-portal-api/internal/queue"
	queueClient "github.com/autonomys/staking-portal-api/internal/queue/client"
)

type GenericEvent struct {
	EventType queueClient.EventType `json:"event_type"`
}

// ReplayUnprocessableMessages pushes parked messages back onto their queues
// so they run through the normal processing path again.
func ReplayUnprocessableMessages(ctx context.Context, cfg *config.Config, queues *queue.Queues, db db.DBClient) error {
	unprocessableMessages, err := db.FindUnprocessableMessages(ctx)
	if err != nil {
		return errors.New("failed to retrieve unprocessable messages")
	}

	messageCount := len(unprocessableMessages)
	fmt.Printf("There are %d unprocessable messages.\n", messageCount)
	if messageCount == 0 {
		return errors.New("no unprocessable messages to replay")
	}

	for _, msg := range unprocessableMessages {
		var genericEvent GenericEvent
		if err := json.Unmarshal([]byte(msg.MessageBody), &genericEvent); err != nil {
			fmt.Printf("Failed to unmarshal event message: %v", err)
			return errors.New("failed to unmarshal event message")
		}

		if err := processEventMessage(ctx, queues, genericEvent, msg.MessageBody); err != nil {
			return errors.New("failed to process message")
		}

		if err := db.DeleteUnprocessableMessage(ctx, msg.Receipt); err != nil {
			return errors.New("failed to delete unprocessable message")
		}
	}

	log.Info().Msg("Reprocessing of unprocessable messages completed.")
	return nil
}

// processEventMessage routes the event message to its queue by EventType.
func processEventMessage(ctx context.Context, queues *queue.Queues, event GenericEvent, messageBody string) error {
	switch event.EventType {
	case queueClient.StakingDepositEventType:
		return queues.DepositQueueClient.SendMessage(ctx, messageBody)
	case queueClient.StakingWithdrawalEventType:
		return queues.WithdrawalQueueClient.SendMessage(ctx, messageBody)
	default:
		return fmt.Errorf("unknown event type: %v", event.EventType)
	}
}
