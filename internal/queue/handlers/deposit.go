package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/autonomys/staking-portal-api/internal/db"
	"github.com/autonomys/staking-portal-api/internal/db/model"
	queueClient "github.com/autonomys/staking-portal-api/internal/queue/client"
)

// StakingDepositHandler saves a deposit event into the record cache.
// The handler is idempotent: a duplicate message for an already saved record
// is acknowledged without error.
func (h *QueueHandler) StakingDepositHandler(ctx context.Context, messageBody string) error {
	var event queueClient.StakingDepositEvent
	if err := json.Unmarshal([]byte(messageBody), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal the message body into StakingDepositEvent")
		return err
	}
	if event.EventType != queueClient.StakingDepositEventType {
		return fmt.Errorf("unexpected event type %d on deposit queue", event.EventType)
	}
	if event.Id == "" {
		return fmt.Errorf("deposit event missing id")
	}

	record := &model.DepositRecordDocument{
		Id:                          event.Id,
		OperatorId:                  event.OperatorId,
		DomainId:                    event.DomainId,
		Address:                     event.Address,
		PendingAmount:               event.PendingAmount,
		PendingStorageFeeDeposit:    event.PendingStorageFeeDeposit,
		PendingEffectiveDomainEpoch: event.PendingEffectiveDomainEpoch,
		Timestamp:                   event.Timestamp,
		BlockHeight:                 event.BlockHeight,
		ExtrinsicIds:                event.ExtrinsicIds,
		EventIds:                    event.EventIds,
	}
	if err := h.Services.DbClient.SaveDepositRecord(ctx, record); err != nil {
		if db.IsDuplicateKeyError(err) {
			// Duplicate message, the record already exists.
			return nil
		}
		log.Ctx(ctx).Error().Err(err).Str("deposit_id", event.Id).Msg("Failed to save deposit record")
		return err
	}
	return nil
}
