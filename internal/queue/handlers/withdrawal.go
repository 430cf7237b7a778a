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

// StakingWithdrawalHandler saves a withdrawal event into the record cache.
// Idempotent on duplicate messages.
func (h *QueueHandler) StakingWithdrawalHandler(ctx context.Context, messageBody string) error {
	var event queueClient.StakingWithdrawalEvent
	if err := json.Unmarshal([]byte(messageBody), &event); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal the message body into StakingWithdrawalEvent")
		return err
	}
	if event.EventType != queueClient.StakingWithdrawalEventType {
		return fmt.Errorf("unexpected event type %d on withdrawal queue", event.EventType)
	}
	if event.Id == "" {
		return fmt.Errorf("withdrawal event missing id")
	}

	record := &model.WithdrawalRecordDocument{
		Id:                            event.Id,
		OperatorId:                    event.OperatorId,
		DomainId:                      event.DomainId,
		Address:                       event.Address,
		TotalWithdrawalAmount:         event.TotalWithdrawalAmount,
		WithdrawalInSharesAmount:      event.WithdrawalInSharesAmount,
		WithdrawalInSharesDomainEpoch: event.WithdrawalInSharesDomainEpoch,
		TotalStorageFeeWithdrawal:     event.TotalStorageFeeWithdrawal,
		WithdrawalInSharesUnlockBlock: event.WithdrawalInSharesUnlockBlock,
		Timestamp:                     event.Timestamp,
		BlockHeight:                   event.BlockHeight,
		ExtrinsicIds:                  event.ExtrinsicIds,
		EventIds:                      event.EventIds,
	}
	if err := h.Services.DbClient.SaveWithdrawalRecord(ctx, record); err != nil {
		if db.IsDuplicateKeyError(err) {
			return nil
		}
		log.Ctx(ctx).Error().Err(err).Str("withdrawal_id", event.Id).Msg("Failed to save withdrawal record")
		return err
	}
	return nil
}
