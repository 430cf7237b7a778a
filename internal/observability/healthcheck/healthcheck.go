package healthcheck

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/autonomys/staking-portal-api/internal/queue"
)

var logger zerolog.Logger = log.Logger

func SetLogger(customLogger zerolog.Logger) {
	logger = customLogger
}

// Pinger is any dependency whose liveness is checked by pinging it.
type Pinger interface {
	Ping(ctx context.Context) error
}

func StartHealthCheckCron(ctx context.Context, queues *queue.Queues, db Pinger, cronTimeInSec int) error {
	c := cron.New()
	logger.Info().Msg("Initiated Health Check Cron")

	if cronTimeInSec == 0 {
		cronTimeInSec = 60
	}

	cronSpec := fmt.Sprintf("@every %ds", cronTimeInSec)

	_, err := c.AddFunc(cronSpec, func() {
		queueHealthCheck(queues)
		dbHealthCheck(ctx, db)
	})

	if err != nil {
		return err
	}

	c.Start()

	go func() {
		<-ctx.Done()
		logger.Info().Msg("Stopping Health Check Cron")
		c.Stop()
	}()

	return nil
}

func queueHealthCheck(queues *queue.Queues) {
	if err := queues.IsConnectionHealthy(); err != nil {
		logger.Error().Err(err).Msg("One or more queue connections are not healthy.")
		terminateService()
	}
}

func dbHealthCheck(ctx context.Context, db Pinger) {
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.Ping(pingCtx); err != nil {
		logger.Error().Err(err).Msg("Database connection is not healthy.")
		terminateService()
	}
}

func terminateService() {
	logger.Fatal().Msg("Terminating service due to health check failure.")
	os.Exit(1)
}
