package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/autonomys/staking-portal-api/cmd/staking-portal-api/cli"
	"github.com/autonomys/staking-portal-api/cmd/staking-portal-api/scripts"
	"github.com/autonomys/staking-portal-api/internal/api"
	"github.com/autonomys/staking-portal-api/internal/clients"
	"github.com/autonomys/staking-portal-api/internal/config"
	"github.com/autonomys/staking-portal-api/internal/db/model"
	"github.com/autonomys/staking-portal-api/internal/observability/healthcheck"
	"github.com/autonomys/staking-portal-api/internal/observability/metrics"
	"github.com/autonomys/staking-portal-api/internal/queue"
	"github.com/autonomys/staking-portal-api/internal/services"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	ctx := context.Background()

	// setup cli commands and flags
	if err := cli.Setup(); err != nil {
		log.Fatal().Err(err).Msg("error while setting up cli")
	}

	// load config
	cfgPath := cli.GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	err = model.Setup(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up staking db model")
	}

	externalClients := clients.New(cfg)
	services, err := services.New(ctx, cfg, externalClients)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up staking services layer")
	}

	// Start the event queue processing
	queues := queue.New(cfg.Queue, services)

	// Check if the replay flag is set
	if cli.GetReplayFlag() {
		log.Info().Msg("Replay flag is set. Starting replay of unprocessable messages.")
		err := scripts.ReplayUnprocessableMessages(ctx, cfg, queues, services.DbClient)
		if err != nil {
			log.Fatal().Err(err).Msg("error while replaying unprocessable messages")
		}
		return
	}

	queues.StartReceivingMessages()

	if err = healthcheck.StartHealthCheckCron(ctx, queues, services.DbClient, cfg.Server.HealthCheckInterval); err != nil {
		log.Fatal().Err(err).Msg("error while starting health check cron")
	}

	apiServer, err := api.New(ctx, cfg, services)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up staking portal api service")
	}
	if err = apiServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("error while starting staking portal api service")
	}
}
