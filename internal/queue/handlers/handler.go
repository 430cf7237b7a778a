package handlers

import "github.com/autonomys/staking-portal-api/internal/services"

type QueueHandler struct {
	Services *services.Services
}

func NewQueueHandler(services *services.Services) *QueueHandler {
	return &QueueHandler{
		Services: services,
	}
}
