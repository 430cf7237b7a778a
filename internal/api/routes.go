package api

import (
	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/autonomys/staking-portal-api/docs"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Get("/v1/operators", registerHandler(handlers.GetOperators))
	r.Get("/v1/operators/{operator_id}", registerHandler(handlers.GetOperator))
	r.Get("/v1/positions", registerHandler(handlers.GetPositions))
	r.Get("/v1/transactions", registerHandler(handlers.GetTransactions))
	r.Post("/v1/withdrawals/preview", registerHandler(handlers.PreviewWithdrawal))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
