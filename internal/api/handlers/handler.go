package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/autonomys/staking-portal-api/internal/config"
	"github.com/autonomys/staking-portal-api/internal/services"
	"github.com/autonomys/staking-portal-api/internal/types"
)

type Handler struct {
	config   *config.Config
	services *services.Services
}

type paginationResponse struct {
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
}

type PublicResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination *paginationResponse `json:"pagination,omitempty"`
}

type Result struct {
	Data   interface{}
	Status int
}

// NewResult returns a successful result, with default status code 200
func NewResultWithPagination[T any](data T, limit, offset int64) *Result {
	res := &PublicResponse[T]{Data: data, Pagination: &paginationResponse{Limit: limit, Offset: offset}}
	return &Result{Data: res, Status: http.StatusOK}
}

func NewResult[T any](data T) *Result {
	res := &PublicResponse[T]{Data: data}
	return &Result{Data: res, Status: http.StatusOK}
}

func New(
	ctx context.Context, cfg *config.Config, services *services.Services,
) (*Handler, error) {
	return &Handler{
		config:   cfg,
		services: services,
	}, nil
}

// parsePagination reads limit and offset query parameters, clamping the limit
// to the configured maximum.
func (h *Handler) parsePagination(request *http.Request) (limit, offset int64, err *types.Error) {
	maxLimit := h.config.Db.MaxPaginationLimit
	limit = maxLimit
	offset = 0

	if raw := request.URL.Query().Get("limit"); raw != "" {
		parsed, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || parsed <= 0 {
			return 0, 0, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid limit")
		}
		limit = parsed
		if limit > maxLimit {
			limit = maxLimit
		}
	}
	if raw := request.URL.Query().Get("offset"); raw != "" {
		parsed, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || parsed < 0 {
			return 0, 0, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid offset")
		}
		offset = parsed
	}
	return limit, offset, nil
}
