package article

import (
	"log/slog"
	"net/http"
	"time"

	"newsboard/internal/common/pagination"
	"newsboard/internal/handler/http/respond"
	"newsboard/internal/observability/logging"
	artUC "newsboard/internal/usecase/article"
)

type listResponse struct {
	Articles   []DTO `json:"articles"`
	TotalCount int64 `json:"total_count"`
}

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", slog.String("error", err.Error()))
		pagination.RecordError("validation")
		respond.Error(w, err)
		return
	}

	// A key that is present but empty still counts as supplied; the
	// service rejects empty sort flags while an empty topic simply
	// matches nothing.
	query := r.URL.Query()
	var listQuery artUC.ListQuery
	if query.Has("topic") {
		topic := query.Get("topic")
		listQuery.Topic = &topic
	}
	if query.Has("sort_by") {
		sortBy := query.Get("sort_by")
		listQuery.SortBy = &sortBy
	}
	if query.Has("order") {
		order := query.Get("order")
		listQuery.Order = &order
	}

	result, err := h.Svc.List(ctx, listQuery, params)
	if err != nil {
		logger.Warn("article list failed",
			slog.String("error", err.Error()),
			slog.Int("page", params.Page),
			slog.Int("limit", params.Limit))
		pagination.RecordError("query")
		respond.Error(w, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Articles))
	for _, row := range result.Articles {
		dtos = append(dtos, toDTO(row))
	}

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", duration.Seconds())

	logger.Info("article list served",
		slog.Int("page", params.Page),
		slog.Int("limit", params.Limit),
		slog.Int("returned_count", len(dtos)),
		slog.Int64("total_count", result.TotalCount),
		slog.Int64("duration_ms", duration.Milliseconds()))

	respond.JSON(w, http.StatusOK, listResponse{Articles: dtos, TotalCount: result.TotalCount})
}
