package article

import (
	"log/slog"
	"net/http"

	"newsboard/internal/common/pagination"
	artUC "newsboard/internal/usecase/article"
)

// Register mounts the article routes.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /api/articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET /api/articles/{article_id}", GetHandler{Svc: svc})
	mux.Handle("PATCH /api/articles/{article_id}", UpdateHandler{Svc: svc})
}
