package comment

import (
	"net/http"

	cmtUC "newsboard/internal/usecase/comment"
)

// Register mounts the comment routes.
func Register(mux *http.ServeMux, svc *cmtUC.Service) {
	mux.Handle("GET /api/articles/{article_id}/comments", ListHandler{Svc: svc})
	mux.Handle("POST /api/articles/{article_id}/comments", CreateHandler{Svc: svc})
	mux.Handle("DELETE /api/comments/{comment_id}", DeleteHandler{Svc: svc})
}
