package comment

import (
	"net/http"

	"newsboard/internal/handler/http/pathutil"
	"newsboard/internal/handler/http/respond"
	cmtUC "newsboard/internal/usecase/comment"
)

type DeleteHandler struct{ Svc *cmtUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathutil.ParseID(r.PathValue("comment_id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), commentID); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
