package article

import (
	"net/http"

	"newsboard/internal/handler/http/pathutil"
	"newsboard/internal/handler/http/respond"
	artUC "newsboard/internal/usecase/article"
)

type getResponse struct {
	Article DTO `json:"article"`
}

type GetHandler struct{ Svc *artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("article_id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	row, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, getResponse{Article: toDTO(*row)})
}
