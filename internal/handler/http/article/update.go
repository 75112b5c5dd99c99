package article

import (
	"encoding/json"
	"net/http"

	"newsboard/internal/domain/entity"
	"newsboard/internal/handler/http/pathutil"
	"newsboard/internal/handler/http/respond"
	artUC "newsboard/internal/usecase/article"
)

type updateRequest struct {
	IncVotes *float64 `json:"inc_votes"`
}

type updateResponse struct {
	Article mutatedDTO `json:"article"`
}

type UpdateHandler struct{ Svc *artUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("article_id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	// Strict decode: a non-numeric inc_votes fails here with the same
	// 400 an absent one gets from the service.
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, entity.ErrBadRequest)
		return
	}

	updated, err := h.Svc.UpdateVotes(r.Context(), id, req.IncVotes)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, updateResponse{Article: toMutatedDTO(updated)})
}
