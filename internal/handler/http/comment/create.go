package comment

import (
	"encoding/json"
	"net/http"

	"newsboard/internal/domain/entity"
	"newsboard/internal/handler/http/pathutil"
	"newsboard/internal/handler/http/respond"
	cmtUC "newsboard/internal/usecase/comment"
)

type createRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
	Votes    int    `json:"votes"`
}

type createResponse struct {
	Comment createdDTO `json:"comment"`
}

type CreateHandler struct{ Svc *cmtUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.ParseID(r.PathValue("article_id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, entity.ErrInvalidData)
		return
	}

	created, err := h.Svc.Add(r.Context(), articleID, cmtUC.NewComment{
		Username: req.Username,
		Body:     req.Body,
		Votes:    req.Votes,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, createResponse{Comment: toCreatedDTO(created)})
}
