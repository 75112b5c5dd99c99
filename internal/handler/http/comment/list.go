package comment

import (
	"net/http"

	"newsboard/internal/handler/http/pathutil"
	"newsboard/internal/handler/http/respond"
	cmtUC "newsboard/internal/usecase/comment"
)

type listResponse struct {
	Comments []DTO `json:"comments"`
}

// emptyListItem is the single element of the body sent when an article
// has no comments. Clients, historically, key off the message.
type emptyListItem struct {
	Message  string `json:"message"`
	Comments []DTO  `json:"comments"`
}

type ListHandler struct{ Svc *cmtUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.ParseID(r.PathValue("article_id"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	comments, err := h.Svc.ListByArticle(r.Context(), articleID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	if len(comments) == 0 {
		respond.JSON(w, http.StatusOK, []emptyListItem{{
			Message:  "No comments associated with this article",
			Comments: []DTO{},
		}})
		return
	}

	dtos := make([]DTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, listResponse{Comments: dtos})
}
