// Package topic provides the HTTP handler for the topic listing.
package topic

import (
	"net/http"

	"newsboard/internal/handler/http/respond"
	topUC "newsboard/internal/usecase/topic"
)

type topicDTO struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type listResponse struct {
	Topics []topicDTO `json:"topics"`
}

type ListHandler struct{ Svc *topUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	topics, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	dtos := make([]topicDTO, 0, len(topics))
	for _, t := range topics {
		dtos = append(dtos, topicDTO{Slug: t.Slug, Description: t.Description})
	}
	respond.JSON(w, http.StatusOK, listResponse{Topics: dtos})
}

// Register mounts the topic routes.
func Register(mux *http.ServeMux, svc *topUC.Service) {
	mux.Handle("GET /api/topics", ListHandler{Svc: svc})
}
