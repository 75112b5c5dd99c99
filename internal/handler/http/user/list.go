package user

import (
	"net/http"

	"newsboard/internal/handler/http/respond"
	usrUC "newsboard/internal/usecase/user"
)

type listResponse struct {
	Users []DTO `json:"users"`
}

type ListHandler struct{ Svc *usrUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.List(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	dtos := make([]DTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toDTO(u))
	}
	respond.JSON(w, http.StatusOK, listResponse{Users: dtos})
}
