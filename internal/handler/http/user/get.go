package user

import (
	"net/http"

	"newsboard/internal/handler/http/respond"
	usrUC "newsboard/internal/usecase/user"
)

type getResponse struct {
	User DTO `json:"user"`
}

type GetHandler struct{ Svc *usrUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, err := h.Svc.GetByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, getResponse{User: toDTO(u)})
}
