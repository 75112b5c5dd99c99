package user

import (
	"encoding/json"
	"net/http"

	"newsboard/internal/domain/entity"
	"newsboard/internal/handler/http/respond"
	usrUC "newsboard/internal/usecase/user"
)

type createRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type createResponse struct {
	User DTO `json:"user"`
}

type CreateHandler struct{ Svc *usrUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, entity.ErrInvalidUserData)
		return
	}

	created, err := h.Svc.Create(r.Context(), usrUC.Signup{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, createResponse{User: toDTO(created)})
}
