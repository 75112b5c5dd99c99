package user

import (
	"net/http"

	"newsboard/internal/handler/http/auth"
	authsvc "newsboard/internal/service/auth"
	usrUC "newsboard/internal/usecase/user"
)

// Register mounts the user routes. The account listing requires a
// bearer token; lookup and signup stay public.
func Register(mux *http.ServeMux, svc *usrUC.Service, tokens *authsvc.TokenService) {
	requireAuth := auth.RequireAuth(tokens)

	mux.Handle("GET /api/users", requireAuth(ListHandler{Svc: svc}))
	mux.Handle("GET /api/users/{email}", GetHandler{Svc: svc})
	mux.Handle("POST /api/users", CreateHandler{Svc: svc})
}
