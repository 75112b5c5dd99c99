package auth

import (
	"log/slog"
	"net/http"

	httphandler "newsboard/internal/handler/http"
	authsvc "newsboard/internal/service/auth"
	usrUC "newsboard/internal/usecase/user"
)

// Register mounts the login endpoint behind its own rate limiter so
// credential stuffing cannot ride the global limit.
func Register(mux *http.ServeMux, users *usrUC.Service, tokens *authsvc.TokenService, limiter *httphandler.RateLimiter, logger *slog.Logger) {
	login := http.Handler(LoginHandler{Users: users, Tokens: tokens, Logger: logger})
	if limiter != nil {
		login = limiter.Limit(login)
	}
	mux.Handle("POST /api/login", login)
}
