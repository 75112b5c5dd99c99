// Package auth provides the login endpoint and the bearer-token
// middleware protecting authenticated routes.
package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"newsboard/internal/domain/entity"
	"newsboard/internal/handler/http/requestid"
	"newsboard/internal/handler/http/respond"
	authsvc "newsboard/internal/service/auth"
	usrUC "newsboard/internal/usecase/user"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginHandler authenticates a user and issues a token pair.
type LoginHandler struct {
	Users  *usrUC.Service
	Tokens *authsvc.TokenService
	Logger *slog.Logger
}

func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := h.Logger.With(slog.String("request_id", requestid.FromContext(r.Context())))

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("login failed",
			slog.String("reason", "invalid_request"),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		RecordLogin("failure")
		respond.Error(w, entity.ErrBadRequest)
		return
	}

	u, err := h.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("login failed",
			slog.String("reason", "invalid_credentials"),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		RecordLogin("failure")
		respond.Error(w, err)
		return
	}

	pair, err := h.Tokens.IssuePair(u)
	if err != nil {
		logger.Error("token generation failed",
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		RecordLogin("failure")
		respond.Error(w, err)
		return
	}

	logger.Info("login successful",
		slog.String("username", u.Username),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	RecordLogin("success")

	respond.JSON(w, http.StatusOK, loginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
