package handler

import (
	"context"
	"net/http"

	"github.com/temirov/blogapi/internal/api/http/middleware"
	"github.com/temirov/blogapi/internal/logger"
	"github.com/temirov/blogapi/internal/model"
)

// AuthService drives the session lifecycle behind the auth endpoints.
type AuthService interface {
	Login(ctx context.Context, username, password string) (model.TokenPair, error)
	Logout(ctx context.Context, sessionID string) error
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
}

type Auth struct {
	service AuthService
	logger  *logger.Logger
}

func NewAuth(service AuthService, logger *logger.Logger) *Auth {
	return &Auth{service: service, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokenPairResponse struct {
	AccessToken           string `json:"accessToken"`
	RefreshToken          string `json:"refreshToken"`
	AccessTokenExpiresIn  int    `json:"accessTokenExpiresIn"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn"`
}

func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	var violations []model.FieldViolation
	if req.Username == "" {
		violations = append(violations, model.FieldViolation{Field: "username", Message: "must not be empty"})
	}
	if len(req.Password) < 8 {
		violations = append(violations, model.FieldViolation{Field: "password", Message: "must be at least 8 characters"})
	}
	if len(violations) > 0 {
		writeError(w, h.logger, model.ErrValidationFailed(violations))
		return
	}

	pair, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Login successful", tokenPairResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresIn:  pair.AccessTokenExpiresIn,
		RefreshTokenExpiresIn: pair.RefreshTokenExpiresIn,
	})
}

// Logout revokes the session carried by the verified access token. The
// session id comes from the gate-attached principal, never from the body.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, model.ErrUnauthorized("Unauthorized"))
		return
	}

	if err := h.service.Logout(r.Context(), principal.SessionID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Logout successful", nil)
}

func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	if req.RefreshToken == "" {
		writeError(w, h.logger, model.ErrValidationFailed([]model.FieldViolation{
			{Field: "refreshToken", Message: "must not be empty"},
		}))
		return
	}

	pair, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Success", tokenPairResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresIn:  pair.AccessTokenExpiresIn,
		RefreshTokenExpiresIn: pair.RefreshTokenExpiresIn,
	})
}
