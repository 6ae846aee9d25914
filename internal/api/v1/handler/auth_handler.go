package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"genmoney/internal/api/v1/dto"
	"genmoney/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type AuthHandler struct {
	authService service.AuthService
	validate    *validator.Validate
	logger      zerolog.Logger
}

func NewAuthHandler(authService service.AuthService, v *validator.Validate, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, validate: v, logger: logger}
}

// RegisterRoutes mounts the public auth routes
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/auth/register", http.HandlerFunc(h.register))
	mux.Handle("/auth/login", http.HandlerFunc(h.login))
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeDetail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// 1. Decode request body into DTO
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}

	// 2. Validate DTO
	if err := h.validate.Struct(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	// 3. Call service to create the account and issue a token
	user, tok, err := h.authService.Register(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeDetail(w, http.StatusBadRequest, "Email already registered")
			return
		}
		h.logger.Error().Err(err).Msg("Registration failed")
		writeDetail(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	// 4. Return token payload
	writeJSON(w, http.StatusOK, dto.TokenResponse{
		AccessToken: tok,
		TokenType:   "bearer",
		User:        user,
	})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeDetail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	user, tok, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error().Err(err).Msg("Login failed")
		writeDetail(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	writeJSON(w, http.StatusOK, dto.TokenResponse{
		AccessToken: tok,
		TokenType:   "bearer",
		User:        user,
	})
}
