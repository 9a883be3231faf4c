package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/dmitrijs2005/bankapp/internal/common"
	"github.com/dmitrijs2005/bankapp/internal/logging"
	"github.com/dmitrijs2005/bankapp/internal/models"
	"github.com/dmitrijs2005/bankapp/internal/services"
)

// AuthService is the part of services.AuthService the API uses.
type AuthService interface {
	Register(ctx context.Context, req services.RegisterRequest) error
	Authenticate(ctx context.Context, login, password string) (*models.Profile, error)
}

type handler struct {
	authService AuthService
	logger      logging.Logger
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type registerRequest struct {
	Login     string `json:"login"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

const invalidRequestMessage = "Invalid request format."

func (h *handler) ping(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, services.Result{OK: true, Message: "pong"})
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.logger.Debug(r.Context(), "invalid login request", "error", err)
		h.respond(w, r, http.StatusBadRequest, services.Result{Message: invalidRequestMessage})
		return
	}

	profile, err := h.authService.Authenticate(r.Context(), req.Login, req.Password)
	h.respond(w, r, statusFor(err), services.AuthResult(profile, err))
}

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.logger.Debug(r.Context(), "invalid register request", "error", err)
		h.respond(w, r, http.StatusBadRequest, services.Result{Message: invalidRequestMessage})
		return
	}

	err := h.authService.Register(r.Context(), services.RegisterRequest{
		Login:     req.Login,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	h.respond(w, r, statusFor(err), services.RegisterResult(err))
}

func (h *handler) transfer(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, services.TransferResult())
}

func (h *handler) info(w http.ResponseWriter, r *http.Request) {
	text, ok := services.Info(chi.URLParam(r, "topic"))
	if !ok {
		h.respond(w, r, http.StatusNotFound, services.Result{Message: "Unknown topic."})
		return
	}
	render.JSON(w, r, services.Result{OK: true, Message: text})
}

func (h *handler) respond(w http.ResponseWriter, r *http.Request, status int, res services.Result) {
	if status >= http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "message", res.Message)
	}
	render.Status(r, status)
	render.JSON(w, r, res)
}

var statuses = []struct {
	err    error
	status int
}{
	{common.ErrValidation, http.StatusBadRequest},
	{common.ErrInvalidPassword, http.StatusUnauthorized},
	{common.ErrUserNotFound, http.StatusNotFound},
	{common.ErrLoginExists, http.StatusConflict},
	{common.ErrAccountNumberExists, http.StatusConflict},
	{common.ErrCardNumberExists, http.StatusConflict},
}

func statusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}
