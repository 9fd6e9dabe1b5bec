package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"aldosafaris/internal/users/service"
	apperrors "aldosafaris/pkg/errors"
	httputil "aldosafaris/pkg/http"
	"aldosafaris/pkg/logger"
	"aldosafaris/pkg/middleware"
	"aldosafaris/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type UserHandler struct {
	service service.UserService
	auth    *middleware.Authenticator
	log     *logger.Logger
}

func NewUserHandler(service service.UserService, auth *middleware.Authenticator, log *logger.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var reg model.UserRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Register", "error", writeErr)
		}
		return
	}

	user, err := h.service.Register(r.Context(), &reg)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Register", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, user); err != nil {
		h.log.Error("failed to write created response", "handler", "Register", "error", err)
	}
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var creds model.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Login", "error", writeErr)
		}
		return
	}

	tokens, err := h.service.Login(r.Context(), &creds)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Login", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, tokens); err != nil {
		h.log.Error("failed to write success response", "handler", "Login", "error", err)
	}
}

// Refresh mints a new access token. The bearer credential here is the
// refresh token, not an access token, so the route stays outside the
// Authenticator.
func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	header := r.Header.Get("Authorization")
	if header == "" {
		if writeErr := httputil.WriteError(w, apperrors.Unauthorized("Missing bearer token")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Refresh", "error", writeErr)
		}
		return
	}

	tokens, err := h.service.Refresh(r.Context(), strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Refresh", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, tokens); err != nil {
		h.log.Error("failed to write success response", "handler", "Refresh", "error", err)
	}
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := httputil.PathID(ps)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		if writeErr := httputil.WriteError(w, apperrors.Unauthorized("Missing caller identity")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	var updates model.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Update", "error", writeErr)
		}
		return
	}

	user, err := h.service.Update(r.Context(), callerID, id, &updates)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, user); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "error", err)
	}
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := httputil.PathID(ps)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		if writeErr := httputil.WriteError(w, apperrors.Unauthorized("Missing caller identity")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	if err := h.service.Delete(r.Context(), callerID, id); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMessage(w, "User deleted successfully"); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "error", err)
	}
}

func (h *UserHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/customer/register", h.Register)
	router.POST("/api/v1/customer/login", h.Login)
	router.POST("/api/v1/customer/refresh", h.Refresh)
	router.PUT("/api/v1/customer/:id", h.auth.Require(h.Update))
	router.DELETE("/api/v1/customer/:id", h.auth.Require(h.Delete))
}
