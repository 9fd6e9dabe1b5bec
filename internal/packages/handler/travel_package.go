package handler

import (
	"encoding/json"
	"net/http"

	"aldosafaris/internal/packages/service"
	httputil "aldosafaris/pkg/http"
	"aldosafaris/pkg/logger"
	"aldosafaris/pkg/middleware"
	"aldosafaris/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type TravelPackageHandler struct {
	service service.TravelPackageService
	auth    *middleware.Authenticator
	log     *logger.Logger
}

func NewTravelPackageHandler(service service.TravelPackageService, auth *middleware.Authenticator, log *logger.Logger) *TravelPackageHandler {
	return &TravelPackageHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

func (h *TravelPackageHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var tc model.TravelPackageCreate
	if err := json.NewDecoder(r.Body).Decode(&tc); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	tp, err := h.service.Create(r.Context(), &tc)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, tp); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *TravelPackageHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := httputil.PathID(ps)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	tp, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, tp); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

// ListAvailable is the public catalog endpoint.
func (h *TravelPackageHandler) ListAvailable(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	packages, err := h.service.ListAvailable(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListAvailable", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, packages); err != nil {
		h.log.Error("failed to write success response", "handler", "ListAvailable", "error", err)
	}
}

func (h *TravelPackageHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := httputil.PathID(ps)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	var updates model.TravelPackageUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Update", "error", writeErr)
		}
		return
	}

	tp, err := h.service.Update(r.Context(), id, &updates)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, tp); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "error", err)
	}
}

func (h *TravelPackageHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := httputil.PathID(ps)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMessage(w, "Travel package deleted successfully"); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "error", err)
	}
}

func (h *TravelPackageHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/packages", h.ListAvailable)
	router.POST("/api/v1/packages", h.auth.Require(h.Create))
	router.GET("/api/v1/packages/:id", h.auth.Require(h.GetByID))
	router.PUT("/api/v1/packages/:id", h.auth.Require(h.Update))
	router.DELETE("/api/v1/packages/:id", h.auth.Require(h.Delete))
}
