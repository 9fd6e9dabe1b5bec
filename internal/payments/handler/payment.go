package handler

import (
	"encoding/json"
	"net/http"

	"aldosafaris/internal/payments/service"
	apperrors "aldosafaris/pkg/errors"
	httputil "aldosafaris/pkg/http"
	"aldosafaris/pkg/logger"
	"aldosafaris/pkg/middleware"
	"aldosafaris/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type PaymentHandler struct {
	service service.PaymentService
	auth    *middleware.Authenticator
	log     *logger.Logger
}

func NewPaymentHandler(service service.PaymentService, auth *middleware.Authenticator, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		auth:    auth,
		log:     log,
	}
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		if writeErr := httputil.WriteError(w, apperrors.Unauthorized("Missing caller identity")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	var pc model.PaymentCreate
	if err := json.NewDecoder(r.Body).Decode(&pc); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "error", writeErr)
		}
		return
	}

	payment, err := h.service.Create(r.Context(), callerID, &pc)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, payment); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *PaymentHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		if writeErr := httputil.WriteError(w, apperrors.Unauthorized("Missing caller identity")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	id, err := httputil.PathID(ps)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	payment, err := h.service.GetByID(r.Context(), callerID, id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, payment); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

// ListForBooking returns every payment recorded against one of the
// caller's bookings.
func (h *PaymentHandler) ListForBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		if writeErr := httputil.WriteError(w, apperrors.Unauthorized("Missing caller identity")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListForBooking", "error", writeErr)
		}
		return
	}

	bookingID, err := httputil.PathID(ps)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListForBooking", "error", writeErr)
		}
		return
	}

	payments, err := h.service.ListByBooking(r.Context(), callerID, bookingID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListForBooking", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, payments); err != nil {
		h.log.Error("failed to write success response", "handler", "ListForBooking", "error", err)
	}
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		if writeErr := httputil.WriteError(w, apperrors.Unauthorized("Missing caller identity")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	id, err := httputil.PathID(ps)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	var updates model.PaymentUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Update", "error", writeErr)
		}
		return
	}

	payment, err := h.service.Update(r.Context(), callerID, id, &updates)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, payment); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "error", err)
	}
}

func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		if writeErr := httputil.WriteError(w, apperrors.Unauthorized("Missing caller identity")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	id, err := httputil.PathID(ps)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
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

	if err := httputil.WriteMessage(w, "Payment deleted successfully"); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "error", err)
	}
}

func (h *PaymentHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/payments", h.auth.Require(h.Create))
	router.GET("/api/v1/payments/:id", h.auth.Require(h.GetByID))
	router.PUT("/api/v1/payments/:id", h.auth.Require(h.Update))
	router.DELETE("/api/v1/payments/:id", h.auth.Require(h.Delete))
	router.GET("/api/v1/bookings/:id/payments", h.auth.Require(h.ListForBooking))
}
