package handler

import (
	"errors"
	"net/http"
	"strconv"

	"aldosafaris/internal/cars/service"
	apperrors "aldosafaris/pkg/errors"
	httputil "aldosafaris/pkg/http"
	"aldosafaris/pkg/logger"
	"aldosafaris/pkg/middleware"
	"aldosafaris/pkg/model"
	"aldosafaris/pkg/upload"

	"github.com/julienschmidt/httprouter"
)

// Car and rental endpoints take multipart or urlencoded forms rather
// than JSON bodies, because car writes can carry an image part.
type CarHandler struct {
	service service.CarService
	store   *upload.DiskStore
	auth    *middleware.Authenticator
	log     *logger.Logger
}

func NewCarHandler(service service.CarService, store *upload.DiskStore, auth *middleware.Authenticator, log *logger.Logger) *CarHandler {
	return &CarHandler{
		service: service,
		store:   store,
		auth:    auth,
		log:     log,
	}
}

func (h *CarHandler) CreateCar(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cc := model.CarCreate{
		Make:  r.FormValue("make"),
		Model: r.FormValue("model"),
	}

	if yearStr := r.FormValue("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			h.writeError(w, "CreateCar", apperrors.InvalidInput("Year must be a valid number"))
			return
		}
		cc.Year = year
	}
	if priceStr := r.FormValue("price_per_day"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			h.writeError(w, "CreateCar", apperrors.InvalidInput("Price per day must be a valid number"))
			return
		}
		cc.PricePerDay = price
	}

	imageURL, err := h.saveImage(r)
	if err != nil {
		h.writeError(w, "CreateCar", err)
		return
	}
	cc.ImageURL = imageURL

	car, err := h.service.CreateCar(r.Context(), &cc)
	if err != nil {
		h.writeError(w, "CreateCar", err)
		return
	}

	if err := httputil.WriteCreated(w, car); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateCar", "error", err)
	}
}

func (h *CarHandler) GetCar(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := httputil.PathID(ps)
	if err != nil {
		h.writeError(w, "GetCar", err)
		return
	}

	car, err := h.service.GetCar(r.Context(), id)
	if err != nil {
		h.writeError(w, "GetCar", err)
		return
	}

	if err := httputil.WriteSuccess(w, car); err != nil {
		h.log.Error("failed to write success response", "handler", "GetCar", "error", err)
	}
}

func (h *CarHandler) ListCars(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cars, err := h.service.ListCars(r.Context())
	if err != nil {
		h.writeError(w, "ListCars", err)
		return
	}

	if err := httputil.WriteSuccess(w, cars); err != nil {
		h.log.Error("failed to write success response", "handler", "ListCars", "error", err)
	}
}

func (h *CarHandler) UpdateCar(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := httputil.PathID(ps)
	if err != nil {
		h.writeError(w, "UpdateCar", err)
		return
	}

	var updates model.CarUpdate
	if v := r.FormValue("make"); v != "" {
		updates.Make = &v
	}
	if v := r.FormValue("model"); v != "" {
		updates.Model = &v
	}
	if v := r.FormValue("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			h.writeError(w, "UpdateCar", apperrors.InvalidInput("Year must be a valid number"))
			return
		}
		updates.Year = &year
	}
	if v := r.FormValue("price_per_day"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			h.writeError(w, "UpdateCar", apperrors.InvalidInput("Price per day must be a valid number"))
			return
		}
		updates.PricePerDay = &price
	}

	imageURL, err := h.saveImage(r)
	if err != nil {
		h.writeError(w, "UpdateCar", err)
		return
	}
	if imageURL != nil {
		updates.ImageURL = imageURL
	}

	car, err := h.service.UpdateCar(r.Context(), id, &updates)
	if err != nil {
		h.writeError(w, "UpdateCar", err)
		return
	}

	if err := httputil.WriteSuccess(w, car); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateCar", "error", err)
	}
}

func (h *CarHandler) CreateRental(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		h.writeError(w, "CreateRental", apperrors.Unauthorized("Missing caller identity"))
		return
	}

	rc := model.RentalCreate{
		StartDate: r.FormValue("start_date"),
		EndDate:   r.FormValue("end_date"),
	}
	if v := r.FormValue("car_id"); v != "" {
		carID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.writeError(w, "CreateRental", apperrors.InvalidInput("Car ID must be a valid number"))
			return
		}
		rc.CarID = carID
	}

	rental, err := h.service.CreateRental(r.Context(), callerID, &rc)
	if err != nil {
		h.writeError(w, "CreateRental", err)
		return
	}

	if err := httputil.WriteCreated(w, rental); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateRental", "error", err)
	}
}

func (h *CarHandler) ListRentals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	callerID, ok := middleware.CallerID(r.Context())
	if !ok {
		h.writeError(w, "ListRentals", apperrors.Unauthorized("Missing caller identity"))
		return
	}

	rentals, err := h.service.ListRentals(r.Context(), callerID)
	if err != nil {
		h.writeError(w, "ListRentals", err)
		return
	}

	if err := httputil.WriteSuccess(w, rentals); err != nil {
		h.log.Error("failed to write success response", "handler", "ListRentals", "error", err)
	}
}

// saveImage stores the optional image part and returns its URL. A
// missing part or a disallowed extension yields no image, not an
// error.
func (h *CarHandler) saveImage(r *http.Request) (*string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperrors.InvalidInput("Invalid image upload")
	}
	defer file.Close()

	if !h.store.Allowed(header.Filename) {
		return nil, nil
	}

	url, err := h.store.Save(file, header.Filename)
	if err != nil {
		h.log.Error("failed to store car image", "filename", header.Filename, "error", err)
		return nil, apperrors.Internal("Failed to store image", err)
	}
	return &url, nil
}

func (h *CarHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", writeErr)
	}
}

func (h *CarHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/cars", h.auth.Require(h.CreateCar))
	router.GET("/api/v1/cars", h.auth.Require(h.ListCars))
	router.GET("/api/v1/cars/:id", h.auth.Require(h.GetCar))
	router.PUT("/api/v1/cars/:id", h.auth.Require(h.UpdateCar))
	router.POST("/api/v1/rentals", h.auth.Require(h.CreateRental))
	router.GET("/api/v1/rentals", h.auth.Require(h.ListRentals))
}
