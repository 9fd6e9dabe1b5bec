package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	carerrors "aldosafaris/internal/cars/errors"
	"aldosafaris/internal/cars/service"
	"aldosafaris/pkg/auth"
	"aldosafaris/pkg/config"
	"aldosafaris/pkg/logger"
	"aldosafaris/pkg/middleware"
	"aldosafaris/pkg/model"
	"aldosafaris/pkg/upload"

	"github.com/julienschmidt/httprouter"
)

type memoryCarRepository struct {
	nextCarID    int64
	nextRentalID int64
	cars         map[int64]*model.Car
	rentals      map[int64]*model.Rental
}

func newMemoryCarRepository() *memoryCarRepository {
	return &memoryCarRepository{
		nextCarID:    1,
		nextRentalID: 1,
		cars:         map[int64]*model.Car{},
		rentals:      map[int64]*model.Rental{},
	}
}

func (m *memoryCarRepository) CreateCar(ctx context.Context, c *model.Car) error {
	c.ID = m.nextCarID
	m.nextCarID++
	stored := *c
	m.cars[c.ID] = &stored
	return nil
}

func (m *memoryCarRepository) FindCarByID(ctx context.Context, id int64) (*model.Car, error) {
	c, ok := m.cars[id]
	if !ok {
		return nil, carerrors.ErrCarNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *memoryCarRepository) FindAllCars(ctx context.Context) ([]*model.Car, error) {
	out := []*model.Car{}
	for _, c := range m.cars {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memoryCarRepository) UpdateCar(ctx context.Context, c *model.Car) error {
	if _, ok := m.cars[c.ID]; !ok {
		return carerrors.ErrCarNotFound
	}
	stored := *c
	m.cars[c.ID] = &stored
	return nil
}

func (m *memoryCarRepository) CreateRental(ctx context.Context, rental *model.Rental) error {
	rental.ID = m.nextRentalID
	m.nextRentalID++
	stored := *rental
	m.rentals[rental.ID] = &stored
	return nil
}

func (m *memoryCarRepository) FindRentalsByUser(ctx context.Context, userID int64) ([]*model.Rental, error) {
	out := []*model.Rental{}
	for _, rental := range m.rentals {
		if rental.UserID == userID {
			copied := *rental
			out = append(out, &copied)
		}
	}
	return out, nil
}

func setupRouter(t *testing.T) (*httprouter.Router, *auth.TokenManager) {
	t.Helper()

	cfg := &config.Config{
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
	}
	tokens := auth.NewTokenManager("test-secret", 15*time.Minute, 7*24*time.Hour)
	authenticator := middleware.NewAuthenticator(tokens)

	store, err := upload.NewDiskStore(t.TempDir(), "/static/cars")
	if err != nil {
		t.Fatalf("NewDiskStore() error = %v", err)
	}

	svc := service.NewCarService(newMemoryCarRepository(), cfg)
	h := NewCarHandler(svc, store, authenticator, cfg.Log)

	router := httprouter.New()
	h.RegisterRoutes(router)
	return router, tokens
}

func carForm(t *testing.T, fields map[string]string, imageName string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("writing form field %s: %v", k, err)
		}
	}
	if imageName != "" {
		part, err := w.CreateFormFile("image", imageName)
		if err != nil {
			t.Fatalf("creating image part: %v", err)
		}
		if _, err := part.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("writing image part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestCreateCarWithImageOverHTTP(t *testing.T) {
	router, tokens := setupRouter(t)
	token, _ := tokens.IssueAccess(1)

	body, contentType := carForm(t, map[string]string{
		"make":          "Toyota",
		"model":         "RAV4",
		"year":          "2022",
		"price_per_day": "50",
	}, "rav4.jpg")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cars", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Data model.Car `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding create response: %v", err)
	}
	if created.Data.ImageURL == nil || !strings.HasPrefix(*created.Data.ImageURL, "/static/cars/") {
		t.Errorf("image_url = %v, want a /static/cars/ URL", created.Data.ImageURL)
	}
	if !created.Data.Available {
		t.Error("new car should be available")
	}
}

func TestCreateCarSkipsDisallowedImage(t *testing.T) {
	router, tokens := setupRouter(t)
	token, _ := tokens.IssueAccess(1)

	body, contentType := carForm(t, map[string]string{
		"make":          "Toyota",
		"model":         "RAV4",
		"year":          "2022",
		"price_per_day": "50",
	}, "payload.exe")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cars", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Data model.Car `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding create response: %v", err)
	}
	if created.Data.ImageURL != nil {
		t.Errorf("image_url = %v, disallowed extension should be dropped", *created.Data.ImageURL)
	}
}

func TestRentalFlowOverHTTP(t *testing.T) {
	router, tokens := setupRouter(t)
	token, _ := tokens.IssueAccess(1)

	// Create the car first.
	body, contentType := carForm(t, map[string]string{
		"make":          "Toyota",
		"model":         "RAV4",
		"year":          "2022",
		"price_per_day": "50",
	}, "")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cars", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("car create status = %d", rec.Code)
	}

	form := url.Values{}
	form.Set("car_id", "1")
	form.Set("start_date", "2026-03-01")
	form.Set("end_date", "2026-03-04")

	req = httptest.NewRequest(http.MethodPost, "/api/v1/rentals", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("rental create status = %d, body %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Data model.Rental `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding rental response: %v", err)
	}
	if created.Data.TotalCost != 150 {
		t.Errorf("total_cost = %v, want 150 for three days at 50", created.Data.TotalCost)
	}
	if created.Data.UserID != 1 {
		t.Errorf("user_id = %d, want 1", created.Data.UserID)
	}
}
