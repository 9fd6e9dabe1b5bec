package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aldosafaris/pkg/logger"
)

func contentTypeChain(t *testing.T) http.Handler {
	t.Helper()

	log := logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return ContentTypeValidation(log)(next)
}

func TestContentTypeValidation(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		contentType string
		body        string
		wantStatus  int
	}{
		{"json post", http.MethodPost, "application/json", `{}`, http.StatusOK},
		{"multipart post", http.MethodPost, "multipart/form-data; boundary=x", "--x--", http.StatusOK},
		{"urlencoded put", http.MethodPut, "application/x-www-form-urlencoded", "a=b", http.StatusOK},
		{"text post rejected", http.MethodPost, "text/plain", "hi", http.StatusUnsupportedMediaType},
		{"missing header with body rejected", http.MethodPost, "", `{}`, http.StatusUnsupportedMediaType},
		{"get without header", http.MethodGet, "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			contentTypeChain(t).ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

// A refresh request carries only an Authorization header; an empty
// POST must not be turned away for lacking a Content-Type.
func TestContentTypeValidationAllowsEmptyBodyPost(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/customer/refresh", nil)
	rec := httptest.NewRecorder()
	contentTypeChain(t).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
