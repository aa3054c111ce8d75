package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSharedSecret(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		configured string
		provided   string
		wantStatus int
	}{
		{
			name:       "matching secret passes",
			configured: "s3cret",
			provided:   "s3cret",
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong secret is forbidden",
			configured: "s3cret",
			provided:   "wrong",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing header is forbidden",
			configured: "s3cret",
			provided:   "",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "empty configured secret locks the route",
			configured: "",
			provided:   "",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := SharedSecret(tt.configured)(next)

			req := httptest.NewRequest(http.MethodPost, "/api/internal/sweeps/funding", nil)
			if tt.provided != "" {
				req.Header.Set("X-Internal-Secret", tt.provided)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Result().StatusCode != tt.wantStatus {
				t.Errorf("got status %d, want %d", w.Result().StatusCode, tt.wantStatus)
			}
		})
	}
}
