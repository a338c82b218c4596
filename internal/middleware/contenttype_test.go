package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		method      string
		contentType string
		wantStatus  int
	}{
		{
			name:        "form post accepted",
			method:      "POST",
			contentType: "application/x-www-form-urlencoded",
			wantStatus:  http.StatusOK,
		},
		{
			name:        "form post with charset accepted",
			method:      "POST",
			contentType: "application/x-www-form-urlencoded; charset=UTF-8",
			wantStatus:  http.StatusOK,
		},
		{
			name:        "multipart accepted",
			method:      "POST",
			contentType: "multipart/form-data; boundary=x",
			wantStatus:  http.StatusOK,
		},
		{
			name:        "json rejected",
			method:      "POST",
			contentType: "application/json",
			wantStatus:  http.StatusUnsupportedMediaType,
		},
		{
			name:       "post without content type rejected",
			method:     "POST",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "get ignores content type",
			method:     "GET",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := ContentType(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/", strings.NewReader("artist=x"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
