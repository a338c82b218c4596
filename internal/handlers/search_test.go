package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/musictags/tagchart/internal/dataset"
	"github.com/musictags/tagchart/internal/models"
)

func testCatalog() *dataset.Catalog {
	artists := []models.Artist{
		{ID: 1, Name: "Metallica"},
		{ID: 2, Name: "Silent Band"},
		{ID: 3, Name: "Broken Band"},
	}
	tags := []models.Tag{
		{ID: 10, Value: "rock"},
		{ID: 11, Value: "metal"},
		{ID: 12, Value: "heavy"},
	}
	assocs := []models.Association{
		{ArtistID: 1, TagID: 10},
		{ArtistID: 1, TagID: 11},
		{ArtistID: 1, TagID: 10},
		{ArtistID: 1, TagID: 12},
		{ArtistID: 1, TagID: 11},
		// Broken Band's only tag has no value row; ranking it must fail.
		{ArtistID: 3, TagID: 99},
	}
	return dataset.New(artists, tags, assocs)
}

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	h, err := NewSearchHandler(testCatalog(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewSearchHandler returned error: %v", err)
	}
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func postForm(t *testing.T, router *mux.Router, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestIndexGet(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `name="artist"`) {
		t.Error("page does not contain the artist input")
	}
	if !strings.Contains(body, `name="max_tags"`) {
		t.Error("page does not contain the max_tags select")
	}
	for _, option := range []string{"10", "15", "20"} {
		if !strings.Contains(body, `value="`+option+`"`) {
			t.Errorf("page does not offer max_tags option %s", option)
		}
	}
}

func TestSearchPost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		form       url.Values
		wantStatus int
		wantInBody string
		wantChart  bool
	}{
		{
			name:       "valid artist renders chart",
			form:       url.Values{"artist": {"Metallica"}, "max_tags": {"10"}},
			wantStatus: http.StatusOK,
			wantChart:  true,
		},
		{
			name:       "unknown artist is a validation error",
			form:       url.Values{"artist": {"Unknown Band"}, "max_tags": {"10"}},
			wantStatus: http.StatusBadRequest,
			wantInBody: "invalid artist name",
		},
		{
			name:       "artist with zero tags is informational",
			form:       url.Values{"artist": {"Silent Band"}, "max_tags": {"10"}},
			wantStatus: http.StatusOK,
			wantInBody: "artist has zero tags",
		},
		{
			name:       "ranking failure is a generic internal error",
			form:       url.Values{"artist": {"Broken Band"}, "max_tags": {"10"}},
			wantStatus: http.StatusInternalServerError,
			wantInBody: "cannot create graph",
		},
		{
			name:       "max_tags outside enumeration rejected",
			form:       url.Values{"artist": {"Metallica"}, "max_tags": {"99"}},
			wantStatus: http.StatusBadRequest,
			wantInBody: "max_tags",
		},
		{
			name:       "missing artist rejected",
			form:       url.Values{"max_tags": {"10"}},
			wantStatus: http.StatusBadRequest,
			wantInBody: "artist name is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newTestRouter(t)
			rec := postForm(t, router, tt.form)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			body := rec.Body.String()
			if tt.wantInBody != "" && !strings.Contains(body, tt.wantInBody) {
				t.Errorf("body does not contain %q", tt.wantInBody)
			}
			hasChart := strings.Contains(body, "<svg")
			if hasChart != tt.wantChart {
				t.Errorf("chart present = %v, want %v", hasChart, tt.wantChart)
			}
		})
	}
}

func TestSearchPostZeroTagsOmitsChart(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec := postForm(t, router, url.Values{"artist": {"Silent Band"}, "max_tags": {"10"}})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "<svg") {
		t.Error("zero-tag response must not render a chart")
	}
}

func TestAutocomplete(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest("GET", "/_autocomplete", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var names []string
	if err := json.Unmarshal(rec.Body.Bytes(), &names); err != nil {
		t.Fatalf("response is not a JSON array: %v", err)
	}

	want := map[string]bool{"Metallica": true, "Silent Band": true, "Broken Band": true}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d: %v", len(names), len(want), names)
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate name %q", n)
		}
		seen[n] = true
		if !want[n] {
			t.Errorf("unexpected name %q", n)
		}
	}
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	h := NewHealthChecker(testCatalog())

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	h.HealthCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q, want healthy", resp.Status)
	}
	if resp.Datasets["artists"] != 3 {
		t.Errorf("artists count = %d, want 3", resp.Datasets["artists"])
	}
	if resp.Datasets["associations"] != 6 {
		t.Errorf("associations count = %d, want 6", resp.Datasets["associations"])
	}
}
