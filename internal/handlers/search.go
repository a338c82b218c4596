package handlers

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/musictags/tagchart/internal/chart"
	"github.com/musictags/tagchart/internal/dataset"
	logpkg "github.com/musictags/tagchart/internal/logger"
	"github.com/musictags/tagchart/internal/ranking"
	"github.com/musictags/tagchart/internal/validation"
)

//go:embed templates/*.html
var templateFS embed.FS

// SearchHandler serves the artist search form and the resulting tag chart.
type SearchHandler struct {
	cat    *dataset.Catalog
	logger *zap.Logger
	tmpl   *template.Template
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(cat *dataset.Catalog, logger *zap.Logger) (*SearchHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &SearchHandler{cat: cat, logger: logger, tmpl: tmpl}, nil
}

// RegisterRoutes registers the search routes on the given router
func (h *SearchHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.Index).Methods("GET")
	r.HandleFunc("/", h.Search).Methods("POST")
	r.HandleFunc("/_autocomplete", h.Autocomplete).Methods("GET")
}

// pageData is the template payload for index.html.
type pageData struct {
	Artist         string
	ErrorMsg       string
	Chart          template.HTML
	PointsJSON     template.JS
	MaxTagsOptions []string
	SelectedTags   string
}

// Index handles GET /: it renders the empty search form.
func (h *SearchHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, pageData{
		MaxTagsOptions: validation.MaxTagsOptions,
		SelectedTags:   validation.MaxTagsOptions[0],
	})
}

// Search handles POST /: it validates the submitted artist, ranks its
// tags, and renders the chart. Validation failures get a 400; an artist
// with zero tags gets a 200 with an informational message; any ranking or
// chart failure is logged and converted to a generic 500.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := validation.SearchForm{
		Artist:  r.PostFormValue("artist"),
		MaxTags: r.PostFormValue("max_tags"),
	}
	page := pageData{
		Artist:         form.Artist,
		MaxTagsOptions: validation.MaxTagsOptions,
		SelectedTags:   form.MaxTags,
	}

	if result := validation.ValidateSearchForm(form, h.cat); !result.Valid {
		h.logger.Warn("invalid_form",
			zap.String("artist", logpkg.SanitizeArtist(form.Artist)),
			zap.String("reason", result.Reason),
		)
		page.ErrorMsg = result.Reason
		h.renderPage(w, r, http.StatusBadRequest, page)
		return
	}

	// max_tags is an enumerated option; fall back to the default count
	// rather than failing if it is not a positive integer.
	n, err := strconv.Atoi(form.MaxTags)
	if err != nil || n <= 0 {
		n = ranking.DefaultTagCount
	}

	artistID, _ := h.cat.ArtistID(form.Artist)
	ranked, err := ranking.TopTags(h.cat, artistID, n)
	if err != nil {
		h.logger.Error("cannot_get_tags",
			zap.String("artist", logpkg.SanitizeArtist(form.Artist)),
			zap.Error(err),
		)
		page.ErrorMsg = "cannot create graph"
		h.renderPage(w, r, http.StatusInternalServerError, page)
		return
	}
	if len(ranked) == 0 {
		h.logger.Warn("no_tags_for_artist",
			zap.String("artist", logpkg.SanitizeArtist(form.Artist)),
		)
		page.ErrorMsg = "artist has zero tags"
		h.renderPage(w, r, http.StatusOK, page)
		return
	}

	spec := chart.Build(form.Artist, ranked, n)
	svg, err := chart.RenderSVG(spec)
	if err != nil {
		h.logger.Error("cannot_create_graph",
			zap.String("artist", logpkg.SanitizeArtist(form.Artist)),
			zap.Error(err),
		)
		page.ErrorMsg = "cannot create graph"
		h.renderPage(w, r, http.StatusInternalServerError, page)
		return
	}

	pointsJSON, err := json.Marshal(spec.Points)
	if err != nil {
		h.logger.Error("cannot_encode_points", zap.Error(err))
		page.ErrorMsg = "cannot create graph"
		h.renderPage(w, r, http.StatusInternalServerError, page)
		return
	}

	h.logger.Info("graph_created",
		zap.String("artist", logpkg.SanitizeArtist(form.Artist)),
		zap.Int("tags", len(ranked)),
	)
	page.Chart = template.HTML(svg)
	page.PointsJSON = template.JS(pointsJSON)
	h.renderPage(w, r, http.StatusOK, page)
}

// renderPage executes the page template into a buffer first so a template
// failure can still produce a clean 500 instead of a half-written body.
func (h *SearchHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		h.logger.Error("template_render_failed",
			zap.Error(err),
			zap.String("path", logpkg.SanitizePath(r.URL.Path)),
		)
		http.Error(w, "An unexpected error occurred", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("response_write_failed", zap.Error(err))
	}
}
