package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/replicator/internal/platform/logging"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// pageData is the input of the index template.
type pageData struct {
	Title     string
	Heading   string
	Button    string
	Endpoint  string
}

// PageHandler serves the single control page. Its button issues
// POST /api/v1/provision and shows the resulting domain or error message.
type PageHandler struct {
	data pageData
}

// NewPageHandler creates a PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{data: pageData{
		Title:    "Let's spin up new service",
		Heading:  "Spin up container!",
		Button:   "Click Me",
		Endpoint: "/api/v1/provision",
	}}
}

// Index handles GET /.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, h.data); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to render page",
			slog.String("operation", "PageHandler.Index"),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
