package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var views = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// page is what every HTML template receives.
type page struct {
	Title string
	View  any
}

// render writes view as JSON when the client asks for it, otherwise through
// the named template.
func render(w http.ResponseWriter, r *http.Request, status int, name, title string, view any) {
	if wantsJSON(r) {
		if err := writeJSON(w, status, view); err != nil {
			requestLogger(r).Error("failed to write JSON response", zap.Error(err))
		}
		return
	}

	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, name, page{Title: title, View: view}); err != nil {
		serverError(w, r, "could not render page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		requestLogger(r).Error("failed to write page", zap.Error(err))
	}
}

func renderNotFound(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusNotFound, "notfound.html", "Not Found", ErrorView{
		Status:  http.StatusNotFound,
		Message: "product not found",
	})
}
