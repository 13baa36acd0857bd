package render

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer executes the embedded HTML templates for the server-rendered UI.
type Renderer struct {
	t *template.Template
}

// New parses the embedded templates once at startup.
func New() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"shortID": shortID,
		"fmtTime": fmtTime,
		"km":      km,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{t: t}, nil
}

// Render writes the named template. Encoding errors after the first byte
// cannot change the status code, so they are returned for logging only.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return r.t.ExecuteTemplate(w, name, data)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// fmtTime accepts both time.Time and *time.Time because the ride view keeps
// the completion stamp nullable.
func fmtTime(v any) string {
	var t time.Time
	switch x := v.(type) {
	case time.Time:
		t = x
	case *time.Time:
		if x == nil {
			return ""
		}
		t = *x
	default:
		return ""
	}
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04")
}

func km(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}
