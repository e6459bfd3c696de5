package leavehistory

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Render writes view as a standalone HTML page.
func Render(w io.Writer, view HistoryView) error {
	return pageTemplate.ExecuteTemplate(w, "history", view)
}

// ErrorPage is the HTML counterpart of the JSON error envelope.
type ErrorPage struct {
	Title   string
	Status  int
	Code    string
	Message string
}

const ErrorPageTitle = "Riwayat cuti tidak dapat ditampilkan"

// RenderError writes page as a standalone HTML page.
func RenderError(w io.Writer, page ErrorPage) error {
	if page.Title == "" {
		page.Title = ErrorPageTitle
	}
	return pageTemplate.ExecuteTemplate(w, "error", page)
}
