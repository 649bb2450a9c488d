package presenter

import (
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var pageTmpl = template.Must(template.New("page.html.tmpl").Funcs(template.FuncMap{
	"csvHref": csvHref,
}).ParseFS(templateFS, "templates/page.html.tmpl"))

// Page holds static page chrome around a View.
type Page struct {
	Title  string
	Author string
	Links  []Link
	View   View
}

// Link is a footer link.
type Link struct {
	Label string
	URL   string
}

// NewPage wraps a view with the default viewer chrome.
func NewPage(v View) Page {
	return Page{
		Title:  "National Weather Service: Active Alerts",
		Author: "Cameron Wang",
		Links: []Link{
			{Label: "GitHub", URL: "https://github.com/TeaDragonSC/NWS-Experiment/"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/cameron-wang-sio/"},
		},
		View: v,
	}
}

// RenderHTML writes the full viewer page.
func RenderHTML(w io.Writer, p Page) error {
	if err := pageTmpl.Execute(w, p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// csvHref embeds the export in a data URI so the download carries exactly the
// rows shown on the page.
func csvHref(data []byte) template.URL {
	return template.URL("data:" + CSVContentType + ";charset=utf-8;base64," + base64.StdEncoding.EncodeToString(data)) //nolint:gosec // base64 alphabet only
}
