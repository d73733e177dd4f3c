// Package views holds the server-rendered pages of the collection browser:
// the embedded templates and stylesheet, the view models the handlers fill,
// and the schema.org linked data embedded in every page.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Template names understood by Load.
const (
	PageHome       = "home.html"
	PageArtworks   = "artworks.html"
	PageArtwork    = "artwork.html"
	PageArtist     = "artist.html"
	PageProvenance = "provenance.html"
	PageError      = "error.html"
)

var funcs = template.FuncMap{
	"join": strings.Join,
}

// Load parses every page template.
func Load() (*template.Template, error) {
	tmpl, err := template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// Static returns the stylesheet and other assets served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
