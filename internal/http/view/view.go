// Package view renders the server-side HTML pages.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

const (
	layoutFile = "templates/layout.gohtml"

	// TimeLayout is how timestamps are shown to users.
	TimeLayout = "02.01.2006 15:04"
)

var funcs = template.FuncMap{
	"formatTime": func(t time.Time) string { return t.Format(TimeLayout) },
}

// Page is the data every page shares with the layout.
type Page struct {
	Title   string
	IsAdmin bool
	Data    any
}

type layoutData struct {
	Page
	Now time.Time
}

// Renderer holds one parsed template set per page, each combined with the
// shared layout.
type Renderer struct {
	pages map[string]*template.Template
	now   func() time.Time
}

func New() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(f), ".gohtml")
		t, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templateFS, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{pages: pages, now: time.Now}, nil
}

// Render executes the named page inside the layout. Nothing is written to w
// when execution fails.
func (r *Renderer) Render(w io.Writer, name string, p Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, layoutData{Page: p, Now: r.now()}); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}
