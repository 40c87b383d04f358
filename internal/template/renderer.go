package template

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/nguyenedu/truyen-fe/internal/model"
)

//go:embed tmpl
var files embed.FS

// Data is the payload every page template receives.
type Data struct {
	PageTitle string
	Session   model.Session
	Theme     string
	Toasts    []model.Toast
	Content   any
}

type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

func New() (*Renderer, error) {
	entries, err := files.ReadDir("tmpl")
	if err != nil {
		return nil, err
	}

	pages := map[string]*template.Template{}
	for _, entry := range entries {
		name := entry.Name()
		if name == "base.html" || !strings.HasSuffix(name, ".html") {
			continue
		}

		t, err := template.New(name).Funcs(funcs).ParseFS(files, "tmpl/"+name, "tmpl/base.html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, tmpl string, td *Data) error {
	t, ok := r.pages[tmpl]
	if !ok {
		return fmt.Errorf("unknown template %q", tmpl)
	}

	buf := &bytes.Buffer{}
	if err := t.ExecuteTemplate(buf, "base", td); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
