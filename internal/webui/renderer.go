// Package webui renders the HTML documents of the site.
package webui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/davecgh/go-spew/spew"

	"bundesland.at/internal/format"
	"bundesland.at/internal/models"
	"bundesland.at/internal/statedata"
	"bundesland.at/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutTemplate = "layout"

	statePage    = "state.html"
	notFoundPage = "not_found.html"
	errorPage    = "error.html"
	debugPage    = "debug.html"
)

type navLink struct {
	Name string
	Href string
}

type row struct {
	Label   string
	Value   string
	Missing bool
}

type pageData struct {
	Title string
	Brand navLink
	Nav   []navLink
	Name  string
	Rows  []row
	Pre   string
}

// Renderer turns page data into complete HTML documents. Templates are parsed
// once by New; a Renderer is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
	brand navLink
	nav   []navLink
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	base, err := template.ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}

	r := &Renderer{
		pages: make(map[string]*template.Template),
		brand: navLink{Name: models.Landing.Name, Href: models.Landing.Path},
	}
	for _, page := range []string{statePage, notFoundPage, errorPage, debugPage} {
		layout, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout for %s: %w", page, err)
		}
		tmpl, err := layout.ParseFS(templateFS, "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	for _, name := range models.StateCatalog() {
		r.nav = append(r.nav, navLink{Name: name, Href: "/" + utils.Slugify(name)})
	}
	return r, nil
}

// State renders the detail page of a record: its name as heading and one
// label/value row per field label.
func (r *Renderer) State(record statedata.Record) (string, error) {
	labels := models.FieldLabels()
	fields := record.Fields()

	rows := make([]row, 0, len(labels))
	for i, label := range labels {
		field := fields[i]
		if !field.Present {
			rows = append(rows, row{Label: label, Value: models.MissingValue, Missing: true})
			continue
		}
		rows = append(rows, row{Label: label, Value: format.FormatField(label, field.Value)})
	}

	return r.execute(statePage, pageData{
		Title: record.Name,
		Name:  record.Name,
		Rows:  rows,
	})
}

// NotFound renders the static 404 document.
func (r *Renderer) NotFound() (string, error) {
	return r.execute(notFoundPage, pageData{Title: "Page not found"})
}

// Error renders the static document shown when a page could not be produced.
func (r *Renderer) Error() (string, error) {
	return r.execute(errorPage, pageData{Title: "Something went wrong"})
}

// Debug renders a spew dump of v.
func (r *Renderer) Debug(title string, v any) (string, error) {
	return r.execute(debugPage, pageData{
		Title: title,
		Name:  title,
		Pre:   spew.Sdump(v),
	})
}

func (r *Renderer) execute(page string, data pageData) (string, error) {
	tmpl, ok := r.pages[page]
	if !ok {
		return "", fmt.Errorf("unknown page template %q", page)
	}

	data.Brand = r.brand
	data.Nav = r.nav

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layoutTemplate, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", page, err)
	}
	return buf.String(), nil
}
