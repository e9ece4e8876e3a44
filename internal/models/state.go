package models

import "bundesland.at/internal/utils"

// Labels of the nine descriptive fields shown for every page, in display order.
const (
	LabelGDP          = "GDP"
	LabelCountryCode  = "Country code"
	LabelAlpha2       = "Alpha code 2"
	LabelAlpha3       = "Alpha code 3"
	LabelLanguages    = "Official Language/s"
	LabelPopulation   = "Population"
	LabelArea         = "Area"
	LabelIndependence = "Independence"
	LabelTowns        = "Towns"
)

// FieldCount is the number of positional fields in a state record.
const FieldCount = 9

var fieldLabels = [FieldCount]string{
	LabelGDP,
	LabelCountryCode,
	LabelAlpha2,
	LabelAlpha3,
	LabelLanguages,
	LabelPopulation,
	LabelArea,
	LabelIndependence,
	LabelTowns,
}

var stateCatalog = [...]string{
	"Burgenland",
	"Carinthia",
	"Lower Austria",
	"Upper Austria",
	"Salzburg",
	"Styria",
	"Tyrol",
	"Vorarlberg",
	"Vienna",
}

// FieldLabels returns the ordered field labels. The array is returned by value
// so callers cannot modify the shared list.
func FieldLabels() [FieldCount]string {
	return fieldLabels
}

// StateCatalog returns the display names of the nine federal states in
// navigation order.
func StateCatalog() []string {
	names := make([]string, len(stateCatalog))
	copy(names, stateCatalog[:])
	return names
}

// Page is one routable page of the site.
type Page struct {
	Name string
	Slug string
	Path string
}

// NewPage derives the slug and path for a display name.
func NewPage(name string) Page {
	slug := utils.Slugify(name)
	return Page{
		Name: name,
		Slug: slug,
		Path: "/" + slug,
	}
}

// Landing is the country-level page served at the site root.
var Landing = Page{Name: "Austria", Slug: "austria", Path: "/"}

// StatePages returns one page per catalog entry, in catalog order.
func StatePages() []Page {
	pages := make([]Page, 0, len(stateCatalog))
	for _, name := range stateCatalog {
		pages = append(pages, NewPage(name))
	}
	return pages
}

// Pages returns the landing page followed by every state page.
func Pages() []Page {
	return append([]Page{Landing}, StatePages()...)
}
