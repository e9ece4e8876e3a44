package statedata

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"bundesland.at/internal/format"
	"bundesland.at/internal/models"
	"bundesland.at/internal/utils"
)

//go:embed states.yaml
var defaultTable []byte

// LoadOptions controls where Load reads state data from.
type LoadOptions struct {
	// Path of a YAML table. Empty uses the table compiled into the binary.
	Path string
	// Lookup resolves per-slug overrides in the comma-separated format.
	// Nil disables overrides.
	Lookup LookupFunc
	// Strict turns every Problem into a load error.
	Strict bool
}

type tableFile struct {
	States []Record `yaml:"states"`
}

// Table is the immutable set of records keyed by page slug. It is built once
// and is safe for concurrent readers.
type Table struct {
	records map[string]Record
}

// NewTable builds a table from already validated records.
func NewTable(records ...Record) *Table {
	t := &Table{records: make(map[string]Record, len(records))}
	for _, r := range records {
		t.records[r.Slug] = r
	}
	return t
}

// Load reads the YAML table, applies per-slug overrides and validates every
// page of the catalog. Problems are returned even when loading succeeds.
func Load(opts LoadOptions) (*Table, []Problem, error) {
	data := defaultTable
	if opts.Path != "" {
		var err error
		data, err = os.ReadFile(opts.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("reading state table: %w", err)
		}
	}

	file, err := decodeTable(data)
	if err != nil {
		return nil, nil, err
	}

	pages := models.Pages()
	names := make(map[string]string, len(pages))
	for _, page := range pages {
		names[page.Slug] = page.Name
	}

	var problems []Problem
	table := &Table{records: make(map[string]Record, len(pages))}

	for _, record := range file.States {
		if record.Slug == "" {
			record.Slug = utils.Slugify(record.Name)
		}
		name, known := names[record.Slug]
		if !known {
			problems = append(problems, Problem{Slug: record.Slug, Message: "not a page of the site, ignored"})
			continue
		}
		if _, dup := table.records[record.Slug]; dup {
			problems = append(problems, Problem{Slug: record.Slug, Message: "defined more than once, last definition wins"})
		}
		record.Name = name
		table.records[record.Slug] = record
	}

	if opts.Lookup != nil {
		for _, page := range pages {
			values, err := ReadFields(opts.Lookup, page.Slug)
			if errors.Is(err, ErrConfigNotFound) {
				continue
			}
			if len(values) > models.FieldCount {
				problems = append(problems, Problem{
					Slug:    page.Slug,
					Message: fmt.Sprintf("override has %d fields, expected %d; extra values ignored", len(values), models.FieldCount),
				})
			}
			table.records[page.Slug] = RecordFromFields(page.Name, page.Slug, values)
		}
	}

	for _, page := range pages {
		record, ok := table.records[page.Slug]
		if !ok {
			problems = append(problems, Problem{Slug: page.Slug, Message: ErrConfigNotFound.Error()})
			continue
		}
		problems = append(problems, validateRecord(record)...)
	}

	if opts.Strict && len(problems) > 0 {
		return nil, problems, &ValidationError{Problems: problems}
	}
	return table, problems, nil
}

func decodeTable(data []byte) (tableFile, error) {
	var file tableFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return tableFile{}, fmt.Errorf("decoding state table: %w", err)
	}
	return file, nil
}

func validateRecord(record Record) []Problem {
	var problems []Problem

	if n := record.PresentCount(); n < models.FieldCount {
		problems = append(problems, Problem{
			Slug:    record.Slug,
			Message: fmt.Sprintf("has %d of %d fields", n, models.FieldCount),
		})
	}

	labels := models.FieldLabels()
	for i, field := range record.Fields() {
		switch labels[i] {
		case models.LabelGDP, models.LabelPopulation, models.LabelArea:
			if field.Present && !format.IsNumeric(field.Value) {
				problems = append(problems, Problem{
					Slug:    record.Slug,
					Message: fmt.Sprintf("%s %q is not a number", labels[i], field.Value),
				})
			}
		}
	}
	return problems
}

// Lookup returns the record for slug.
func (t *Table) Lookup(slug string) (Record, error) {
	record, ok := t.records[slug]
	if !ok {
		return Record{}, &MissingConfigError{Key: slug}
	}
	return record, nil
}

// Len is the number of records in the table.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns all records ordered by slug.
func (t *Table) Records() []Record {
	records := make([]Record, 0, len(t.records))
	for _, r := range t.records {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Slug < records[j].Slug })
	return records
}
