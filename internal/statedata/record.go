package statedata

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"bundesland.at/internal/models"
)

// Field is one configured value. A zero Field is absent.
type Field struct {
	Value   string
	Present bool
}

// Some returns a present field.
func Some(value string) Field {
	return Field{Value: value, Present: true}
}

// UnmarshalYAML accepts any scalar so numbers can be written unquoted.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	if node.Tag == "!!null" {
		*f = Field{}
		return nil
	}
	*f = Some(node.Value)
	return nil
}

// Record holds the nine descriptive fields of one page.
type Record struct {
	Name         string `yaml:"name"`
	Slug         string `yaml:"slug"`
	GDP          Field  `yaml:"gdp"`
	CountryCode  Field  `yaml:"country_code"`
	Alpha2       Field  `yaml:"alpha_code_2"`
	Alpha3       Field  `yaml:"alpha_code_3"`
	Languages    Field  `yaml:"languages"`
	Population   Field  `yaml:"population"`
	Area         Field  `yaml:"area"`
	Independence Field  `yaml:"independence"`
	Towns        Field  `yaml:"towns"`
}

// RecordFromFields maps positional values onto the record fields in label
// order. Values beyond the ninth are dropped and missing ones stay absent.
func RecordFromFields(name, slug string, values []string) Record {
	record := Record{Name: name, Slug: slug}
	targets := record.fieldPointers()
	for i, value := range values {
		if i >= len(targets) {
			break
		}
		*targets[i] = Some(value)
	}
	return record
}

// Fields returns the record's values aligned with models.FieldLabels.
func (r Record) Fields() [models.FieldCount]Field {
	var fields [models.FieldCount]Field
	for i, f := range r.fieldPointers() {
		fields[i] = *f
	}
	return fields
}

// PresentCount is the number of fields that carry a value.
func (r Record) PresentCount() int {
	n := 0
	for _, f := range r.Fields() {
		if f.Present {
			n++
		}
	}
	return n
}

func (r *Record) fieldPointers() [models.FieldCount]*Field {
	return [models.FieldCount]*Field{
		&r.GDP,
		&r.CountryCode,
		&r.Alpha2,
		&r.Alpha3,
		&r.Languages,
		&r.Population,
		&r.Area,
		&r.Independence,
		&r.Towns,
	}
}
