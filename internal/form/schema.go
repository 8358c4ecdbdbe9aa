package form

import "strings"

// Mode distinguishes a create form from an edit form.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Values is a draft record: field name to the raw text bound to it.
type Values map[string]string

func (v Values) clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Field describes one input of the form.
type Field struct {
	Name    string
	Label   string
	Default string
	// Options restricts the input to a fixed choice list.
	Options []string
	Secret  bool
	// CreateOnly fields are hidden and not sent in edit mode.
	CreateOnly bool
}

// Schema ties a record type T to the payload P sent to the server.
type Schema[T, P any] struct {
	Fields []Field
	// Record seeds an edit draft from an existing record.
	Record func(T) (id int, values Values)
	// Build turns the draft into the request payload.
	Build func(mode Mode, values Values) (P, error)
}

func (s Schema[T, P]) defaults() Values {
	v := make(Values, len(s.Fields))
	for _, f := range s.Fields {
		v[f.Name] = f.Default
	}
	return v
}

func (s Schema[T, P]) field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Visible returns the fields shown in mode.
func (s Schema[T, P]) Visible(mode Mode) []Field {
	out := make([]Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		if mode == ModeEdit && f.CreateOnly {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Trimmed returns the value of name with surrounding spaces removed.
func (v Values) Trimmed(name string) string {
	return strings.TrimSpace(v[name])
}
