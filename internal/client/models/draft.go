package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIncorrectField = errors.New("field must be name=value")

// Draft is the state of a create/edit form. An empty ID means create.
type Draft struct {
	ID     string
	Fields map[string]string
}

func (d Draft) IsNew() bool { return d.ID == "" }

// Get returns the trimmed value of a field.
func (d Draft) Get(name string) string {
	return strings.TrimSpace(d.Fields[name])
}

// Set assigns a field, allocating the map on first use.
func (d *Draft) Set(name, value string) {
	if d.Fields == nil {
		d.Fields = map[string]string{}
	}
	d.Fields[name] = value
}

// FieldsFromArgs parses name=value arguments into d. Values may contain
// '='; names may not be empty.
func (d *Draft) FieldsFromArgs(args []string) error {
	for _, a := range args {
		name, value, ok := strings.Cut(a, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return fmt.Errorf("%q: %w", a, ErrIncorrectField)
		}
		d.Set(strings.TrimSpace(name), value)
	}
	return nil
}
