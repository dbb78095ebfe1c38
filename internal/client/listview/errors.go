package listview

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/geeksadmin/internal/common"
)

var (
	ErrSuperseded   = errors.New("superseded by a newer load")
	ErrNotSupported = errors.New("not supported by this screen")
)

// ValidationError rejects a draft before any request is made.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", strings.Join(e.Fields, ", "), e.Reason)
}

func (e *ValidationError) Unwrap() error { return common.ErrValidation }

// Invalid builds a ValidationError for one field.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Fields: []string{field}, Reason: reason}
}
