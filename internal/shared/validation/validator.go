package validation

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

type ConfigError interface {
	error
	PrependPath(path string) ConfigError
}

type ValidationError struct {
	Path     string
	Problems map[string]string
}

func NewValidationError(problems map[string]string, path ...string) *ValidationError {
	return &ValidationError{strings.Join(path, "."), problems}
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "validation errors found in '%s':\n", e.Path)
	for _, field := range e.fields() {
		fmt.Fprintf(&b, "  %s: %s\n", field, e.Problems[field])
	}
	return b.String()
}

// Message renders the first problem (by field name) as "path.field: problem".
func (e *ValidationError) Message() string {
	fields := e.fields()
	if len(fields) == 0 {
		return fmt.Sprintf("%s: invalid", e.Path)
	}
	field := fields[0]
	if field == "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Problems[field])
	}
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", field, e.Problems[field])
	}
	return fmt.Sprintf("%s.%s: %s", e.Path, field, e.Problems[field])
}

// StatusCode is the HTTP status every validation failure maps to.
func (e *ValidationError) StatusCode() int {
	return http.StatusUnprocessableEntity
}

func (e *ValidationError) Is(other error) bool {
	_, ok := other.(*ValidationError)
	return ok
}

func (e *ValidationError) PrependPath(path string) ConfigError {
	e.Path = fmt.Sprint(path, ".", e.Path)
	return e
}

func (e *ValidationError) AppendPath(path string) ConfigError {
	e.Path = fmt.Sprint(e.Path, ".", path)
	return e
}

func (e *ValidationError) fields() []string {
	fields := make([]string, 0, len(e.Problems))
	for field := range e.Problems {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

type Validator interface {
	// Returns a map of field and human readable explanation of what's wrong
	Valid(ctx context.Context) (problems map[string]string)
}

type DuplicateFoundError struct {
	Path string
}

func NewDuplicateFoundError(path ...string) *DuplicateFoundError {
	return &DuplicateFoundError{strings.Join(path, ".")}
}

func (e *DuplicateFoundError) Error() string {
	return fmt.Sprintf("duplicate entity in '%s'", e.Path)
}

func (e *DuplicateFoundError) PrependPath(path string) ConfigError {
	e.Path = fmt.Sprint(path, ".", e.Path)
	return e
}

type MissingIDError struct {
	Path  string
	Index int
}

func NewMissingIDError(path ...string) *MissingIDError {
	return &MissingIDError{strings.Join(path, "."), -1}
}

func (e *MissingIDError) Error() string {
	var path string
	if e.Index >= 0 {
		path = fmt.Sprintf("%s[%d]", e.Path, e.Index)
	} else {
		path = e.Path
	}

	return fmt.Sprintf("entity in '%s' has no id", path)
}

func (e *MissingIDError) SetIndex(i int) {
	e.Index = i
}

func (e *MissingIDError) PrependPath(path string) ConfigError {
	e.Path = fmt.Sprint(path, ".", e.Path)
	return e
}
