package validation

import (
	"net/url"
	"sort"
)

// Field declares the rules for one key of an input object.
type Field struct {
	Name     string
	Required bool
	Rules    []Rule
}

// Required declares a field that must be present.
func Required(name string, rules ...Rule) Field {
	return Field{Name: name, Required: true, Rules: rules}
}

// Optional declares a field that is validated only when present.
func Optional(name string, rules ...Rule) Field {
	return Field{Name: name, Rules: rules}
}

// Schema validates one input object (path params, query or body).
type Schema struct {
	// Path prefixes field names in error messages, e.g. "body".
	Path   string
	Fields []Field
	// AllowUnknown keeps keys that no field declares instead of rejecting them.
	AllowUnknown bool
}

// Validate checks values against the schema and stops at the first
// violation. On success it returns the declared fields, coerced by their
// rules. Absent optional fields are absent from the result.
func (s Schema) Validate(values map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(s.Fields))
	declared := make(map[string]struct{}, len(s.Fields))

	for _, f := range s.Fields {
		declared[f.Name] = struct{}{}

		value, present := values[f.Name]
		if !present || value == nil {
			if f.Required {
				return nil, s.fail(f.Name, "is required")
			}
			continue
		}

		for _, rule := range f.Rules {
			var err error
			value, err = rule(value)
			if err != nil {
				return nil, s.fail(f.Name, err.Error())
			}
		}
		out[f.Name] = value
	}

	if !s.AllowUnknown {
		unknown := make([]string, 0)
		for key := range values {
			if _, ok := declared[key]; !ok {
				unknown = append(unknown, key)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return nil, s.fail(unknown[0], "is not allowed")
		}
	}

	return out, nil
}

func (s Schema) fail(field, problem string) *ValidationError {
	return NewValidationError(map[string]string{field: problem}, s.Path)
}

// FromParams adapts router path parameters to schema input.
func FromParams(params map[string]string) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}

// FromQuery adapts a query string to schema input, keeping the first value
// of every key.
func FromQuery(query url.Values) map[string]any {
	out := make(map[string]any, len(query))
	for k, v := range query {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
