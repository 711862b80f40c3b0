package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Rule checks a single value and returns it coerced to the rule's type.
// Rules are applied in order, each one receiving the previous rule's output.
type Rule func(value any) (any, error)

// String requires a string value.
func String() Rule {
	return func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("must be a string")
		}
		return s, nil
	}
}

// NonEmpty requires a string with at least one non-space character.
func NonEmpty() Rule {
	return func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.New("must be a string")
		}
		if strings.TrimSpace(s) == "" {
			return nil, errors.New("is not allowed to be empty")
		}
		return s, nil
	}
}

// Boolean accepts bool values and the strings "true" and "false".
func Boolean() Rule {
	return func(value any) (any, error) {
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			switch strings.ToLower(v) {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
		}
		return nil, errors.New("must be a boolean")
	}
}

// Number accepts any JSON number or numeric string and yields a float64.
func Number() Rule {
	return func(value any) (any, error) {
		f, ok := toFloat(value)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errors.New("must be a number")
		}
		return f, nil
	}
}

// Integer accepts whole numbers (or their string form) and yields an int.
func Integer() Rule {
	return func(value any) (any, error) {
		f, ok := toFloat(value)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errors.New("must be a number")
		}
		if f != math.Trunc(f) {
			return nil, errors.New("must be an integer")
		}
		if f > math.MaxInt32 || f < math.MinInt32 {
			return nil, errors.New("is out of range")
		}
		return int(f), nil
	}
}

// Min requires a numeric value greater than or equal to min.
func Min(min float64) Rule {
	return func(value any) (any, error) {
		f, ok := toFloat(value)
		if !ok {
			return nil, errors.New("must be a number")
		}
		if f < min {
			return nil, fmt.Errorf("must be greater than or equal to %s", formatFloat(min))
		}
		return value, nil
	}
}

// Max requires a numeric value less than or equal to max.
func Max(max float64) Rule {
	return func(value any) (any, error) {
		f, ok := toFloat(value)
		if !ok {
			return nil, errors.New("must be a number")
		}
		if f > max {
			return nil, fmt.Errorf("must be less than or equal to %s", formatFloat(max))
		}
		return value, nil
	}
}

// OneOf requires a string from the allowed set.
func OneOf(allowed ...string) Rule {
	return func(value any) (any, error) {
		s, ok := value.(string)
		if !ok || !slices.Contains(allowed, s) {
			return nil, fmt.Errorf("must be one of [%s]", strings.Join(allowed, ", "))
		}
		return s, nil
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
