// Package coerce provides the value strategies attached to options and operands.
//
// An Accumulator receives the raw token value (empty for options which take no
// value), the data accumulated so far (nil before the first update) and the
// declared default, and returns the new data. Fixed ignores all three and acts as
// a constant switch; Transform adapts a plain function. The remaining constructors
// are ready-made accumulators for the common cases.
package coerce

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/araddon/dateparse"
	"github.com/google/uuid"
)

// Accumulator computes the next value of an option from a raw token
type Accumulator interface {
	Accumulate(raw string, current, def any) (any, error)
}

// Transform adapts a function to the Accumulator interface
type Transform func(raw string, current, def any) (any, error)

// Accumulate calls f
func (f Transform) Accumulate(raw string, current, def any) (any, error) {
	return f(raw, current, def)
}

// FixedValue is an Accumulator which always yields the same value
type FixedValue struct {
	Value any
}

// Accumulate returns the fixed value
func (f FixedValue) Accumulate(string, any, any) (any, error) {
	return f.Value, nil
}

// Fixed returns an Accumulator which sets the option to value whenever it is matched
func Fixed(value any) Accumulator {
	return FixedValue{Value: value}
}

// IsFixed reports whether a is a constant switch and returns its value
func IsFixed(a Accumulator) (any, bool) {
	if f, ok := a.(FixedValue); ok {
		return f.Value, true
	}

	return nil, false
}

// ErrMalformedValue is wrapped by every conversion failure of this package
var ErrMalformedValue = errors.New("malformed value")

func malformed(kind, raw string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: '%s' is not a valid %s: %v", ErrMalformedValue, raw, kind, err)
	}

	return fmt.Errorf("%w: '%s' is not a valid %s", ErrMalformedValue, raw, kind)
}

// Convert turns an Accumulator into a single-value converter, as used by operands
func Convert(a Accumulator) func(string) (any, error) {
	return func(raw string) (any, error) {
		return a.Accumulate(raw, nil, nil)
	}
}

// Identity stores the raw value; the last occurrence wins
func Identity() Accumulator {
	return Transform(func(raw string, _, _ any) (any, error) {
		return raw, nil
	})
}

// Count increments an int on every occurrence, starting from the default when it is an int
func Count() Accumulator {
	return Transform(func(_ string, current, def any) (any, error) {
		base := 0
		if n, ok := current.(int); ok {
			base = n
		} else if n, ok := def.(int); ok {
			base = n
		}

		return base + 1, nil
	})
}

// Append collects every raw value into a []string, seeded with a copy of a []string default
func Append() Accumulator {
	return Transform(func(raw string, current, def any) (any, error) {
		return append(stringsFrom(current, def), raw), nil
	})
}

// Split collects the comma separated elements of every raw value into a []string
func Split() Accumulator {
	return Transform(func(raw string, current, def any) (any, error) {
		list := stringsFrom(current, def)
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				list = append(list, part)
			}
		}

		return list, nil
	})
}

func stringsFrom(current, def any) []string {
	if l, ok := current.([]string); ok {
		return l
	}
	if l, ok := def.([]string); ok {
		return append([]string{}, l...)
	}

	return []string{}
}

// KeyValue parses key=value pairs into a map[string]string. A raw value without '='
// is rejected.
func KeyValue() Accumulator {
	return Transform(func(raw string, current, def any) (any, error) {
		key, value, found := strings.Cut(raw, "=")
		if !found || key == "" {
			return nil, malformed("key=value pair", raw, nil)
		}

		m, ok := current.(map[string]string)
		if !ok {
			m = map[string]string{}
			if d, ok := def.(map[string]string); ok {
				for k, v := range d {
					m[k] = v
				}
			}
		}
		m[key] = value

		return m, nil
	})
}

// Range expands numeric ranges such as "1-3,7" into []int{1, 2, 3, 7}, appending to
// the values seen so far
func Range() Accumulator {
	return Transform(func(raw string, current, def any) (any, error) {
		var list []int
		if l, ok := current.([]int); ok {
			list = l
		} else if l, ok := def.([]int); ok {
			list = append([]int{}, l...)
		}

		expanded, err := ExpandRange(raw)
		if err != nil {
			return nil, err
		}

		return append(list, expanded...), nil
	})
}

// ExpandRange expands a comma separated list of integers and inclusive "from-to" spans
func ExpandRange(raw string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, malformed("range", raw, nil)
		}

		// a leading '-' belongs to the number, not the span
		sep := strings.Index(part[1:], "-")
		if sep < 0 {
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, malformed("range", raw, err)
			}
			out = append(out, n)
			continue
		}

		from, err := strconv.Atoi(part[:sep+1])
		if err != nil {
			return nil, malformed("range", raw, err)
		}
		to, err := strconv.Atoi(part[sep+2:])
		if err != nil {
			return nil, malformed("range", raw, err)
		}
		if from > to {
			return nil, malformed("range", raw, fmt.Errorf("%d is greater than %d", from, to))
		}
		for i := from; i <= to; i++ {
			out = append(out, i)
		}
	}

	return out, nil
}

// Int parses the raw value as a base-10 int
func Int() Accumulator {
	return Transform(func(raw string, _, _ any) (any, error) {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, malformed("integer", raw, nil)
		}

		return n, nil
	})
}

// Float parses the raw value as a float64
func Float() Accumulator {
	return Transform(func(raw string, _, _ any) (any, error) {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, malformed("number", raw, nil)
		}

		return f, nil
	})
}

// Bool parses the raw value with strconv.ParseBool; an empty value means true so that
// Bool can back options which take no value
func Bool() Accumulator {
	return Transform(func(raw string, _, _ any) (any, error) {
		if raw == "" {
			return true, nil
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, malformed("boolean", raw, nil)
		}

		return b, nil
	})
}

// Duration parses the raw value with time.ParseDuration
func Duration() Accumulator {
	return Transform(func(raw string, _, _ any) (any, error) {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, malformed("duration", raw, nil)
		}

		return d, nil
	})
}

// Date parses dates in any of the layouts understood by dateparse
func Date() Accumulator {
	return Transform(func(raw string, _, _ any) (any, error) {
		t, err := dateparse.ParseAny(raw)
		if err != nil {
			return nil, malformed("date", raw, nil)
		}

		return t, nil
	})
}

// UUID parses the raw value into a uuid.UUID
func UUID() Accumulator {
	return Transform(func(raw string, _, _ any) (any, error) {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, malformed("UUID", raw, nil)
		}

		return id, nil
	})
}

// Version parses the raw value as a semantic version
func Version() Accumulator {
	return Transform(func(raw string, _, _ any) (any, error) {
		v, err := semver.NewVersion(raw)
		if err != nil {
			return nil, malformed("version", raw, nil)
		}

		return v, nil
	})
}
