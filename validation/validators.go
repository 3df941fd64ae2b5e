// Package validation provides the predicates run against raw option and operand
// values before they are coerced.
package validation

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"
	"github.com/araddon/dateparse"
	"github.com/google/uuid"
)

// PredicateFunc reports whether a raw value is acceptable
type PredicateFunc func(value string) bool

// Validator pairs a predicate with the message reported when it fails
type Validator struct {
	Predicate PredicateFunc
	Message   string
}

// New creates a Validator
func New(predicate PredicateFunc, message string) Validator {
	return Validator{Predicate: predicate, Message: message}
}

// Check runs validators in order and stops at the first failure, returning its
// message. It returns (true, "") when every validator passes or none are given.
func Check(validators []Validator, value string) (bool, string) {
	for _, v := range validators {
		if v.Predicate != nil && !v.Predicate(value) {
			return false, v.Message
		}
	}

	return true, ""
}

// All passes when every validator passes
func All(validators ...Validator) Validator {
	messages := make([]string, 0, len(validators))
	for _, v := range validators {
		messages = append(messages, v.Message)
	}

	return New(func(value string) bool {
		ok, _ := Check(validators, value)
		return ok
	}, strings.Join(messages, " and "))
}

// Any passes when at least one validator passes
func Any(validators ...Validator) Validator {
	messages := make([]string, 0, len(validators))
	for _, v := range validators {
		messages = append(messages, v.Message)
	}

	return New(func(value string) bool {
		for _, v := range validators {
			if v.Predicate(value) {
				return true
			}
		}
		return false
	}, strings.Join(messages, " or "))
}

// Not inverts a validator
func Not(v Validator, message string) Validator {
	return New(func(value string) bool {
		return !v.Predicate(value)
	}, message)
}

// Pattern accepts values matching the regular expression
func Pattern(expr, description string) (Validator, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Validator{}, err
	}
	if description == "" {
		description = expr
	}

	return New(re.MatchString, "must match "+description), nil
}

// MustPattern is like Pattern but panics on an invalid expression
func MustPattern(expr, description string) Validator {
	v, err := Pattern(expr, description)
	if err != nil {
		panic(err)
	}

	return v
}

// OneOf accepts exactly one of values
func OneOf(values ...string) Validator {
	return New(func(value string) bool {
		for _, v := range values {
			if v == value {
				return true
			}
		}
		return false
	}, "must be one of: "+strings.Join(values, ", "))
}

// IsInt accepts base-10 integers
func IsInt() Validator {
	return New(func(value string) bool {
		_, err := strconv.Atoi(value)
		return err == nil
	}, "must be an integer")
}

// IntRange accepts integers within [min, max]
func IntRange(min, max int) Validator {
	return New(func(value string) bool {
		n, err := strconv.Atoi(value)
		return err == nil && n >= min && n <= max
	}, fmt.Sprintf("must be an integer between %d and %d", min, max))
}

// MinLength accepts values of at least n characters
func MinLength(n int) Validator {
	return New(func(value string) bool {
		return utf8.RuneCountInString(value) >= n
	}, fmt.Sprintf("must be at least %d characters long", n))
}

// MaxLength accepts values of at most n characters
func MaxLength(n int) Validator {
	return New(func(value string) bool {
		return utf8.RuneCountInString(value) <= n
	}, fmt.Sprintf("must be at most %d characters long", n))
}

// IsDate accepts any date dateparse understands
func IsDate() Validator {
	return New(func(value string) bool {
		_, err := dateparse.ParseAny(value)
		return err == nil
	}, "must be a date")
}

// IsUUID accepts UUIDs
func IsUUID() Validator {
	return New(func(value string) bool {
		_, err := uuid.Parse(value)
		return err == nil
	}, "must be a UUID")
}

// SemverConstraint accepts semantic versions satisfying constraint, e.g. ">= 1.2, < 2"
func SemverConstraint(constraint string) (Validator, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return Validator{}, err
	}

	return New(func(value string) bool {
		v, err := semver.NewVersion(value)
		return err == nil && c.Check(v)
	}, "must be a version satisfying "+constraint), nil
}

// FileExists accepts paths naming an existing file or directory
func FileExists() Validator {
	return New(func(value string) bool {
		_, err := os.Stat(value)
		return err == nil
	}, "must name an existing file")
}
