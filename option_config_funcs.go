package cmdtree

import (
	"errors"

	"github.com/napalu/cmdtree/validation"
)

// WithHelp sets the text shown next to the option in usage output
func WithHelp(help string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.help = help
	}
}

// SetRequired when true, parsing fails unless the option is present
func SetRequired(required bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.required = required
	}
}

// WithDefault sets the default handed to the option's coercion on every update.
// It does not make the option present.
func WithDefault(value any) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.def = value
	}
}

// WithVariable overrides the display name of the option's value
func WithVariable(variable string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if !option.takesValue {
			*err = errors.New("option " + option.name + " takes no value")
			return
		}
		option.variable = variable
	}
}

// WithValidators appends validators; they run in the order given
func WithValidators(validators ...validation.Validator) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		for _, v := range validators {
			if v.Predicate == nil {
				*err = errors.New("validator for option " + option.name + " has no predicate")
				return
			}
		}
		option.validators = append(option.validators, validators...)
	}
}

// WithValidator appends a single predicate with its failure message
func WithValidator(predicate validation.PredicateFunc, message string) ConfigureOptionFunc {
	return WithValidators(validation.New(predicate, message))
}

// WithAction sets the callback run every time the option is matched
func WithAction(action OptionActionFunc) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.action = action
	}
}
