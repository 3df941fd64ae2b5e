package cmdtree

import (
	"errors"

	"github.com/napalu/cmdtree/coerce"
	"github.com/napalu/cmdtree/validation"
)

// WithOperandHelp sets the text shown next to the operand in usage output
func WithOperandHelp(help string) ConfigureOperandFunc {
	return func(operand *Operand, err *error) {
		operand.help = help
	}
}

// WithOperandVariable overrides the display name, which defaults to the operand's name
func WithOperandVariable(variable string) ConfigureOperandFunc {
	return func(operand *Operand, err *error) {
		operand.variable = variable
	}
}

// WithOperandDefault pre-seeds the operand's values. Parsed values replace the
// defaults slot by slot.
func WithOperandDefault(values ...any) ConfigureOperandFunc {
	return func(operand *Operand, err *error) {
		operand.defaults = append([]any{}, values...)
		operand.data = append([]any{}, values...)
		operand.index = 0
	}
}

// WithOperandValidators appends validators; they run in the order given
func WithOperandValidators(validators ...validation.Validator) ConfigureOperandFunc {
	return func(operand *Operand, err *error) {
		for _, v := range validators {
			if v.Predicate == nil {
				*err = errors.New("validator for operand " + operand.name + " has no predicate")
				return
			}
		}
		operand.validators = append(operand.validators, validators...)
	}
}

// WithConverter converts every raw value with a (e.g. coerce.Int()) before it is stored
func WithConverter(a coerce.Accumulator) ConfigureOperandFunc {
	return func(operand *Operand, err *error) {
		if a == nil {
			*err = errors.New("nil converter for operand " + operand.name)
			return
		}
		operand.converter = coerce.Convert(a)
	}
}
