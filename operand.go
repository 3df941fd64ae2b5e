package cmdtree

import (
	"fmt"
	"strconv"

	"github.com/napalu/cmdtree/errs"
	"github.com/napalu/cmdtree/validation"
)

// ParseArity parses a non-negative count or one of "?", "*" and "+"
func ParseArity(s string) (Arity, error) {
	switch s {
	case Optional.symbol:
		return Optional, nil
	case ZeroOrMore.symbol:
		return ZeroOrMore, nil
	case OneOrMore.symbol:
		return OneOrMore, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Arity{}, fmt.Errorf("arity must be a non-negative integer, '?', '*' or '+': %q", s)
	}

	return ExactArity(n), nil
}

// ExactArity returns an arity of exactly n values. n must not be negative.
func ExactArity(n int) Arity {
	return Arity{min: n, max: n, symbol: strconv.Itoa(n)}
}

// Expected returns the minimum and maximum number of values; max is Unbounded for
// "*" and "+"
func (a Arity) Expected() (min, max int) {
	return a.min, a.max
}

// String returns the arity as written in a declaration
func (a Arity) String() string {
	return a.symbol
}

// NewOperand creates an Operand with the given arity ("2", "?", "*", "+")
func NewOperand(name, arity string, configs ...ConfigureOperandFunc) (*Operand, error) {
	if name == "" {
		return nil, errs.ErrEmptyName.WithArgs("operand")
	}

	a, err := ParseArity(arity)
	if err != nil {
		return nil, errs.ErrInvalidArityValue.WithArgs(arity, name).Wrap(err)
	}

	o := &Operand{
		name:     name,
		variable: name,
		arity:    a,
	}
	if err := o.Set(configs...); err != nil {
		return nil, err
	}

	return o, nil
}

// Set applies configs in order and stops at the first one reporting an error
func (o *Operand) Set(configs ...ConfigureOperandFunc) error {
	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// Name returns the key under which the operand's values are reported
func (o *Operand) Name() string {
	return o.name
}

// Variable returns the display name
func (o *Operand) Variable() string {
	return o.variable
}

// Help returns the help text
func (o *Operand) Help() string {
	return o.help
}

// Arity returns the declared arity
func (o *Operand) Arity() Arity {
	return o.arity
}

// Expected returns the minimum and maximum number of values
func (o *Operand) Expected() (min, max int) {
	return o.arity.Expected()
}

// Defaults returns the default sequence
func (o *Operand) Defaults() []any {
	return o.defaults
}

// IsValid runs the validators in declaration order; the first failure wins
func (o *Operand) IsValid(raw string) (bool, string) {
	return validation.Check(o.validators, raw)
}

// Update converts raw and stores it at the write cursor: values overwrite the
// default sequence slot by slot and are appended once the defaults are used up
func (o *Operand) Update(raw string) error {
	var value any = raw
	if o.converter != nil {
		v, err := o.converter(raw)
		if err != nil {
			return err
		}
		value = v
	}

	o.index++
	if o.index > len(o.data) {
		o.data = append(o.data, value)
	} else {
		o.data[o.index-1] = value
	}

	return nil
}

// Data returns the default sequence while nothing was written, and exactly the
// written values afterwards
func (o *Operand) Data() []any {
	if o.index == 0 {
		return append([]any{}, o.data...)
	}

	return append([]any{}, o.data[:o.index]...)
}

// Reset restores the default sequence and rewinds the write cursor
func (o *Operand) Reset() {
	o.data = append([]any{}, o.defaults...)
	o.index = 0
}
