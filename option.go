package cmdtree

import (
	"errors"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/cmdtree/coerce"
	"github.com/napalu/cmdtree/errs"
	"github.com/napalu/cmdtree/parse"
	"github.com/napalu/cmdtree/validation"
)

// NewOption creates an Option from a flag specification such as "-o, --output <file>".
// When name is empty it is derived from the first long flag ("--dry-run" becomes
// "dryRun") or else the first short flag. A nil coercion stores the raw value for
// options taking a value and true for switches.
func NewOption(name, flagSpec string, coercion coerce.Accumulator, configs ...ConfigureOptionFunc) (*Option, error) {
	spec, err := parse.ParseFlagSpec(flagSpec)
	if err != nil {
		token := flagSpec
		var specErr *parse.FlagSpecError
		if errors.As(err, &specErr) {
			token = specErr.Token
		}
		return nil, errs.ErrInvalidFlagSpec.WithArgs(flagSpec, token)
	}

	if name == "" {
		name = deriveOptionName(spec.Flags)
	}
	if name == "" {
		return nil, errs.ErrEmptyName.WithArgs("option")
	}

	if coercion == nil {
		if spec.HasVariable {
			coercion = coerce.Identity()
		} else {
			coercion = coerce.Fixed(true)
		}
	}

	o := &Option{
		name:       name,
		flags:      spec.Flags,
		takesValue: spec.HasVariable,
		variable:   spec.Variable,
		coercion:   coercion,
	}
	if err := o.Set(configs...); err != nil {
		return nil, err
	}

	return o, nil
}

func deriveOptionName(flags []string) string {
	for _, f := range flags {
		if strings.HasPrefix(f, "--") {
			return strcase.ToLowerCamel(strings.TrimPrefix(f, "--"))
		}
	}
	if len(flags) > 0 {
		return strings.TrimPrefix(flags[0], "-")
	}

	return ""
}

// Set applies configs in order and stops at the first one reporting an error
func (o *Option) Set(configs ...ConfigureOptionFunc) error {
	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// Name returns the key under which the option's data is reported
func (o *Option) Name() string {
	return o.name
}

// Flags returns the declared flags in declaration order
func (o *Option) Flags() []string {
	return o.flags
}

// TakesValue is true when the flag specification has a <variable> placeholder
func (o *Option) TakesValue() bool {
	return o.takesValue
}

// Variable returns the display name of the value
func (o *Option) Variable() string {
	return o.variable
}

// Required reports whether the option must be present
func (o *Option) Required() bool {
	return o.required
}

// Help returns the help text
func (o *Option) Help() string {
	return o.help
}

// Default returns the default handed to the coercion
func (o *Option) Default() any {
	return o.def
}

// Coercion returns the option's accumulator
func (o *Option) Coercion() coerce.Accumulator {
	return o.coercion
}

// Data returns the accumulated value, nil until the first update
func (o *Option) Data() any {
	return o.data
}

// IsFlag reports whether token is exactly one of the option's flags
func (o *Option) IsFlag(token string) bool {
	for _, f := range o.flags {
		if f == token {
			return true
		}
	}

	return false
}

// IsValid runs the validators in declaration order; the first failure wins
func (o *Option) IsValid(raw string) (bool, string) {
	return validation.Check(o.validators, raw)
}

// Update feeds raw (empty for options without value) to the coercion and stores the
// result. It may be called any number of times, e.g. once per -v of a counter.
func (o *Option) Update(raw string) error {
	data, err := o.coercion.Accumulate(raw, o.data, o.def)
	if err != nil {
		return err
	}
	o.data = data

	return nil
}

// Reset forgets the accumulated data
func (o *Option) Reset() {
	o.data = nil
}

// String returns the flags joined as in usage output
func (o *Option) String() string {
	s := strings.Join(o.flags, ", ")
	if o.takesValue {
		s += " <" + o.variable + ">"
	}

	return strings.TrimSpace(s)
}
