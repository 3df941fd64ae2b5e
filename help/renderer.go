package help

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/napalu/cmdtree"
)

// Renderer turns the parts of a command tree into the strings shown in help output
type Renderer interface {
	OptionUsage(o *cmdtree.Option) string
	OptionDescription(o *cmdtree.Option) string
	OperandUsage(o *cmdtree.Operand) string
	OperandDescription(o *cmdtree.Operand) string
	CommandName(c *cmdtree.Command) string
	CommandUsage(c *cmdtree.Command) string
}

type DefaultRenderer struct{}

func NewRenderer() *DefaultRenderer {
	return &DefaultRenderer{}
}

// OptionUsage returns the flags of an option followed by its value placeholder,
// e.g. "-o, --output <file>"
func (r *DefaultRenderer) OptionUsage(o *cmdtree.Option) string {
	return o.String()
}

// OptionDescription returns the help text of an option, followed by its default
// value (if any) and whether it is required.
func (r *DefaultRenderer) OptionDescription(o *cmdtree.Option) string {
	description := o.Help()

	if d := o.Default(); d != nil {
		description = joinNonEmpty(description, fmt.Sprintf("(default: %v)", d))
	}
	if o.Required() {
		description = joinNonEmpty(description, "(required)")
	}

	return description
}

// OperandUsage renders the operand placeholder according to its arity:
// "<file>", "[<file>]", "[<file>...]" or "<file>...".
func (r *DefaultRenderer) OperandUsage(o *cmdtree.Operand) string {
	placeholder := "<" + strcase.ToKebab(o.Variable()) + ">"

	min, max := o.Expected()
	switch {
	case max == cmdtree.Unbounded && min == 0:
		return "[" + placeholder + "...]"
	case max == cmdtree.Unbounded:
		return placeholder + "..."
	case min == 0:
		return "[" + placeholder + "]"
	}

	return strings.TrimSpace(strings.Repeat(placeholder+" ", max))
}

func (r *DefaultRenderer) OperandDescription(o *cmdtree.Operand) string {
	description := o.Help()
	if defaults := o.Defaults(); len(defaults) > 0 {
		description = joinNonEmpty(description, fmt.Sprintf("(default: %v)", formatValues(defaults)))
	}

	return description
}

func (r *DefaultRenderer) CommandName(c *cmdtree.Command) string {
	return c.Name()
}

// CommandUsage returns the synopsis line of a command:
// its path, "[options]" when it has options, its operands and "<command>" when it
// has children.
func (r *DefaultRenderer) CommandUsage(c *cmdtree.Command) string {
	parts := []string{c.Path()}
	if c.HasOptions() {
		parts = append(parts, "[options]")
	}
	for _, o := range c.Operands() {
		parts = append(parts, r.OperandUsage(o))
	}
	if c.HasCommands() {
		parts = append(parts, "<command>")
	}

	return strings.Join(parts, " ")
}

func joinNonEmpty(a, b string) string {
	if a == "" {
		return b
	}

	return a + " " + b
}

func formatValues(values []any) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprintf("%v", v)
	}

	return strings.Join(s, " ")
}
