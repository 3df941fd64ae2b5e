package cmdtree

import (
	"github.com/napalu/cmdtree/coerce"
	"github.com/napalu/cmdtree/types/orderedmap"
	"github.com/napalu/cmdtree/validation"
)

// Unbounded is the maximum of an arity without an upper limit
const Unbounded = -1

// Arity is the cardinality constraint of an Operand: an exact count or one of the
// symbolic ranges "?" (0..1), "*" (0..∞) and "+" (1..∞)
type Arity struct {
	min    int
	max    int
	symbol string
}

// Symbolic arities
var (
	Optional   = Arity{min: 0, max: 1, symbol: "?"}
	ZeroOrMore = Arity{min: 0, max: Unbounded, symbol: "*"}
	OneOrMore  = Arity{min: 1, max: Unbounded, symbol: "+"}
)

// CommandFunc is called once the options and operands of a matched Command have been
// resolved, before any sub-command is parsed. Returning an error stops parsing.
type CommandFunc func(cmd *Command, options *Options, operands *Operands) error

// OptionActionFunc is called each time an Option is matched, after its data was
// updated. value is empty for options which take no value.
type OptionActionFunc func(value string) error

// ConfigureOptionFunc is used when defining an Option
type ConfigureOptionFunc func(option *Option, err *error)

// ConfigureOperandFunc is used when defining an Operand
type ConfigureOperandFunc func(operand *Operand, err *error)

// ConfigureCommandFunc is used when defining a Command
type ConfigureCommandFunc func(command *Command)

// Interrupt is implemented by errors which an action returns to end parsing on
// purpose, for instance to display help. They are returned to the caller as-is
// instead of being wrapped in errs.ErrActionFailed.
type Interrupt interface {
	error
	Interrupt()
}

// Option is a flag-driven switch declared on a Command
type Option struct {
	name       string
	flags      []string
	takesValue bool
	variable   string
	required   bool
	help       string
	coercion   coerce.Accumulator
	def        any
	data       any
	validators []validation.Validator
	action     OptionActionFunc
}

// Operand is a positional argument slot declared on a Command
type Operand struct {
	name       string
	variable   string
	help       string
	arity      Arity
	defaults   []any
	data       []any
	index      int
	validators []validation.Validator
	converter  func(string) (any, error)
}

// Command is a node of the command tree. The root Command stands for the application.
// A child keeps a non-owning reference to its parent.
type Command struct {
	name        string
	help        string
	description string
	example     string
	parent      *Command
	options     []*Option
	operands    []*Operand
	commands    *orderedmap.OrderedMap[string, *Command]
	action      CommandFunc
}
