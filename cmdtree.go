// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package cmdtree provides declarative command-line parsing over a tree of commands.
//
// A Command declares:
//
//	Options - flags such as -v or --output <file>, optionally required, whose values are
//	          accumulated by a coerce.Accumulator (constant switch, counter, list, map...)
//	Operands - positional slots with an arity: an exact count, "?", "*" or "+"
//	Commands - named children, parsed recursively with the tokens left over
//
// Parsing walks the token list depth-first. Grouped short flags (-abc), attached values
// (-ofile, -o=file, --output=file) and the literal separator "--" are supported. All
// failures are reported as errors from the errs package; nothing is printed and the
// process is never terminated.
//
// Option and operand data live on the tree itself: parsing the same tree twice
// accumulates unless Reset is called in between.
package cmdtree

import (
	"strings"

	"github.com/napalu/cmdtree/coerce"
	"github.com/napalu/cmdtree/errs"
	"github.com/napalu/cmdtree/parse"
	"github.com/napalu/cmdtree/types/orderedmap"
)

// NewCommand creates a root Command
func NewCommand(name string, configs ...ConfigureCommandFunc) *Command {
	c := &Command{
		name:     name,
		commands: orderedmap.New[string, *Command](),
	}
	c.Set(configs...)

	return c
}

// Set applies configs to the command
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// AddOption declares an Option on the command; see NewOption for the meaning of the
// arguments. Flags already declared on this command are rejected.
func (c *Command) AddOption(name, flagSpec string, coercion coerce.Accumulator, configs ...ConfigureOptionFunc) (*Option, error) {
	o, err := NewOption(name, flagSpec, coercion, configs...)
	if err != nil {
		return nil, err
	}

	for _, flag := range o.flags {
		if c.findOption(flag) != nil {
			return nil, errs.ErrDuplicateFlag.WithArgs(flag, c.Path())
		}
	}
	c.options = append(c.options, o)

	return o, nil
}

// AddOperand declares an Operand on the command. Operands are filled in declaration order.
func (c *Command) AddOperand(name, arity string, configs ...ConfigureOperandFunc) (*Operand, error) {
	o, err := NewOperand(name, arity, configs...)
	if err != nil {
		return nil, err
	}
	c.operands = append(c.operands, o)

	return o, nil
}

// AddCommand declares a child command. A name already used by a sibling is rejected.
func (c *Command) AddCommand(name string, configs ...ConfigureCommandFunc) (*Command, error) {
	if name == "" {
		return nil, errs.ErrEmptyName.WithArgs("command")
	}
	if c.commands.Has(name) {
		return nil, errs.ErrDuplicateCommand.WithArgs(name, c.Path())
	}

	child := NewCommand(name, configs...)
	child.parent = c
	c.commands.Set(name, child)

	return child, nil
}

// Parse matches tokens against the command tree and returns the tokens no level
// consumed. Callers usually treat leftovers as an error; see ParseAll.
func (c *Command) Parse(tokens []string) ([]string, error) {
	stream := parse.NewTokens(tokens)
	if err := c.parse(stream); err != nil {
		return nil, err
	}

	return stream.Remaining(), nil
}

// ParseAll is like Parse but fails with errs.ErrUnexpectedExtraArgument when tokens
// are left over
func (c *Command) ParseAll(tokens []string) error {
	rest, err := c.Parse(tokens)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return errs.ErrUnexpectedExtraArgument.WithArgs(rest[0])
	}

	return nil
}

// ParseString splits a shell-style string into tokens and calls ParseAll
func (c *Command) ParseString(argString string) error {
	args, err := parse.Split(argString)
	if err != nil {
		return errs.ErrSplitFailed.WithArgs(argString).Wrap(err)
	}

	return c.ParseAll(args)
}

// Reset forgets all option and operand data of the command and its descendants
func (c *Command) Reset() {
	for _, o := range c.options {
		o.Reset()
	}
	for _, o := range c.operands {
		o.Reset()
	}
	for el := c.commands.Front(); el != nil; el = el.Next() {
		el.Value.Reset()
	}
}

// Name returns the command name
func (c *Command) Name() string {
	return c.name
}

// Help returns the one-line summary
func (c *Command) Help() string {
	return c.help
}

// Description returns the long description
func (c *Command) Description() string {
	return c.description
}

// Example returns the usage example
func (c *Command) Example() string {
	return c.example
}

// Parent returns the parent command, nil for the root
func (c *Command) Parent() *Command {
	return c.parent
}

// Root returns the top of the tree
func (c *Command) Root() *Command {
	root := c
	for root.parent != nil {
		root = root.parent
	}

	return root
}

// Path returns the names from the root down to the command, separated by spaces
func (c *Command) Path() string {
	var names []string
	for cur := c; cur != nil; cur = cur.parent {
		names = append([]string{cur.name}, names...)
	}

	return strings.Join(names, " ")
}

// Options returns the declared options in declaration order
func (c *Command) Options() []*Option {
	return c.options
}

// Operands returns the declared operands in declaration order
func (c *Command) Operands() []*Operand {
	return c.operands
}

// Commands returns the child commands in declaration order
func (c *Command) Commands() []*Command {
	return c.commands.Values()
}

// HasOptions reports whether any option is declared
func (c *Command) HasOptions() bool {
	return len(c.options) > 0
}

// HasOperands reports whether any operand is declared
func (c *Command) HasOperands() bool {
	return len(c.operands) > 0
}

// HasCommands reports whether any child command is declared
func (c *Command) HasCommands() bool {
	return c.commands.Count() > 0
}

// HasCommand reports whether name is a child command
func (c *Command) HasCommand(name string) bool {
	return c.commands.Has(name)
}

// HasFlag reports whether flag is declared by one of the command's options
func (c *Command) HasFlag(flag string) bool {
	return c.findOption(flag) != nil
}

// GetCommand returns the child command name
func (c *Command) GetCommand(name string) (*Command, error) {
	if child, ok := c.commands.Get(name); ok {
		return child, nil
	}

	return nil, errs.ErrUnknownCommand.WithArgs(strings.TrimSpace(c.Path() + " " + name))
}

// Lookup follows names down the tree, e.g. Lookup("remote", "add")
func (c *Command) Lookup(names ...string) (*Command, error) {
	cur := c
	for _, name := range names {
		next, err := cur.GetCommand(name)
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return cur, nil
}

// GetOption returns the option declaring flag
func (c *Command) GetOption(flag string) (*Option, bool) {
	o := c.findOption(flag)
	return o, o != nil
}

// MinMaxOperands sums the expected counts of all operands. max is Unbounded as soon
// as one operand is unbounded.
func (c *Command) MinMaxOperands() (min, max int) {
	for _, o := range c.operands {
		lo, hi := o.Expected()
		min += lo
		if max != Unbounded {
			if hi == Unbounded {
				max = Unbounded
			} else {
				max += hi
			}
		}
	}

	return min, max
}

// MinRemaining sums the minimum counts of the operands from index from onward
func (c *Command) MinRemaining(from int) int {
	total := 0
	for i := from; i < len(c.operands); i++ {
		lo, _ := c.operands[i].Expected()
		total += lo
	}

	return total
}
