package cmdtree

import (
	"errors"
	"strings"

	"github.com/napalu/cmdtree/errs"
	"github.com/napalu/cmdtree/parse"
)

const (
	defaultInvalidValueMessage = "invalid value"
	noValueExpectedMessage     = "option takes no value"
)

// parse consumes tokens for this level, runs the command's callback, then descends
// into the matched child. Sibling children named by the tokens a child leaves
// over are parsed in turn.
func (c *Command) parse(tokens *parse.Tokens) error {
	var (
		pending  []string
		literal  bool
		sub      *Command
		resolved = c.seedResolved()
	)
	_, maxOperands := c.MinMaxOperands()

	for !tokens.Empty() {
		token, _ := tokens.Next()

		if literal {
			pending = append(pending, token)
			continue
		}

		if token == parse.LiteralSeparator {
			literal = true
			continue
		}

		if flag, rest, ok := parse.ShortOption(token); ok {
			if err := c.matchShortOption(tokens, flag, rest, resolved); err != nil {
				return err
			}
			continue
		}

		if flag, value, hasValue, ok := parse.LongOption(token); ok {
			opt := c.findOption(flag)
			if opt == nil {
				return errs.ErrUnknownOption.WithArgs(flag)
			}
			if err := c.applyOption(tokens, opt, flag, value, hasValue, resolved); err != nil {
				return err
			}
			continue
		}

		if maxOperands == Unbounded || len(pending) < maxOperands {
			pending = append(pending, token)
			continue
		}

		if child, ok := c.commands.Get(token); ok {
			sub = child
			break
		}

		tokens.PushFront(token)
		break
	}

	if err := c.checkRequired(resolved); err != nil {
		return err
	}

	operands, err := c.processOperands(pending)
	if err != nil {
		return err
	}

	if c.action != nil {
		if err := c.action(c, c.resolvedOptions(resolved), operands); err != nil {
			return actionError(c.Path(), err)
		}
	}

	for sub != nil {
		if err := sub.parse(tokens); err != nil {
			return err
		}

		sub = nil
		if next, ok := tokens.Peek(); ok {
			if child, found := c.commands.Get(next); found {
				_, _ = tokens.Next()
				sub = child
			}
		}
	}

	return nil
}

// matchShortOption resolves the first flag of a short option token. rest is whatever
// followed the flag character: "=value", a glued value for options taking one, or
// further grouped flags which are pushed back for the next iteration.
func (c *Command) matchShortOption(tokens *parse.Tokens, flag, rest string, resolved map[string]*Option) error {
	opt := c.findOption(flag)
	if opt == nil {
		return errs.ErrUnknownOption.WithArgs(flag)
	}

	switch {
	case rest == "":
		return c.applyOption(tokens, opt, flag, "", false, resolved)
	case strings.HasPrefix(rest, "="):
		return c.applyOption(tokens, opt, flag, rest[1:], true, resolved)
	case opt.takesValue:
		return c.applyOption(tokens, opt, flag, rest, true, resolved)
	}

	if _, _, ok := parse.ShortOption("-" + rest); !ok {
		return errs.ErrInvalidOptionValue.WithArgs(rest, flag, noValueExpectedMessage)
	}
	tokens.PushFront("-" + rest)

	return c.applyOption(tokens, opt, flag, "", false, resolved)
}

func (c *Command) applyOption(tokens *parse.Tokens, opt *Option, flag, value string, attached bool, resolved map[string]*Option) error {
	if opt.takesValue {
		if !attached {
			next, ok := tokens.Next()
			if !ok {
				return errs.ErrMissingOptionValue.WithArgs(flag)
			}
			value = next
		}

		if ok, msg := opt.IsValid(value); !ok {
			if msg == "" {
				msg = defaultInvalidValueMessage
			}
			return errs.ErrInvalidOptionValue.WithArgs(value, flag, msg)
		}
	} else if attached {
		return errs.ErrInvalidOptionValue.WithArgs(value, flag, noValueExpectedMessage)
	}

	if err := opt.Update(value); err != nil {
		return errs.ErrInvalidOptionValue.WithArgs(value, flag, err.Error())
	}
	resolved[opt.name] = opt

	if opt.action != nil {
		if err := opt.action(value); err != nil {
			return actionError(flag, err)
		}
	}

	return nil
}

// processOperands distributes tokens over the declared operands in order. An operand
// stops taking tokens at its maximum, or once it holds its minimum and the tokens left
// are only enough for the minimums of the operands after it.
func (c *Command) processOperands(tokens []string) (*Operands, error) {
	min, max := c.MinMaxOperands()
	if len(tokens) < min {
		return nil, errs.ErrTooFewOperands.WithArgs(c.Path(), min, len(tokens))
	}
	if max != Unbounded && len(tokens) > max {
		return nil, errs.ErrTooManyOperands.WithArgs(c.Path(), max, len(tokens))
	}

	result := newOperands()
	for i, operand := range c.operands {
		lo, hi := operand.Expected()
		reserved := c.MinRemaining(i + 1)
		for taken := 0; len(tokens) > 0; taken++ {
			if hi != Unbounded && taken >= hi {
				break
			}
			if taken >= lo && len(tokens) <= reserved {
				break
			}

			token := tokens[0]
			tokens = tokens[1:]
			if ok, msg := operand.IsValid(token); !ok {
				if msg == "" {
					msg = defaultInvalidValueMessage
				}
				return nil, errs.ErrInvalidOperandValue.WithArgs(token, operand.name, msg)
			}
			if err := operand.Update(token); err != nil {
				return nil, errs.ErrInvalidOperandValue.WithArgs(token, operand.name, err.Error())
			}
		}
		result.set(operand.name, operand.Data())
	}

	return result, nil
}

func (c *Command) checkRequired(resolved map[string]*Option) error {
	for _, o := range c.options {
		if _, ok := resolved[o.name]; o.required && !ok {
			return errs.ErrMissingRequiredOption.WithArgs(strings.Join(o.flags, ", "))
		}
	}

	return nil
}

// seedResolved marks options which already hold data as present. Options sharing a
// name report the data of the one applied last.
func (c *Command) seedResolved() map[string]*Option {
	resolved := make(map[string]*Option, len(c.options))
	for _, o := range c.options {
		if o.data != nil {
			resolved[o.name] = o
		}
	}

	return resolved
}

func (c *Command) resolvedOptions(resolved map[string]*Option) *Options {
	options := newOptions()
	for _, o := range c.options {
		if applied, ok := resolved[o.name]; ok && !options.Has(o.name) {
			options.set(o.name, applied.data)
		}
	}

	return options
}

func (c *Command) findOption(flag string) *Option {
	for _, o := range c.options {
		if o.IsFlag(flag) {
			return o
		}
	}

	return nil
}

func actionError(name string, err error) error {
	var interrupt Interrupt
	if errors.As(err, &interrupt) {
		return err
	}

	return errs.ErrActionFailed.WithArgs(name).Wrap(err)
}
