package parse

import "github.com/ef-ds/deque"

// Tokens is the mutable stream of raw command-line tokens consumed during parsing.
// Every level of a command tree shares the same stream: tokens a level does not
// consume stay at the front for its parent or child.
type Tokens struct {
	d *deque.Deque
}

// NewTokens creates a stream holding args in order
func NewTokens(args []string) *Tokens {
	t := &Tokens{d: deque.New()}
	for _, arg := range args {
		t.d.PushBack(arg)
	}

	return t
}

// Len returns the number of tokens left
func (t *Tokens) Len() int {
	return t.d.Len()
}

// Empty reports whether the stream is exhausted
func (t *Tokens) Empty() bool {
	return t.d.Len() == 0
}

// Next removes and returns the first token
func (t *Tokens) Next() (string, bool) {
	v, ok := t.d.PopFront()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// Peek returns the first token without consuming it
func (t *Tokens) Peek() (string, bool) {
	v, ok := t.d.Front()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// PushFront puts token back at the front of the stream
func (t *Tokens) PushFront(token string) {
	t.d.PushFront(token)
}

// Remaining drains the stream and returns what was left, in order
func (t *Tokens) Remaining() []string {
	rest := make([]string, 0, t.d.Len())
	for {
		v, ok := t.d.PopFront()
		if !ok {
			break
		}
		rest = append(rest, v.(string))
	}

	return rest
}
