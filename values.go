package cmdtree

import (
	"fmt"

	wkmap "github.com/wk8/go-ordered-map"
)

// Options maps option names to their accumulated data, in declaration order
type Options struct {
	m *wkmap.OrderedMap
}

func newOptions() *Options {
	return &Options{m: wkmap.New()}
}

func (o *Options) set(name string, data any) {
	o.m.Set(name, data)
}

// Get returns the data of option name
func (o *Options) Get(name string) (any, bool) {
	return o.m.Get(name)
}

// Has reports whether option name was present
func (o *Options) Has(name string) bool {
	_, ok := o.m.Get(name)
	return ok
}

// String returns the data of option name formatted with %v, or "" when absent
func (o *Options) String(name string) string {
	v, ok := o.m.Get(name)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", v)
}

// Names returns the present option names in declaration order
func (o *Options) Names() []string {
	names := make([]string, 0, o.m.Len())
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}

	return names
}

// Len returns the number of present options
func (o *Options) Len() int {
	return o.m.Len()
}

// Map copies the options into a plain map
func (o *Options) Map() map[string]any {
	out := make(map[string]any, o.m.Len())
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key.(string)] = pair.Value
	}

	return out
}

// Operands maps operand names to their values, in declaration order
type Operands struct {
	m *wkmap.OrderedMap
}

func newOperands() *Operands {
	return &Operands{m: wkmap.New()}
}

func (o *Operands) set(name string, values []any) {
	o.m.Set(name, values)
}

// Get returns the values of operand name
func (o *Operands) Get(name string) ([]any, bool) {
	v, ok := o.m.Get(name)
	if !ok {
		return nil, false
	}

	return v.([]any), true
}

// First returns the first value of operand name, or nil
func (o *Operands) First(name string) any {
	values, _ := o.Get(name)
	if len(values) == 0 {
		return nil
	}

	return values[0]
}

// Strings returns the values of operand name formatted with %v
func (o *Operands) Strings(name string) []string {
	values, _ := o.Get(name)
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprintf("%v", v))
	}

	return out
}

// Names returns the operand names in declaration order
func (o *Operands) Names() []string {
	names := make([]string, 0, o.m.Len())
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}

	return names
}

// Len returns the number of operands
func (o *Operands) Len() int {
	return o.m.Len()
}

// Map copies the operands into a plain map
func (o *Operands) Map() map[string][]any {
	out := make(map[string][]any, o.m.Len())
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key.(string)] = pair.Value.([]any)
	}

	return out
}
