// Package orderedmap provides a generic map which remembers insertion order.
package orderedmap

import "container/list"

// OrderedMap stores key-value pairs in insertion order. Overwriting a key keeps its
// original position.
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	keys  *list.List
}

// Element is a key-value pair of an OrderedMap
type Element[K comparable, V any] struct {
	Key   K
	Value V
	e     *list.Element
}

// New creates an empty OrderedMap
func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		keys:  list.New(),
	}
}

// Set stores value under key. It returns true when key was already present.
func (o *OrderedMap[K, V]) Set(key K, value V) bool {
	if e, exists := o.store[key]; exists {
		e.Value.(*Element[K, V]).Value = value
		return true
	}

	el := &Element[K, V]{Key: key, Value: value}
	el.e = o.keys.PushBack(el)
	o.store[key] = el.e

	return false
}

// Get returns the value stored under key
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	e, exists := o.store[key]
	if !exists {
		return *new(V), false
	}

	return e.Value.(*Element[K, V]).Value, true
}

// Has reports whether key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.store[key]
	return exists
}

// Delete removes key
func (o *OrderedMap[K, V]) Delete(key K) {
	e, exists := o.store[key]
	if !exists {
		return
	}

	o.keys.Remove(e)
	delete(o.store, key)
}

// Count returns the number of keys
func (o *OrderedMap[K, V]) Count() int {
	return o.keys.Len()
}

// Front returns the oldest element or nil when the map is empty
func (o *OrderedMap[K, V]) Front() *Element[K, V] {
	if e := o.keys.Front(); e != nil {
		return e.Value.(*Element[K, V])
	}

	return nil
}

// Next returns the element inserted after el or nil
func (el *Element[K, V]) Next() *Element[K, V] {
	if n := el.e.Next(); n != nil {
		return n.Value.(*Element[K, V])
	}

	return nil
}

// Keys returns the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.keys.Len())
	for el := o.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}

	return keys
}

// Values returns the values in insertion order
func (o *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, o.keys.Len())
	for el := o.Front(); el != nil; el = el.Next() {
		values = append(values, el.Value)
	}

	return values
}
