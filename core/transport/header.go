package transport

import "strings"

// Header is a case-insensitive collection of HTTP header fields.
// Lookup keys are folded to lowercase internally while a written spelling
// is preserved for emission: Add keeps the spelling of the field's first
// writer, Set replaces it with its own. Multiple values per field are
// supported, which the Set-Cookie response header relies on.
//
// The zero value is ready to use.
type Header struct {
	fields map[string]*headerField
	order  []string
}

type headerField struct {
	name   string
	values []string
}

// NewHeader creates an empty header collection.
func NewHeader() *Header {
	return &Header{}
}

func (h *Header) field(name string) (*headerField, string) {
	key := strings.ToLower(name)
	if h.fields == nil {
		return nil, key
	}
	return h.fields[key], key
}

// Get returns the first value associated with name, or "" when absent.
func (h *Header) Get(name string) string {
	f, _ := h.field(name)
	if f == nil || len(f.values) == 0 {
		return ""
	}
	return f.values[0]
}

// Has reports whether at least one value is associated with name.
func (h *Header) Has(name string) bool {
	f, _ := h.field(name)
	return f != nil && len(f.values) > 0
}

// Values returns all values associated with name in insertion order.
func (h *Header) Values(name string) []string {
	f, _ := h.field(name)
	if f == nil {
		return nil
	}
	return f.values
}

// Set replaces all values associated with name. The written spelling of
// name is kept for emission.
func (h *Header) Set(name, value string) {
	f, key := h.field(name)
	if f != nil {
		f.name = name
		f.values = append(f.values[:0], value)
		return
	}
	h.add(key, name, value)
}

// Add appends value to the values associated with name. The spelling of the
// first writer wins for emission.
func (h *Header) Add(name, value string) {
	f, key := h.field(name)
	if f != nil {
		f.values = append(f.values, value)
		return
	}
	h.add(key, name, value)
}

func (h *Header) add(key, name, value string) {
	if h.fields == nil {
		h.fields = make(map[string]*headerField)
	}
	h.fields[key] = &headerField{name: name, values: []string{value}}
	h.order = append(h.order, key)
}

// Del removes all values associated with name.
func (h *Header) Del(name string) {
	f, key := h.field(name)
	if f == nil {
		return
	}
	delete(h.fields, key)
	for i, k := range h.order {
		if k == key {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Each calls fn once per field value, in field insertion order, with the
// emission spelling of the field name.
func (h *Header) Each(fn func(name, value string)) {
	for _, key := range h.order {
		f := h.fields[key]
		if f == nil {
			continue
		}
		for _, v := range f.values {
			fn(f.name, v)
		}
	}
}

// Len returns the number of distinct fields.
func (h *Header) Len() int {
	return len(h.order)
}

// Clone returns a deep copy of the header collection.
func (h *Header) Clone() *Header {
	c := NewHeader()
	h.Each(func(name, value string) {
		c.Add(name, value)
	})
	return c
}
