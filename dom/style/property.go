package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'poptip.dom'
func tracer() tracing.Trace {
	return tracing.Select("poptip.dom")
}

// ErrInvalidStyle is returned if an inline style attribute cannot be parsed.
var ErrInvalidStyle = errors.New("invalid inline style")

// Property is a raw value for a CSS property. For example, with
//
//     transform: translateX(-50%)
//
// a property value of "translateX(-50%)" is set. Values are kept verbatim,
// as function names inside of values are case-sensitive for our purposes.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Inline declarations ---------------------------------------------------

// Declarations is the ordered list of properties of an inline style attribute,
// e.g. the contents of
//
//     <div style="z-index: 9999; max-width: 350px">
//
// Keys are lower-case property names. Order of first appearance is preserved
// when re-serializing.
type Declarations struct {
	props []KeyValue
}

// ParseDeclarations parses the text of a style attribute.
// An empty text yields empty declarations.
func ParseDeclarations(text string) (*Declarations, error) {
	d := &Declarations{}
	if strings.TrimSpace(text) == "" {
		return d, nil
	}
	if !strings.HasSuffix(strings.TrimSpace(text), ";") {
		text += ";" // the last declaration has to be terminated for the parser
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		tracer().Errorf("cannot parse inline style %q: %v", text, err)
		return d, fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	for _, decl := range decls {
		d.Set(decl.Property, Property(decl.Value))
	}
	return d, nil
}

// Len returns the number of properties set.
func (d *Declarations) Len() int {
	return len(d.props)
}

// Properties returns all properties in order of appearance.
func (d *Declarations) Properties() []KeyValue {
	r := make([]KeyValue, len(d.props))
	copy(r, d.props)
	return r
}

// Get a property's value.
func (d *Declarations) Get(key string) (Property, bool) {
	key = normKey(key)
	for _, kv := range d.props {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return NullStyle, false
}

// Set a property's value. Overwrites an existing value in place, if present.
// Setting an empty value removes the property.
func (d *Declarations) Set(key string, p Property) {
	key = normKey(key)
	if p.IsEmpty() {
		d.Remove(key)
		return
	}
	for i, kv := range d.props {
		if kv.Key == key {
			d.props[i].Value = p
			return
		}
	}
	d.props = append(d.props, KeyValue{Key: key, Value: p})
}

// Remove a property, if present.
func (d *Declarations) Remove(key string) {
	key = normKey(key)
	for i, kv := range d.props {
		if kv.Key == key {
			d.props = append(d.props[:i], d.props[i+1:]...)
			return
		}
	}
}

// String serializes the declarations for use as a style attribute value.
func (d *Declarations) String() string {
	var b strings.Builder
	for i, kv := range d.props {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(kv.Key)
		b.WriteString(": ")
		b.WriteString(kv.Value.String())
	}
	return b.String()
}

func normKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
