package config

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/npillmayer/poptip/dom/w3cdom"
	"github.com/npillmayer/poptip/either"
	"github.com/npillmayer/poptip/maybe"
)

// Props is a mapping from option name to value, e.g. explicit properties
// given by a caller or the result of parsing declarative attributes.
type Props map[string]any

// Resolver computes an option value from a reference element.
type Resolver func(ref w3cdom.Element) any

// Dynamic is the value of an option of kind KindDynamic: either a literal
// value or a Resolver, which Evaluate will call once with the reference element.
type Dynamic = either.Either[any, Resolver]

// Literal wraps a concrete value for a dynamic option.
func Literal(v any) Dynamic {
	return either.Left[any, Resolver](v)
}

// ResolvedBy wraps a resolver function for a dynamic option.
func ResolvedBy(f Resolver) Dynamic {
	return either.Right[any](f)
}

// Config is an immutable set of option values. Operations on a Config
// return a new Config; the zero value is an empty configuration.
type Config struct {
	props Props
}

// Defaults returns a configuration holding the compiled defaults of DefaultSchema.
func Defaults() Config {
	c := Config{props: make(Props, len(DefaultSchema))}
	for _, opt := range DefaultSchema {
		c.props[opt.Name] = opt.Default
	}
	return c
}

// With returns a new configuration with overrides applied on top of c.
// Options not in DefaultSchema are ignored.
//
// Dynamic options (content, appendTo) accept a literal value, a Dynamic, or
// one of the function types
//
//     Resolver
//     func(w3cdom.Element) any
//     func(w3cdom.Element) string
//     func(w3cdom.Element) w3cdom.Element
//
// Functions of any other type are ignored, with an error trace.
func (c Config) With(overrides Props) Config {
	n := c.clone()
	for key, v := range overrides {
		opt, ok := DefaultSchema.Lookup(key)
		if !ok {
			tracer().Infof("ignoring unknown option %q", key)
			continue
		}
		if opt.Kind == KindDynamic {
			d, ok := dynamic(v)
			if !ok {
				tracer().Errorf("option %s: cannot use %T as a resolver", key, v)
				continue
			}
			v = d
		}
		n.props[key] = v
	}
	return n
}

func (c Config) clone() Config {
	n := Config{props: make(Props, len(c.props))}
	for k, v := range c.props {
		n.props[k] = v
	}
	return n
}

// dynamic wraps a value for a dynamic option. It fails for functions which
// are not of a resolver type.
func dynamic(v any) (Dynamic, bool) {
	switch x := v.(type) {
	case Dynamic:
		return x, true
	case Resolver:
		return ResolvedBy(x), true
	case func(w3cdom.Element) any:
		return ResolvedBy(x), true
	case func(w3cdom.Element) string:
		return ResolvedBy(func(ref w3cdom.Element) any { return x(ref) }), true
	case func(w3cdom.Element) w3cdom.Element:
		return ResolvedBy(func(ref w3cdom.Element) any { return x(ref) }), true
	}
	if v != nil && reflect.TypeOf(v).Kind() == reflect.Func {
		return Dynamic{}, false
	}
	return Literal(v), true
}

// Props returns a copy of the option values. Dynamic options are returned
// as Dynamic values.
func (c Config) Props() Props {
	return c.clone().props
}

// Lookup returns the value of an option. For dynamic options the literal
// value is returned; an unresolved Resolver yields Nothing.
func (c Config) Lookup(key string) maybe.Maybe[any] {
	v, ok := c.props[key]
	if !ok {
		return maybe.Nothing[any]()
	}
	if d, isDyn := v.(Dynamic); isDyn {
		var lit any
		switch m := d.Match(); m {
		case m.Left(&lit):
			return maybe.Just(lit)
		}
		return maybe.Nothing[any]()
	}
	return maybe.Just(v)
}

// IsResolved is false if a dynamic option still holds a Resolver.
func (c Config) IsResolved(key string) bool {
	if d, ok := c.props[key].(Dynamic); ok {
		return d.IsLeft()
	}
	return true
}

// Bool tests if an option is switched on. Besides true, every value counts
// as on except false, zero, NaN, the empty string and nil. This way an
// attribute data-tippy-arrow="1" switches the arrow on.
func (c Config) Bool(key string) bool {
	v, ok := c.Lookup(key).Get()
	if !ok {
		return false
	}
	return truthy(v)
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	case string:
		return x != ""
	}
	return true
}

// Number returns the value of a numeric option, 0 if unset or not a number.
func (c Config) Number(key string) float64 {
	v, _ := c.Lookup(key).Get()
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	}
	return 0
}

// String returns the value of an option as text. Numbers and booleans are
// formatted, unset options return the empty string.
func (c Config) String(key string) string {
	v, _ := c.Lookup(key).Get()
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// List returns the value of a list option. A scalar value is returned as a
// list of one element, an unset option as nil.
func (c Config) List(key string) []any {
	v, ok := c.Lookup(key).Get()
	if !ok || v == nil {
		return nil
	}
	if l, isList := v.([]any); isList {
		return l
	}
	return []any{v}
}

// Content returns the resolved value of option `content`.
func (c Config) Content() any {
	v, _ := c.Lookup("content").Get()
	return v
}

// AppendTo returns the resolved value of option `appendTo`.
func (c Config) AppendTo() any {
	v, _ := c.Lookup("appendTo").Get()
	return v
}
