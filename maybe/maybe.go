package maybe

/*
module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault)

A `Maybe` can help you with optional arguments, error handling, and records
with optional fields. Poptip returns option lookups as Maybe values.
*/

// Maybe holds either a value of type T (Just) or nothing.
// The zero value is Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Of creates a Maybe from the common Go idiom `v, ok := …`.
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

// IsNothing is true for an empty Maybe.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// Get unwraps the Maybe.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// WithDefault returns the wrapped value, or def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a wrapped value.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may fail to produce a value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Cast narrows a Maybe of interface type to a concrete type. Values of other
// types result in Nothing.
func Cast[T any](x Maybe[any]) Maybe[T] {
	return AndThen(func(v any) Maybe[T] {
		t, ok := v.(T)
		return Of(t, ok)
	}, x)
}

// Match starts a pattern match on m.
func (m Maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to decompose a Maybe.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m Maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
