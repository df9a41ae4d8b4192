/*
Package either implements a tagged union of two alternatives.

Haskell:

    type Either a b = Left a | Right b

Stand-in in Go:

    e := either.Left[int, string](7)
    var n int
    var s string
    switch m := e.Match(); m {
    case m.Left(&n):
        ...
    case m.Right(&s):
        ...
    }

Poptip uses Either for options which may be given either as a value or as a
function computing the value.
*/
package either

// Either holds a value of type L or a value of type R.
// The zero value is a Left holding the zero value of L.
type Either[L, R any] struct {
	left  L
	right R
	isR   bool
}

// Left creates an Either holding a left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right creates an Either holding a right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isR: true}
}

// IsLeft is true if e holds a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isR
}

// IsRight is true if e holds a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isR
}

// Fold maps e to a single value, applying f to a left and g to a right value.
func Fold[L, R, T any](e Either[L, R], f func(L) T, g func(R) T) T {
	if e.isR {
		return g(e.right)
	}
	return f(e.left)
}

// Match starts a pattern match on e.
func (e Either[L, R]) Match() Matcher[L, R] {
	return &matcher[L, R]{e: e}
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to decompose an Either.
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

// matcher is used by pointer: values of L or R need not be comparable.
type matcher[L, R any] struct {
	e Either[L, R]
}

func (m *matcher[L, R]) Left(v *L) Matcher[L, R] {
	if !m.e.isR {
		if v != nil {
			*v = m.e.left
		}
		return m
	}
	return nil
}

func (m *matcher[L, R]) Right(v *R) Matcher[L, R] {
	if m.e.isR {
		if v != nil {
			*v = m.e.right
		}
		return m
	}
	return nil
}
