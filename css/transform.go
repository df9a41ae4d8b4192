package css

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// FuncKind classifies transform functions.
type FuncKind uint8

// Transform functions the arrow logic knows how to re-orient. Every other
// function is of kind OtherFunc and passes through unchanged.
const (
	OtherFunc FuncKind = iota
	TranslateFunc
	ScaleFunc
)

func (k FuncKind) String() string {
	switch k {
	case TranslateFunc:
		return "translate"
	case ScaleFunc:
		return "scale"
	}
	return "other"
}

// Func is a descriptor for a single function of a CSS transform value, e.g.
//
//     translateX(-10px)   =>  Func{ Kind: TranslateFunc, Name: "translate", Axis: "X", Args: [-10] }
//
// For translate and scale, Name is the base name without axis letter. Args is
// nil if the arguments could not be read as one or two numbers.
// Raw holds the source text of the function and is what String() returns.
type Func struct {
	Kind FuncKind
	Name string
	Axis string
	Args []float64
	Raw  string
}

func (f Func) String() string {
	return f.Raw
}

// Transform is a CSS transform value, split into an ordered sequence of
// function descriptors. Parts of the value which are not function calls
// (e.g. `none`) are kept as descriptors of kind OtherFunc with an empty name.
type Transform []Func

// ParseTransform splits a CSS transform value into function descriptors.
// It never fails: input the tokenizer cannot handle is kept as one opaque
// descriptor, so nothing will be rewritten.
func ParseTransform(value string) Transform {
	var t Transform
	var raw strings.Builder
	var name string
	depth := 0
	s := scanner.New(value)
	for {
		tok := s.Next()
		switch {
		case tok.Type == scanner.TokenEOF:
			if depth > 0 { // unterminated function call
				t = append(t, Func{Name: name, Raw: raw.String()})
			}
			return t
		case tok.Type == scanner.TokenError:
			tracer().Debugf("cannot tokenize transform %q: %s", value, tok.Value)
			return Transform{{Raw: strings.TrimSpace(value)}}
		case depth == 0 && tok.Type == scanner.TokenFunction:
			name = strings.TrimSuffix(tok.Value, "(")
			raw.Reset()
			raw.WriteString(tok.Value)
			depth = 1
		case depth == 0 && (tok.Type == scanner.TokenS || tok.Type == scanner.TokenComment):
			// separators between functions
		case depth == 0:
			t = append(t, Func{Raw: tok.Value})
		default:
			raw.WriteString(tok.Value)
			if tok.Type == scanner.TokenFunction {
				depth++
			} else if tok.Type == scanner.TokenChar && tok.Value == ")" {
				depth--
				if depth == 0 {
					t = append(t, newFunc(name, raw.String()))
				}
			}
		}
	}
}

// newFunc creates a descriptor from a function name and its complete source text.
func newFunc(name, raw string) Func {
	f := Func{Name: name, Raw: raw}
	for _, k := range []FuncKind{TranslateFunc, ScaleFunc} {
		base := k.String()
		if !strings.HasPrefix(name, base) {
			continue
		}
		switch axis := name[len(base):]; axis {
		case "", "X", "Y":
			f.Kind, f.Name, f.Axis = k, base, axis
		default:
			return f // e.g. translate3d, scaleZ
		}
	}
	if f.Kind != OtherFunc {
		args := raw[len(name)+1 : len(raw)-1]
		f.Args = parseArgs(args)
	}
	return f
}

// String serializes the transform, separating functions by a single blank.
func (t Transform) String() string {
	parts := make([]string, len(t))
	for i, f := range t {
		parts[i] = f.Raw
	}
	return strings.Join(parts, " ")
}

// Find returns the index of the first function of a kind, or -1.
func (t Transform) Find(kind FuncKind) int {
	for i, f := range t {
		if f.Kind == kind {
			return i
		}
	}
	return -1
}

// ParseFunc extracts axis and numeric arguments of the first translate or
// scale function in a transform value. If there is no such function, or its
// arguments are malformed, axis is empty and numbers is nil.
//
//     ParseFunc("rotate(45deg) scaleX(2)", ScaleFunc)  =>  "X", [2]
//
func ParseFunc(value string, kind FuncKind) (axis string, numbers []float64) {
	t := ParseTransform(value)
	if i := t.Find(kind); i >= 0 && t[i].Args != nil {
		return t[i].Axis, t[i].Args
	}
	return "", nil
}

// leadingNumber matches what JavaScript's parseFloat would accept as a prefix.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parseArgs reads a comma-separated argument list of one or two numbers.
// Units are ignored: "-10px" reads as -10, "50%" as 50.
func parseArgs(args string) []float64 {
	fields := strings.Split(args, ",")
	if len(fields) > 2 {
		return nil
	}
	nums := make([]float64, 0, len(fields))
	for _, field := range fields {
		lit := leadingNumber.FindString(strings.TrimSpace(field))
		if lit == "" {
			return nil
		}
		x, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil
		}
		nums = append(nums, x)
	}
	return nums
}
