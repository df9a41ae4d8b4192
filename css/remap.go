package css

import (
	"strconv"
)

// RemapAxis returns the axis letter for a placement's orientation.
// Vertical placements keep the axis, horizontal placements swap X and Y.
// An empty axis stays empty.
func RemapAxis(axis string, vertical bool) string {
	if axis == "" || vertical {
		return axis
	}
	switch axis {
	case "X":
		return "Y"
	case "Y":
		return "X"
	}
	return axis
}

// RemapNumbers returns the argument list of a translate or scale function,
// re-oriented for a placement. The arrow glyph is authored pointing up, so the
// first argument always belongs to the visually horizontal axis of the unrotated
// glyph.
//
//     scale     (a)      =>  a
//     scale     (a, b)   =>  a, b            vertical
//                            b, a            horizontal
//     translate (a)      =>  ±a px           negative if reversed
//     translate (a, b)   =>  a px, ±b px     vertical
//                            ±b px, a px     horizontal
//
// The sign flip for reversed placements always targets the second slot of the
// output for vertical and the first slot for horizontal placements, i.e. it
// always hits the original second argument.
//
// An empty argument list yields the empty string.
func RemapNumbers(kind FuncKind, numbers []float64, vertical, reverse bool) string {
	if len(numbers) == 0 {
		return ""
	}
	switch kind {
	case ScaleFunc:
		if len(numbers) == 1 {
			return num(numbers[0])
		}
		if vertical {
			return pair(num(numbers[0]), num(numbers[1]))
		}
		return pair(num(numbers[1]), num(numbers[0]))
	case TranslateFunc:
		if len(numbers) == 1 {
			if reverse {
				return px(-numbers[0])
			}
			return px(numbers[0])
		}
		a, b := numbers[0], numbers[1]
		if reverse {
			b = -b
		}
		if vertical {
			return pair(px(a), px(b))
		}
		return pair(px(b), px(a))
	}
	return ""
}

func num(x float64) string {
	if x == 0 {
		x = 0 // normalizes -0
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func px(x float64) string {
	return num(x) + "px"
}

func pair(a, b string) string {
	return a + ", " + b
}
