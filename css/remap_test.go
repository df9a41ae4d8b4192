package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemapAxis(t *testing.T) {
	assert.Equal(t, "X", RemapAxis("X", true))
	assert.Equal(t, "Y", RemapAxis("X", false))
	assert.Equal(t, "X", RemapAxis("Y", false))
	assert.Equal(t, "", RemapAxis("", false))
	assert.Equal(t, "", RemapAxis("", true))
	// horizontal swap is its own inverse
	assert.Equal(t, "X", RemapAxis(RemapAxis("X", false), false))
}

func TestRemapScale(t *testing.T) {
	assert.Equal(t, "1.5", RemapNumbers(ScaleFunc, []float64{1.5}, false, true))
	assert.Equal(t, "2, 3", RemapNumbers(ScaleFunc, []float64{2, 3}, true, true))
	assert.Equal(t, "3, 2", RemapNumbers(ScaleFunc, []float64{2, 3}, false, false))
	// horizontal, then vertical on the result restores the original order
	swapped := ParseTransform("scale(" + RemapNumbers(ScaleFunc, []float64{2, 3}, false, false) + ")")
	assert.Equal(t, "2, 3", RemapNumbers(ScaleFunc, swapped[0].Args, false, false))
	assert.Equal(t, "3, 2", RemapNumbers(ScaleFunc, swapped[0].Args, true, false))
}

func TestRemapTranslate(t *testing.T) {
	assert.Equal(t, "-10px", RemapNumbers(TranslateFunc, []float64{10}, false, true))
	assert.Equal(t, "10px", RemapNumbers(TranslateFunc, []float64{10}, false, false))
	assert.Equal(t, "0px", RemapNumbers(TranslateFunc, []float64{0}, true, true))
	assert.Equal(t, "5px, -3px", RemapNumbers(TranslateFunc, []float64{5, 3}, true, true))
	assert.Equal(t, "5px, 3px", RemapNumbers(TranslateFunc, []float64{5, 3}, true, false))
	assert.Equal(t, "-3px, 5px", RemapNumbers(TranslateFunc, []float64{5, 3}, false, true))
	assert.Equal(t, "3px, 5px", RemapNumbers(TranslateFunc, []float64{5, 3}, false, false))
}

func TestRemapEmpty(t *testing.T) {
	assert.Equal(t, "", RemapNumbers(TranslateFunc, nil, true, true))
	assert.Equal(t, "", RemapNumbers(ScaleFunc, []float64{}, false, false))
	assert.Equal(t, "", RemapNumbers(OtherFunc, []float64{1}, false, false))
}

func TestParseFunc(t *testing.T) {
	axis, nums := ParseFunc("rotate(45deg) scaleX(2)", ScaleFunc)
	assert.Equal(t, "X", axis)
	assert.Equal(t, []float64{2}, nums)
	axis, nums = ParseFunc("translate(-50%, .5em)", TranslateFunc)
	assert.Equal(t, "", axis)
	assert.Equal(t, []float64{-50, 0.5}, nums)
	axis, nums = ParseFunc("rotate(45deg)", TranslateFunc)
	assert.Equal(t, "", axis)
	assert.Nil(t, nums)
}

func TestParseTransformKeepsOpaqueParts(t *testing.T) {
	tr := ParseTransform("none")
	assert.Len(t, tr, 1)
	assert.Equal(t, OtherFunc, tr[0].Kind)
	assert.Equal(t, "none", tr.String())
	tr = ParseTransform("translateX(calc(1px + 2px)) scale(2)")
	assert.Len(t, tr, 2)
	assert.Nil(t, tr[0].Args, "calc() arguments are not numbers")
	assert.Equal(t, "translateX(calc(1px + 2px))", tr[0].Raw)
	assert.Equal(t, []float64{2}, tr[1].Args)
}
