package css

import (
	"github.com/npillmayer/poptip/dom/w3cdom"
)

// PopperSelector selects the popper container an arrow lives in.
const PopperSelector = ".tippy-popper"

// ComputeArrowTransform re-orients the translate and scale components of an
// arrow's configured transform for a placement. The first translate and the
// first scale function are rewritten, every other function is left untouched
// and keeps its position. Functions without readable numeric arguments are
// left as they are.
//
// The result is a pure function of placement and transform; computing it twice
// with the same inputs yields the same string.
//
//     ComputeArrowTransform(Right, "translateY(5px) scale(2, 1)")  =>  "translateX(-5px) scale(1, 2)"
//
func ComputeArrowTransform(placement Placement, transform string) string {
	o := placement.Orientation()
	t := ParseTransform(transform)
	for _, kind := range []FuncKind{TranslateFunc, ScaleFunc} {
		i := t.Find(kind)
		if i < 0 || len(t[i].Args) == 0 {
			continue
		}
		t[i] = remap(t[i], o)
	}
	return t.String()
}

func remap(f Func, o Orientation) Func {
	r := Func{
		Kind: f.Kind,
		Name: f.Name,
		Axis: RemapAxis(f.Axis, o.Vertical),
		Args: f.Args,
	}
	r.Raw = r.Name + r.Axis + "(" + RemapNumbers(f.Kind, f.Args, o.Vertical, o.Reverse) + ")"
	return r
}

// ArrowCommand is the side-effecting part of an arrow update: it writes a
// computed transform to an arrow element's inline style.
type ArrowCommand struct {
	Arrow     w3cdom.Element
	Placement Placement
	Transform string // computed transform
}

// PrepareArrowTransform reads the placement of the popper an arrow belongs to
// and computes the arrow's transform, without touching the arrow.
func PrepareArrowTransform(arrow w3cdom.Element, transform string) ArrowCommand {
	var container w3cdom.Element
	if arrow != nil {
		container = arrow.Closest(PopperSelector)
	}
	placement := ReadPlacement(container)
	return ArrowCommand{
		Arrow:     arrow,
		Placement: placement,
		Transform: ComputeArrowTransform(placement, transform),
	}
}

// Apply writes the computed transform to the arrow's style.
func (cmd ArrowCommand) Apply() {
	if cmd.Arrow == nil {
		return
	}
	tracer().Debugf("arrow transform for placement %q: %q", string(cmd.Placement), cmd.Transform)
	cmd.Arrow.SetStyleProperty("transform", cmd.Transform)
}

// RecomputeArrowTransform re-orients an arrow for the current placement of its
// popper and writes the result to the arrow's transform style. transform is the
// configured (authored) transform, not the arrow's current style, so repeated
// calls do not accumulate.
func RecomputeArrowTransform(arrow w3cdom.Element, transform string) {
	PrepareArrowTransform(arrow, transform).Apply()
}
