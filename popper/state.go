package popper

import (
	"github.com/npillmayer/poptip/config"
	"github.com/npillmayer/poptip/dom"
)

// State is the visibility state of popper parts, set as attribute data-state.
// CSS transitions key off of it.
type State string

// Visibility states.
const (
	Visible State = "visible"
	Hidden  State = "hidden"
)

// Parts holds the elements a popper consists of. Arrow and Backdrop are nil
// if the popper has none.
type Parts struct {
	Tooltip  *dom.Element
	Content  *dom.Element
	Arrow    *dom.Element
	Backdrop *dom.Element
}

// Children looks up the parts of a popper.
func Children(popper *dom.Element) Parts {
	return Parts{
		Tooltip:  popper.Query(TooltipSelector),
		Content:  popper.Query(ContentSelector),
		Arrow:    popper.Query(ArrowSelector),
		Backdrop: popper.Query(BackdropSelector),
	}
}

// SetVisibilityState sets data-state on a list of elements. Nil elements
// are skipped.
func SetVisibilityState(state State, els ...*dom.Element) {
	for _, e := range els {
		if e != nil {
			e.SetAttribute("data-state", string(state))
		}
	}
}

// Update brings an existing popper in line with a new configuration, after an
// instance has been reconfigured. prev is the configuration the popper
// currently reflects. Update checks next before touching the popper: if it
// returns an error, the popper still reflects prev.
func Update(popper *dom.Element, prev, next config.Config) error {
	parts := Children(popper)
	if parts.Tooltip == nil || parts.Content == nil {
		return ErrNotAPopper
	}
	if err := CheckContent(next.Content()); err != nil {
		return err
	}
	var arrow *dom.Element
	if next.Bool("arrow") {
		var err error
		if arrow, err = createArrow(next.String("arrowType")); err != nil {
			return err
		}
	}
	if role := next.String("role"); role != "" {
		popper.SetAttribute("role", role)
	} else {
		popper.RemoveAttribute("role")
	}
	popper.SetStyleProperty("z-index", next.String("zIndex"))
	applyTooltipOptions(parts.Tooltip, next)
	if prevThemes := themeClasses(prev.String("theme")); len(prevThemes) > 0 {
		parts.Tooltip.RemoveClass(prevThemes...)
	}
	addThemes(parts.Tooltip, next.String("theme"))

	if parts.Arrow != nil && (!next.Bool("arrow") || prev.String("arrowType") != next.String("arrowType")) {
		parts.Tooltip.RemoveChild(parts.Arrow)
		parts.Arrow = nil
	}
	if parts.Arrow == nil && arrow != nil {
		parts.Tooltip.InsertFirst(arrow)
	}

	if parts.Backdrop != nil && !next.Bool("animateFill") {
		parts.Tooltip.RemoveChild(parts.Backdrop)
		parts.Tooltip.RemoveAttribute("data-animatefill")
	} else if parts.Backdrop == nil && next.Bool("animateFill") {
		parts.Tooltip.RemoveChild(parts.Content)
		parts.Tooltip.AppendChild(createBackdrop())
		parts.Tooltip.AppendChild(parts.Content)
		parts.Tooltip.SetAttribute("data-animatefill", "")
	}
	tracer().Debugf("updated popper %s", popper.ID())
	return SetContent(parts.Content, next.Content(), next.Bool("allowHTML"))
}
