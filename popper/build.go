package popper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/poptip/config"
	"github.com/npillmayer/poptip/dom"
	"github.com/npillmayer/poptip/maybe"
)

// Class names of the popper parts. Themes add a class <theme>-theme to
// the tooltip element.
const (
	PopperClass     = "tippy-popper"
	TooltipClass    = "tippy-tooltip"
	ContentClass    = "tippy-content"
	ArrowClass      = "tippy-arrow"
	RoundArrowClass = "tippy-roundarrow"
	BackdropClass   = "tippy-backdrop"
)

// Selectors for the parts inside a popper. The popper itself is selected by
// css.PopperSelector.
const (
	TooltipSelector  = "." + TooltipClass
	ContentSelector  = "." + ContentClass
	ArrowSelector    = "." + ArrowClass + ", ." + RoundArrowClass
	BackdropSelector = "." + BackdropClass
)

// ErrUnsupportedContent is returned for content values which cannot be
// placed into a popper.
var ErrUnsupportedContent = errors.New("unsupported popper content")

// ErrNotAPopper is returned if an element lacks the parts of a popper.
var ErrNotAPopper = errors.New("element is not a popper")

const roundArrowSVG = `<svg viewBox="0 0 24 8" xmlns="http://www.w3.org/2000/svg">` +
	`<path d="M3 8s2.021-.015 5.253-4.218C9.584 2.051 10.797 1.007 12 1c1.203-.007 2.416 1.035 ` +
	`3.761 2.782C19.012 8.005 21 8 21 8H3z"/></svg>`

// ElementID returns the id attribute value of the popper with a given id.
func ElementID(id int) string {
	return "tippy-" + strconv.Itoa(id)
}

// Build creates the element tree of a popper from an evaluated configuration.
// The popper is detached; mounting it (see option appendTo) is up to the caller.
func Build(id int, cfg config.Config) (*dom.Element, error) {
	popper := dom.CreateElement("div")
	popper.AddClass(PopperClass)
	popper.SetAttribute("id", ElementID(id))
	if role := cfg.String("role"); role != "" {
		popper.SetAttribute("role", role)
	}
	popper.SetStyleProperty("z-index", cfg.String("zIndex"))

	tooltip := dom.CreateElement("div")
	tooltip.AddClass(TooltipClass)
	tooltip.SetAttribute("data-state", string(Hidden))
	applyTooltipOptions(tooltip, cfg)
	addThemes(tooltip, cfg.String("theme"))

	if cfg.Bool("arrow") {
		arrow, err := createArrow(cfg.String("arrowType"))
		if err != nil {
			return nil, err
		}
		tooltip.AppendChild(arrow)
	}
	if cfg.Bool("animateFill") {
		tooltip.AppendChild(createBackdrop())
		tooltip.SetAttribute("data-animatefill", "")
	}

	content := dom.CreateElement("div")
	content.AddClass(ContentClass)
	content.SetAttribute("data-state", string(Hidden))
	if err := SetContent(content, cfg.Content(), cfg.Bool("allowHTML")); err != nil {
		return nil, err
	}
	tooltip.AppendChild(content)
	popper.AppendChild(tooltip)
	tracer().Debugf("built popper %s", ElementID(id))
	return popper, nil
}

// applyTooltipOptions sets the attributes of the tooltip element which
// directly mirror options.
func applyTooltipOptions(tooltip *dom.Element, cfg config.Config) {
	tooltip.SetAttribute("data-size", cfg.String("size"))
	tooltip.SetAttribute("data-animation", cfg.String("animation"))
	toggleAttribute(tooltip, "data-interactive", cfg.Bool("interactive"))
	toggleAttribute(tooltip, "data-inertia", cfg.Bool("inertia"))
	tooltip.SetStyleProperty("max-width", maxWidth(cfg))
}

func toggleAttribute(e *dom.Element, name string, on bool) {
	if on {
		e.SetAttribute(name, "")
	} else {
		e.RemoveAttribute(name)
	}
}

// maxWidth formats option maxWidth; plain numbers are pixels.
func maxWidth(cfg config.Config) string {
	w := cfg.String("maxWidth")
	if !maybe.Cast[float64](cfg.Lookup("maxWidth")).IsNothing() {
		return w + "px"
	}
	return w
}

func themeClasses(theme string) []string {
	var classes []string
	for _, t := range strings.Fields(theme) {
		classes = append(classes, t+"-theme")
	}
	return classes
}

func addThemes(tooltip *dom.Element, theme string) {
	if classes := themeClasses(theme); len(classes) > 0 {
		tooltip.AddClass(classes...)
	}
}

func createArrow(arrowType string) (*dom.Element, error) {
	arrow := dom.CreateElement("div")
	if arrowType == "round" {
		arrow.AddClass(RoundArrowClass)
		if err := arrow.SetInnerHTML(roundArrowSVG); err != nil {
			return nil, err
		}
		return arrow, nil
	}
	arrow.AddClass(ArrowClass)
	return arrow, nil
}

func createBackdrop() *dom.Element {
	backdrop := dom.CreateElement("div")
	backdrop.AddClass(BackdropClass)
	backdrop.SetAttribute("data-state", string(Hidden))
	return backdrop
}

// CheckContent tests if a content value can be placed into a popper, without
// placing it. It returns an error wrapping ErrUnsupportedContent if not.
func CheckContent(value any) error {
	switch value.(type) {
	case nil, *dom.Element, string, float64, bool:
		return nil
	}
	tracer().Errorf("cannot set content of type %T", value)
	return fmt.Errorf("%w: %T", ErrUnsupportedContent, value)
}

// SetContent replaces the content of a content element. Strings are set as
// text, or parsed as an HTML fragment if allowHTML is set. Elements are moved
// into the content element. Numbers and booleans are set as text.
// Unsupported values leave the content element untouched.
func SetContent(content *dom.Element, value any, allowHTML bool) error {
	if err := CheckContent(value); err != nil {
		return err
	}
	switch c := value.(type) {
	case nil:
		content.ClearChildren()
	case *dom.Element:
		content.ClearChildren()
		content.AppendChild(c)
	case string:
		if allowHTML {
			return content.SetInnerHTML(c)
		}
		content.SetTextContent(c)
	case float64:
		content.SetTextContent(strconv.FormatFloat(c, 'f', -1, 64))
	case bool:
		content.SetTextContent(strconv.FormatBool(c))
	}
	return nil
}
