package poptip

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/npillmayer/poptip/config"
	"github.com/npillmayer/poptip/css"
	"github.com/npillmayer/poptip/dom"
	"github.com/npillmayer/poptip/popper"
)

// ReferenceAttr marks a reference element which has a popper instance.
const ReferenceAttr = "data-tippy"

// ErrNoReference is returned if an instance is created without a reference element.
var ErrNoReference = errors.New("no reference element")

var idCounter uint64

// Instance is a tooltip attached to a reference element.
type Instance struct {
	ID        int
	Reference *dom.Element
	Popper    *dom.Element
	props     config.Props  // explicit properties, as passed by the caller
	config    config.Config // evaluated configuration
	placement css.Placement
	visible   bool
}

// New creates a tooltip instance for a reference element. props are explicit
// properties, taking precedence over the compiled defaults; declarative
// attributes of ref take precedence over both (unless option performance is set).
//
// The popper is built, but not mounted; see Mount.
func New(ref *dom.Element, props config.Props) (*Instance, error) {
	if ref == nil {
		return nil, ErrNoReference
	}
	cfg, err := config.Evaluate(ref, config.Defaults().With(props))
	if err != nil {
		return nil, fmt.Errorf("cannot configure tooltip: %w", err)
	}
	id := int(atomic.AddUint64(&idCounter, 1))
	p, err := popper.Build(id, cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot build popper: %w", err)
	}
	ref.SetAttribute(ReferenceAttr, "")
	tracer().Debugf("created tooltip %d for <%s>", id, ref.TagName())
	return &Instance{
		ID:        id,
		Reference: ref,
		Popper:    p,
		props:     props,
		config:    cfg,
	}, nil
}

// Config returns the evaluated configuration of the instance.
func (inst *Instance) Config() config.Config {
	return inst.config
}

// Placement returns the placement of the last Reposition call.
func (inst *Instance) Placement() css.Placement {
	return inst.placement
}

// IsVisible is true between Show and Hide.
func (inst *Instance) IsVisible() bool {
	return inst.visible
}

// Set reconfigures the instance with additional explicit properties. The
// configuration is re-evaluated from scratch and the popper updated.
func (inst *Instance) Set(props config.Props) error {
	merged := make(config.Props, len(inst.props)+len(props))
	for k, v := range inst.props {
		merged[k] = v
	}
	for k, v := range props {
		merged[k] = v
	}
	cfg, err := config.Evaluate(inst.Reference, config.Defaults().With(merged))
	if err != nil {
		return fmt.Errorf("cannot reconfigure tooltip %d: %w", inst.ID, err)
	}
	if err := popper.Update(inst.Popper, inst.config, cfg); err != nil {
		return err
	}
	inst.props, inst.config = merged, cfg
	if inst.placement != css.Unknown {
		inst.recomputeArrow()
	}
	return nil
}

// Mount appends the popper to the element option appendTo resolved to.
// If appendTo did not resolve to an element of this package, ErrNoMountPoint
// is returned.
func (inst *Instance) Mount() error {
	target, ok := inst.config.AppendTo().(*dom.Element)
	if !ok || target == nil {
		return ErrNoMountPoint
	}
	target.AppendChild(inst.Popper)
	return nil
}

// ErrNoMountPoint is returned by Mount if there is no element to mount to.
var ErrNoMountPoint = errors.New("appendTo does not denote an element")

// Reposition records the placement chosen by a positioning engine on the
// popper and re-orients the arrow accordingly.
func (inst *Instance) Reposition(placement string) {
	inst.Popper.SetAttribute(css.PlacementAttr, placement)
	inst.placement = css.ParsePlacement(placement)
	inst.recomputeArrow()
}

func (inst *Instance) recomputeArrow() {
	arrow := popper.Children(inst.Popper).Arrow
	if arrow == nil {
		return
	}
	css.RecomputeArrowTransform(arrow, inst.config.String("arrowTransform"))
}

// Show sets the popper parts to visible and, if option aria is set, links
// the reference to the popper for assistive technology.
func (inst *Instance) Show() {
	inst.setState(popper.Visible)
	if aria := inst.config.String("aria"); aria != "" {
		inst.Reference.SetAttribute("aria-"+aria, inst.Popper.ID())
	}
	inst.visible = true
}

// Hide sets the popper parts to hidden and removes the aria link.
func (inst *Instance) Hide() {
	inst.setState(popper.Hidden)
	if aria := inst.config.String("aria"); aria != "" {
		inst.Reference.RemoveAttribute("aria-" + aria)
	}
	inst.visible = false
}

func (inst *Instance) setState(state popper.State) {
	parts := popper.Children(inst.Popper)
	popper.SetVisibilityState(state, parts.Tooltip, parts.Backdrop, parts.Content)
}
