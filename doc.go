/*
Package poptip provides the utility layer of a tooltip/popover widget, operating on
HTML element trees.

Status

Early draft—API may change frequently. Please stay patient.

Overview

An Instance ties a reference element (the element a tooltip is anchored to) to a
popper, the floating element tree which shows the tooltip:

    ref := doc.Query("#save-button")
    tip, err := poptip.New(ref, config.Props{"content": "Save", "arrow": true})
    ...
    tip.Reposition("right-start")   // placement computed by a positioning engine
    tip.Show()

Configuration is derived by package config, the popper tree is built by package popper,
and the arrow is re-oriented for the current placement by package css. Computing screen
positions is not part of poptip; Reposition expects the placement a positioning engine
has chosen.

Instances are not safe for concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package poptip

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'poptip'.
func tracer() tracing.Trace {
	return tracing.Select("poptip")
}
