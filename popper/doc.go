/*
Package popper builds and maintains the element tree of a popper.

A popper for a configuration with an arrow looks like this:

    div.tippy-popper  role=tooltip id=tippy-1 style=z-index: 9999
    └── div.tippy-tooltip.dark-theme  data-size=regular data-animation=shift-away data-state=hidden
        ├── div.tippy-arrow
        └── div.tippy-content  data-state=hidden
            └── "Hello"

The backdrop (div.tippy-backdrop) is present only for animateFill, which
config.Evaluate switches off whenever there is an arrow.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package popper

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'poptip.popper'.
func tracer() tracing.Trace {
	return tracing.Select("poptip.popper")
}
