/*
Package css re-orients the CSS transform of a popper's arrow.

Arrow glyphs are authored pointing up, i.e. for a popper placed on top of its
reference. When the positioning engine flips the popper to another side, the
`translate` and `scale` components of the arrow's transform have to be re-derived:
horizontal placements swap axes and argument order, placements on the right or at the
bottom mirror the coordinate origin and therefore flip a sign.

The package is organised in three steps:

    ReadPlacement     reads the placement token off the popper container
    ParseTransform    splits a transform value into function descriptors
    RemapAxis/RemapNumbers
                      compute the corrected axis letter and argument list

ComputeArrowTransform combines these into a pure function of placement and
configured transform; RecomputeArrowTransform applies the result to an arrow element.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'poptip.css'.
func tracer() tracing.Trace {
	return tracing.Select("poptip.css")
}
