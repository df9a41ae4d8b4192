/*
Package config derives the configuration of a popper instance.

A configuration is assembled from three sources, lowest to highest precedence:

    1. compiled defaults (Defaults)
    2. explicit properties passed by the caller (Config.With)
    3. declarative attributes on the reference element, e.g.
       <button data-tippy-theme="light" data-tippy-arrow="true">

Step 3 is performed by Evaluate, unless the configuration has option
`performance` set. Evaluate also resolves the two options which may be given as
functions of the reference element, `content` and `appendTo`.

Option names form a closed set, declared in DefaultSchema. Names outside of the
schema are never read from attributes and are dropped from explicit properties.

Site-wide defaults may be kept in a YAML file and loaded with ReadProps.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'poptip.config'.
func tracer() tracing.Trace {
	return tracing.Select("poptip.config")
}
