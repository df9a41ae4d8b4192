/*
Package dom provides a small W3C-style element API on top of golang.org/x/net/html.

Status

Early draft—API may change frequently. Please stay patient.

Overview

Poptip builds popper subtrees (container, tooltip box, arrow, backdrop) and reads
declarative options off reference elements. Both need a handful of primitive DOM
capabilities: creating elements, getting and setting attributes, maintaining a class
list, querying descendants by selector and locating the closest ancestor matching a
selector. Type Element wraps an *html.Node and offers exactly these operations.
It implements interface w3cdom.Element, which is what the configuration and
transform code is written against.

Selectors are compiled with github.com/andybalholm/cascadia, inline styles are
parsed with package style.

Elements are not safe for concurrent mutation. An element tree is meant to be
owned by a single goroutine, as in a browser's event loop.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'poptip.dom'
func tracer() tracing.Trace {
	return tracing.Select("poptip.dom")
}
