/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/poptip/dom"
	tp "github.com/xlab/treeprint"
)

// shownAttrs are the attributes included in a node label, in this order.
var shownAttrs = []string{
	"id", "role", "x-placement", "data-state", "data-size", "data-animation",
	"data-interactive", "data-inertia", "style",
}

// Print returns an indented text dump of the element tree under root.
// Every element is labelled with its tag, classes and the popper-relevant
// attributes; text nodes are shown abbreviated.
//
//     .
//     └── div.tippy-popper id=tippy-1 role=tooltip
//         └── div.tippy-tooltip.dark-theme data-state=hidden
//             ├── div.tippy-arrow
//             └── div.tippy-content
//                 └── "Hello"
//
func Print(root *dom.Element) string {
	if root == nil {
		return "<nil>"
	}
	tree := tp.New()
	addNode(tree, root)
	return tree.String()
}

// Dump is a helper for testing. It logs the tree under root to t.
func Dump(root *dom.Element, t *testing.T) {
	t.Helper()
	t.Logf("DOM tree =\n%s", Print(root))
}

func addNode(parent tp.Tree, e *dom.Element) {
	branch := parent.AddBranch(label(e))
	if len(e.Children()) == 0 {
		if text := e.TextContent(); text != "" {
			branch.AddNode(fmt.Sprintf("%q", shortText(text)))
		}
		return
	}
	for _, ch := range e.Children() {
		addNode(branch, ch)
	}
}

func label(e *dom.Element) string {
	var b strings.Builder
	b.WriteString(e.TagName())
	for _, c := range e.Classes() {
		b.WriteByte('.')
		b.WriteString(c)
	}
	for _, key := range shownAttrs {
		if v, ok := e.GetAttribute(key); ok {
			fmt.Fprintf(&b, " %s=%s", key, v)
		}
	}
	return b.String()
}

func shortText(s string) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > 24 {
		return string(r[:21]) + "..."
	}
	return s
}
