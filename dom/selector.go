package dom

import (
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Compiled selectors are cached, as poptip queries the same handful of
// selectors on every reposition.
var selectorCache = struct {
	sync.Mutex
	sels map[string]cascadia.SelectorGroup
}{sels: make(map[string]cascadia.SelectorGroup)}

func compile(selector string) (cascadia.SelectorGroup, bool) {
	selectorCache.Lock()
	defer selectorCache.Unlock()
	if sel, ok := selectorCache.sels[selector]; ok {
		return sel, true
	}
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		tracer().Errorf("invalid selector %q: %v", selector, err)
		return nil, false
	}
	selectorCache.sels[selector] = sel
	return sel, true
}

// Matches checks if the element would be selected by a selector.
// An invalid selector never matches.
func (e *Element) Matches(selector string) bool {
	sel, ok := compile(selector)
	if !ok || e.node.Type != html.ElementNode {
		return false
	}
	return sel.Match(e.node)
}

// Query returns the first descendant (in document order) matching a
// selector, or nil. The element itself is not considered.
func (e *Element) Query(selector string) *Element {
	sel, ok := compile(selector)
	if !ok {
		return nil
	}
	return Wrap(cascadia.Query(e.node, sel))
}

// QueryAll returns all descendants matching a selector, in document order.
func (e *Element) QueryAll(selector string) ElementList {
	sel, ok := compile(selector)
	if !ok {
		return nil
	}
	nodes := cascadia.QueryAll(e.node, sel)
	list := make(ElementList, 0, len(nodes))
	for _, n := range nodes {
		list = append(list, &Element{node: n})
	}
	return list
}

// Ancestor returns the closest inclusive ancestor matching a selector, or nil.
func (e *Element) Ancestor(selector string) *Element {
	sel, ok := compile(selector)
	if !ok {
		return nil
	}
	for n := e.node; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && sel.Match(n) {
			return &Element{node: n}
		}
	}
	return nil
}
