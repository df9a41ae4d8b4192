package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/poptip/dom/style"
	"github.com/npillmayer/poptip/dom/w3cdom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNotAnElement is returned if a node cannot act as an element.
var ErrNotAnElement = errors.New("node is not an element")

// Element is a DOM element, the building block of popper trees.
// It is a thin wrapper around an *html.Node; two Elements wrapping the same
// node are interchangeable.
type Element struct {
	node *html.Node
}

// Wrap creates an Element for an HTML node. Only element nodes and document
// nodes may be wrapped, for other nodes (or nil) Wrap returns nil.
func Wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if n.Type != html.ElementNode && n.Type != html.DocumentNode {
		return nil
	}
	return &Element{node: n}
}

// CreateElement creates a new, detached element for a tag name.
func CreateElement(tag string) *Element {
	tag = strings.ToLower(tag)
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	return &Element{node: n}
}

// Parse parses an HTML document and returns its document element wrapper.
func Parse(r io.Reader) (*Element, error) {
	doc, err := html.Parse(r)
	if err != nil {
		tracer().Errorf("cannot parse HTML document: %v", err)
		return nil, err
	}
	return Wrap(doc), nil
}

// HTMLNode gets the HTML node this element is wrapping.
func (e *Element) HTMLNode() *html.Node {
	return e.node
}

// TagName returns the lower-case tag name. Document nodes return "#document".
func (e *Element) TagName() string {
	if e.node.Type == html.DocumentNode {
		return "#document"
	}
	return e.node.Data
}

// ID returns the value of the id attribute.
func (e *Element) ID() string {
	id, _ := e.GetAttribute("id")
	return id
}

// --- Attributes ------------------------------------------------------------

// GetAttribute returns the value of an attribute and whether it is present.
// Attribute names are compared case-insensitively, as HTML parsing lower-cases
// them while option names are camel-cased.
func (e *Element) GetAttribute(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets an attribute, overwriting an existing value.
func (e *Element) SetAttribute(name, value string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: strings.ToLower(name), Val: value})
}

// HasAttribute checks for the existence of an attribute.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.GetAttribute(name)
	return ok
}

// RemoveAttribute removes an attribute, if present.
func (e *Element) RemoveAttribute(name string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

// --- Class list ------------------------------------------------------------

// Classes returns the class list of the element.
func (e *Element) Classes() []string {
	cls, _ := e.GetAttribute("class")
	return strings.Fields(cls)
}

// HasClass checks if a class is contained in the class list.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass adds classes to the class list. Duplicates are ignored.
func (e *Element) AddClass(names ...string) {
	cls := e.Classes()
	for _, name := range names {
		for _, n := range strings.Fields(name) {
			if !contains(cls, n) {
				cls = append(cls, n)
			}
		}
	}
	e.SetAttribute("class", strings.Join(cls, " "))
}

// RemoveClass removes classes from the class list.
func (e *Element) RemoveClass(names ...string) {
	cls := e.Classes()
	kept := cls[:0]
	for _, c := range cls {
		if !contains(names, c) {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		e.RemoveAttribute("class")
		return
	}
	e.SetAttribute("class", strings.Join(kept, " "))
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// --- Children --------------------------------------------------------------

// Parent returns the parent element or nil.
func (e *Element) Parent() *Element {
	return Wrap(e.node.Parent)
}

// AppendChild appends an element as the last child. If the child is
// currently part of another tree, it is detached first.
func (e *Element) AppendChild(ch *Element) *Element {
	if ch == nil {
		return e
	}
	if ch.node.Parent != nil {
		ch.node.Parent.RemoveChild(ch.node)
	}
	e.node.AppendChild(ch.node)
	return e
}

// InsertFirst inserts an element as the first child.
func (e *Element) InsertFirst(ch *Element) *Element {
	if ch == nil {
		return e
	}
	if ch.node.Parent != nil {
		ch.node.Parent.RemoveChild(ch.node)
	}
	e.node.InsertBefore(ch.node, e.node.FirstChild)
	return e
}

// RemoveChild removes a child element. Does nothing if ch is not a child of e.
func (e *Element) RemoveChild(ch *Element) {
	if ch == nil || ch.node.Parent != e.node {
		return
	}
	e.node.RemoveChild(ch.node)
}

// Children returns the element children.
func (e *Element) Children() []*Element {
	var children []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, &Element{node: c})
		}
	}
	return children
}

// ClearChildren removes all child nodes, including text.
func (e *Element) ClearChildren() {
	for e.node.FirstChild != nil {
		e.node.RemoveChild(e.node.FirstChild)
	}
}

// SetTextContent replaces all children by a single text node.
func (e *Element) SetTextContent(text string) {
	e.ClearChildren()
	if text != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// TextContent gets the text of the element and all its descendents.
func (e *Element) TextContent() string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(e.node)
	return b.String()
}

// SetInnerHTML replaces all children by the nodes of an HTML fragment,
// parsed in the context of this element.
func (e *Element) SetInnerHTML(fragment string) error {
	if e.node.Type != html.ElementNode {
		return ErrNotAnElement
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), e.node)
	if err != nil {
		tracer().Errorf("cannot parse HTML fragment: %v", err)
		return err
	}
	e.ClearChildren()
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// InnerHTML renders the children of the element.
func (e *Element) InnerHTML() string {
	var b strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			tracer().Errorf("cannot render node: %v", err)
		}
	}
	return b.String()
}

// String renders the element as HTML.
func (e *Element) String() string {
	var b strings.Builder
	if err := html.Render(&b, e.node); err != nil {
		tracer().Errorf("cannot render node: %v", err)
	}
	return b.String()
}

// --- Inline style ----------------------------------------------------------

// Style returns the parsed inline style declarations of the element.
// A malformed style attribute is reported as an error, together with
// empty declarations.
func (e *Element) Style() (*style.Declarations, error) {
	text, _ := e.GetAttribute("style")
	return style.ParseDeclarations(text)
}

// StyleProperty returns the value of an inline style property.
func (e *Element) StyleProperty(key string) string {
	decls, err := e.Style()
	if err != nil {
		return ""
	}
	p, _ := decls.Get(key)
	return p.String()
}

// SetStyleProperty sets an inline style property. An empty value removes
// the property. If the existing style attribute is malformed, it is replaced.
func (e *Element) SetStyleProperty(key, value string) {
	decls, err := e.Style()
	if err != nil {
		tracer().Infof("replacing malformed style attribute of <%s>", e.TagName())
	}
	decls.Set(key, style.Property(value))
	if decls.Len() == 0 {
		e.RemoveAttribute("style")
		return
	}
	e.SetAttribute("style", decls.String())
}

// --- W3C interface ---------------------------------------------------------

// Closest is part of interface w3cdom.Element.
func (e *Element) Closest(selector string) w3cdom.Element {
	if a := e.Ancestor(selector); a != nil {
		return a
	}
	return nil
}

// QuerySelector is part of interface w3cdom.Element.
func (e *Element) QuerySelector(selector string) w3cdom.Element {
	if q := e.Query(selector); q != nil {
		return q
	}
	return nil
}

// OwnerDocument is part of interface w3cdom.Element. It returns the root
// of the tree e lives in, which is e itself for detached elements.
func (e *Element) OwnerDocument() w3cdom.Element {
	return e.Root()
}

// Root returns the top-most ancestor of e.
func (e *Element) Root() *Element {
	n := e.node
	for n.Parent != nil {
		n = n.Parent
	}
	return &Element{node: n}
}

var _ w3cdom.Element = &Element{}

// ElementList is a static list of elements.
type ElementList []*Element

// Length is part of interface w3cdom.ElementList.
func (l ElementList) Length() int {
	return len(l)
}

// Item is part of interface w3cdom.ElementList. Out-of-range indices
// return nil.
func (l ElementList) Item(i int) w3cdom.Element {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

var _ w3cdom.ElementList = ElementList{}
