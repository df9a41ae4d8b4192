/*
Package w3cdom defines an interface type for the DOM capabilities poptip consumes.

The popper utilities never walk or mutate a document on their own. Everything they
need from a DOM is listed in interface Element: reading and writing attributes,
locating an ancestor or a descendant by selector, and reading/writing single inline
style properties. Package dom offers a default implementation on top of
golang.org/x/net/html.

See also https://www.w3schools.com/XML/dom_intro.asp

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

// Element represents a W3C-type Element, reduced to the operations
// the popper utilities rely on.
type Element interface {
	TagName() string                      // lower-case tag name, e.g. "div"
	ID() string                           // value of the id attribute, if any
	GetAttribute(string) (string, bool)   // attribute value and existence; names are case-insensitive
	SetAttribute(string, string)          // set or overwrite an attribute
	HasAttribute(string) bool             // check for existence of an attribute
	RemoveAttribute(string)               // remove an attribute, if present
	Closest(string) Element               // nearest inclusive ancestor matching a selector, or nil
	QuerySelector(string) Element         // first descendant matching a selector, or nil
	OwnerDocument() Element               // root of the tree the element lives in
	StyleProperty(string) string          // inline style property value
	SetStyleProperty(string, string)      // set an inline style property
}

// ElementList represents W3C-type NodeList, restricted to elements.
type ElementList interface {
	Length() int
	Item(int) Element
}
