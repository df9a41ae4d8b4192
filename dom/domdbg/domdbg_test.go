package domdbg_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/poptip/dom"
	"github.com/npillmayer/poptip/dom/domdbg"
	"github.com/stretchr/testify/assert"
)

func TestPrintLabels(t *testing.T) {
	div := dom.CreateElement("div")
	div.AddClass("tippy-popper")
	div.SetAttribute("id", "tippy-1")
	span := dom.CreateElement("span")
	span.SetTextContent("Hello")
	div.AppendChild(span)
	out := domdbg.Print(div)
	domdbg.Dump(div, t)
	assert.Contains(t, out, "div.tippy-popper id=tippy-1")
	assert.Contains(t, out, `"Hello"`)
	assert.Equal(t, "<nil>", domdbg.Print(nil))
}

func TestPrintAbbreviatesByRunes(t *testing.T) {
	span := dom.CreateElement("span")
	span.SetTextContent(strings.Repeat("äöü", 9))
	out := domdbg.Print(span)
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, `"`+strings.Repeat("äöü", 7)+`..."`)
}
