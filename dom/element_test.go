package dom_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/poptip/dom"
	"github.com/npillmayer/poptip/dom/domdbg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<button id="btn" data-tippy-animateFill="false" data-tippy-content="  Hi  ">Hover</button>
<div class="tippy-popper" x-placement="bottom-start">
  <div class="tippy-tooltip"><div class="tippy-arrow" style="transform: scale(2)"></div></div>
</div>
</body></html>`

func parsePage(t *testing.T) *dom.Element {
	doc, err := dom.Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestAttributesCaseInsensitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "poptip.dom")
	defer teardown()
	//
	doc := parsePage(t)
	btn := doc.Query("#btn")
	require.NotNil(t, btn)
	v, ok := btn.GetAttribute("data-tippy-animateFill")
	assert.True(t, ok)
	assert.Equal(t, "false", v)
	btn.SetAttribute("data-tippy-Theme", "light")
	assert.True(t, btn.HasAttribute("data-tippy-theme"))
	btn.RemoveAttribute("DATA-TIPPY-THEME")
	assert.False(t, btn.HasAttribute("data-tippy-theme"))
}

func TestClassList(t *testing.T) {
	e := dom.CreateElement("DIV")
	e.AddClass("tippy-tooltip", "dark-theme light-theme")
	e.AddClass("tippy-tooltip")
	assert.Equal(t, []string{"tippy-tooltip", "dark-theme", "light-theme"}, e.Classes())
	e.RemoveClass("dark-theme")
	assert.True(t, e.HasClass("light-theme"))
	assert.False(t, e.HasClass("dark-theme"))
	e.RemoveClass("tippy-tooltip", "light-theme")
	assert.False(t, e.HasAttribute("class"))
	assert.Equal(t, "div", e.TagName())
}

func TestQueryAndClosest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "poptip.dom")
	defer teardown()
	//
	doc := parsePage(t)
	arrow := doc.Query(".tippy-arrow")
	require.NotNil(t, arrow)
	popper := arrow.Ancestor(".tippy-popper")
	require.NotNil(t, popper)
	p, _ := popper.GetAttribute("x-placement")
	assert.Equal(t, "bottom-start", p)
	assert.Nil(t, arrow.Closest(".nothing-here"))
	assert.NotNil(t, arrow.Closest(".tippy-arrow"), "closest is inclusive")
	assert.Nil(t, arrow.Query(".tippy-arrow"), "query excludes the element itself")
	assert.Equal(t, 3, doc.QueryAll("div").Length())
	assert.Nil(t, doc.Query("[[invalid"))
	assert.Equal(t, "#document", arrow.OwnerDocument().TagName())
}

func TestInlineStyle(t *testing.T) {
	doc := parsePage(t)
	arrow := doc.Query(".tippy-arrow")
	assert.Equal(t, "scale(2)", arrow.StyleProperty("transform"))
	arrow.SetStyleProperty("transform", "translateY(-5px) scale(2)")
	assert.Equal(t, "translateY(-5px) scale(2)", arrow.StyleProperty("transform"))
	arrow.SetStyleProperty("transform", "")
	assert.False(t, arrow.HasAttribute("style"))
}

func TestInnerHTMLAndText(t *testing.T) {
	e := dom.CreateElement("div")
	require.NoError(t, e.SetInnerHTML("<strong>Bold</strong> move"))
	assert.Equal(t, "Bold move", e.TextContent())
	assert.Len(t, e.Children(), 1)
	e.SetTextContent("<b>not html</b>")
	assert.Empty(t, e.Children())
	assert.Equal(t, `<div>&lt;b&gt;not html&lt;/b&gt;</div>`, e.String())
}

func TestAppendChildDetaches(t *testing.T) {
	a := dom.CreateElement("div")
	b := dom.CreateElement("div")
	c := dom.CreateElement("span")
	a.AppendChild(c)
	b.AppendChild(c)
	assert.Empty(t, a.Children())
	assert.Len(t, b.Children(), 1)
	domdbg.Dump(b, t)
	assert.Contains(t, domdbg.Print(b), "span")
}
