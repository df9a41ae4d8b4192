package popper_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/poptip/config"
	"github.com/npillmayer/poptip/css"
	"github.com/npillmayer/poptip/dom"
	"github.com/npillmayer/poptip/dom/domdbg"
	"github.com/npillmayer/poptip/popper"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluated(t *testing.T, props config.Props) config.Config {
	cfg, err := config.Evaluate(nil, config.Defaults().With(props))
	require.NoError(t, err)
	return cfg
}

func TestBuildDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "poptip.popper")
	defer teardown()
	//
	p, err := popper.Build(1, evaluated(t, config.Props{"content": "Hello"}))
	require.NoError(t, err)
	domdbg.Dump(p, t)
	assert.Equal(t, "tippy-1", p.ID())
	assert.True(t, p.Matches(css.PopperSelector))
	role, _ := p.GetAttribute("role")
	assert.Equal(t, "tooltip", role)
	assert.Equal(t, "9999", p.StyleProperty("z-index"))
	parts := popper.Children(p)
	require.NotNil(t, parts.Tooltip)
	assert.True(t, parts.Tooltip.HasClass("dark-theme"))
	assert.Nil(t, parts.Arrow)
	require.NotNil(t, parts.Backdrop, "animateFill is on by default")
	assert.Equal(t, "Hello", parts.Content.TextContent())
	state, _ := parts.Tooltip.GetAttribute("data-state")
	assert.Equal(t, "hidden", state)
	size, _ := parts.Tooltip.GetAttribute("data-size")
	assert.Equal(t, "regular", size)
}

func TestBuildWithArrow(t *testing.T) {
	p, err := popper.Build(2, evaluated(t, config.Props{
		"arrow": true, "theme": "light bordered", "maxWidth": 350.0, "interactive": true,
	}))
	require.NoError(t, err)
	parts := popper.Children(p)
	require.NotNil(t, parts.Arrow)
	assert.True(t, parts.Arrow.HasClass(popper.ArrowClass))
	assert.Nil(t, parts.Backdrop, "arrow and animateFill are exclusive")
	assert.True(t, parts.Tooltip.HasClass("light-theme"))
	assert.True(t, parts.Tooltip.HasClass("bordered-theme"))
	assert.True(t, parts.Tooltip.HasAttribute("data-interactive"))
	assert.Equal(t, "350px", parts.Tooltip.StyleProperty("max-width"))
	children := parts.Tooltip.Children()
	require.Len(t, children, 2)
	assert.Equal(t, parts.Arrow.HTMLNode(), children[0].HTMLNode(), "arrow precedes content")
}

func TestBuildRoundArrow(t *testing.T) {
	p, err := popper.Build(3, evaluated(t, config.Props{"arrow": true, "arrowType": "round"}))
	require.NoError(t, err)
	arrow := popper.Children(p).Arrow
	require.NotNil(t, arrow)
	assert.True(t, arrow.HasClass(popper.RoundArrowClass))
	assert.Contains(t, arrow.InnerHTML(), "<svg")
}

func TestContentKinds(t *testing.T) {
	p, err := popper.Build(4, evaluated(t, config.Props{"content": "<b>bold</b>"}))
	require.NoError(t, err)
	content := popper.Children(p).Content
	assert.Len(t, content.Children(), 1, "allowHTML parses markup")

	p, err = popper.Build(5, evaluated(t, config.Props{"content": "<b>bold</b>", "allowHTML": false}))
	require.NoError(t, err)
	content = popper.Children(p).Content
	assert.Empty(t, content.Children())
	assert.Equal(t, "<b>bold</b>", content.TextContent())

	el := dom.CreateElement("span")
	el.SetTextContent("from element")
	p, err = popper.Build(6, evaluated(t, config.Props{"content": el}))
	require.NoError(t, err)
	assert.Equal(t, "from element", popper.Children(p).Content.TextContent())

	_, err = popper.Build(7, evaluated(t, config.Props{"content": struct{}{}}))
	assert.ErrorIs(t, err, popper.ErrUnsupportedContent)
}

func TestVisibilityState(t *testing.T) {
	p, err := popper.Build(8, evaluated(t, nil))
	require.NoError(t, err)
	parts := popper.Children(p)
	popper.SetVisibilityState(popper.Visible, parts.Tooltip, parts.Backdrop, parts.Content, parts.Arrow)
	for _, e := range []*dom.Element{parts.Tooltip, parts.Backdrop, parts.Content} {
		s, _ := e.GetAttribute("data-state")
		assert.Equal(t, "visible", s)
	}
}

func TestUpdate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "poptip.popper")
	defer teardown()
	//
	prev := evaluated(t, config.Props{"content": "one"})
	p, err := popper.Build(9, prev)
	require.NoError(t, err)
	next := evaluated(t, config.Props{"content": "two", "arrow": true, "theme": "light"})
	require.NoError(t, popper.Update(p, prev, next))
	parts := popper.Children(p)
	assert.NotNil(t, parts.Arrow)
	assert.Nil(t, parts.Backdrop)
	assert.False(t, parts.Tooltip.HasClass("dark-theme"))
	assert.True(t, parts.Tooltip.HasClass("light-theme"))
	assert.Equal(t, "two", parts.Content.TextContent())
	assert.False(t, parts.Tooltip.HasAttribute("data-animatefill"))

	back := evaluated(t, config.Props{"content": "three"})
	require.NoError(t, popper.Update(p, next, back))
	parts = popper.Children(p)
	assert.Nil(t, parts.Arrow)
	require.NotNil(t, parts.Backdrop)
	children := parts.Tooltip.Children()
	assert.True(t, children[len(children)-1].HasClass(popper.ContentClass), "content stays last")
	domdbg.Dump(p, t)
	assert.True(t, strings.Contains(domdbg.Print(p), "tippy-backdrop"))

	assert.ErrorIs(t, popper.Update(dom.CreateElement("div"), prev, next), popper.ErrNotAPopper)
}

func TestUpdateRejectsContentFirst(t *testing.T) {
	prev := evaluated(t, config.Props{"content": "one"})
	p, err := popper.Build(10, prev)
	require.NoError(t, err)
	before := domdbg.Print(p)
	next := evaluated(t, config.Props{"content": struct{}{}, "arrow": true, "theme": "light"})
	assert.ErrorIs(t, popper.Update(p, prev, next), popper.ErrUnsupportedContent)
	assert.Equal(t, before, domdbg.Print(p), "popper still reflects the previous configuration")
}
