package style_test

import (
	"testing"

	"github.com/npillmayer/poptip/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDeclarationsParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "poptip.dom")
	defer teardown()
	//
	d, err := style.ParseDeclarations("z-index: 9999; Transform: translateX(-50%) scale(2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 declarations, have %d: %v", d.Len(), d.Properties())
	}
	p, ok := d.Get("transform")
	if !ok || p != "translateX(-50%) scale(2)" {
		t.Errorf("expected transform to be kept verbatim, is %q", p)
	}
}

func TestDeclarationsEmpty(t *testing.T) {
	d, err := style.ParseDeclarations("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Len() != 0 || d.String() != "" {
		t.Errorf("expected empty declarations, have %q", d.String())
	}
}

func TestDeclarationsSetKeepsOrder(t *testing.T) {
	d, _ := style.ParseDeclarations("z-index: 1; max-width: 350px")
	d.Set("z-index", "9999")
	d.Set("transform", "scale(1)")
	if d.String() != "z-index: 9999; max-width: 350px; transform: scale(1)" {
		t.Errorf("unexpected serialization %q", d.String())
	}
	d.Set("max-width", style.NullStyle)
	if d.String() != "z-index: 9999; transform: scale(1)" {
		t.Errorf("expected empty value to remove max-width, have %q", d.String())
	}
}
