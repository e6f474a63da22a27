package export

import (
	"strings"
	"testing"

	"github.com/san-kum/curvelab/internal/geom"
	"github.com/san-kum/curvelab/internal/rig"
)

func sceneFromRig(r *rig.Rig) Scene {
	p0, p1, p2, p3 := r.Points()
	w, h := r.Size()
	return Scene{
		Width:    w,
		Height:   h,
		Path:     r.Path(0.01),
		Tangents: r.Tangents(15, 30),
		Handles:  []geom.Vec{p1, p2},
		Anchors:  []geom.Vec{p0, p3},
	}
}

func TestCurveProducesDocument(t *testing.T) {
	svg := Curve(sceneFromRig(rig.New(1000, 600)))

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(svg, `viewBox="0 0 1000 600"`) {
		t.Error("missing viewBox")
	}
	if !strings.Contains(svg, `<path fill="none"`) {
		t.Error("missing curve path element")
	}
	if got := strings.Count(svg, "<line "); got != 16 {
		t.Errorf("expected 16 tangent lines, got %d", got)
	}
	if got := strings.Count(svg, "<circle "); got != 4 {
		t.Errorf("expected 4 markers (2 anchors + 2 handles), got %d", got)
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated document")
	}
}

func TestCurveEmptyScene(t *testing.T) {
	if svg := Curve(Scene{}); svg != "" {
		t.Error("expected empty output for empty scene")
	}
}

func TestCurveWithPalette(t *testing.T) {
	p := Palette{
		Background: "#ffffff",
		Curve:      "#112233",
		Tangent:    "#445566",
		Handle:     "#778899",
		Anchor:     "#aabbcc",
	}
	svg := CurveWithPalette(sceneFromRig(rig.New(1000, 600)), p)

	for _, color := range []string{"#ffffff", "#112233", "#445566", "#778899", "#aabbcc"} {
		if !strings.Contains(svg, color) {
			t.Errorf("palette color %s missing from output", color)
		}
	}
}

func TestDots(t *testing.T) {
	grid := [][]rune{
		{0x2800 | 0x01, 0x2800},
		{0x2800, 0x2800 | 0x80},
	}

	svg := Dots(grid, 4)

	if got := strings.Count(svg, "<circle "); got != 2 {
		t.Errorf("expected 2 dots, got %d", got)
	}
	if Dots(nil, 4) != "" {
		t.Error("expected empty output for nil grid")
	}
}
