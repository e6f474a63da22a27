package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/curvelab/internal/curve"
	"github.com/san-kum/curvelab/internal/geom"
)

// Scene is one frame of curve geometry in world coordinates.
type Scene struct {
	Width, Height float64
	Path          []geom.Vec
	Tangents      []curve.TangentSample
	Handles       []geom.Vec
	Anchors       []geom.Vec
}

// Palette holds the stroke/fill colors for an SVG render.
type Palette struct {
	Background string
	Curve      string
	Tangent    string
	Handle     string
	Anchor     string
}

// DefaultPalette matches the neon terminal theme.
func DefaultPalette() Palette {
	return Palette{
		Background: "#0a0a0a",
		Curve:      "#00ffff",
		Tangent:    "#ff00ff",
		Handle:     "#ffff00",
		Anchor:     "#666666",
	}
}

// Curve renders a scene as an SVG document with the default palette.
func Curve(s Scene) string {
	return CurveWithPalette(s, DefaultPalette())
}

// CurveWithPalette renders the path, tangent overlays, and point
// markers as an SVG document.
func CurveWithPalette(s Scene, p Palette) string {
	if len(s.Path) < 2 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.Width, s.Height, s.Width, s.Height, p.Background))

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="2" d="M`, p.Curve))
	for i, pt := range s.Path {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", pt.X, pt.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", pt.X, pt.Y))
		}
	}
	sb.WriteString("\"/>\n")

	if len(s.Tangents) > 0 {
		sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="1">`+"\n", p.Tangent))
		for _, t := range s.Tangents {
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
				t.Start.X, t.Start.Y, t.End.X, t.End.Y))
		}
		sb.WriteString("</g>\n")
	}

	if len(s.Anchors) > 0 {
		sb.WriteString(fmt.Sprintf(`<g fill="%s">`+"\n", p.Anchor))
		for _, a := range s.Anchors {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4"/>`+"\n", a.X, a.Y))
		}
		sb.WriteString("</g>\n")
	}

	if len(s.Handles) > 0 {
		sb.WriteString(fmt.Sprintf(`<g fill="%s">`+"\n", p.Handle))
		for _, h := range s.Handles {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="6"/>`+"\n", h.X, h.Y))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// Dots converts a Braille character grid (as produced by the terminal
// canvas) to an SVG of filled dots, for pixel-faithful snapshots.
func Dots(grid [][]rune, scale float64) string {
	if len(grid) == 0 {
		return ""
	}

	height := len(grid)
	width := len(grid[0])

	w := float64(width) * scale * 2
	h := float64(height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ffff">
`, w, h, w, h))

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			r := grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>`+"\n", cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
