// Package export writes the current pose as an SVG file.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/squatlab/internal/biomech"
)

// PoseToSVG renders the joint chain and foot as an SVG document. The
// display frame flips into SVG's top-left-origin convention; the figure is
// fit to the viewBox with uniform scale and a 10% margin.
func PoseToSVG(d biomech.DerivedState, p biomech.Parameters, frame biomech.DisplayFrame, width, height int) string {
	j := d.Joints
	toe := biomech.Point{X: -p.FeetLength, Y: 0}

	points := []biomech.Point{
		frame.Convert(j.Ankle),
		frame.Convert(j.Knee),
		frame.Convert(j.Hip),
		frame.Convert(j.TorsoTop),
		frame.Convert(toe),
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, pt := range points {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	scale := float64(width) / rangeX
	if s := float64(height) / rangeY; s < scale {
		scale = s
	}

	sx := func(pt biomech.Point) float64 { return (pt.X - minX) * scale }
	sy := func(pt biomech.Point) float64 { return (pt.Y - minY) * scale }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	ankle, knee, hip, top, toes := points[0], points[1], points[2], points[3], points[4]

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#00ff00" stroke-width="3" stroke-linecap="round" d="M%.1f,%.1f L%.1f,%.1f L%.1f,%.1f L%.1f,%.1f"/>
`, sx(ankle), sy(ankle), sx(knee), sy(knee), sx(hip), sy(hip), sx(top), sy(top)))

	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#00ff00" stroke-width="3" stroke-linecap="round"/>
`, sx(ankle), sy(ankle), sx(toes), sy(toes)))

	headR := p.TorsoLength * 0.15 * scale
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#00ff00" stroke-width="3"/>
`, sx(top), sy(top)-headR*1.5, headR))

	for _, pt := range []biomech.Point{ankle, knee, hip, top} {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="#00ff00"/>
`, sx(pt), sy(pt)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func Write(path, svg string) error {
	return os.WriteFile(path, []byte(svg), 0644)
}
