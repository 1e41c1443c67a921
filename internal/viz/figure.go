package viz

import (
	"math"

	"github.com/san-kum/squatlab/internal/biomech"
)

// DrawFigure renders the joint chain onto the canvas. Points go through
// the display frame first, then scale maps meters to columns; rows use
// half the scale since terminal cells are roughly twice as tall as wide.
func DrawFigure(c *Canvas, d biomech.DerivedState, p biomech.Parameters, frame biomech.DisplayFrame, scale float64) {
	cx := c.Width / 2
	cell := func(pt biomech.Point) (int, int) {
		q := frame.Convert(pt)
		return cx + int(math.Round(q.X*scale)), int(math.Round(q.Y * scale / 2))
	}

	j := d.Joints
	ax, ay := cell(j.Ankle)
	kx, ky := cell(j.Knee)
	hx, hy := cell(j.Hip)
	tx, ty := cell(j.TorsoTop)
	// toes point away from the torso top's balance side
	ox, oy := cell(biomech.Point{X: -p.FeetLength, Y: 0})

	for x := 0; x < c.Width; x++ {
		c.Set(x, ay+1, '=')
	}

	c.Line(ax, ay, ox, oy, '_')
	c.Line(ax, ay, kx, ky, '|')
	c.Line(kx, ky, hx, hy, '|')
	c.Line(hx, hy, tx, ty, '|')

	c.Set(ax, ay, '+')
	c.Set(kx, ky, 'o')
	c.Set(hx, hy, 'o')
	c.Set(tx, ty, 'o')
	c.Set(tx, ty-1, 'O')
}
