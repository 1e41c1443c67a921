package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/squatlab/internal/biomech"
)

func TestCanvasSetClipped(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(3, 2, '#')
	if c.At(3, 2) != '#' {
		t.Error("set cell not readable")
	}

	// out-of-range writes are dropped, not panics
	c.Set(-1, 0, '#')
	c.Set(10, 0, '#')
	c.Set(0, 5, '#')
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Line(0, 0, 9, 9, '*')

	for i := 0; i < 10; i++ {
		if c.At(i, i) != '*' {
			t.Errorf("expected '*' at (%d,%d)", i, i)
		}
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Line(0, 0, 3, 3, 'x')
	c.Clear()

	if strings.TrimSpace(c.String()) != "" {
		t.Error("clear left marks on the canvas")
	}
}

func TestDrawFigureMarks(t *testing.T) {
	p := biomech.DefaultParameters()
	d := biomech.Evaluate(p)
	frame := biomech.DisplayFrame{Offset: p.Stature() + 0.25}

	c := NewCanvas(64, 26)
	DrawFigure(c, d, p, frame, 28)

	out := c.String()
	for _, want := range []string{"+", "o", "O", "=", "|"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered figure missing %q", want)
		}
	}
}
