package biomech

import (
	"math"
	"testing"
)

func TestDisplayFrameConvert(t *testing.T) {
	f := DisplayFrame{Offset: 1.6}

	p := Point{X: -0.29, Y: 0.29}
	q := f.Convert(p)
	if q.X != p.X {
		t.Errorf("x must pass through, got %f", q.X)
	}
	if math.Abs(q.Y-1.31) > 1e-12 {
		t.Errorf("expected display y 1.31, got %f", q.Y)
	}
}

func TestDisplayFrameInvolution(t *testing.T) {
	f := DisplayFrame{Offset: 1.6}
	points := []Point{{0, 0}, {-0.29, 0.29}, {0.19, 0.68}, {-0.12, 1.39}}

	for _, p := range points {
		q := f.Convert(f.Convert(p))
		if math.Abs(q.X-p.X) > 1e-12 || math.Abs(q.Y-p.Y) > 1e-12 {
			t.Errorf("double conversion of %+v gave %+v", p, q)
		}
	}
}
