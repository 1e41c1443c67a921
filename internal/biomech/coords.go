package biomech

// Point is a 2-D position in meters, y increasing upward from the ankle.
type Point struct {
	X, Y float64
}

func (p Point) add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// DisplayFrame converts engine coordinates to a top-left-origin display
// convention: x passes through, y is reflected about Offset. The transform
// is its own inverse for a fixed Offset.
type DisplayFrame struct {
	Offset float64
}

func (f DisplayFrame) Convert(p Point) Point {
	return Point{p.X, f.Offset - p.Y}
}
