package epicycle

import "math"

// Point is a position in plot data coordinates.
type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist returns the Euclidean distance between p and o.
func (p Point) Dist(o Point) float64 {
	return p.Sub(o).Norm()
}

// Frame holds both orbit tips at the end of the most recent update.
type Frame struct {
	Primary   Point
	Secondary Point
}

// Tip returns the primary point on the unit circle at angle t and the
// secondary point on a unit circle centered on the primary, at angle
// t*frequencyRatio.
func Tip(t, frequencyRatio float64) (p1, p2 Point) {
	p1 = Point{X: math.Cos(t), Y: math.Sin(t)}
	a := t * frequencyRatio
	p2 = Point{X: math.Cos(a) + p1.X, Y: math.Sin(a) + p1.Y}
	return p1, p2
}

// ArrowHead returns the two barb endpoints of an arrow from -> to whose
// barbs are length long and open 30 degrees from the shaft.
// A zero-length arrow yields both barbs at to.
func ArrowHead(from, to Point, length float64) (left, right Point) {
	d := to.Sub(from)
	n := d.Norm()
	if n == 0 {
		return to, to
	}
	back := d.Scale(-length / n)
	const half = math.Pi / 6
	sin, cos := math.Sin(half), math.Cos(half)
	left = to.Add(Point{X: back.X*cos - back.Y*sin, Y: back.X*sin + back.Y*cos})
	right = to.Add(Point{X: back.X*cos + back.Y*sin, Y: -back.X*sin + back.Y*cos})
	return left, right
}
