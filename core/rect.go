package core

// Rect is an axis-aligned box in field units, shared by paddles and the ball
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRect creates a rect from its top-left corner and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// SetCenterY moves the rect vertically so its center lies on y
func (r *Rect) SetCenterY(y float64) {
	r.Y = y - r.H/2
}

// SetCenter moves the rect so its center lies on (x, y)
func (r *Rect) SetCenter(x, y float64) {
	r.X = x - r.W/2
	r.Y = y - r.H/2
}

// SetLeft places the left edge at x
func (r *Rect) SetLeft(x float64) {
	r.X = x
}

// SetRight places the right edge at x
func (r *Rect) SetRight(x float64) {
	r.X = x - r.W
}

// Intersects reports strict overlap; rects that only share an edge do not intersect
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// ClampVertical keeps the rect within [minY, maxY], preserving height
func (r *Rect) ClampVertical(minY, maxY float64) {
	if r.Y < minY {
		r.Y = minY
	} else if r.Bottom() > maxY {
		r.Y = maxY - r.H
	}
}
