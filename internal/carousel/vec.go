package carousel

// Vec2 is a 2D point or delta in either screen or carousel-local space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}
