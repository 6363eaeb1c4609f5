package game

import (
	"math"
	"time"
)

// PositionAt evaluates the obstacle's movement pattern at the given elapsed
// round time. The result is closed-form: no integration, no per-tick state,
// so every caller computing the same elapsed time gets the same position.
func (o MovingObstacle) PositionAt(elapsed time.Duration) Point {
	t := elapsed.Seconds()
	m := o.Movement

	switch m.Type {
	case MoveLinear:
		if len(m.Path) < 2 {
			return o.BasePosition
		}
		return reciprocate(m.Path[0], m.Path[1], m.Speed, t)

	case MoveOscillate:
		offset := m.Amplitude * math.Sin(t*m.Frequency)
		if m.Direction == "horizontal" {
			return Point{X: o.BasePosition.X + offset, Y: o.BasePosition.Y}
		}
		return Point{X: o.BasePosition.X, Y: o.BasePosition.Y + offset}

	case MoveCircular:
		if m.Radius <= 0 {
			return o.BasePosition
		}
		angle := t * m.Speed / m.Radius
		return Point{
			X: o.BasePosition.X + math.Cos(angle)*m.Radius,
			Y: o.BasePosition.Y + math.Sin(angle)*m.Radius,
		}
	}
	return o.BasePosition
}

// reciprocate ping-pongs between a and b at constant speed.
func reciprocate(a, b Point, speed, t float64) Point {
	length := dist(a, b)
	if length == 0 || speed <= 0 {
		return a
	}
	travelled := math.Mod(speed*t, 2*length)
	if travelled > length {
		travelled = 2*length - travelled
	}
	f := travelled / length
	return Point{X: a.X + (b.X-a.X)*f, Y: a.Y + (b.Y-a.Y)*f}
}
