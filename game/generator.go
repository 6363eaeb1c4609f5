package game

import (
	"math"
	"math/rand"
	"sort"

	"github.com/google/uuid"
)

// Generate builds a complete playable level for the given difficulty. The
// random source is injected so placement is reproducible under a fixed seed.
//
// Generation never fails: every rejection-sampling step has a hard attempt
// cap and gives up on the individual obstacle (leaving a gap) instead of
// looping. An unknown difficulty falls back to medium.
func Generate(rng *rand.Rand, difficulty Difficulty) *Level {
	if !difficulty.Valid() {
		difficulty = DifficultyMedium
	}

	start, finish := placeEndpoints(rng)

	statics := generateStatics(rng, start, finish, difficulty)
	passages := derivePassages(statics)
	moving := generateMoving(rng, start, finish, statics, difficulty)
	wind := generateWindZones(rng, start, finish, difficulty)

	return &Level{
		ID:              uuid.NewString(),
		Start:           start,
		Finish:          finish,
		StaticObstacles: statics,
		MovingObstacles: moving,
		WindZones:       wind,
		NarrowPassages:  passages,
		Difficulty:      difficulty,
	}
}

// placeEndpoints picks start and finish with at least MinSeparation of the
// world height between them and a bounded horizontal offset, clamped so the
// finish stays inside the world.
func placeEndpoints(rng *rand.Rand) (Point, Point) {
	startX := randBetween(rng, WorldWidth*0.2, WorldWidth*0.8)
	startY := randBetween(rng, 50, WorldHeight*0.3)

	minFinishY := startY + WorldHeight*MinSeparation
	finishY := randBetween(rng, minFinishY, WorldHeight*0.9)

	dir := 1.0
	if rng.Float64() < 0.5 {
		dir = -1.0
	}
	offset := randBetween(rng, WorldWidth*0.1, WorldWidth*0.4)
	finishX := clamp(startX+dir*offset, EdgeMargin, WorldWidth-EdgeMargin)

	return Point{X: startX, Y: startY}, Point{X: finishX, Y: finishY}
}

func generateStatics(rng *rand.Rand, start, finish Point, difficulty Difficulty) []StaticObstacle {
	count := staticCounts[difficulty] + rng.Intn(3)
	obstacles := make([]StaticObstacle, 0, count)

	minX := math.Min(start.X, finish.X) + CorridorInset
	maxX := math.Max(start.X, finish.X) - CorridorInset
	minY := math.Min(start.Y, finish.Y) + CorridorInset
	maxY := math.Max(start.Y, finish.Y) - CorridorInset

	for i := 0; i < count; i++ {
		placed := false
		var pos Point
		var size Size
		for attempt := 0; attempt < StaticAttempts; attempt++ {
			pos = Point{X: randBetween(rng, minX, maxX), Y: randBetween(rng, minY, maxY)}
			size = obstacleSizes[rng.Intn(len(obstacleSizes))]
			if overlapsAny(pos, size, obstacles, StaticPadding) {
				continue
			}
			if dist(pos, start) < StartClearance || dist(pos, finish) < StartClearance {
				continue
			}
			placed = true
			break
		}
		if !placed {
			continue // budget exhausted, leave a gap
		}
		shape := "rectangle"
		if rng.Float64() < 0.5 {
			shape = "circle"
		}
		obstacles = append(obstacles, StaticObstacle{
			ID:       uuid.NewString(),
			Type:     staticTypes[rng.Intn(len(staticTypes))],
			Position: pos,
			Bounds:   size,
			Shape:    shape,
		})
	}
	return obstacles
}

// derivePassages scans statics left to right and records the gap between
// each adjacent pair when it is wide and tall enough to ski through. No
// separate placement pass: the skill gates fall out of the layout.
func derivePassages(statics []StaticObstacle) []NarrowPassage {
	if len(statics) < 2 {
		return nil
	}

	sorted := make([]StaticObstacle, len(statics))
	copy(sorted, statics)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position.X < sorted[j].Position.X })

	var passages []NarrowPassage
	for i := 0; i < len(sorted)-1; i++ {
		left := sorted[i].Box()
		right := sorted[i+1].Box()

		width := right.Left - left.Right
		if width < PassageMinWidth {
			continue
		}
		top := math.Max(left.Top, right.Top)
		bottom := math.Min(left.Bottom, right.Bottom)
		height := bottom - top
		if height < PassageMinHeight {
			continue
		}
		passages = append(passages, NarrowPassage{
			ID:       uuid.NewString(),
			Position: Point{X: (left.Right + right.Left) / 2, Y: (top + bottom) / 2},
			Width:    width,
			Height:   height,
			Bounds:   Rect{Left: left.Right, Right: right.Left, Top: top, Bottom: bottom},
		})
	}
	return passages
}

func generateMoving(rng *rand.Rand, start, finish Point, statics []StaticObstacle, difficulty Difficulty) []MovingObstacle {
	count := movingCounts[difficulty] + rng.Intn(2)
	obstacles := make([]MovingObstacle, 0, count)
	speed := baseSpeeds[difficulty]

	minX := math.Min(start.X, finish.X) + MovingInset
	maxX := math.Max(start.X, finish.X) - MovingInset
	minY := math.Min(start.Y, finish.Y) + MovingInset
	maxY := math.Max(start.Y, finish.Y) - MovingInset

	for i := 0; i < count; i++ {
		typ := movingTypes[rng.Intn(len(movingTypes))]
		bounds := movingBounds(typ)

		placed := false
		var base Point
		for attempt := 0; attempt < MovingAttempts; attempt++ {
			base = Point{X: randBetween(rng, minX, maxX), Y: randBetween(rng, minY, maxY)}
			if !overlapsAny(base, bounds, statics, MovingPadding) {
				placed = true
				break
			}
		}
		if !placed {
			continue
		}

		obstacles = append(obstacles, MovingObstacle{
			ID:           uuid.NewString(),
			Type:         typ,
			BasePosition: base,
			Bounds:       bounds,
			Movement:     movementFor(rng, typ, base, speed),
		})
	}
	return obstacles
}

func movingBounds(typ string) Size {
	switch typ {
	case "ski-lift":
		return Size{Width: 40, Height: 40}
	case "rising-peak":
		return Size{Width: 80, Height: 100}
	case "platform":
		return Size{Width: 100, Height: 20}
	case "island":
		return Size{Width: 120, Height: 80}
	case "slalom-flags":
		return Size{Width: 200, Height: 40}
	default: // chalet
		return Size{Width: 150, Height: 120}
	}
}

func movementFor(rng *rand.Rand, typ string, base Point, speed float64) MovementPattern {
	switch typ {
	case "ski-lift":
		length := randBetween(rng, 200, 400)
		angle := rng.Float64() * 2 * math.Pi
		return MovementPattern{
			Type:      MoveLinear,
			Speed:     speed,
			Direction: "diagonal",
			Path: []Point{
				base,
				{X: base.X + math.Cos(angle)*length, Y: base.Y + math.Sin(angle)*length},
			},
		}
	case "rising-peak":
		return MovementPattern{
			Type:      MoveOscillate,
			Speed:     speed * 0.5,
			Amplitude: randBetween(rng, 50, 200),
			Frequency: randBetween(rng, 0.5, 2.0),
			Direction: "vertical",
		}
	case "platform":
		return MovementPattern{
			Type:      MoveOscillate,
			Speed:     speed * 0.6,
			Amplitude: randBetween(rng, 100, 250),
			Frequency: randBetween(rng, 0.3, 1.5),
			Direction: "vertical",
		}
	case "island":
		return MovementPattern{
			Type:      MoveCircular,
			Speed:     speed * 0.4,
			Radius:    randBetween(rng, 80, 150),
			Direction: "horizontal",
		}
	case "slalom-flags":
		return MovementPattern{
			Type:      MoveLinear,
			Speed:     speed * 0.3,
			Direction: "horizontal",
			Path: []Point{
				{X: base.X - SlalomSweep, Y: base.Y},
				{X: base.X + SlalomSweep, Y: base.Y},
			},
		}
	default: // chalet
		return MovementPattern{
			Type:      MoveCircular,
			Speed:     speed * 0.5,
			Radius:    randBetween(rng, 100, 200),
			Direction: "horizontal",
		}
	}
}

// generateWindZones places hazard regions as tall columns or wide bands.
// Wind zones are intentionally not checked against obstacles or each other:
// overlapping hazards are allowed.
func generateWindZones(rng *rand.Rand, start, finish Point, difficulty Difficulty) []WindZone {
	count := windCounts[difficulty]
	zones := make([]WindZone, 0, count)

	minX := math.Min(start.X, finish.X)
	maxX := math.Max(start.X, finish.X)
	minY := math.Min(start.Y, finish.Y)
	maxY := math.Max(start.Y, finish.Y)

	strength := windStrengths[difficulty]

	for i := 0; i < count; i++ {
		var pos Point
		var bounds Size
		shape := "horizontal-band"
		if rng.Float64() < 0.5 {
			shape = "vertical-column"
		}

		if shape == "vertical-column" {
			width := randBetween(rng, 100, 300)
			pos = Point{X: randBetween(rng, minX+width/2, maxX-width/2), Y: (minY + maxY) / 2}
			bounds = Size{Width: width, Height: maxY - minY}
		} else {
			height := randBetween(rng, 100, 200)
			pos = Point{X: (minX + maxX) / 2, Y: randBetween(rng, minY+height/2, maxY-height/2)}
			bounds = Size{Width: maxX - minX, Height: height}
		}

		direction := "right"
		if rng.Float64() < 0.5 {
			direction = "left"
		}
		zones = append(zones, WindZone{
			ID:        uuid.NewString(),
			Position:  pos,
			Bounds:    bounds,
			Direction: direction,
			Strength:  strength + (rng.Float64()-0.5)*0.5,
			Shape:     shape,
		})
	}
	return zones
}

func randBetween(rng *rand.Rand, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// overlapsAny reports whether a candidate box at pos would land within
// padding of any already placed static obstacle.
func overlapsAny(pos Point, size Size, obstacles []StaticObstacle, padding float64) bool {
	candidate := boxAround(pos, size)
	for _, obs := range obstacles {
		box := obs.Box()
		if candidate.Right >= box.Left-padding &&
			candidate.Left <= box.Right+padding &&
			candidate.Bottom >= box.Top-padding &&
			candidate.Top <= box.Bottom+padding {
			return true
		}
	}
	return false
}
