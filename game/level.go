package game

// Authoritative level model. A Level is generated once at round start and
// replaced wholesale at the next round; nothing mutates it in place.

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is an axis-aligned box in world coordinates.
type Rect struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

type StaticObstacle struct {
	ID       string `json:"id"`
	Type     string `json:"type"`  // mountain-peak, rock-formation, tree, structure
	Position Point  `json:"position"`
	Bounds   Size   `json:"bounds"`
	Shape    string `json:"shape"` // rectangle or circle
}

// Bounds of the obstacle centered on its position.
func (o StaticObstacle) Box() Rect {
	return boxAround(o.Position, o.Bounds)
}

type MovementType string

const (
	MoveLinear    MovementType = "linear"
	MoveOscillate MovementType = "oscillate"
	MoveCircular  MovementType = "circular"
)

// MovementPattern parameterizes a closed-form trajectory. Position at any
// instant is a function of elapsed round time only (see PositionAt).
type MovementPattern struct {
	Type      MovementType `json:"type"`
	Speed     float64      `json:"speed"`
	Amplitude float64      `json:"amplitude,omitempty"`
	Frequency float64      `json:"frequency,omitempty"`
	Radius    float64      `json:"radius,omitempty"`
	Direction string       `json:"direction"` // horizontal, vertical, diagonal
	Path      []Point      `json:"path,omitempty"`
}

type MovingObstacle struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"` // ski-lift, rising-peak, platform, island, slalom-flags, chalet
	BasePosition Point           `json:"basePosition"`
	Bounds       Size            `json:"bounds"`
	Movement     MovementPattern `json:"movement"`
}

func (o MovingObstacle) Box() Rect {
	return boxAround(o.BasePosition, o.Bounds)
}

type WindZone struct {
	ID        string  `json:"id"`
	Position  Point   `json:"position"`
	Bounds    Size    `json:"bounds"`
	Direction string  `json:"direction"` // left or right
	Strength  float64 `json:"strength"`
	Shape     string  `json:"shape"` // vertical-column or horizontal-band
}

// NarrowPassage is a derived annotation: a horizontal gap between two
// adjacent static obstacles wide and tall enough to ski through.
type NarrowPassage struct {
	ID       string  `json:"id"`
	Position Point   `json:"position"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Bounds   Rect    `json:"bounds"`
}

type Level struct {
	ID              string           `json:"id"`
	Start           Point            `json:"start"`
	Finish          Point            `json:"finish"`
	StaticObstacles []StaticObstacle `json:"staticObstacles"`
	MovingObstacles []MovingObstacle `json:"movingObstacles"`
	WindZones       []WindZone       `json:"windZones"`
	NarrowPassages  []NarrowPassage  `json:"narrowPassages"`
	Difficulty      Difficulty       `json:"difficulty"`
}

func boxAround(center Point, size Size) Rect {
	return Rect{
		Left:   center.X - size.Width/2,
		Right:  center.X + size.Width/2,
		Top:    center.Y - size.Height/2,
		Bottom: center.Y + size.Height/2,
	}
}
