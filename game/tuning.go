package game

const (
	WorldWidth     = 2000.0
	WorldHeight    = 1500.0
	MinSeparation  = 0.33  // minimum vertical start/finish gap as fraction of WorldHeight
	EdgeMargin     = 100.0 // finish clamp distance from the world edges
	StartClearance = 150.0 // no obstacle within this radius of start or finish
	StaticPadding  = 100.0 // padded spacing between static obstacle boxes
	MovingPadding  = 120.0 // spacing between moving obstacles and statics
	StaticAttempts = 50    // rejection-sampling budget per static obstacle
	MovingAttempts = 30    // rejection-sampling budget per moving obstacle
	CorridorInset  = 100.0 // static placement inset into the start/finish corridor
	MovingInset    = 150.0

	PassageMinWidth  = 50.0
	PassageMinHeight = 100.0

	SlalomSweep = 150.0 // half-width of the slalom-flags reciprocation path

	BasePoints = 100 // round score before the elapsed-seconds deduction
)

// Per-difficulty tables. Obstacle counts get a small random bump on top.
var (
	staticCounts  = map[Difficulty]int{DifficultyEasy: 3, DifficultyMedium: 5, DifficultyHard: 8}
	movingCounts  = map[Difficulty]int{DifficultyEasy: 1, DifficultyMedium: 2, DifficultyHard: 3}
	windCounts    = map[Difficulty]int{DifficultyEasy: 2, DifficultyMedium: 3, DifficultyHard: 5}
	baseSpeeds    = map[Difficulty]float64{DifficultyEasy: 50, DifficultyMedium: 100, DifficultyHard: 150}
	windStrengths = map[Difficulty]float64{DifficultyEasy: 0.35, DifficultyMedium: 0.6, DifficultyHard: 1.0}
)

var obstacleSizes = []Size{
	{Width: 60, Height: 80},
	{Width: 80, Height: 100},
	{Width: 100, Height: 120},
	{Width: 120, Height: 150},
}

var staticTypes = []string{"mountain-peak", "rock-formation", "tree", "structure"}

var movingTypes = []string{"ski-lift", "rising-peak", "platform", "island", "slalom-flags", "chalet"}
