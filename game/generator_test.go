package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allDifficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func TestGenerateEndpointSeparation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		lvl := Generate(rng, DifficultyMedium)
		sep := lvl.Finish.Y - lvl.Start.Y
		assert.GreaterOrEqual(t, sep, WorldHeight*MinSeparation,
			"iteration %d: vertical separation too small", i)
		assert.GreaterOrEqual(t, lvl.Finish.X, EdgeMargin)
		assert.LessOrEqual(t, lvl.Finish.X, WorldWidth-EdgeMargin)
	}
}

func TestGenerateStaticObstaclesKeepPaddedSpacing(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		for _, d := range allDifficulties {
			lvl := Generate(rng, d)
			for j, obs := range lvl.StaticObstacles {
				others := append([]StaticObstacle{}, lvl.StaticObstacles[:j]...)
				others = append(others, lvl.StaticObstacles[j+1:]...)
				assert.False(t, overlapsAny(obs.Position, obs.Bounds, others, StaticPadding),
					"difficulty %s iteration %d: obstacle %d within padding of another", d, i, j)
			}
		}
	}
}

func TestGenerateObstaclesClearStartAndFinish(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		lvl := Generate(rng, DifficultyHard)
		for _, obs := range lvl.StaticObstacles {
			assert.GreaterOrEqual(t, dist(obs.Position, lvl.Start), StartClearance)
			assert.GreaterOrEqual(t, dist(obs.Position, lvl.Finish), StartClearance)
		}
	}
}

func TestGenerateObstacleCountsScaleWithDifficulty(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, d := range allDifficulties {
		for i := 0; i < 50; i++ {
			lvl := Generate(rng, d)
			assert.LessOrEqual(t, len(lvl.StaticObstacles), staticCounts[d]+2)
			assert.LessOrEqual(t, len(lvl.MovingObstacles), movingCounts[d]+1)
			assert.Len(t, lvl.WindZones, windCounts[d])
		}
	}
}

func TestGenerateNarrowPassagesMeetMinimums(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	found := 0
	for i := 0; i < 300; i++ {
		lvl := Generate(rng, DifficultyHard)
		for _, p := range lvl.NarrowPassages {
			found++
			assert.GreaterOrEqual(t, p.Width, PassageMinWidth)
			assert.GreaterOrEqual(t, p.Height, PassageMinHeight)
			assert.InDelta(t, p.Width, p.Bounds.Right-p.Bounds.Left, 1e-9)
			assert.InDelta(t, p.Height, p.Bounds.Bottom-p.Bounds.Top, 1e-9)
		}
	}
	require.Greater(t, found, 0, "expected at least one passage across 300 hard levels")
}

func TestGenerateMovingObstaclesHaveValidPatterns(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 100; i++ {
		lvl := Generate(rng, DifficultyMedium)
		for _, o := range lvl.MovingObstacles {
			switch o.Movement.Type {
			case MoveLinear:
				require.Len(t, o.Movement.Path, 2)
				assert.Greater(t, o.Movement.Speed, 0.0)
			case MoveOscillate:
				assert.Greater(t, o.Movement.Amplitude, 0.0)
				assert.Greater(t, o.Movement.Frequency, 0.0)
			case MoveCircular:
				assert.Greater(t, o.Movement.Radius, 0.0)
			default:
				t.Fatalf("unknown movement type %q", o.Movement.Type)
			}
		}
	}
}

func TestGenerateWindZonesWithinDifficultyStrength(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, d := range allDifficulties {
		for i := 0; i < 50; i++ {
			lvl := Generate(rng, d)
			for _, z := range lvl.WindZones {
				assert.Contains(t, []string{"left", "right"}, z.Direction)
				assert.Contains(t, []string{"vertical-column", "horizontal-band"}, z.Shape)
				assert.LessOrEqual(t, math.Abs(z.Strength-windStrengths[d]), 0.25+1e-9)
			}
		}
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(99)), DifficultyMedium)
	b := Generate(rand.New(rand.NewSource(99)), DifficultyMedium)

	require.Equal(t, a.Start, b.Start)
	require.Equal(t, a.Finish, b.Finish)
	require.Len(t, b.StaticObstacles, len(a.StaticObstacles))
	for i := range a.StaticObstacles {
		assert.Equal(t, a.StaticObstacles[i].Position, b.StaticObstacles[i].Position)
		assert.Equal(t, a.StaticObstacles[i].Bounds, b.StaticObstacles[i].Bounds)
	}
	require.Len(t, b.MovingObstacles, len(a.MovingObstacles))
	for i := range a.MovingObstacles {
		assert.Equal(t, a.MovingObstacles[i].BasePosition, b.MovingObstacles[i].BasePosition)
		assert.Equal(t, a.MovingObstacles[i].Movement.Type, b.MovingObstacles[i].Movement.Type)
	}
}

func TestGenerateUnknownDifficultyFallsBack(t *testing.T) {
	lvl := Generate(rand.New(rand.NewSource(8)), Difficulty("nightmare"))
	assert.Equal(t, DifficultyMedium, lvl.Difficulty)
}
