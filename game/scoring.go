package game

import "math"

// RoundResult is a player's outcome for one round. A nil FinishTime means
// the player did not finish.
type RoundResult struct {
	FinishTime *float64 `json:"finishTime"`
	Score      int      `json:"score"`
}

// Score maps a finish outcome to points: DNF scores zero, otherwise one
// point is deducted per whole second on the clock, floored at zero.
func Score(finishTime *float64) int {
	if finishTime == nil {
		return 0
	}
	t := *finishTime
	if t < 0 {
		t = 0
	}
	s := BasePoints - int(math.Floor(t))
	if s < 0 {
		return 0
	}
	return s
}
