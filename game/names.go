package game

import (
	"fmt"
	"math/rand"
)

var nameAdjectives = []string{
	"Alpine", "Arctic", "Blizzard", "Brave", "Crystal",
	"Daring", "Fearless", "Frosty", "Glacial", "Golden",
	"Icy", "Lightning", "Lunar", "Mighty", "Nordic",
	"Polar", "Powder", "Raging", "Silent", "Silver",
	"Snowy", "Swift", "Thunder", "Wild", "Winter",
}

var nameNouns = []string{
	"Avalanche", "Bear", "Blizzard", "Eagle", "Falcon",
	"Fox", "Glacier", "Hawk", "Husky", "Lynx",
	"Mogul", "Mountain", "Owl", "Penguin", "Racer",
	"Rider", "Shredder", "Slider", "Storm", "Tiger",
	"Wolf", "Yeti", "Zenith",
}

// PlayerName picks a default display name for players that join without one.
func PlayerName(rng *rand.Rand) string {
	adj := nameAdjectives[rng.Intn(len(nameAdjectives))]
	noun := nameNouns[rng.Intn(len(nameNouns))]
	return fmt.Sprintf("%s %s", adj, noun)
}
