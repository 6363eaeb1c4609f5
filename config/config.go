package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Init loads a .env file when present; real environment variables win.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file, using process environment")
	}
}

// Addr returns the listen address.
func Addr() string {
	return getString("SKIFALL_ADDR", ":1999")
}

// TotalRounds returns the default round count for new rooms.
func TotalRounds() int {
	return getInt("SKIFALL_TOTAL_ROUNDS", 3)
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("ignoring non-numeric env value")
		return fallback
	}
	return n
}
