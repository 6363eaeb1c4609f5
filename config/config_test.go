package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddrDefault(t *testing.T) {
	t.Setenv("SKIFALL_ADDR", "")
	assert.Equal(t, ":1999", Addr())

	t.Setenv("SKIFALL_ADDR", ":8080")
	assert.Equal(t, ":8080", Addr())
}

func TestTotalRounds(t *testing.T) {
	t.Setenv("SKIFALL_TOTAL_ROUNDS", "")
	assert.Equal(t, 3, TotalRounds())

	t.Setenv("SKIFALL_TOTAL_ROUNDS", "5")
	assert.Equal(t, 5, TotalRounds())

	t.Setenv("SKIFALL_TOTAL_ROUNDS", "lots")
	assert.Equal(t, 3, TotalRounds(), "non-numeric values fall back to the default")
}
