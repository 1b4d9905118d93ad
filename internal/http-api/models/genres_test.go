package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidGenre(t *testing.T) {
	assert.True(t, ValidGenre("Puisi / Sajak"))
	assert.True(t, ValidGenre("Fantasi Tinggi (High Fantasy)"))
	assert.False(t, ValidGenre("Space Opera"))
	assert.False(t, ValidGenre(""))
	// matching is exact, not case-insensitive
	assert.False(t, ValidGenre("puisi / sajak"))
}
