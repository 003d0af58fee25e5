package search_courts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBBox(t *testing.T) {
	bbox, err := parseBBox("37.3,55.5,37.9,55.9")

	require.NoError(t, err)
	assert.Equal(t, 37.3, bbox.MinLng)
	assert.Equal(t, 55.5, bbox.MinLat)
	assert.Equal(t, 37.9, bbox.MaxLng)
	assert.Equal(t, 55.9, bbox.MaxLat)
}

func TestParseBBox_WithSpaces(t *testing.T) {
	bbox, err := parseBBox("37.3, 55.5, 37.9, 55.9")

	require.NoError(t, err)
	assert.Equal(t, 55.9, bbox.MaxLat)
}

func TestParseBBox_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"too few coordinates", "37.3,55.5,37.9"},
		{"too many coordinates", "37.3,55.5,37.9,55.9,1"},
		{"non-numeric coordinate", "37.3,abc,37.9,55.9"},
		{"inverted bounds", "37.9,55.9,37.3,55.5"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseBBox(tt.raw)
			assert.Error(t, err)
		})
	}
}
