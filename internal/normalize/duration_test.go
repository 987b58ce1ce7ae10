package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forkful/internal/normalize"
)

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name string
		iso  string
		want *int
	}{
		{"hours and minutes", "PT1H30M", intp(90)},
		{"minutes only", "PT45M", intp(45)},
		{"hours only", "PT2H", intp(120)},
		{"lowercase", "pt1h15m", intp(75)},
		{"zero minutes", "PT0M", intp(0)},
		{"empty", "", nil},
		{"no match", "whenever", nil},
		{"bare number", "45", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize.DurationMinutes(tt.iso)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestDurationMinutes_AbsentIsNotZero(t *testing.T) {
	// An unparsable duration must stay absent so later tiers can still
	// supplement the field; zero would block them.
	assert.Nil(t, normalize.DurationMinutes("P1D"))
	got := normalize.DurationMinutes("PT0M")
	require.NotNil(t, got)
	assert.Equal(t, 0, *got)
}

func TestTextDurationMinutes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int
	}{
		{"hour and minutes", "1 hour 15 minutes", intp(75)},
		{"minutes only", "45 min", intp(45)},
		{"compact", "45m", intp(45)},
		{"hours plural", "2 hrs", intp(120)},
		{"empty", "", nil},
		{"no numbers", "a while", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize.TextDurationMinutes(tt.text)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func intp(n int) *int { return &n }
