package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tr(startHour, startMin, endHour, endMin int) TimeRange {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	return TimeRange{
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeRange
		b    TimeRange
		want bool
	}{
		{
			name: "partial overlap",
			a:    tr(10, 0, 11, 0),
			b:    tr(10, 30, 11, 30),
			want: true,
		},
		{
			name: "identical ranges",
			a:    tr(10, 0, 11, 0),
			b:    tr(10, 0, 11, 0),
			want: true,
		},
		{
			name: "one contains the other",
			a:    tr(9, 0, 13, 0),
			b:    tr(10, 0, 11, 0),
			want: true,
		},
		{
			name: "back to back slots do not overlap",
			a:    tr(10, 0, 11, 0),
			b:    tr(11, 0, 12, 0),
			want: false,
		},
		{
			name: "disjoint ranges",
			a:    tr(8, 0, 9, 0),
			b:    tr(12, 0, 13, 0),
			want: false,
		},
		{
			name: "one minute overlap",
			a:    tr(10, 0, 11, 1),
			b:    tr(11, 0, 12, 0),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeRange_IsValid(t *testing.T) {
	assert.True(t, tr(10, 0, 11, 0).IsValid())
	assert.False(t, tr(11, 0, 10, 0).IsValid())

	// Пустой интервал (start == end) некорректен
	assert.False(t, tr(10, 0, 10, 0).IsValid())
}

func TestTimeRange_Contains(t *testing.T) {
	r := tr(10, 0, 11, 0)

	assert.True(t, r.Contains(r.Start), "начало принадлежит полуинтервалу")
	assert.False(t, r.Contains(r.End), "конец не принадлежит полуинтервалу")
	assert.True(t, r.Contains(r.Start.Add(30*time.Minute)))
	assert.False(t, r.Contains(r.Start.Add(-time.Minute)))
}

func TestTimeRange_Duration(t *testing.T) {
	assert.Equal(t, time.Hour, tr(10, 0, 11, 0).Duration())
	assert.Equal(t, 90*time.Minute, tr(10, 0, 11, 30).Duration())
}
