package scheduling

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps_StartInsideExisting(t *testing.T) {
	// existing 09:00-12:00, new 11:00-13:00: new start falls inside existing
	assert.True(t, overlaps("09:00", "12:00", "11:00", "13:00"))
}

func TestOverlaps_EndInsideExisting(t *testing.T) {
	assert.True(t, overlaps("11:00", "14:00", "09:00", "12:00"))
}

func TestOverlaps_ExistingContained(t *testing.T) {
	assert.True(t, overlaps("10:00", "11:00", "09:00", "12:00"))
}

func TestOverlaps_AdjacentIsNotConflict(t *testing.T) {
	// existing 09:00-10:00, new 10:00-11:00: half-open ranges touch but do not overlap
	assert.False(t, overlaps("09:00", "10:00", "10:00", "11:00"))
	assert.False(t, overlaps("10:00", "11:00", "09:00", "10:00"))
}

func TestOverlaps_Disjoint(t *testing.T) {
	assert.False(t, overlaps("08:00", "09:00", "13:00", "15:00"))
	assert.False(t, overlaps("13:00", "15:00", "08:00", "09:00"))
}

// The three-case enumeration must agree with the canonical half-open overlap test
// (a < d && c < b) for every valid pair of ranges.
func TestOverlaps_MatchesCanonicalForm(t *testing.T) {
	var points []string
	for h := 8; h <= 13; h++ {
		for _, m := range []int{0, 30} {
			points = append(points, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			for k := 0; k < len(points); k++ {
				for l := k + 1; l < len(points); l++ {
					es, ee := points[i], points[j]
					ns, ne := points[k], points[l]
					canonical := es < ne && ns < ee
					assert.Equal(t, canonical, overlaps(es, ee, ns, ne),
						"existing [%s,%s) vs new [%s,%s)", es, ee, ns, ne)
				}
			}
		}
	}
}

func TestCoveringWindow_FullContainment(t *testing.T) {
	windows := []Window{
		{Weekday: 1, Start: "09:00", End: "12:00"},
		{Weekday: 1, Start: "14:00", End: "18:00"},
	}

	// entirely inside the first window
	assert.NotNil(t, coveringWindow(windows, "09:30", "11:30"))
	// exact fit
	assert.NotNil(t, coveringWindow(windows, "14:00", "18:00"))
	// one minute past a window's end is rejected
	assert.Nil(t, coveringWindow(windows, "10:00", "12:01"))
	// partial overlap with a window is not containment
	assert.Nil(t, coveringWindow(windows, "11:00", "15:00"))
	assert.Nil(t, coveringWindow(nil, "09:00", "10:00"))
}
