package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestComputeGradeThresholds(t *testing.T) {
	tests := []struct {
		name  string
		c     Components
		total int
		grade string
	}{
		{"all absent", Components{}, 0, "F"},
		{"just below D", Components{Test1: intPtr(20), Test2: intPtr(19)}, 39, "F"},
		{"exactly D", Components{Test1: intPtr(20), Test2: intPtr(20)}, 40, "D"},
		{"exactly C", Components{Test1: intPtr(20), Test2: intPtr(20), Presentation: intPtr(10)}, 50, "C"},
		{"exactly B", Components{Test1: intPtr(20), Test2: intPtr(20), Presentation: intPtr(20)}, 60, "B"},
		{"exactly B+", Components{Test1: intPtr(20), Test2: intPtr(20), Presentation: intPtr(20), Assignment: intPtr(10)}, 70, "B+"},
		{"exactly A", Components{Test1: intPtr(20), Test2: intPtr(20), Presentation: intPtr(20), Assignment: intPtr(20)}, 80, "A"},
		// the 90 boundary is only reachable when callers skip the DTO caps;
		// the pure function still has to honor the ladder
		{"exactly A+", Components{Test1: intPtr(20), Test2: intPtr(20), Presentation: intPtr(20), Assignment: intPtr(20), Attendance: intPtr(10)}, 90, "A+"},
		{"full marks", Components{Test1: intPtr(20), Test2: intPtr(20), Presentation: intPtr(20), Assignment: intPtr(20), Attendance: intPtr(5)}, 85, "A"},
		{"partial subset", Components{Test1: intPtr(18), Presentation: intPtr(15)}, 33, "F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeGrade(tt.c)
			assert.Equal(t, tt.total, got.Total)
			assert.Equal(t, tt.grade, got.Grade)
		})
	}
}

func TestComputeGradeIsDeterministic(t *testing.T) {
	c := Components{Test1: intPtr(18), Test2: intPtr(16), Presentation: intPtr(15), Assignment: intPtr(14), Attendance: intPtr(5)}
	first := ComputeGrade(c)
	assert.Equal(t, Result{Total: 68, Grade: "B"}, first)

	// Updating one component recomputes from scratch, never increments.
	c.Test1 = intPtr(20)
	assert.Equal(t, Result{Total: 70, Grade: "B+"}, ComputeGrade(c))
}
