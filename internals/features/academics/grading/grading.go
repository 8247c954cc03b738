// file: internals/features/academics/grading/grading.go
package grading

// Components are the five mark inputs for one (student, subject) row. A nil
// component counts as 0. Range caps (tests/presentation/assignment ≤ 20,
// attendance ≤ 5) are enforced at the DTO boundary, not here.
type Components struct {
	Test1        *int
	Test2        *int
	Presentation *int
	Assignment   *int
	Attendance   *int
}

// Result is the derived pair stored alongside the components. Total and Grade
// are always recomputed together; callers never supply them.
type Result struct {
	Total int    `json:"total"`
	Grade string `json:"grade"`
}

// ComputeGrade sums the components and derives the letter grade by fixed
// thresholds (lower bound inclusive). All components absent yields {0, "F"},
// which is the intended boundary behavior, not an error.
func ComputeGrade(c Components) Result {
	total := value(c.Test1) + value(c.Test2) + value(c.Presentation) + value(c.Assignment) + value(c.Attendance)

	grade := "F"
	switch {
	case total >= 90:
		grade = "A+"
	case total >= 80:
		grade = "A"
	case total >= 70:
		grade = "B+"
	case total >= 60:
		grade = "B"
	case total >= 50:
		grade = "C"
	case total >= 40:
		grade = "D"
	}

	return Result{Total: total, Grade: grade}
}

func value(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
