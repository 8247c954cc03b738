package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rosterService "cukportal_backend/internals/features/academics/enrollments/service"
	markDTO "cukportal_backend/internals/features/academics/marks/dto"
	markModel "cukportal_backend/internals/features/academics/marks/model"
	helper "cukportal_backend/internals/helpers"
)

func intp(v int) *int { return &v }

func set(v int) helper.PatchField[int] {
	return helper.PatchField[int]{Present: true, Value: &v}
}

func null() helper.PatchField[int] {
	return helper.PatchField[int]{Present: true}
}

func TestMergeAbsentFieldsKeepStored(t *testing.T) {
	studentID, subjectID := uuid.New(), uuid.New()
	stored := markModel.MarkModel{
		StudentID:  studentID,
		SubjectID:  subjectID,
		Test1Marks: intp(15),
		Test2Marks: intp(18),
	}

	got := Merge(stored, markDTO.UpsertMarksRequest{
		StudentID: studentID,
		SubjectID: subjectID,
		Test2:     set(20),
	})

	require.NotNil(t, got.Test1Marks)
	assert.Equal(t, 15, *got.Test1Marks, "absent field must keep the stored value")
	assert.Equal(t, 20, *got.Test2Marks)
	assert.Equal(t, 35, got.TotalMarks)
	assert.Equal(t, "F", got.Grade)
}

func TestMergeNullClearsComponent(t *testing.T) {
	stored := markModel.MarkModel{
		Test1Marks:      intp(20),
		Test2Marks:      intp(20),
		AssignmentMarks: intp(10),
	}

	got := Merge(stored, markDTO.UpsertMarksRequest{Assignment: null()})

	assert.Nil(t, got.AssignmentMarks)
	assert.Equal(t, 40, got.TotalMarks)
	assert.Equal(t, "D", got.Grade)
}

func TestMergeAlwaysRecomputesDerivedPair(t *testing.T) {
	stored := markModel.MarkModel{
		Test1Marks: intp(20),
		Test2Marks: intp(20),
		TotalMarks: 999, // stale derived values must never survive a merge
		Grade:      "A+",
	}

	got := Merge(stored, markDTO.UpsertMarksRequest{
		Presentation: set(20),
		Assignment:   set(15),
		Attendance:   set(5),
	})

	assert.Equal(t, 80, got.TotalMarks)
	assert.Equal(t, "A", got.Grade)
}

func TestMergeEmptyStoredRow(t *testing.T) {
	got := Merge(markModel.MarkModel{}, markDTO.UpsertMarksRequest{Test1: set(12)})
	assert.Equal(t, 12, got.TotalMarks)
	assert.Equal(t, "F", got.Grade)
}

func TestReconcileRosterOneRowPerStudent(t *testing.T) {
	a := rosterService.RosterEntry{StudentID: uuid.New(), FullName: "Aamir"}
	b := rosterService.RosterEntry{StudentID: uuid.New(), FullName: "Bisma"}

	rows := []markModel.MarkModel{
		{StudentID: b.StudentID, TotalMarks: 72, Grade: "B+"},
		{StudentID: uuid.New(), TotalMarks: 50, Grade: "C"}, // withdrawn student
	}

	got := ReconcileRoster([]rosterService.RosterEntry{a, b}, rows)
	require.Len(t, got, 2)

	assert.Nil(t, got[0].Marks, "student without a row still appears on the sheet")
	require.NotNil(t, got[1].Marks)
	assert.Equal(t, 72, got[1].Marks.TotalMarks)
}

func TestUpsertRequestFieldErrors(t *testing.T) {
	req := markDTO.UpsertMarksRequest{
		StudentID:  uuid.New(),
		SubjectID:  uuid.New(),
		Test1:      set(21),
		Attendance: set(6),
		Test2:      set(20),
	}

	fe := req.FieldErrors()
	require.NotNil(t, fe)
	assert.Contains(t, fe, "test1_marks")
	assert.Contains(t, fe, "attendance_marks")
	assert.NotContains(t, fe, "test2_marks")

	ok := markDTO.UpsertMarksRequest{StudentID: uuid.New(), SubjectID: uuid.New(), Test2: set(0)}
	assert.Nil(t, ok.FieldErrors())
}
