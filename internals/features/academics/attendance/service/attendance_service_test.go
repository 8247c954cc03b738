package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cukportal_backend/internals/constants"
	attendanceModel "cukportal_backend/internals/features/academics/attendance/model"
	rosterService "cukportal_backend/internals/features/academics/enrollments/service"
)

func entry(name string) rosterService.RosterEntry {
	return rosterService.RosterEntry{
		EnrollmentID: uuid.New(),
		StudentID:    uuid.New(),
		FullName:     name,
	}
}

func TestReconcileOneRowPerRosterEntry(t *testing.T) {
	a, b, c := entry("Aamir"), entry("Bisma"), entry("Danish")
	roster := []rosterService.RosterEntry{a, b, c}

	rows := []attendanceModel.AttendanceModel{
		{StudentID: b.StudentID, Status: constants.AttendanceAbsent},
	}

	got := Reconcile(roster, rows)
	require.Len(t, got, 3)

	assert.Equal(t, a.StudentID, got[0].StudentID)
	assert.Equal(t, constants.AttendancePresent, got[0].Status)
	assert.False(t, got[0].Recorded, "default present must not read as saved")

	assert.Equal(t, constants.AttendanceAbsent, got[1].Status)
	assert.True(t, got[1].Recorded)

	assert.Equal(t, constants.AttendancePresent, got[2].Status)
	assert.False(t, got[2].Recorded)
}

func TestReconcileDropsRowsOffRoster(t *testing.T) {
	a := entry("Aamir")
	rows := []attendanceModel.AttendanceModel{
		{StudentID: uuid.New(), Status: constants.AttendanceLate}, // withdrawn student
		{StudentID: a.StudentID, Status: constants.AttendanceLate},
	}

	got := Reconcile([]rosterService.RosterEntry{a}, rows)
	require.Len(t, got, 1)
	assert.Equal(t, a.StudentID, got[0].StudentID)
	assert.Equal(t, constants.AttendanceLate, got[0].Status)
}

func TestReconcileEmptyRoster(t *testing.T) {
	got := Reconcile(nil, []attendanceModel.AttendanceModel{{StudentID: uuid.New()}})
	assert.Empty(t, got)
}

func TestRate(t *testing.T) {
	mk := func(statuses ...string) []attendanceModel.AttendanceModel {
		out := make([]attendanceModel.AttendanceModel, 0, len(statuses))
		for _, s := range statuses {
			out = append(out, attendanceModel.AttendanceModel{StudentID: uuid.New(), Status: s})
		}
		return out
	}

	assert.Equal(t, 0, Rate(nil), "no rows means 0, not NaN")
	assert.Equal(t, 100, Rate(mk(constants.AttendancePresent, constants.AttendanceLate)))
	assert.Equal(t, 50, Rate(mk(constants.AttendancePresent, constants.AttendanceAbsent)))
	assert.Equal(t, 0, Rate(mk(constants.AttendanceOnLeave)))
	// 2 of 3 attended rounds to 67, not truncated to 66
	assert.Equal(t, 67, Rate(mk(constants.AttendancePresent, constants.AttendanceLate, constants.AttendanceAbsent)))
}
