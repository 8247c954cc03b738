package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	assignmentModel "cukportal_backend/internals/features/academics/assignments/model"
)

func assignment(due time.Time) assignmentModel.AssignmentModel {
	return assignmentModel.AssignmentModel{ID: uuid.New(), DueDate: due, MaxMarks: 20}
}

func TestBuildStudentViewsStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	pending := assignment(now.Add(48 * time.Hour))
	submitted := assignment(now.Add(24 * time.Hour))
	graded := assignment(now.Add(-24 * time.Hour))
	overdue := assignment(now.Add(-time.Hour))

	marks := 15
	gradedAt := now.Add(-time.Hour)
	subs := []assignmentModel.SubmissionModel{
		{AssignmentID: submitted.ID, SubmissionURL: "https://example.com/a.pdf"},
		{AssignmentID: graded.ID, SubmissionURL: "https://example.com/b.pdf", MarksObtained: &marks, GradedAt: &gradedAt},
	}

	views := BuildStudentViews(
		[]assignmentModel.AssignmentModel{pending, submitted, graded, overdue},
		subs, now)
	require.Len(t, views, 4)

	assert.Equal(t, StatusPending, views[0].Status)
	assert.False(t, views[0].Overdue)

	assert.Equal(t, StatusSubmitted, views[1].Status)
	require.NotNil(t, views[1].Submission)

	assert.Equal(t, StatusGraded, views[2].Status)
	assert.False(t, views[2].Overdue, "a graded submission is never overdue")

	assert.Equal(t, StatusPending, views[3].Status)
	assert.True(t, views[3].Overdue)

	assert.Equal(t, 2, PendingCount(views))
}

func TestUpcomingDeadlinesTopThreeSoonestFirst(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	in1 := assignment(now.Add(24 * time.Hour))
	in3 := assignment(now.Add(72 * time.Hour))
	in2 := assignment(now.Add(48 * time.Hour))
	in4 := assignment(now.Add(96 * time.Hour))
	past := assignment(now.Add(-24 * time.Hour))
	done := assignment(now.Add(12 * time.Hour))

	subs := []assignmentModel.SubmissionModel{
		{AssignmentID: done.ID, SubmissionURL: "https://example.com/x.pdf"},
	}

	views := BuildStudentViews(
		[]assignmentModel.AssignmentModel{in3, past, in1, done, in4, in2},
		subs, now)

	top := UpcomingDeadlines(views, now, 3)
	require.Len(t, top, 3)
	assert.Equal(t, in1.ID, top[0].Assignment.ID)
	assert.Equal(t, in2.ID, top[1].Assignment.ID)
	assert.Equal(t, in3.ID, top[2].Assignment.ID)
}

func TestUpcomingDeadlinesFewerThanLimit(t *testing.T) {
	now := time.Now()
	views := BuildStudentViews([]assignmentModel.AssignmentModel{assignment(now.Add(time.Hour))}, nil, now)
	assert.Len(t, UpcomingDeadlines(views, now, 3), 1)
	assert.Empty(t, UpcomingDeadlines(nil, now, 3))
}
