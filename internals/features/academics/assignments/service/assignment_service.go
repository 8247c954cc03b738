// file: internals/features/academics/assignments/service/assignment_service.go
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentModel "cukportal_backend/internals/features/academics/assignments/model"
	rosterService "cukportal_backend/internals/features/academics/enrollments/service"
)

// StudentView is one assignment as a student sees it: the submission row if
// one exists, plus derived status flags. Overdue is display-only; late
// submissions are still accepted.
type StudentView struct {
	Assignment assignmentModel.AssignmentModel  `json:"assignment"`
	Submission *assignmentModel.SubmissionModel `json:"submission"`
	Status     string                           `json:"status"`
	Overdue    bool                             `json:"overdue"`
}

const (
	StatusPending   = "pending"
	StatusSubmitted = "submitted"
	StatusGraded    = "graded"
)

// BuildStudentViews joins assignments with the student's submissions and
// derives status per row.
func BuildStudentViews(assignments []assignmentModel.AssignmentModel, subs []assignmentModel.SubmissionModel, now time.Time) []StudentView {
	byAssignment := make(map[uuid.UUID]*assignmentModel.SubmissionModel, len(subs))
	for i := range subs {
		byAssignment[subs[i].AssignmentID] = &subs[i]
	}

	out := make([]StudentView, 0, len(assignments))
	for _, a := range assignments {
		v := StudentView{Assignment: a, Status: StatusPending}
		if sub, ok := byAssignment[a.ID]; ok {
			v.Submission = sub
			v.Status = StatusSubmitted
			if sub.IsGraded() {
				v.Status = StatusGraded
			}
		}
		v.Overdue = v.Status == StatusPending && now.After(a.DueDate)
		out = append(out, v)
	}
	return out
}

// PendingCount is the number of views still awaiting a submission.
func PendingCount(views []StudentView) int {
	n := 0
	for _, v := range views {
		if v.Status == StatusPending {
			n++
		}
	}
	return n
}

// UpcomingDeadlines returns up to limit unsubmitted assignments due at or
// after now, soonest first.
func UpcomingDeadlines(views []StudentView, now time.Time, limit int) []StudentView {
	upcoming := make([]StudentView, 0, len(views))
	for _, v := range views {
		if v.Status == StatusPending && !v.Assignment.DueDate.Before(now) {
			upcoming = append(upcoming, v)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Assignment.DueDate.Before(upcoming[j].Assignment.DueDate)
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// AssignmentsForStudent loads the assignments of every subject the student is
// enrolled in, nearest due date first.
func AssignmentsForStudent(db *gorm.DB, studentID uuid.UUID) ([]assignmentModel.AssignmentModel, error) {
	subjectIDs, err := rosterService.EnrolledSubjectIDs(db, studentID)
	if err != nil {
		return nil, err
	}
	if len(subjectIDs) == 0 {
		return []assignmentModel.AssignmentModel{}, nil
	}

	var rows []assignmentModel.AssignmentModel
	err = db.Where("subject_id IN ?", subjectIDs).
		Order("due_date ASC").
		Find(&rows).Error
	return rows, err
}
