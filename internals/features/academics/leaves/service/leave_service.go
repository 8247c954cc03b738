// file: internals/features/academics/leaves/service/leave_service.go
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"cukportal_backend/internals/constants"
	leaveModel "cukportal_backend/internals/features/academics/leaves/model"
)

// Decision is a requested review outcome.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// TransitionError means the review cannot run against the row's current
// status. Approved and rejected are terminal.
type TransitionError struct {
	Current  string
	Decision string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a leave application in status %q", e.Decision, e.Current)
}

// Transition validates and resolves a review decision against the current
// status. Only pending rows move; everything else is a TransitionError and
// the caller must leave the row untouched.
func Transition(current, decision string) (string, error) {
	if current != constants.LeavePending {
		return "", &TransitionError{Current: current, Decision: decision}
	}
	switch decision {
	case DecisionApprove:
		return constants.LeaveApproved, nil
	case DecisionReject:
		return constants.LeaveRejected, nil
	default:
		return "", fmt.Errorf("unknown decision %q", decision)
	}
}

// ApplyReview folds an already validated transition into the row.
// RejectionReason is stored on reject only; empty is allowed.
func ApplyReview(mo *leaveModel.LeaveApplicationModel, next string, reviewer uuid.UUID, reason *string, at time.Time) {
	mo.Status = next
	mo.ReviewedBy = &reviewer
	mo.ReviewedAt = &at
	if next == constants.LeaveRejected {
		mo.RejectionReason = reason
	}
}

// Stats are per-request counts over a filtered set, never stored.
type Stats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

func ComputeStats(rows []leaveModel.LeaveApplicationModel) Stats {
	var s Stats
	for _, r := range rows {
		switch r.Status {
		case constants.LeavePending:
			s.Pending++
		case constants.LeaveApproved:
			s.Approved++
		case constants.LeaveRejected:
			s.Rejected++
		}
	}
	s.Total = len(rows)
	return s
}
