// file: internals/features/academics/leaves/dto/leave_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"cukportal_backend/internals/constants"
	m "cukportal_backend/internals/features/academics/leaves/model"
)

const DateLayout = "2006-01-02"

type CreateLeaveRequest struct {
	LeaveType   string  `json:"leave_type" validate:"required,oneof=medical personal family academic other"`
	FromDate    string  `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate      string  `json:"to_date" validate:"required,datetime=2006-01-02"`
	Reason      string  `json:"reason" validate:"required,min=5,max=2000"`
	ContactInfo *string `json:"contact_info" validate:"omitempty,max=100"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=normal important urgent"`
}

func (r *CreateLeaveRequest) Normalize() {
	r.Reason = strings.TrimSpace(r.Reason)
	if r.Priority == "" {
		r.Priority = constants.PriorityNormal
	}
}

// DateRangeError reports from_date > to_date; validate tags cannot compare
// the two fields.
func (r CreateLeaveRequest) DateRangeError() map[string][]string {
	from, _ := time.Parse(DateLayout, r.FromDate)
	to, _ := time.Parse(DateLayout, r.ToDate)
	if from.After(to) {
		return map[string][]string{"from_date": {"must not be after to_date"}}
	}
	return nil
}

// ToModel forces status pending regardless of payload.
func (r CreateLeaveRequest) ToModel(studentID uuid.UUID) m.LeaveApplicationModel {
	from, _ := time.Parse(DateLayout, r.FromDate)
	to, _ := time.Parse(DateLayout, r.ToDate)
	return m.LeaveApplicationModel{
		StudentID:   studentID,
		LeaveType:   r.LeaveType,
		FromDate:    from,
		ToDate:      to,
		Reason:      r.Reason,
		ContactInfo: r.ContactInfo,
		Priority:    r.Priority,
		Status:      constants.LeavePending,
	}
}

type ReviewLeaveRequest struct {
	Decision        string  `json:"decision" validate:"required,oneof=approve reject"`
	RejectionReason *string `json:"rejection_reason" validate:"omitempty,max=2000"`
}
