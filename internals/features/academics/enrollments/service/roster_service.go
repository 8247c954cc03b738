// file: internals/features/academics/enrollments/service/roster_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"cukportal_backend/internals/constants"
)

// RosterEntry is one enrolled student of a subject, joined with the profile
// fields the reconcilers project into view rows.
type RosterEntry struct {
	EnrollmentID     uuid.UUID `json:"enrollment_id"`
	StudentID        uuid.UUID `json:"student_id"`
	FullName         string    `json:"full_name"`
	EnrollmentNumber *string   `json:"enrollment_number,omitempty"`
}

// RosterForSubject returns the enrolled students of a subject ordered by name.
// Only status "enrolled" participates in rosters; withdrawn rows are ignored.
func RosterForSubject(db *gorm.DB, subjectID uuid.UUID) ([]RosterEntry, error) {
	var roster []RosterEntry
	err := db.Table("enrollments").
		Select(`enrollments.id AS enrollment_id,
			enrollments.student_id,
			profiles.full_name,
			profiles.enrollment_number`).
		Joins("JOIN profiles ON profiles.user_id = enrollments.student_id").
		Where("enrollments.subject_id = ? AND enrollments.status = ?", subjectID, constants.EnrollmentEnrolled).
		Order("profiles.full_name ASC").
		Scan(&roster).Error
	return roster, err
}

// EnrolledSubjectIDs returns the subject ids a student is enrolled in.
func EnrolledSubjectIDs(db *gorm.DB, studentID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.Table("enrollments").
		Where("student_id = ? AND status = ?", studentID, constants.EnrollmentEnrolled).
		Pluck("subject_id", &ids).Error
	return ids, err
}
