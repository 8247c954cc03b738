package constants

// Attendance status values (enum attendance_status).
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceOnLeave = "on_leave"
)

var AttendanceStatuses = []string{
	AttendancePresent,
	AttendanceAbsent,
	AttendanceLate,
	AttendanceOnLeave,
}

// Leave application status values (enum leave_status).
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

// Priority values shared by notices and leave applications (enum priority_level).
const (
	PriorityNormal    = "normal"
	PriorityImportant = "important"
	PriorityUrgent    = "urgent"
)

// Resource type values (enum resource_type).
const (
	ResourceLectureNotes  = "lecture_notes"
	ResourcePresentation  = "presentation"
	ResourceVideoTutorial = "video_tutorial"
	ResourceDocument      = "document"
	ResourceOther         = "other"
)

var ResourceTypes = []string{
	ResourceLectureNotes,
	ResourcePresentation,
	ResourceVideoTutorial,
	ResourceDocument,
	ResourceOther,
}

// Book issue status values.
const (
	BookIssued   = "issued"
	BookReturned = "returned"
)

// Enrollment status. Only "enrolled" carries semantics in rosters; other
// values are stored opaquely.
const (
	EnrollmentEnrolled = "enrolled"
)

// Notice target audience values.
const (
	AudienceAll     = "all"
	AudienceClass   = "class"
	AudienceSubject = "subject"
)
