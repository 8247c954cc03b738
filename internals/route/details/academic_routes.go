// file: internals/route/details/academic_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentController "cukportal_backend/internals/features/academics/assignments/controller"
	attendanceController "cukportal_backend/internals/features/academics/attendance/controller"
	enrollmentController "cukportal_backend/internals/features/academics/enrollments/controller"
	leaveController "cukportal_backend/internals/features/academics/leaves/controller"
	markController "cukportal_backend/internals/features/academics/marks/controller"
	subjectController "cukportal_backend/internals/features/academics/subjects/controller"
)

func AcademicRoutes(user, student, teacher, admin fiber.Router, db *gorm.DB) {
	subjects := &subjectController.SubjectController{DB: db}
	enrollments := &enrollmentController.EnrollmentController{DB: db}
	attendance := &attendanceController.AttendanceController{DB: db}
	marks := &markController.MarkController{DB: db}
	assignments := &assignmentController.AssignmentController{DB: db}
	leaves := &leaveController.LeaveController{DB: db}

	// subjects & classes
	user.Get("/subjects", subjects.ListSubjects)
	user.Get("/subjects/:id", subjects.GetSubject)
	user.Get("/classes", enrollments.ListClasses)
	admin.Post("/subjects", subjects.CreateSubject)
	admin.Patch("/subjects/:id", subjects.UpdateSubject)
	admin.Delete("/subjects/:id", subjects.DeleteSubject)

	// enrollments & rosters
	admin.Post("/classes", enrollments.CreateClass)
	admin.Post("/enrollments", enrollments.CreateEnrollment)
	admin.Patch("/enrollments/:id/withdraw", enrollments.WithdrawEnrollment)
	student.Get("/enrollments", enrollments.ListMyEnrollments)
	teacher.Get("/subjects/:subject_id/roster", enrollments.GetRoster)

	// attendance
	teacher.Post("/attendance", attendance.UpsertAttendance)
	teacher.Get("/attendance/sheet", attendance.GetAttendanceSheet)
	student.Get("/attendance", attendance.GetMyAttendance)

	// marks
	teacher.Post("/marks", marks.UpsertMarks)
	teacher.Get("/marks/sheet", marks.GetMarksSheet)
	student.Get("/marks", marks.GetMyMarks)

	// assignments & submissions
	teacher.Post("/assignments", assignments.CreateAssignment)
	teacher.Get("/assignments", assignments.ListMyAssignments)
	teacher.Patch("/assignments/:id", assignments.UpdateAssignment)
	teacher.Delete("/assignments/:id", assignments.DeleteAssignment)
	teacher.Get("/assignments/:id/submissions", assignments.ListSubmissions)
	teacher.Patch("/submissions/:id/grade", assignments.GradeSubmission)
	student.Get("/assignments", assignments.ListStudentAssignments)
	student.Post("/assignments/:id/submit", assignments.SubmitAssignment)

	// leave applications
	student.Post("/leaves", leaves.CreateLeave)
	student.Get("/leaves", leaves.ListMyLeaves)
	teacher.Get("/leaves", leaves.ListLeavesForReview)
	teacher.Patch("/leaves/:id/review", leaves.ReviewLeave)
}
