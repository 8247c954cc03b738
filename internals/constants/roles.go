package constants

import "fmt"

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// Role error message templates
const (
	ErrOnlyTeachersCanAccess = "Only teachers or admins may access %s."
	ErrOnlyAdminsCanAccess   = "Only admins may access %s."
	ErrOnlyStudentsCanAccess = "Only students may access %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// Grouped role slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleTeacher,
		RoleAdmin,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
