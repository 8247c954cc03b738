// file: internals/route/details/campus_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "cukportal_backend/internals/features/campus/dashboard/controller"
	libraryController "cukportal_backend/internals/features/campus/library/controller"
	noticeController "cukportal_backend/internals/features/campus/notices/controller"
	resourceController "cukportal_backend/internals/features/campus/resources/controller"
)

func CampusRoutes(user, student, teacher, admin fiber.Router, db *gorm.DB) {
	notices := &noticeController.NoticeController{DB: db}
	resources := &resourceController.ResourceController{DB: db}
	library := &libraryController.LibraryController{DB: db}
	dashboard := &dashboardController.DashboardController{DB: db}

	// notices
	user.Get("/notices", notices.ListActiveNotices)
	user.Post("/notices/:id/view", notices.IncrementViewCount)
	teacher.Post("/notices", notices.CreateNotice)
	teacher.Get("/notices", notices.ListMyNotices)
	teacher.Patch("/notices/:id", notices.UpdateNotice)
	teacher.Delete("/notices/:id", notices.DeleteNotice)

	// resources
	user.Get("/resources", resources.ListResources)
	user.Post("/resources/:id/view", resources.IncrementViewCount)
	user.Post("/resources/:id/download", resources.IncrementDownloadCount)
	teacher.Post("/resources", resources.CreateResource)
	teacher.Patch("/resources/:id", resources.UpdateResource)
	teacher.Delete("/resources/:id", resources.DeleteResource)

	// library
	user.Get("/library/books", library.ListBooks)
	student.Get("/library/issues", library.ListMyIssues)
	admin.Post("/library/books", library.CreateBook)
	teacher.Post("/library/issues", library.IssueBook)
	teacher.Patch("/library/issues/:id/return", library.ReturnBook)

	// dashboards
	student.Get("/dashboard", dashboard.StudentDashboard)
	teacher.Get("/dashboard", dashboard.TeacherDashboard)
}
