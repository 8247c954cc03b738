// file: internals/features/campus/library/service/library_service.go
package service

import (
	"time"
)

// Flat daily fine in rupees for overdue returns.
const LateFeePerDay = 5

// Loan period applied when the issue request does not name a due date.
const DefaultLoanDays = 14

// LateFee charges per whole day past the due date. Same-day and early returns
// are free; partial days round down.
func LateFee(dueDate, returnedAt time.Time) int {
	if !returnedAt.After(dueDate) {
		return 0
	}
	days := int(returnedAt.Sub(dueDate).Hours() / 24)
	return days * LateFeePerDay
}
