package report

import "context"

type ReportService interface {
	// Monthly builds the attendance report of one user for a calendar month.
	// Admins may target another user through the request's user_id.
	Monthly(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)
}
