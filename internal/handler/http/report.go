package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/report"
	"github.com/andamio-hr/asistencia-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Monthly implements ReportHandler. With format=csv the report downloads as a
// semicolon-separated file; otherwise it returns JSON.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return
	}
	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	req := report.MonthlyReportRequest{Month: month, Year: year}
	if userID := query.Get("user_id"); userID != "" {
		req.UserID = &userID
	}

	result, err := h.reportService.Monthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if query.Get("format") != "csv" {
		response.Success(w, result)
		return
	}

	csvBytes, err := result.ToCSV()
	if err != nil {
		response.InternalServerError(w, "Failed to build CSV report")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(csvBytes)
}
