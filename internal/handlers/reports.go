package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wipetrack/erasure-api/internal/logger"
	"github.com/wipetrack/erasure-api/internal/models"
	"github.com/wipetrack/erasure-api/internal/timeutil"
)

// ReportReader reads erasure reports through the routed tenant handle.
type ReportReader interface {
	ListByEmail(ctx context.Context, email string, limit int) ([]models.ErasureReportDB, error)
	GetByID(ctx context.Context, email string, reportID int64) (*models.ErasureReportDB, error)
}

const defaultReportLimit = 100

// ReportResponse is one erasure report with wire-format timestamps
// swagger:model ReportResponse
type ReportResponse struct {
	ReportID     int64   `json:"report_id"`
	Email        string  `json:"email"`
	DeviceSerial string  `json:"device_serial"`
	Method       string  `json:"method"`
	Status       string  `json:"status"`
	StartedAt    string  `json:"started_at"`
	CompletedAt  *string `json:"completed_at,omitempty"`
}

func toReportResponse(r models.ErasureReportDB) ReportResponse {
	return ReportResponse{
		ReportID:     r.ReportID,
		Email:        r.Email,
		DeviceSerial: r.DeviceSerial,
		Method:       r.Method,
		Status:       r.Status,
		StartedAt:    timeutil.Format(r.StartedAt),
		CompletedAt:  timeutil.FormatPtr(r.CompletedAt),
	}
}

// NewListReportsHandler returns an HTTP handler listing the caller's erasure
// reports.
// @Summary List erasure reports
// @Description Lists reports for the effective account, read from whichever database the tenant routes to.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rows returned"
// @Success 200 {array} handlers.ReportResponse "Reports"
// @Router /reports [get]
func NewListReportsHandler(reports ReportReader, router TenantRouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit := defaultReportLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= defaultReportLimit {
				limit = parsed
			}
		}

		rows, err := reports.ListByEmail(ctx, router.EffectiveEmail(ctx), limit)
		if err != nil {
			logger.Log.Errorw("failed to list reports", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		out := make([]ReportResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, toReportResponse(row))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(out)
	}
}

// NewGetReportHandler returns an HTTP handler fetching one erasure report.
// @Summary Get an erasure report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} handlers.ReportResponse "Report"
// @Failure 404 {object} handlers.ErrorResponse "Report not found"
// @Router /reports/{id} [get]
func NewGetReportHandler(reports ReportReader, router TenantRouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		reportID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid report id"})
			return
		}

		report, err := reports.GetByID(ctx, router.EffectiveEmail(ctx), reportID)
		if err != nil {
			logger.Log.Errorw("failed to get report", "report_id", reportID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if report == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Report not found"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toReportResponse(*report))
	}
}
