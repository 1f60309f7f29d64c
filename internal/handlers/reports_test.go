package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wipetrack/erasure-api/internal/models"
)

func reportsRouter(reports ReportReader, router TenantRouter) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/reports", NewListReportsHandler(reports, router))
	r.Get("/reports/{id}", NewGetReportHandler(reports, router))
	return r
}

func TestListReportsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := NewMockReportReader(ctrl)
	router := NewMockTenantRouter(ctrl)

	startedAt := time.Date(2025, 11, 24, 5, 7, 11, 389539600, time.UTC)
	completedAt := startedAt.Add(42 * time.Minute)

	router.EXPECT().EffectiveEmail(gomock.Any()).Return("owner@example.com")
	reports.EXPECT().
		ListByEmail(gomock.Any(), "owner@example.com", 100).
		Return([]models.ErasureReportDB{
			{
				ReportID:     1,
				Email:        "owner@example.com",
				DeviceSerial: "SN-001",
				Method:       "nist-purge",
				Status:       models.ReportStatusCompleted,
				StartedAt:    startedAt,
				CompletedAt:  &completedAt,
			},
			{
				ReportID:     2,
				Email:        "owner@example.com",
				DeviceSerial: "SN-002",
				Method:       "nist-clear",
				Status:       models.ReportStatusRunning,
				StartedAt:    startedAt,
			},
		}, nil)

	rr := httptest.NewRecorder()
	reportsRouter(reports, router).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []ReportResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 2)

	// Timestamps cross the wire in the canonical UTC format.
	assert.Equal(t, "2025-11-24T05:07:11.3895396Z", resp[0].StartedAt)
	require.NotNil(t, resp[0].CompletedAt)
	assert.Equal(t, "2025-11-24T05:49:11.3895396Z", *resp[0].CompletedAt)
	assert.Nil(t, resp[1].CompletedAt)
}

func TestListReportsHandler_LimitParameter(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{name: "default limit", query: "", wantLimit: 100},
		{name: "custom limit", query: "?limit=10", wantLimit: 10},
		{name: "limit above the cap falls back", query: "?limit=5000", wantLimit: 100},
		{name: "non-numeric limit falls back", query: "?limit=abc", wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reports := NewMockReportReader(ctrl)
			router := NewMockTenantRouter(ctrl)

			router.EXPECT().EffectiveEmail(gomock.Any()).Return("owner@example.com")
			reports.EXPECT().
				ListByEmail(gomock.Any(), "owner@example.com", tt.wantLimit).
				Return([]models.ErasureReportDB{}, nil)

			rr := httptest.NewRecorder()
			reportsRouter(reports, router).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports"+tt.query, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestListReportsHandler_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := NewMockReportReader(ctrl)
	router := NewMockTenantRouter(ctrl)

	router.EXPECT().EffectiveEmail(gomock.Any()).Return("owner@example.com")
	reports.EXPECT().
		ListByEmail(gomock.Any(), "owner@example.com", 100).
		Return(nil, errors.New("tenant database unavailable"))

	rr := httptest.NewRecorder()
	reportsRouter(reports, router).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetReportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := NewMockReportReader(ctrl)
	router := NewMockTenantRouter(ctrl)

	startedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	router.EXPECT().EffectiveEmail(gomock.Any()).Return("owner@example.com")
	reports.EXPECT().
		GetByID(gomock.Any(), "owner@example.com", int64(5)).
		Return(&models.ErasureReportDB{
			ReportID:     5,
			Email:        "owner@example.com",
			DeviceSerial: "SN-005",
			Method:       "nist-purge",
			Status:       models.ReportStatusRunning,
			StartedAt:    startedAt,
		}, nil)

	rr := httptest.NewRecorder()
	reportsRouter(reports, router).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports/5", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ReportResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ReportID)
	assert.Equal(t, "2025-03-01T10:00:00.0000000Z", resp.StartedAt)
}

func TestGetReportHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := NewMockReportReader(ctrl)
	router := NewMockTenantRouter(ctrl)

	router.EXPECT().EffectiveEmail(gomock.Any()).Return("owner@example.com")
	reports.EXPECT().GetByID(gomock.Any(), "owner@example.com", int64(99)).Return(nil, nil)

	rr := httptest.NewRecorder()
	reportsRouter(reports, router).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports/99", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetReportHandler_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reports := NewMockReportReader(ctrl)
	router := NewMockTenantRouter(ctrl)

	rr := httptest.NewRecorder()
	reportsRouter(reports, router).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
