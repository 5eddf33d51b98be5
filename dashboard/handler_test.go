package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoptrack/model"
	"shoptrack/tracker"
)

type fakePersistence struct{}

func (fakePersistence) Load(name string, out any) error { return nil }
func (fakePersistence) Save(name string, v any) error   { return nil }

func setupTracker(t *testing.T) *tracker.Tracker {
	t.Helper()
	trk := tracker.New(fakePersistence{})
	_, err := trk.AddStore("Loja A")
	require.NoError(t, err)
	_, err = trk.AddProduct("Caneta", "2.50", "100")
	require.NoError(t, err)
	_, err = trk.RecordSale("1", "1", "10")
	require.NoError(t, err)
	return trk
}

func TestGetDashboardHandler(t *testing.T) {
	trk := setupTracker(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	GetDashboardHandler(trk)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var report model.DashboardReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.InDelta(t, 25.00, report.TotalRevenue, 0.005)
	assert.InDelta(t, 7.50, report.EstimatedProfit, 0.005)
	require.Len(t, report.Daily, 1)
	require.Len(t, report.Weekly, 1)
	require.Len(t, report.Monthly, 1)
}

func TestReportTableFragmentHandler(t *testing.T) {
	trk := setupTracker(t)

	t.Run("renders the selected period", func(t *testing.T) {
		for _, period := range []string{"daily", "weekly", "monthly"} {
			req := httptest.NewRequest(http.MethodGet, "/api/dashboard/table?period="+period, nil)
			rec := httptest.NewRecorder()
			ReportTableFragmentHandler(trk)(rec, req)

			require.Equal(t, http.StatusOK, rec.Code, period)
			assert.Contains(t, rec.Body.String(), "<tbody>", period)
			assert.Contains(t, rec.Body.String(), "R$", period)
		}
	})

	t.Run("rejects an unknown period", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/table?period=yearly", nil)
		rec := httptest.NewRecorder()
		ReportTableFragmentHandler(trk)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
