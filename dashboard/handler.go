package dashboard

import (
	"encoding/json"
	"net/http"

	"shoptrack/config"
	"shoptrack/render"
	"shoptrack/reporting"
	"shoptrack/tracker"
)

// profitMargin falls back to the fixed default until a config has been
// loaded.
func profitMargin() float64 {
	if margin := config.GetConfig().ProfitMargin; margin > 0 {
		return margin
	}
	return reporting.DefaultProfitMargin
}

// GetDashboardHandler returns the scalar totals plus the three bucket
// tables, recomputed from the current sales snapshot on every call.
func GetDashboardHandler(trk *tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := reporting.BuildDashboard(trk.Sales(), profitMargin())
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}

// ReportTableFragmentHandler returns one dashboard table as an HTML
// fragment, selected by the period query parameter.
func ReportTableFragmentHandler(trk *tracker.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := reporting.BuildDashboard(trk.Sales(), profitMargin())

		var fragment string
		switch r.URL.Query().Get("period") {
		case "daily":
			fragment = render.ReportTableHTML("Dia", report.Daily)
		case "weekly":
			fragment = render.ReportTableHTML("Semana", report.Weekly)
		case "monthly":
			fragment = render.ReportTableHTML("Mês", report.Monthly)
		default:
			http.Error(w, "period must be daily, weekly or monthly", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(fragment))
	}
}
