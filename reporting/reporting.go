package reporting

import (
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"shoptrack/model"
)

// DefaultProfitMargin is the assumed margin applied to revenue. Profit
// is an estimate over the whole bucket, not derived from per-product
// cost.
const DefaultProfitMargin = 0.30

// buckets accumulates revenue per key, remembering first-occurrence
// order. Bucket order follows the order sales were recorded, not the
// calendar; that is the documented behavior of the report tables.
type buckets struct {
	keys    []string
	revenue map[string]float64
}

func newBuckets() *buckets {
	return &buckets{revenue: make(map[string]float64)}
}

func (b *buckets) add(key string, amount float64) {
	if _, seen := b.revenue[key]; !seen {
		b.keys = append(b.keys, key)
	}
	b.revenue[key] += amount
}

func (b *buckets) rows(margin float64) []model.ReportRow {
	rows := make([]model.ReportRow, 0, len(b.keys))
	for _, key := range b.keys {
		revenue := b.revenue[key]
		rows = append(rows, model.ReportRow{
			Key:     key,
			Revenue: revenue,
			Profit:  revenue * margin,
		})
	}
	return rows
}

// BuildDashboard folds a snapshot of the sales sequence into the three
// bucketed tables plus the scalar totals. It is stateless and
// recomputed on every dashboard refresh.
func BuildDashboard(sales []model.Sale, margin float64) model.DashboardReport {
	daily := newBuckets()
	weekly := newBuckets()
	monthly := newBuckets()

	var totalRevenue float64
	for _, sale := range sales {
		totalRevenue += sale.Total

		// The daily key is the date portion of the timestamp exactly
		// as stored.
		day, _, _ := strings.Cut(sale.Date, "T")
		daily.add(day, sale.Total)

		// Weekly and monthly buckets need a real calendar date. The
		// timestamp is kept in its own zone; a sale recorded as
		// 2024-01-31T23:00:00Z stays in January.
		ts, err := time.Parse(time.RFC3339, sale.Date)
		if err != nil {
			log.Warnf("sale dated %q skipped by weekly/monthly buckets: %v", sale.Date, err)
			continue
		}
		weekly.add(weekKey(ts), sale.Total)
		monthly.add(ts.Format("2006-01"), sale.Total)
	}

	return model.DashboardReport{
		TotalRevenue:    totalRevenue,
		EstimatedProfit: totalRevenue * margin,
		Daily:           daily.rows(margin),
		Weekly:          weekly.rows(margin),
		Monthly:         monthly.rows(margin),
	}
}

// weekKey labels the Monday-start week containing ts as
// "DD/MM/YYYY - DD/MM/YYYY". Sales merge on the formatted string.
func weekKey(ts time.Time) string {
	offset := (int(ts.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	start := ts.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return start.Format("02/01/2006") + " - " + end.Format("02/01/2006")
}
