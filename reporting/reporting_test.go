package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoptrack/model"
)

func saleOn(date string, total float64) model.Sale {
	return model.Sale{Total: total, Date: date}
}

func TestBuildDashboardTotals(t *testing.T) {
	sales := []model.Sale{
		saleOn("2024-01-01T10:00:00Z", 25.00),
		saleOn("2024-01-02T11:00:00Z", 10.50),
		saleOn("2024-02-10T09:30:00Z", 4.25),
	}

	report := BuildDashboard(sales, DefaultProfitMargin)

	assert.InDelta(t, 39.75, report.TotalRevenue, 0.005)
	assert.InDelta(t, 39.75*0.30, report.EstimatedProfit, 0.005)
}

func TestBuildDashboardEmpty(t *testing.T) {
	report := BuildDashboard(nil, DefaultProfitMargin)

	assert.Zero(t, report.TotalRevenue)
	assert.Zero(t, report.EstimatedProfit)
	assert.Empty(t, report.Daily)
	assert.Empty(t, report.Weekly)
	assert.Empty(t, report.Monthly)
}

func TestDailyBucketsKeepFirstOccurrenceOrder(t *testing.T) {
	// Sales recorded out of calendar order: bucket order follows the
	// order of first occurrence, not the calendar.
	sales := []model.Sale{
		saleOn("2024-01-02T08:00:00Z", 1),
		saleOn("2024-01-01T08:00:00Z", 2),
		saleOn("2024-01-02T18:00:00Z", 4),
	}

	report := BuildDashboard(sales, DefaultProfitMargin)

	require.Len(t, report.Daily, 2)
	assert.Equal(t, "2024-01-02", report.Daily[0].Key)
	assert.InDelta(t, 5.0, report.Daily[0].Revenue, 0.005)
	assert.InDelta(t, 1.5, report.Daily[0].Profit, 0.005)
	assert.Equal(t, "2024-01-01", report.Daily[1].Key)
	assert.InDelta(t, 2.0, report.Daily[1].Revenue, 0.005)
}

func TestWeeklyBucketSpansMondayToSunday(t *testing.T) {
	// Monday 2024-01-01 and Sunday 2024-01-07 share a week.
	sales := []model.Sale{
		saleOn("2024-01-01T10:00:00Z", 10),
		saleOn("2024-01-07T23:00:00Z", 5),
		saleOn("2024-01-08T00:30:00Z", 7), // next Monday
	}

	report := BuildDashboard(sales, DefaultProfitMargin)

	require.Len(t, report.Weekly, 2)
	assert.Equal(t, "01/01/2024 - 07/01/2024", report.Weekly[0].Key)
	assert.InDelta(t, 15.0, report.Weekly[0].Revenue, 0.005)
	assert.Equal(t, "08/01/2024 - 14/01/2024", report.Weekly[1].Key)
}

func TestWeeklyBucketCrossesMonthBoundary(t *testing.T) {
	// Wednesday 2024-01-31 belongs to the week of Monday 2024-01-29,
	// which ends in February.
	report := BuildDashboard([]model.Sale{saleOn("2024-01-31T12:00:00Z", 3)}, DefaultProfitMargin)

	require.Len(t, report.Weekly, 1)
	assert.Equal(t, "29/01/2024 - 04/02/2024", report.Weekly[0].Key)
}

func TestMonthlyBucketUsesTimestampZone(t *testing.T) {
	// Both sales stay in January regardless of the host timezone.
	sales := []model.Sale{
		saleOn("2024-01-15T10:00:00Z", 1),
		saleOn("2024-01-31T23:00:00Z", 2),
	}

	report := BuildDashboard(sales, DefaultProfitMargin)

	require.Len(t, report.Monthly, 1)
	assert.Equal(t, "2024-01", report.Monthly[0].Key)
	assert.InDelta(t, 3.0, report.Monthly[0].Revenue, 0.005)
}

func TestUnparseableDateStaysInTotalsAndDaily(t *testing.T) {
	sales := []model.Sale{
		saleOn("2024-01-01T10:00:00Z", 10),
		saleOn("not-a-date", 5),
	}

	report := BuildDashboard(sales, DefaultProfitMargin)

	assert.InDelta(t, 15.0, report.TotalRevenue, 0.005)
	require.Len(t, report.Daily, 2)
	assert.Equal(t, "not-a-date", report.Daily[1].Key)
	assert.Len(t, report.Weekly, 1)
	assert.Len(t, report.Monthly, 1)
}

func TestEndToEndScenario(t *testing.T) {
	// Loja A sells 10 Canetas at R$ 2.50.
	sales := []model.Sale{{
		StoreID:     1,
		StoreName:   "Loja A",
		ProductID:   1,
		ProductName: "Caneta",
		Price:       2.50,
		Quantity:    10,
		Total:       25.00,
		Date:        "2024-01-01T10:00:00Z",
	}}

	report := BuildDashboard(sales, DefaultProfitMargin)

	assert.InDelta(t, 25.00, report.TotalRevenue, 0.005)
	assert.InDelta(t, 7.50, report.EstimatedProfit, 0.005)
	require.Len(t, report.Daily, 1)
	assert.Equal(t, "2024-01-01", report.Daily[0].Key)
	require.Len(t, report.Weekly, 1)
	assert.Equal(t, "01/01/2024 - 07/01/2024", report.Weekly[0].Key)
	require.Len(t, report.Monthly, 1)
	assert.Equal(t, "2024-01", report.Monthly[0].Key)
}

func TestWeekKeyOffsets(t *testing.T) {
	// Every weekday of the first ISO week of 2024 maps to the same key.
	days := []string{"01", "02", "03", "04", "05", "06", "07"}
	for _, day := range days {
		var sale = saleOn("2024-01-"+day+"T12:00:00Z", 1)
		report := BuildDashboard([]model.Sale{sale}, DefaultProfitMargin)
		require.Len(t, report.Weekly, 1, "day %s", day)
		assert.Equal(t, "01/01/2024 - 07/01/2024", report.Weekly[0].Key, "day %s", day)
	}
}
