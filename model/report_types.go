package model

// ReportRow is one aggregated dashboard bucket: a day, a week range or
// a month, with the revenue of its sales and the estimated profit.
type ReportRow struct {
	Key     string  `json:"key"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

type DashboardReport struct {
	TotalRevenue    float64     `json:"totalRevenue"`
	EstimatedProfit float64     `json:"estimatedProfit"`
	Daily           []ReportRow `json:"daily"`
	Weekly          []ReportRow `json:"weekly"`
	Monthly         []ReportRow `json:"monthly"`
}
