package dto

type DashboardSummaryResponse struct {
	Date              string `json:"date"`
	Total             int    `json:"total"`
	Delivery          int    `json:"delivery"`
	Receiving         int    `json:"receiving"`
	Waiting           int    `json:"waiting"`
	Processing        int    `json:"processing"`
	Done              int    `json:"done"`
	Cancelled         int    `json:"cancelled"`
	AvgProcessMinutes int    `json:"avgProcessMinutes"`
	OverSlaPercent    int    `json:"overSlaPercent"`
}

type DashboardHourlyItem struct {
	Hour      string `json:"hour"`
	Total     int    `json:"total"`
	Receiving int    `json:"receiving"`
	Delivery  int    `json:"delivery"`
}

type DashboardHourlyResponse struct {
	Date  string                `json:"date"`
	Items []DashboardHourlyItem `json:"items"`
}

type DashboardStatusItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type DashboardStatusResponse struct {
	Date  string                `json:"date"`
	Items []DashboardStatusItem `json:"items"`
}
