package models

// uniform error payload
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// response structure for GET /problems
type ProblemsResponse struct {
	Total int       `json:"total"`
	Items []Problem `json:"items"`
}

// one row of the recent-activity feed
type ActivityItem struct {
	Problem    string     `json:"problem"`
	Topic      string     `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`
	Date       string     `json:"date"`
}

type RecentActivityResponse struct {
	RecentActivity []ActivityItem `json:"recentActivity"`
}
