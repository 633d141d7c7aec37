package models

// DashboardStats is derived from a user's problem log on every request
// and never persisted.
type DashboardStats struct {
	Stats             StatsSummary   `json:"stats"`
	TopicDistribution map[string]int `json:"topicDistribution"`
	ProgressData      []WeeklyPoint  `json:"progressData"`
}

type StatsSummary struct {
	TotalProblems     int `json:"totalProblems"`
	WeeklyGoal        int `json:"weeklyGoal"`
	CurrentStreakDays int `json:"currentStreakDays"`
	TotalTopics       int `json:"totalTopics"`
}

// WeeklyPoint is one bucket of the weekly progress series. Date is the
// Sunday the week starts on, formatted YYYY-MM-DD.
type WeeklyPoint struct {
	Date     string `json:"date"`
	Problems int    `json:"problems"`
}
