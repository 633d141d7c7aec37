// Package stats computes dashboard statistics from a user's problem
// log. Every function here is pure: records come in as a slice already
// filtered to one owner, "now" is an explicit asOf argument, and no
// storage or clock is touched. Safe to call concurrently.
package stats

import (
	"strings"
	"time"

	"dsatrack/internal/models"
)

const (
	// DefaultStreakWindow bounds the backward day scan. This is a
	// safety limit, not a domain rule: a true streak longer than the
	// window is reported as the window size.
	DefaultStreakWindow = 30

	// DefaultWeeks is the length of the weekly progress series.
	DefaultWeeks = 7

	// OtherTopic is the label records with a blank category are
	// attributed to.
	OtherTopic = "Others"
)

// day truncates t to its UTC calendar day.
func day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func normalizeCategory(c string) string {
	if strings.TrimSpace(c) == "" {
		return OtherTopic
	}
	return c
}

// Totals returns the record count and the number of distinct topics.
// A blank category counts as OtherTopic.
func Totals(records []models.Problem) (totalProblems, totalTopics int) {
	topics := make(map[string]struct{}, len(records))
	for _, r := range records {
		topics[normalizeCategory(r.Category)] = struct{}{}
	}
	return len(records), len(topics)
}

// Streak counts consecutive calendar days ending at asOf (UTC, day
// granularity) with at least one record. The walk starts at asOf
// itself, so a day without a record breaks the chain immediately and
// the streak is 0 unless asOf has an entry. Multiple records on one
// day count once. The scan stops after window days.
func Streak(records []models.Problem, asOf time.Time, window int) int {
	if len(records) == 0 || window <= 0 {
		return 0
	}

	days := make(map[time.Time]struct{}, len(records))
	for _, r := range records {
		days[day(r.CreatedAt)] = struct{}{}
	}

	streak := 0
	today := day(asOf)
	for offset := 0; offset < window; offset++ {
		if _, ok := days[today.AddDate(0, 0, -offset)]; !ok {
			break
		}
		streak++
	}
	return streak
}

// TopicDistribution returns a histogram of records by category. Blank
// categories map to OtherTopic; topics with zero records get no entry.
func TopicDistribution(records []models.Problem) map[string]int {
	dist := make(map[string]int)
	for _, r := range records {
		dist[normalizeCategory(r.Category)]++
	}
	return dist
}

// WeeklySeries buckets records into the most recent `weeks` calendar
// weeks, oldest first, the last bucket being the week containing asOf.
// Weeks start on Sunday. The same asOf anchors every bucket so the
// buckets stay exactly 7 days apart.
func WeeklySeries(records []models.Problem, asOf time.Time, weeks int) []models.WeeklyPoint {
	points := make([]models.WeeklyPoint, 0, weeks)
	anchor := day(asOf)

	for i := weeks - 1; i >= 0; i-- {
		d := anchor.AddDate(0, 0, -i*7)
		weekStart := d.AddDate(0, 0, -int(d.Weekday())) // Sunday == 0
		weekEnd := weekStart.AddDate(0, 0, 6)

		count := 0
		for _, r := range records {
			rd := day(r.CreatedAt)
			if !rd.Before(weekStart) && !rd.After(weekEnd) {
				count++
			}
		}

		points = append(points, models.WeeklyPoint{
			Date:     weekStart.Format("2006-01-02"),
			Problems: count,
		})
	}
	return points
}

// Compute assembles the full dashboard payload using the default
// streak window and series length. weeklyGoal is caller-supplied, not
// computed.
func Compute(records []models.Problem, asOf time.Time, weeklyGoal int) models.DashboardStats {
	totalProblems, totalTopics := Totals(records)
	return models.DashboardStats{
		Stats: models.StatsSummary{
			TotalProblems:     totalProblems,
			WeeklyGoal:        weeklyGoal,
			CurrentStreakDays: Streak(records, asOf, DefaultStreakWindow),
			TotalTopics:       totalTopics,
		},
		TopicDistribution: TopicDistribution(records),
		ProgressData:      WeeklySeries(records, asOf, DefaultWeeks),
	}
}
