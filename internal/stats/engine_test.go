package stats_test

import (
	"reflect"
	"testing"
	"time"

	"dsatrack/internal/models"
	"dsatrack/internal/stats"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func record(t *testing.T, category, createdAt string) models.Problem {
	t.Helper()
	return models.Problem{
		Title:      "test",
		Category:   category,
		Difficulty: models.Easy,
		CreatedAt:  mustDate(t, createdAt),
	}
}

func TestTotals_Empty(t *testing.T) {
	total, topics := stats.Totals(nil)
	if total != 0 || topics != 0 {
		t.Fatalf("expected 0/0, got %d/%d", total, topics)
	}
}

func TestTotals_BlankCategoryCountsAsOthers(t *testing.T) {
	records := []models.Problem{
		record(t, "Arrays", "2024-02-05T10:00:00Z"),
		record(t, "", "2024-02-05T11:00:00Z"),
		record(t, "  ", "2024-02-05T12:00:00Z"),
	}
	total, topics := stats.Totals(records)
	if total != 3 {
		t.Fatalf("expected 3 problems, got %d", total)
	}
	// Arrays + Others
	if topics != 2 {
		t.Fatalf("expected 2 topics, got %d", topics)
	}
}

func TestTotals_ManyRecords(t *testing.T) {
	var records []models.Problem
	for _, c := range []struct {
		category string
		n        int
	}{{"Arrays", 60}, {"Trees", 40}, {"Strings", 50}} {
		for i := 0; i < c.n; i++ {
			records = append(records, record(t, c.category, "2024-02-05T10:00:00Z"))
		}
	}

	total, topics := stats.Totals(records)
	if total != 150 {
		t.Fatalf("expected 150 problems, got %d", total)
	}
	if topics != 3 {
		t.Fatalf("expected 3 topics, got %d", topics)
	}

	sum := 0
	for _, n := range stats.TopicDistribution(records) {
		sum += n
	}
	if sum != 150 {
		t.Fatalf("distribution sums to %d, want 150", sum)
	}
}

func TestStreak_Empty(t *testing.T) {
	asOf := mustDate(t, "2024-02-12T15:04:05Z")
	if got := stats.Streak(nil, asOf, stats.DefaultStreakWindow); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestStreak_TodayAndYesterday(t *testing.T) {
	asOf := mustDate(t, "2024-02-12T15:04:05Z")
	records := []models.Problem{
		record(t, "Arrays", "2024-02-12T01:00:00Z"),
		record(t, "Trees", "2024-02-11T23:59:59Z"),
	}
	if got := stats.Streak(records, asOf, stats.DefaultStreakWindow); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestStreak_ZeroWithoutRecordToday(t *testing.T) {
	asOf := mustDate(t, "2024-02-12T15:04:05Z")
	records := []models.Problem{
		record(t, "Arrays", "2024-02-11T10:00:00Z"),
	}
	if got := stats.Streak(records, asOf, stats.DefaultStreakWindow); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestStreak_DuplicateDaysCountOnce(t *testing.T) {
	asOf := mustDate(t, "2024-02-12T15:04:05Z")
	records := []models.Problem{
		record(t, "Arrays", "2024-02-12T08:00:00Z"),
		record(t, "Trees", "2024-02-12T20:00:00Z"),
	}
	if got := stats.Streak(records, asOf, stats.DefaultStreakWindow); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestStreak_CappedByWindow(t *testing.T) {
	asOf := mustDate(t, "2024-03-01T12:00:00Z")
	var records []models.Problem
	for i := 0; i < 40; i++ {
		records = append(records, models.Problem{
			Title:      "daily",
			Category:   "Arrays",
			Difficulty: models.Easy,
			CreatedAt:  asOf.AddDate(0, 0, -i),
		})
	}
	if got := stats.Streak(records, asOf, 30); got != 30 {
		t.Fatalf("expected streak capped at 30, got %d", got)
	}
}

func TestStreak_BrokenByGap(t *testing.T) {
	// Records on Feb 5, 6 and 12; nothing on Feb 11, so the streak as
	// of Feb 12 is just that day.
	asOf := mustDate(t, "2024-02-12T18:00:00Z")
	records := []models.Problem{
		record(t, "Arrays", "2024-02-05T10:00:00Z"),
		record(t, "Trees", "2024-02-06T10:00:00Z"),
		record(t, "Strings", "2024-02-12T10:00:00Z"),
	}
	if got := stats.Streak(records, asOf, stats.DefaultStreakWindow); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if total, _ := stats.Totals(records); total != 3 {
		t.Fatalf("expected 3 problems, got %d", total)
	}
}

func TestTopicDistribution_Empty(t *testing.T) {
	if got := stats.TopicDistribution(nil); len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

func TestTopicDistribution_BlankToOthers(t *testing.T) {
	records := []models.Problem{
		record(t, "Arrays", "2024-02-05T10:00:00Z"),
		record(t, "Arrays", "2024-02-06T10:00:00Z"),
		record(t, "", "2024-02-07T10:00:00Z"),
	}
	got := stats.TopicDistribution(records)
	want := map[string]int{"Arrays": 2, "Others": 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWeeklySeries_EmptyInputStillSevenPoints(t *testing.T) {
	asOf := mustDate(t, "2024-02-12T12:00:00Z")
	points := stats.WeeklySeries(nil, asOf, stats.DefaultWeeks)
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	for _, p := range points {
		if p.Problems != 0 {
			t.Fatalf("expected all-zero counts, got %v", points)
		}
	}
}

func TestWeeklySeries_BucketsSevenDaysApartOldestFirst(t *testing.T) {
	asOf := mustDate(t, "2024-02-12T12:00:00Z")
	points := stats.WeeklySeries(nil, asOf, stats.DefaultWeeks)

	var prev time.Time
	for i, p := range points {
		d, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			t.Fatalf("bad date %q: %v", p.Date, err)
		}
		if d.Weekday() != time.Sunday {
			t.Fatalf("point %d starts on %s, want Sunday", i, d.Weekday())
		}
		if i > 0 && d.Sub(prev) != 7*24*time.Hour {
			t.Fatalf("points %d and %d are %v apart, want 168h", i-1, i, d.Sub(prev))
		}
		prev = d
	}

	// Last bucket contains asOf.
	last, _ := time.Parse("2006-01-02", points[len(points)-1].Date)
	if asOf.Before(last) || !asOf.Before(last.AddDate(0, 0, 7)) {
		t.Fatalf("asOf %v not inside last bucket starting %v", asOf, last)
	}
}

func TestWeeklySeries_CountsFallInCorrectBucket(t *testing.T) {
	// 2024-02-12 is a Monday; its week starts Sunday 2024-02-11.
	asOf := mustDate(t, "2024-02-12T12:00:00Z")
	records := []models.Problem{
		record(t, "Arrays", "2024-02-12T01:00:00Z"),  // current week
		record(t, "Arrays", "2024-02-11T23:00:00Z"),  // current week (Sunday)
		record(t, "Trees", "2024-02-10T10:00:00Z"),   // previous week (Saturday)
		record(t, "Strings", "2023-12-01T10:00:00Z"), // outside the series
	}
	points := stats.WeeklySeries(records, asOf, stats.DefaultWeeks)

	if got := points[len(points)-1]; got.Date != "2024-02-11" || got.Problems != 2 {
		t.Fatalf("last bucket = %+v, want 2024-02-11 with 2", got)
	}
	if got := points[len(points)-2]; got.Date != "2024-02-04" || got.Problems != 1 {
		t.Fatalf("second-to-last bucket = %+v, want 2024-02-04 with 1", got)
	}
	total := 0
	for _, p := range points {
		total += p.Problems
	}
	if total != 3 {
		t.Fatalf("series counted %d records, want 3", total)
	}
}

func TestCompute_AssemblesPayload(t *testing.T) {
	asOf := mustDate(t, "2024-02-12T12:00:00Z")
	records := []models.Problem{
		record(t, "Arrays", "2024-02-12T01:00:00Z"),
		record(t, "", "2024-02-11T10:00:00Z"),
	}

	got := stats.Compute(records, asOf, 100)

	if got.Stats.TotalProblems != 2 || got.Stats.TotalTopics != 2 {
		t.Fatalf("unexpected totals: %+v", got.Stats)
	}
	if got.Stats.WeeklyGoal != 100 {
		t.Fatalf("weekly goal = %d, want 100", got.Stats.WeeklyGoal)
	}
	if got.Stats.CurrentStreakDays != 2 {
		t.Fatalf("streak = %d, want 2", got.Stats.CurrentStreakDays)
	}
	if got.TopicDistribution["Others"] != 1 {
		t.Fatalf("distribution = %v", got.TopicDistribution)
	}
	if len(got.ProgressData) != stats.DefaultWeeks {
		t.Fatalf("progress data has %d points", len(got.ProgressData))
	}
}

func TestEngine_Idempotent(t *testing.T) {
	asOf := mustDate(t, "2024-02-12T12:00:00Z")
	records := []models.Problem{
		record(t, "Arrays", "2024-02-12T01:00:00Z"),
		record(t, "Trees", "2024-02-09T10:00:00Z"),
	}

	first := stats.Compute(records, asOf, 100)
	second := stats.Compute(records, asOf, 100)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ:\n%+v\n%+v", first, second)
	}
}
