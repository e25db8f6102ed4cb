// Package distribution holds the sampling laws behind the generated data.
// Every function draws from an explicit rand source so a fixed seed replays
// the exact same dataset. Nothing in here knows about entities; callers map
// categories to strings.
package distribution

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/workseedhq/workseed/internal/errors"
)

// Fixed probabilities. These are modeled constants, not derived values.
const (
	// assignProbability is the chance a task gets an assignee.
	assignProbability = 0.85

	// weekendAvoidProbability is the chance a due date is shifted off a
	// weekend onto the next weekday.
	weekendAvoidProbability = 0.85

	// completionLogMean and completionLogSigma parameterize the log-normal
	// law for task completion time, in log-space days.
	completionLogMean  = 1.5
	completionLogSigma = 0.8

	// Completion durations are clamped to this range of days.
	completionMinDays = 0.5
	completionMaxDays = 30.0

	// Business hours for workday timestamps (inclusive).
	workdayFirstHour = 9
	workdayLastHour  = 17
)

// Description length categories.
const (
	DescriptionEmpty    = "empty"
	DescriptionShort    = "short"
	DescriptionDetailed = "detailed"
)

// Due date buckets.
const (
	dueNone    = "no_due_date"
	dueOverdue = "overdue"
	dueWeek    = "within_week"
	dueMonth   = "within_month"
	dueQuarter = "within_quarter"
)

var dueDateWeights = map[string]float64{
	dueNone:    0.10,
	dueOverdue: 0.05,
	dueWeek:    0.25,
	dueMonth:   0.40,
	dueQuarter: 0.20,
}

var priorityWeights = map[string]float64{
	"low":    0.25,
	"medium": 0.45,
	"high":   0.22,
	"urgent": 0.08,
}

var projectStatusWeights = map[string]float64{
	"active":    0.90,
	"completed": 0.05,
	"archived":  0.05,
}

// completionRateRanges maps a project type to the share of its tasks that
// end up completed. Unknown types fall back to defaultCompletionRange.
var completionRateRanges = map[string][2]float64{
	"sprint":     {0.70, 0.85},
	"kanban":     {0.50, 0.65},
	"campaign":   {0.60, 0.75},
	"operations": {0.40, 0.55},
}

var defaultCompletionRange = [2]float64{0.50, 0.70}

// WeightedChoice draws one key from a weight table. Masses need not sum to
// one; they are normalized internally. An empty table or one without
// positive mass is a configuration error. Keys are scanned in sorted order
// so identical seeds give identical picks regardless of map layout.
func WeightedChoice(r *rand.Rand, weights map[string]float64) (string, error) {
	if len(weights) == 0 {
		return "", errors.NewConfigError("weights", "empty weighted-choice table")
	}

	keys := make([]string, 0, len(weights))
	total := 0.0
	for key, mass := range weights {
		if mass < 0 {
			return "", errors.NewConfigError("weights", "negative mass for "+key)
		}
		keys = append(keys, key)
		total += mass
	}
	if total <= 0 {
		return "", errors.NewConfigError("weights", "no positive mass")
	}
	sort.Strings(keys)

	target := r.Float64() * total
	for _, key := range keys {
		target -= weights[key]
		if target < 0 {
			return key, nil
		}
	}
	return keys[len(keys)-1], nil
}

// mustChoice draws from one of the package's fixed tables, which are never
// empty.
func mustChoice(r *rand.Rand, weights map[string]float64) string {
	choice, err := WeightedChoice(r, weights)
	if err != nil {
		panic(err)
	}
	return choice
}

// Priority draws a task priority: low, medium, high or urgent.
func Priority(r *rand.Rand) string {
	return mustChoice(r, priorityWeights)
}

// ProjectStatus draws a project status: active, completed or archived.
func ProjectStatus(r *rand.Rand) string {
	return mustChoice(r, projectStatusWeights)
}

// CompletionRate draws the fraction of a project's tasks to complete,
// uniform within the range configured for the project type.
func CompletionRate(r *rand.Rand, projectType string) float64 {
	bounds, ok := completionRateRanges[projectType]
	if !ok {
		bounds = defaultCompletionRange
	}
	return bounds[0] + r.Float64()*(bounds[1]-bounds[0])
}

// DueDate draws a due date relative to now, or nil for no due date.
// Outcomes bucket into overdue (now minus 1..14 days), within a week
// (plus 1..7), within a month (plus 8..30) or within a quarter (plus
// 31..90); most results are then shifted off weekends.
func DueDate(r *rand.Rand, now time.Time) *time.Time {
	var due time.Time
	switch mustChoice(r, dueDateWeights) {
	case dueNone:
		return nil
	case dueOverdue:
		due = now.AddDate(0, 0, -(1 + r.Intn(14)))
	case dueWeek:
		due = now.AddDate(0, 0, 1+r.Intn(7))
	case dueMonth:
		due = now.AddDate(0, 0, 8+r.Intn(23))
	default:
		due = now.AddDate(0, 0, 31+r.Intn(60))
	}

	if r.Float64() < weekendAvoidProbability {
		for isWeekend(due) {
			due = due.AddDate(0, 0, 1)
		}
	}
	return &due
}

// CompletionTime draws how long a task took: a log-normal duration in days
// clamped to [0.5, 30], added to created. Results past now are replaced by
// a recent past timestamp, never earlier than created.
func CompletionTime(r *rand.Rand, created, now time.Time) time.Time {
	days := math.Exp(completionLogMean + completionLogSigma*r.NormFloat64())
	if days < completionMinDays {
		days = completionMinDays
	}
	if days > completionMaxDays {
		days = completionMaxDays
	}

	completed := created.Add(time.Duration(days * 24 * float64(time.Hour)))
	if completed.After(now) {
		completed = now.Add(-time.Duration(1+r.Intn(48)) * time.Hour)
		if completed.Before(created) {
			completed = created
		}
	}
	return completed
}

// WorkdayTimestamp draws a business-hours timestamp: a uniform date within
// [start, end] with weekends shifted to the next Monday, an hour in 9..17
// and uniform minute and second.
func WorkdayTimestamp(r *rand.Rand, start, end time.Time) time.Time {
	if end.Before(start) {
		end = start
	}

	day := start.AddDate(0, 0, r.Intn(daysBetween(start, end)+1))
	for isWeekend(day) {
		day = day.AddDate(0, 0, 1)
	}

	return time.Date(
		day.Year(), day.Month(), day.Day(),
		workdayFirstHour+r.Intn(workdayLastHour-workdayFirstHour+1),
		r.Intn(60), r.Intn(60), 0,
		day.Location(),
	)
}

// ShouldAssign reports whether a task receives an assignee (85%).
func ShouldAssign(r *rand.Rand) bool {
	return r.Float64() < assignProbability
}

// DescriptionKind draws a description length category: 20% empty, 50%
// short, 30% detailed.
func DescriptionKind(r *rand.Rand) string {
	draw := r.Float64()
	switch {
	case draw < 0.20:
		return DescriptionEmpty
	case draw < 0.70:
		return DescriptionShort
	default:
		return DescriptionDetailed
	}
}

func isWeekend(t time.Time) bool {
	weekday := t.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

func daysBetween(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}
