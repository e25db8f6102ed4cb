package distribution

import (
	stderrors "errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workseedhq/workseed/internal/errors"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestWeightedChoiceEmptyTable(t *testing.T) {
	_, err := WeightedChoice(newRand(1), map[string]float64{})
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	assert.True(t, stderrors.As(err, &cfgErr))
}

func TestWeightedChoiceNoPositiveMass(t *testing.T) {
	_, err := WeightedChoice(newRand(1), map[string]float64{"a": 0, "b": 0})
	require.Error(t, err)

	_, err = WeightedChoice(newRand(1), map[string]float64{"a": -1, "b": 2})
	require.Error(t, err)
}

func TestWeightedChoiceCertainOutcome(t *testing.T) {
	r := newRand(7)
	for i := 0; i < 100; i++ {
		choice, err := WeightedChoice(r, map[string]float64{"only": 3.5, "never": 0})
		require.NoError(t, err)
		assert.Equal(t, "only", choice)
	}
}

func TestWeightedChoiceUnnormalizedMasses(t *testing.T) {
	// Masses sum to 40, not 1; distribution must still roughly follow them.
	weights := map[string]float64{"common": 30, "rare": 10}
	r := newRand(42)

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		choice, err := WeightedChoice(r, weights)
		require.NoError(t, err)
		counts[choice]++
	}

	assert.InDelta(t, 0.75, float64(counts["common"])/10000, 0.03)
}

func TestWeightedChoiceDeterministic(t *testing.T) {
	weights := map[string]float64{"a": 1, "b": 2, "c": 3}

	first := make([]string, 50)
	second := make([]string, 50)
	r1, r2 := newRand(99), newRand(99)
	for i := range first {
		first[i], _ = WeightedChoice(r1, weights)
		second[i], _ = WeightedChoice(r2, weights)
	}

	assert.Equal(t, first, second)
}

func TestPriorityValues(t *testing.T) {
	valid := map[string]bool{"low": true, "medium": true, "high": true, "urgent": true}
	r := newRand(5)
	for i := 0; i < 200; i++ {
		assert.True(t, valid[Priority(r)])
	}
}

func TestProjectStatusValues(t *testing.T) {
	valid := map[string]bool{"active": true, "completed": true, "archived": true}
	r := newRand(5)
	counts := map[string]int{}
	for i := 0; i < 2000; i++ {
		status := ProjectStatus(r)
		assert.True(t, valid[status])
		counts[status]++
	}
	// Active carries 90% of the mass.
	assert.Greater(t, counts["active"], 1600)
}

func TestCompletionRateRanges(t *testing.T) {
	cases := []struct {
		projectType string
		lo, hi      float64
	}{
		{"sprint", 0.70, 0.85},
		{"kanban", 0.50, 0.65},
		{"campaign", 0.60, 0.75},
		{"operations", 0.40, 0.55},
		{"something_else", 0.50, 0.70},
	}

	r := newRand(11)
	for _, tc := range cases {
		for i := 0; i < 100; i++ {
			rate := CompletionRate(r, tc.projectType)
			assert.GreaterOrEqual(t, rate, tc.lo, tc.projectType)
			assert.Less(t, rate, tc.hi, tc.projectType)
		}
	}
}

func TestDueDateBuckets(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	r := newRand(23)

	sawNil := false
	sawOverdue := false
	for i := 0; i < 1000; i++ {
		due := DueDate(r, now)
		if due == nil {
			sawNil = true
			continue
		}
		if due.Before(now) {
			sawOverdue = true
			// Overdue dates stay within two weeks back (weekend shifts
			// only move forward).
			assert.True(t, due.After(now.AddDate(0, 0, -15)))
		} else {
			// Forward dates cap at a quarter plus at most a two-day
			// weekend shift.
			assert.True(t, due.Before(now.AddDate(0, 0, 93)))
		}
	}

	assert.True(t, sawNil)
	assert.True(t, sawOverdue)
}

func TestDueDateMostlyAvoidsWeekends(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	r := newRand(31)

	total, weekend := 0, 0
	for i := 0; i < 2000; i++ {
		due := DueDate(r, now)
		if due == nil {
			continue
		}
		total++
		if isWeekend(*due) {
			weekend++
		}
	}

	// 2/7 of raw draws land on a weekend and 15% of those stay put.
	assert.Less(t, float64(weekend)/float64(total), 0.10)
}

func TestCompletionTimeBounds(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	created := now.AddDate(0, 0, -20)
	r := newRand(17)

	for i := 0; i < 500; i++ {
		completed := CompletionTime(r, created, now)
		assert.False(t, completed.Before(created))
		assert.False(t, completed.After(now))
	}
}

func TestCompletionTimeRecentCreation(t *testing.T) {
	// A task created an hour ago must still complete between creation and
	// now even though the fallback window reaches back two days.
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	created := now.Add(-time.Hour)
	r := newRand(3)

	for i := 0; i < 500; i++ {
		completed := CompletionTime(r, created, now)
		assert.False(t, completed.Before(created))
		assert.False(t, completed.After(now))
	}
}

func TestWorkdayTimestamp(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	r := newRand(13)

	for i := 0; i < 500; i++ {
		ts := WorkdayTimestamp(r, start, end)
		assert.False(t, isWeekend(ts))
		assert.GreaterOrEqual(t, ts.Hour(), 9)
		assert.LessOrEqual(t, ts.Hour(), 17)
		assert.False(t, ts.Before(start))
		// Weekend shift may overrun the end by up to two days.
		assert.True(t, ts.Before(end.AddDate(0, 0, 3)))
	}
}

func TestWorkdayTimestampDegenerateRange(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC) // a Monday
	r := newRand(13)

	ts := WorkdayTimestamp(r, start, start.AddDate(0, 0, -5))
	assert.Equal(t, start.Day(), ts.Day())
}

func TestShouldAssignRatio(t *testing.T) {
	r := newRand(29)
	assigned := 0
	for i := 0; i < 10000; i++ {
		if ShouldAssign(r) {
			assigned++
		}
	}
	assert.InDelta(t, 0.85, float64(assigned)/10000, 0.02)
}

func TestDescriptionKindSplit(t *testing.T) {
	r := newRand(37)
	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		kind := DescriptionKind(r)
		counts[kind]++
	}

	assert.InDelta(t, 0.20, float64(counts[DescriptionEmpty])/10000, 0.02)
	assert.InDelta(t, 0.50, float64(counts[DescriptionShort])/10000, 0.02)
	assert.InDelta(t, 0.30, float64(counts[DescriptionDetailed])/10000, 0.02)
}
