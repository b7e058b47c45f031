package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetIntervalNextAfter(t *testing.T) {
	// Wednesday
	now := time.Date(2026, 10, 14, 10, 30, 15, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 10, 14, 11, 0, 0, 0, time.UTC), IntervalHourly.NextAfter(now))
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), IntervalDaily.NextAfter(now))
	assert.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), IntervalWeekly.NextAfter(now))
}

func TestResetIntervalNextAfter_SundayGoesToFollowingWeek(t *testing.T) {
	sunday := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC), IntervalWeekly.NextAfter(sunday))

	sundayNoon := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC), IntervalWeekly.NextAfter(sundayNoon))
}

func TestResetIntervalNextAfter_AlwaysInFuture(t *testing.T) {
	instants := []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 28, 23, 59, 59, 999, time.UTC),
		time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC),
	}
	for _, interval := range []ResetInterval{IntervalHourly, IntervalDaily, IntervalWeekly} {
		for _, at := range instants {
			assert.True(t, interval.NextAfter(at).After(at), "%s next after %s must be in the future", interval, at)
		}
	}
}

func TestResetIntervalNextAfter_FullIntervalAfterReset(t *testing.T) {
	// A reset that ran exactly on a boundary schedules the following one a full interval later.
	cases := map[ResetInterval]struct {
		resetAt time.Time
		gap     time.Duration
	}{
		IntervalHourly: {time.Date(2026, 10, 14, 11, 0, 0, 0, time.UTC), time.Hour},
		IntervalDaily:  {time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), 24 * time.Hour},
		IntervalWeekly: {time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), 7 * 24 * time.Hour},
	}
	for interval, tc := range cases {
		next := interval.NextAfter(tc.resetAt)
		assert.GreaterOrEqual(t, next.Sub(tc.resetAt), tc.gap, interval)
	}
}

func TestResetIntervalNextAfter_KeepsLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	now := time.Date(2026, 10, 14, 22, 15, 0, 0, loc)
	next := IntervalDaily.NextAfter(now)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, loc), next)
}

func TestParseResetInterval(t *testing.T) {
	for _, s := range []string{"hourly", "daily", "weekly"} {
		interval, err := ParseResetInterval(s)
		require.NoError(t, err)
		assert.Equal(t, ResetInterval(s), interval)
	}

	_, err := ParseResetInterval("monthly")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "monthly")
}

func TestResetIntervalCronExpression(t *testing.T) {
	assert.Equal(t, "0 * * * *", IntervalHourly.CronExpression())
	assert.Equal(t, "0 0 * * *", IntervalDaily.CronExpression())
	assert.Equal(t, "0 0 * * 0", IntervalWeekly.CronExpression())
	assert.Equal(t, "0 0 * * *", ResetInterval("bogus").CronExpression())
}

func TestParseResetActor(t *testing.T) {
	assert.Equal(t, ActorScheduled, ParseResetActor("scheduled"))
	assert.Equal(t, ActorScheduled, ParseResetActor("vercel_cron"))
	assert.Equal(t, ActorScheduled, ParseResetActor("automation_script"))
	assert.Equal(t, ActorManual, ParseResetActor("manual"))
	assert.Equal(t, ActorManual, ParseResetActor("manual_api"))
	assert.Equal(t, ActorAPI, ParseResetActor("health_check"))
	assert.Equal(t, ActorAPI, ParseResetActor(""))
}
