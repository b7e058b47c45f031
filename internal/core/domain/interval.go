package domain

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ResetInterval is how often the demo data is restored.
type ResetInterval string

const (
	IntervalHourly ResetInterval = "hourly"
	IntervalDaily  ResetInterval = "daily"
	IntervalWeekly ResetInterval = "weekly"
)

var intervalCronExpressions = map[ResetInterval]string{
	IntervalHourly: "0 * * * *", // top of every hour
	IntervalDaily:  "0 0 * * *", // midnight
	IntervalWeekly: "0 0 * * 0", // Sunday midnight
}

var intervalSchedules = func() map[ResetInterval]cron.Schedule {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedules := make(map[ResetInterval]cron.Schedule, len(intervalCronExpressions))
	for interval, expr := range intervalCronExpressions {
		schedule, err := parser.Parse(expr)
		if err != nil {
			panic(fmt.Sprintf("invalid cron expression %q for %s: %v", expr, interval, err))
		}
		schedules[interval] = schedule
	}
	return schedules
}()

// ParseResetInterval validates s against the known intervals.
func ParseResetInterval(s string) (ResetInterval, error) {
	interval := ResetInterval(s)
	if _, ok := intervalCronExpressions[interval]; !ok {
		return "", fmt.Errorf("unknown reset interval %q (expected hourly, daily or weekly)", s)
	}
	return interval, nil
}

// CronExpression returns the standard five field expression for the interval.
// Unknown intervals fall back to daily.
func (i ResetInterval) CronExpression() string {
	if expr, ok := intervalCronExpressions[i]; ok {
		return expr
	}
	return intervalCronExpressions[IntervalDaily]
}

// NextAfter returns the first reset boundary strictly after t, in t's location.
func (i ResetInterval) NextAfter(t time.Time) time.Time {
	schedule, ok := intervalSchedules[i]
	if !ok {
		schedule = intervalSchedules[IntervalDaily]
	}
	return schedule.Next(t)
}
