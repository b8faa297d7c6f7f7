package trace

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// TimeSpan bounds one operation's execution.
type TimeSpan = timespan.TimeSpan

func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}
