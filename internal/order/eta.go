package order

import (
	"fmt"
	"math/rand"
	"time"
)

// ETAConfig bounds the pseudo-random delivery estimate. WeekendDelay is added
// on top of the draw when the order lands on a Saturday or Sunday.
type ETAConfig struct {
	MinDays      int
	MaxDays      int
	WeekendDelay int
}

func DefaultETAConfig() ETAConfig {
	return ETAConfig{
		MinDays:      2,
		MaxDays:      5,
		WeekendDelay: 1,
	}
}

const etaDateFormat = "Monday, 2 January 2006"

// GenerateETA draws one uniform integer in [MinDays, MaxDays] and derives all
// four fields from that single draw; the estimate is never re-drawn between
// fields.
func GenerateETA(now time.Time, rng *rand.Rand, conf ETAConfig) ETA {
	days := conf.MinDays + rng.Intn(conf.MaxDays-conf.MinDays+1)

	if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
		days += conf.WeekendDelay
	}

	date := now.AddDate(0, 0, days)

	relative := fmt.Sprintf("%d days", days)
	if days == 1 {
		relative = "Tomorrow"
	}

	return ETA{
		Date:        date,
		DateString:  date.Format(etaDateFormat),
		DaysFromNow: days,
		Relative:    relative,
	}
}
