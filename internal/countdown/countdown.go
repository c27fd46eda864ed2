// Package countdown computes the time left until a yearly date.
package countdown

import (
	"fmt"
	"time"
)

// Remaining is a non-negative split of a duration into calendar units.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Until returns the time from now to the next local midnight of month/day.
// Once the date has been reached in now's year the target rolls to next year.
func Until(now time.Time, month time.Month, day int) Remaining {
	target := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	if !target.After(now) {
		target = time.Date(now.Year()+1, month, day, 0, 0, 0, 0, now.Location())
	}
	return Split(target.Sub(now))
}

// Split breaks d into days, hours, minutes and whole seconds.
// Negative durations yield zero.
func Split(d time.Duration) Remaining {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return Remaining{
		Days:    total / 86400,
		Hours:   total % 86400 / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}

func (r Remaining) String() string {
	return fmt.Sprintf("%dd %dh %dm %ds", r.Days, r.Hours, r.Minutes, r.Seconds)
}
