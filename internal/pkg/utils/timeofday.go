package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aquihaydragonesgonzalo/Marsella-Crucero/internal/pkg/errors"
)

// minutesPerDay is the modulus for all time-of-day arithmetic. Working in
// minutes since local midnight sidesteps dates and timezones entirely;
// the itinerary covers a single operating day.
const minutesPerDay = 24 * 60

// ParseClock parses a strict 24h "HH:MM" string into minutes since
// midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, errors.ErrInvalidTime.WithDetails(map[string]interface{}{"value": s})
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, errors.ErrInvalidTime.WithDetails(map[string]interface{}{"value": s})
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, errors.ErrInvalidTime.WithDetails(map[string]interface{}{"value": s})
	}

	return hours*60 + minutes, nil
}

// Duration returns the minutes from start to end, wrapping across
// midnight. start == end is ambiguous (zero-length vs full day) and must
// be rejected by the caller before reaching here; this function returns 0
// for it.
func Duration(start, end int) int {
	d := (end - start) % minutesPerDay
	if d < 0 {
		d += minutesPerDay
	}
	return d
}

// Gap returns the waiting time in minutes between the end of one activity
// and the start of the next. A negative raw difference means the pair
// crosses midnight.
func Gap(prevEnd, nextStart int) int {
	return Duration(prevEnd, nextStart)
}

// Progress returns the elapsed fraction of [start, end] at the given
// instant, clamped to [0, 1]. All arguments are minutes since midnight.
func Progress(now, start, end int) float64 {
	if now < start {
		return 0
	}
	if now >= end {
		return 1
	}
	return float64(now-start) / float64(end-start)
}

// Countdown holds the remaining time until a deadline, or the terminal
// elapsed state once the deadline has passed.
type Countdown struct {
	Hours   int
	Minutes int
	Seconds int
	Elapsed bool
}

// Remaining returns the total remaining seconds; 0 once elapsed.
func (c Countdown) Remaining() int {
	if c.Elapsed {
		return 0
	}
	return c.Hours*3600 + c.Minutes*60 + c.Seconds
}

// String renders the countdown as "HHh MMm SSs".
func (c Countdown) String() string {
	if c.Elapsed {
		return "elapsed"
	}
	return fmt.Sprintf("%02dh %02dm %02ds", c.Hours, c.Minutes, c.Seconds)
}

// CountdownTo computes the time left from nowSeconds (seconds since
// midnight) until deadlineMinutes (minutes since midnight) on the same
// operating day. At or past the deadline the countdown is terminal.
func CountdownTo(nowSeconds, deadlineMinutes int) Countdown {
	diff := deadlineMinutes*60 - nowSeconds
	if diff <= 0 {
		return Countdown{Elapsed: true}
	}
	return Countdown{
		Hours:   diff / 3600,
		Minutes: (diff % 3600) / 60,
		Seconds: diff % 60,
	}
}

// FormatDuration renders a duration in minutes as "2h 15m", "3h" or
// "45 min" for the timeline and export collaborators.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%d min", mins)
	}
}

// FormatGap renders a waiting interval in minutes as "1h 30min", "2h" or
// "20min".
func FormatGap(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dmin", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dmin", mins)
	}
}
