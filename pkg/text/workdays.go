package text

import (
	"fmt"
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

var (
	calendar = cal.NewBusinessCalendar()
)

func init() {
	calendar.AddHoliday(
		us.NewYear,
		us.MemorialDay,
		us.IndependenceDay,
		us.Juneteenth,
		us.DayAfterThanksgivingDay,
		us.LaborDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
}

// BusinessDaysUntil counts the workdays between now and a deadline,
// skipping weekends and holidays. Past deadlines count zero.
func BusinessDaysUntil(deadline time.Time) int {
	now := time.Now()
	if !deadline.After(now) {
		return 0
	}
	return calendar.WorkdaysInRange(now, deadline)
}

// DeadlineLabel renders a subscription expiry as an actionable countdown,
// e.g. "expires 2026-09-12 (8 business days)".
func DeadlineLabel(deadline time.Time) string {
	days := BusinessDaysUntil(deadline)
	date := deadline.Format("2006-01-02")
	switch {
	case days == 0:
		return fmt.Sprintf("expired %s", date)
	case days == 1:
		return fmt.Sprintf("expires %s (1 business day)", date)
	default:
		return fmt.Sprintf("expires %s (%d business days)", date, days)
	}
}

// IsWorkday reports whether t is a working day on the platform calendar.
func IsWorkday(t time.Time) bool {
	return calendar.IsWorkday(t)
}
