// Package recurrence computes next due dates for recurring maintenance events.
package recurrence

import (
	"time"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/entity"
)

// NextDueDate maps a base date and a recurring period to the date the action is
// next due. It returns nil when the period is none or unknown.
//
// Calendar arithmetic uses time.AddDate, which normalizes month-end overflow:
// Jan 31 + 1 month lands on Mar 2 (Mar 3 in non-leap years) rather than
// clamping to the end of February. The convention is applied consistently for
// all month- and year-based periods.
func NextDueDate(base time.Time, period entity.RecurringPeriod) *time.Time {
	var next time.Time

	switch period {
	case entity.RecurringWeekly:
		next = base.AddDate(0, 0, 7)
	case entity.RecurringMonthly:
		next = base.AddDate(0, 1, 0)
	case entity.RecurringQuarterly:
		next = base.AddDate(0, 3, 0)
	case entity.RecurringBiannually:
		next = base.AddDate(0, 6, 0)
	case entity.RecurringAnnually:
		next = base.AddDate(1, 0, 0)
	default:
		return nil
	}

	return &next
}
