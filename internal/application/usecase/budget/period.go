// Package budget contains budget-related use cases.
package budget

import (
	"time"

	"github.com/ledgerkeep/backend/internal/domain/entity"
)

// PeriodStart returns the start of the budget window containing now: Monday
// of the current week, the first of the current month, or January 1st of the
// current year.
func PeriodStart(now time.Time, period entity.BudgetPeriod) time.Time {
	loc := now.Location()

	switch period {
	case entity.BudgetPeriodWeekly:
		// Week starts on Monday.
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		return time.Date(now.Year(), now.Month(), now.Day()-(weekday-1), 0, 0, 0, 0, loc)
	case entity.BudgetPeriodYearly:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	}
}

// isValidPeriod reports whether the period is one of the supported windows.
func isValidPeriod(period entity.BudgetPeriod) bool {
	switch period {
	case entity.BudgetPeriodWeekly, entity.BudgetPeriodMonthly, entity.BudgetPeriodYearly:
		return true
	}
	return false
}
