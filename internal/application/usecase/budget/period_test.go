// Package budget contains budget-related use cases.
package budget

import (
	"testing"
	"time"

	"github.com/ledgerkeep/backend/internal/domain/entity"
)

func TestPeriodStart(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		period entity.BudgetPeriod
		want   time.Time
	}{
		{
			name:   "weekly starts on Monday",
			now:    time.Date(2026, time.March, 12, 15, 30, 0, 0, time.UTC), // Thursday
			period: entity.BudgetPeriodWeekly,
			want:   time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "weekly on a Monday starts that day",
			now:    time.Date(2026, time.March, 9, 8, 0, 0, 0, time.UTC),
			period: entity.BudgetPeriodWeekly,
			want:   time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "weekly on a Sunday reaches back six days",
			now:    time.Date(2026, time.March, 15, 23, 59, 0, 0, time.UTC),
			period: entity.BudgetPeriodWeekly,
			want:   time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "weekly crosses a month boundary",
			now:    time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC), // Wednesday
			period: entity.BudgetPeriodWeekly,
			want:   time.Date(2026, time.March, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "monthly starts on the first",
			now:    time.Date(2026, time.February, 20, 10, 0, 0, 0, time.UTC),
			period: entity.BudgetPeriodMonthly,
			want:   time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "yearly starts on January 1st",
			now:    time.Date(2026, time.November, 3, 0, 0, 0, 0, time.UTC),
			period: entity.BudgetPeriodYearly,
			want:   time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PeriodStart(tt.now, tt.period)
			if !got.Equal(tt.want) {
				t.Errorf("PeriodStart(%s, %s) = %s, want %s", tt.now, tt.period, got, tt.want)
			}
		})
	}
}
