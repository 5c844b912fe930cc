package invoice_test

import (
	"testing"
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/invoice"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestScheduleInstallmentsRemainderOnLast(t *testing.T) {
	t.Parallel()

	plans, err := invoice.ScheduleInstallments(8024, 3, date(2024, time.April, 14))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantAmounts := []float64{2674.67, 2674.67, 2674.66}
	wantDue := []time.Time{date(2024, time.April, 14), date(2024, time.May, 14), date(2024, time.June, 14)}

	if len(plans) != 3 {
		t.Fatalf("len = %d, want 3", len(plans))
	}
	for i, plan := range plans {
		if plan.Sequence != i+1 {
			t.Errorf("plan %d sequence = %d, want %d", i, plan.Sequence, i+1)
		}
		if plan.Amount != wantAmounts[i] {
			t.Errorf("plan %d amount = %.2f, want %.2f", i, plan.Amount, wantAmounts[i])
		}
		if !plan.DueDate.Equal(wantDue[i]) {
			t.Errorf("plan %d due = %v, want %v", i, plan.DueDate, wantDue[i])
		}
	}
}

func TestScheduleInstallmentsClampsMonthEnd(t *testing.T) {
	t.Parallel()

	plans, err := invoice.ScheduleInstallments(3000, 3, date(2024, time.January, 31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDue := []time.Time{
		date(2024, time.January, 31),
		date(2024, time.February, 29),
		date(2024, time.March, 31),
	}
	for i, plan := range plans {
		if !plan.DueDate.Equal(wantDue[i]) {
			t.Errorf("plan %d due = %v, want %v", i, plan.DueDate, wantDue[i])
		}
	}
}

func TestScheduleInstallmentsSumsExactly(t *testing.T) {
	t.Parallel()

	totals := []float64{8024, 100, 99.99, 1234.56, 0.03}
	counts := []int{3, 6, 9, 12}

	for _, total := range totals {
		for _, count := range counts {
			plans, err := invoice.ScheduleInstallments(total, count, date(2024, time.April, 14))
			if err != nil {
				t.Fatalf("ScheduleInstallments(%.2f, %d): %v", total, count, err)
			}
			var sumCents int64
			for _, plan := range plans {
				sumCents += pkg.ToCents(plan.Amount)
			}
			if sumCents != pkg.ToCents(total) {
				t.Errorf("ScheduleInstallments(%.2f, %d) sums to %d kuruş, want %d", total, count, sumCents, pkg.ToCents(total))
			}
		}
	}
}

func TestScheduleInstallmentsRejectsInvalidCount(t *testing.T) {
	t.Parallel()

	for _, count := range []int{0, 1, 2, 4, 5, 24} {
		_, err := invoice.ScheduleInstallments(1000, count, date(2024, time.April, 14))
		if err == nil {
			t.Errorf("count %d: expected error", count)
			continue
		}
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Errorf("count %d: expected VALIDATION_ERROR, got %v", count, err)
		}
	}
}

func TestScheduleInstallmentsRejectsNonPositiveTotal(t *testing.T) {
	t.Parallel()

	for _, total := range []float64{0, -100} {
		if _, err := invoice.ScheduleInstallments(total, 3, date(2024, time.April, 14)); err == nil {
			t.Errorf("total %.2f: expected error", total)
		}
	}
}
