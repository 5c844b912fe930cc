package invoice

import (
	"math"
	"time"

	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"
)

var allowedInstallmentCounts = map[int]bool{3: true, 6: true, 9: true, 12: true}

// InstallmentPlan is one scheduled slice before it is attached to an invoice.
type InstallmentPlan struct {
	Sequence int
	Amount   float64
	DueDate  time.Time
}

// ScheduleInstallments splits total into count monthly slices starting at
// firstDueDate. All slices carry the rounded per-slice amount except the last,
// which absorbs the remainder so the plan sums exactly to the total.
func ScheduleInstallments(total float64, count int, firstDueDate time.Time) ([]InstallmentPlan, error) {
	if !allowedInstallmentCounts[count] {
		return nil, appErrors.NewValidationError("installment_count", "taksit sayısı 3, 6, 9 veya 12 olmalıdır")
	}
	if total <= 0 {
		return nil, appErrors.NewValidationError("total", "sıfırdan büyük olmalıdır")
	}

	totalCents := pkg.ToCents(total)
	baseCents := int64(math.Floor(float64(totalCents)/float64(count) + 0.5))
	lastCents := totalCents - baseCents*int64(count-1)

	plans := make([]InstallmentPlan, count)
	for i := 0; i < count; i++ {
		amountCents := baseCents
		if i == count-1 {
			amountCents = lastCents
		}
		plans[i] = InstallmentPlan{
			Sequence: i + 1,
			Amount:   pkg.FromCents(amountCents),
			DueDate:  addMonthsClamped(firstDueDate, i),
		}
	}

	return plans, nil
}

// addMonthsClamped adds months without Go's normalization overflow: Jan 31
// plus one month lands on the last day of February, not March 2/3.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}
