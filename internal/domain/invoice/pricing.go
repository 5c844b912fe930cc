package invoice

import (
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"
)

// Totals is the priced breakdown of an invoice before persistence.
type Totals struct {
	Subtotal  float64
	TaxAmount float64
	Total     float64
}

// ComputeTotals prices a set of line costs at the given KDV rate. The subtotal
// is summed in kuruş so many small items cannot drift; tax is rounded half-up
// per the printed-invoice convention.
func ComputeTotals(costs []float64, taxRatePercent float64) (*Totals, error) {
	if len(costs) == 0 {
		return nil, appErrors.NewValidationError("items", "en az bir kalem gereklidir")
	}
	if taxRatePercent < 0 {
		return nil, appErrors.NewValidationError("tax_rate", "negatif olamaz")
	}

	var subtotalCents int64
	for _, cost := range costs {
		if cost < 0 {
			return nil, appErrors.NewValidationError("cost", "negatif olamaz")
		}
		subtotalCents += pkg.ToCents(cost)
	}

	subtotal := pkg.FromCents(subtotalCents)
	taxAmount := pkg.Round2(subtotal * taxRatePercent / 100)

	return &Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     pkg.FromCents(subtotalCents + pkg.ToCents(taxAmount)),
	}, nil
}
