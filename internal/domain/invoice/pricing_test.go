package invoice_test

import (
	"testing"

	"github.com/harunoztuurk/otoservis/internal/domain/invoice"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
)

func TestComputeTotals(t *testing.T) {
	t.Parallel()

	totals, err := invoice.ComputeTotals([]float64{1500, 500, 300, 2200}, 18)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if totals.Subtotal != 4500 {
		t.Errorf("subtotal = %.2f, want 4500.00", totals.Subtotal)
	}
	if totals.TaxAmount != 810 {
		t.Errorf("tax = %.2f, want 810.00", totals.TaxAmount)
	}
	if totals.Total != 5310 {
		t.Errorf("total = %.2f, want 5310.00", totals.Total)
	}
}

func TestComputeTotalsZeroRate(t *testing.T) {
	t.Parallel()

	totals, err := invoice.ComputeTotals([]float64{100.50, 200.25}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.TaxAmount != 0 {
		t.Errorf("tax = %.2f, want 0", totals.TaxAmount)
	}
	if totals.Total != 300.75 {
		t.Errorf("total = %.2f, want 300.75", totals.Total)
	}
}

func TestComputeTotalsRejectsEmptyItems(t *testing.T) {
	t.Parallel()

	_, err := invoice.ComputeTotals(nil, 18)
	if err == nil {
		t.Fatal("expected error for empty items")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestComputeTotalsRejectsNegativeCost(t *testing.T) {
	t.Parallel()

	_, err := invoice.ComputeTotals([]float64{100, -5}, 18)
	if err == nil {
		t.Fatal("expected error for negative cost")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}
