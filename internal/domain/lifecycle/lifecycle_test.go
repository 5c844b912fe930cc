package lifecycle_test

import (
	"testing"
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/lifecycle"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		kind lifecycle.EntityKind
		from lifecycle.State
		to   lifecycle.State
		want bool
	}{
		{"service waiting to in_progress", lifecycle.KindServiceRecord, lifecycle.ServiceWaiting, lifecycle.ServiceInProgress, true},
		{"service waiting to cancelled", lifecycle.KindServiceRecord, lifecycle.ServiceWaiting, lifecycle.ServiceCancelled, true},
		{"service waiting to completed skips in_progress", lifecycle.KindServiceRecord, lifecycle.ServiceWaiting, lifecycle.ServiceCompleted, false},
		{"service in_progress to completed", lifecycle.KindServiceRecord, lifecycle.ServiceInProgress, lifecycle.ServiceCompleted, true},
		{"service completed is terminal", lifecycle.KindServiceRecord, lifecycle.ServiceCompleted, lifecycle.ServiceInProgress, false},
		{"service cancelled is terminal", lifecycle.KindServiceRecord, lifecycle.ServiceCancelled, lifecycle.ServiceWaiting, false},
		{"invoice pending to partial", lifecycle.KindInvoice, lifecycle.InvoicePending, lifecycle.InvoicePartial, true},
		{"invoice pending to paid", lifecycle.KindInvoice, lifecycle.InvoicePending, lifecycle.InvoicePaid, true},
		{"invoice overdue back to partial", lifecycle.KindInvoice, lifecycle.InvoiceOverdue, lifecycle.InvoicePartial, true},
		{"invoice paid is terminal", lifecycle.KindInvoice, lifecycle.InvoicePaid, lifecycle.InvoicePartial, false},
		{"invoice partial cannot revert to pending", lifecycle.KindInvoice, lifecycle.InvoicePartial, lifecycle.InvoicePending, false},
		{"installment pending to overdue", lifecycle.KindInstallment, lifecycle.InstallmentPending, lifecycle.InstallmentOverdue, true},
		{"installment overdue to paid", lifecycle.KindInstallment, lifecycle.InstallmentOverdue, lifecycle.InstallmentPaid, true},
		{"installment paid is terminal", lifecycle.KindInstallment, lifecycle.InstallmentPaid, lifecycle.InstallmentPending, false},
		{"service waiting to itself", lifecycle.KindServiceRecord, lifecycle.ServiceWaiting, lifecycle.ServiceWaiting, false},
		{"service in_progress to itself", lifecycle.KindServiceRecord, lifecycle.ServiceInProgress, lifecycle.ServiceInProgress, false},
		{"invoice pending to itself", lifecycle.KindInvoice, lifecycle.InvoicePending, lifecycle.InvoicePending, false},
		{"invoice partial to itself", lifecycle.KindInvoice, lifecycle.InvoicePartial, lifecycle.InvoicePartial, false},
		{"installment pending to itself", lifecycle.KindInstallment, lifecycle.InstallmentPending, lifecycle.InstallmentPending, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := lifecycle.CanTransition(tc.kind, tc.from, tc.to); got != tc.want {
				t.Errorf("CanTransition(%s, %s, %s) = %v, want %v", tc.kind, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	if !lifecycle.IsTerminal(lifecycle.KindServiceRecord, lifecycle.ServiceCompleted) {
		t.Error("completed service record should be terminal")
	}
	if !lifecycle.IsTerminal(lifecycle.KindInvoice, lifecycle.InvoicePaid) {
		t.Error("paid invoice should be terminal")
	}
	if lifecycle.IsTerminal(lifecycle.KindInvoice, lifecycle.InvoiceOverdue) {
		t.Error("overdue invoice should not be terminal")
	}
	if lifecycle.IsTerminal(lifecycle.KindServiceRecord, lifecycle.ServiceWaiting) {
		t.Error("waiting service record should not be terminal")
	}
}

func TestTransitionEmitsEvent(t *testing.T) {
	t.Parallel()

	id := pkg.GenerateULIDObject()
	now := time.Date(2024, 4, 14, 10, 30, 0, 0, time.UTC)

	event, err := lifecycle.Transition(lifecycle.KindServiceRecord, id, lifecycle.ServiceWaiting, lifecycle.ServiceInProgress, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if event.EntityType != lifecycle.KindServiceRecord {
		t.Errorf("entity type = %s, want service_record", event.EntityType)
	}
	if event.EntityId != id.String() {
		t.Errorf("entity id = %s, want %s", event.EntityId, id)
	}
	if event.FromState != lifecycle.ServiceWaiting || event.ToState != lifecycle.ServiceInProgress {
		t.Errorf("states = %s -> %s, want waiting -> in_progress", event.FromState, event.ToState)
	}
	if !event.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, want %v", event.Timestamp, now)
	}
	if pkg.IsEmptyULID(event.Id) {
		t.Error("event id should be set")
	}
}

func TestTransitionRejectsIllegalEdge(t *testing.T) {
	t.Parallel()

	id := pkg.GenerateULIDObject()

	_, err := lifecycle.Transition(lifecycle.KindServiceRecord, id, lifecycle.ServiceWaiting, lifecycle.ServiceCompleted, time.Now())
	if err == nil {
		t.Fatal("expected error for waiting -> completed")
	}

	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != "INVALID_TRANSITION" {
		t.Errorf("code = %s, want INVALID_TRANSITION", appErr.Code)
	}
	if appErr.Details["fromState"] != "waiting" || appErr.Details["toState"] != "completed" {
		t.Errorf("details = %v, want fromState/toState present", appErr.Details)
	}
}

func TestTransitionRejectsSameState(t *testing.T) {
	t.Parallel()

	id := pkg.GenerateULIDObject()

	// Staying in place is not an edge; it must fail like any other illegal move.
	_, err := lifecycle.Transition(lifecycle.KindInvoice, id, lifecycle.InvoicePartial, lifecycle.InvoicePartial, time.Now())
	if err == nil {
		t.Fatal("expected error for partial -> partial")
	}

	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != "INVALID_TRANSITION" {
		t.Errorf("code = %s, want INVALID_TRANSITION", appErr.Code)
	}
}
