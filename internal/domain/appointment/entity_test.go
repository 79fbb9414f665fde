package appointment

import (
	"testing"
	"time"

	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/models"
)

func TestCancel(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	if err := Cancel(ap, now); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if ap.Status != string(StatusCancelled) {
		t.Fatalf("status=%q, want cancelled", ap.Status)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatalf("CancelledAt=%v, want %v", ap.CancelledAt, now)
	}
}

func TestCancelIdempotent(t *testing.T) {
	first := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	ap := &models.Appointment{
		Status:      string(StatusCancelled),
		CancelledAt: &first,
	}

	if err := Cancel(ap, second); err != nil {
		t.Fatalf("cancelling a cancelled appointment should succeed, got %v", err)
	}
	if !ap.CancelledAt.Equal(first) {
		t.Fatal("CancelledAt changed on repeat cancel")
	}
}

func TestCancelAttended(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusAttended)}

	err := Cancel(ap, time.Now())
	if !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("want invalid_state, got %v", err)
	}
}

func TestMarkAttended(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}
	if err := MarkAttended(ap); err != nil {
		t.Fatalf("MarkAttended: %v", err)
	}
	if ap.Status != string(StatusAttended) {
		t.Fatalf("status=%q, want attended", ap.Status)
	}

	cancelled := &models.Appointment{Status: string(StatusCancelled)}
	if err := MarkAttended(cancelled); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("want invalid_state for cancelled, got %v", err)
	}
}

func TestRevertToPending(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusAttended)}
	if err := RevertToPending(ap); err != nil {
		t.Fatalf("RevertToPending: %v", err)
	}
	if ap.Status != string(StatusPending) {
		t.Fatalf("status=%q, want pending", ap.Status)
	}

	cancelled := &models.Appointment{Status: string(StatusCancelled)}
	if err := RevertToPending(cancelled); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("want invalid_state for cancelled, got %v", err)
	}
}

func TestSetStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusPending)}
	if err := SetStatus(ap, StatusConfirmed, now); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if ap.Status != string(StatusConfirmed) {
		t.Fatalf("status=%q, want confirmed", ap.Status)
	}

	// mismo estado: no-op
	if err := SetStatus(ap, StatusConfirmed, now); err != nil {
		t.Fatalf("same-status SetStatus should be a no-op, got %v", err)
	}

	if err := SetStatus(ap, "archived", now); !httperr.IsBusiness(err, httperr.CodeValidationError) {
		t.Fatalf("want validation_error for unknown status, got %v", err)
	}

	if err := SetStatus(ap, StatusCancelled, now); err != nil {
		t.Fatalf("SetStatus to cancelled: %v", err)
	}
	if ap.CancelledAt == nil {
		t.Fatal("SetStatus to cancelled did not stamp CancelledAt")
	}

	if err := SetStatus(ap, StatusPending, now); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("cancelled is terminal, got %v", err)
	}
}
