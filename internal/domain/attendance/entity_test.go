package attendance

import (
	"testing"
	"time"

	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/models"
)

func TestRegisterCallFirst(t *testing.T) {
	now := time.Date(2026, 5, 4, 8, 30, 0, 0, time.UTC)
	att := &models.Attendance{Status: string(StatusWaiting)}

	if err := RegisterCall(att, 1, now); err != nil {
		t.Fatalf("RegisterCall: %v", err)
	}
	if att.Status != string(StatusInService) {
		t.Fatalf("status=%q, want in_service after first call", att.Status)
	}
	if att.ServiceStartAt == nil || !att.ServiceStartAt.Equal(now) {
		t.Fatalf("ServiceStartAt=%v, want %v", att.ServiceStartAt, now)
	}
}

func TestRegisterCallRepeated(t *testing.T) {
	start := time.Date(2026, 5, 4, 8, 30, 0, 0, time.UTC)
	att := &models.Attendance{
		Status:         string(StatusInService),
		ServiceStartAt: &start,
	}

	for ordinal := 2; ordinal <= MaxCalls; ordinal++ {
		if err := RegisterCall(att, ordinal, start.Add(time.Minute)); err != nil {
			t.Fatalf("call %d: %v", ordinal, err)
		}
	}

	if !att.ServiceStartAt.Equal(start) {
		t.Fatal("repeat calls must not move ServiceStartAt")
	}

	err := RegisterCall(att, MaxCalls+1, start.Add(time.Hour))
	if !httperr.IsBusiness(err, httperr.CodeLimitExceeded) {
		t.Fatalf("call %d: want limit_exceeded, got %v", MaxCalls+1, err)
	}
}

func TestRegisterCallClosed(t *testing.T) {
	for _, status := range []Status{StatusServed, StatusAbsent} {
		att := &models.Attendance{Status: string(status)}
		err := RegisterCall(att, 1, time.Now())
		if !httperr.IsBusiness(err, httperr.CodeInvalidState) {
			t.Fatalf("status %q: want invalid_state, got %v", status, err)
		}
	}
}

func TestComplete(t *testing.T) {
	att := &models.Attendance{Status: string(StatusInService)}
	if err := Complete(att); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if att.Status != string(StatusServed) {
		t.Fatalf("status=%q, want served", att.Status)
	}

	waiting := &models.Attendance{Status: string(StatusWaiting)}
	if err := Complete(waiting); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("completing a waiting attendance: want invalid_state, got %v", err)
	}
}

func TestMarkAbsent(t *testing.T) {
	for _, status := range []Status{StatusWaiting, StatusInService} {
		att := &models.Attendance{Status: string(status)}
		if err := MarkAbsent(att); err != nil {
			t.Fatalf("MarkAbsent from %q: %v", status, err)
		}
		if att.Status != string(StatusAbsent) {
			t.Fatalf("status=%q, want absent", att.Status)
		}
	}

	served := &models.Attendance{Status: string(StatusServed)}
	if err := MarkAbsent(served); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("want invalid_state for served, got %v", err)
	}
}
