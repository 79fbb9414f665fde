package appointment

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from  Status
		to    Status
		valid bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusAttended, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusAttended, true},
		{StatusConfirmed, StatusPending, true},
		{StatusAttended, StatusPending, true},
		{StatusAttended, StatusCancelled, false},
		{StatusAttended, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusAttended, false},
		{StatusPending, StatusPending, false},
	}

	for _, tt := range cases {
		if got := CanTransition(tt.from, tt.to); got != tt.valid {
			t.Fatalf("CanTransition(%q, %q)=%v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusAttended} {
		if !IsValidStatus(s) {
			t.Fatalf("IsValidStatus(%q)=false, want true", s)
		}
	}

	if IsValidStatus("archived") {
		t.Fatal("IsValidStatus accepted an unknown status")
	}
}

func TestInitialStatus(t *testing.T) {
	if got := InitialStatus(); got != StatusPending {
		t.Fatalf("InitialStatus()=%q, want %q", got, StatusPending)
	}
}
