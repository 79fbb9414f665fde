package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/turnero-digital/turnero-api/internal/domain/appointment"
	"github.com/turnero-digital/turnero-api/internal/httperr"
	"github.com/turnero-digital/turnero-api/internal/models"
)

func TestCancelAppointment(t *testing.T) {
	repo := newMockRepo()
	client := repo.addClient(&models.Client{Name: "Ana", Active: true})

	createUC := NewCreateAppointment(repo, newTestGuard(repo), nil)
	cancelUC := NewCancelAppointment(repo, nil, time.UTC)

	ap, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		ClientID:    client.ID,
		ScheduledAt: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cancelled, err := cancelUC.Execute(context.Background(), ap.ID, nil)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != string(domain.StatusCancelled) {
		t.Fatalf("status=%q, want cancelled", cancelled.Status)
	}
	if cancelled.CancelledAt == nil {
		t.Fatal("CancelledAt not stamped")
	}

	// segunda cancelación: éxito idempotente, sin cambios
	again, err := cancelUC.Execute(context.Background(), ap.ID, nil)
	if err != nil {
		t.Fatalf("repeat cancel should succeed, got %v", err)
	}
	if !again.CancelledAt.Equal(*cancelled.CancelledAt) {
		t.Fatal("repeat cancel moved CancelledAt")
	}
}

func TestCancelAppointmentNotFound(t *testing.T) {
	repo := newMockRepo()
	cancelUC := NewCancelAppointment(repo, nil, time.UTC)

	_, err := cancelUC.Execute(context.Background(), 42, nil)
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("want not_found, got %v", err)
	}
}

func TestSetAppointmentStatus(t *testing.T) {
	repo := newMockRepo()
	client := repo.addClient(&models.Client{Name: "Ana", Active: true})

	createUC := NewCreateAppointment(repo, newTestGuard(repo), nil)
	setStatusUC := NewSetAppointmentStatus(repo, nil, time.UTC)

	ap, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		ClientID:    client.ID,
		ScheduledAt: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	confirmed, err := setStatusUC.Execute(context.Background(), ap.ID, "confirmed", nil)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if confirmed.Status != string(domain.StatusConfirmed) {
		t.Fatalf("status=%q, want confirmed", confirmed.Status)
	}

	if _, err := setStatusUC.Execute(context.Background(), ap.ID, "archived", nil); !httperr.IsBusiness(err, httperr.CodeValidationError) {
		t.Fatalf("want validation_error, got %v", err)
	}
}

func TestDeleteAppointment(t *testing.T) {
	repo := newMockRepo()
	client := repo.addClient(&models.Client{Name: "Ana", Active: true})

	createUC := NewCreateAppointment(repo, newTestGuard(repo), nil)
	deleteUC := NewDeleteAppointment(repo, nil)
	getUC := NewGetAppointment(repo)

	ap, err := createUC.Execute(context.Background(), CreateAppointmentInput{
		ClientID:    client.ID,
		ScheduledAt: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := deleteUC.Execute(context.Background(), ap.ID, nil); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := getUC.Execute(context.Background(), ap.ID); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("want not_found after delete, got %v", err)
	}

	if err := deleteUC.Execute(context.Background(), ap.ID, nil); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("want not_found for repeat delete, got %v", err)
	}
}
