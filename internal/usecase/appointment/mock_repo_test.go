package appointment

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	domain "github.com/turnero-digital/turnero-api/internal/domain/appointment"
	"github.com/turnero-digital/turnero-api/internal/models"
)

// ── Mock appointment repository ──

type mockRepo struct {
	clients      map[uint]*models.Client
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		clients:      make(map[uint]*models.Client),
		appointments: make(map[uint]*models.Appointment),
		nextID:       1,
	}
}

func (m *mockRepo) addClient(c *models.Client) *models.Client {
	if c.ID == 0 {
		c.ID = m.nextID
		m.nextID++
	}
	m.clients[c.ID] = c
	return c
}

func (m *mockRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	if c, ok := m.clients[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := m.appointments[id]; ok {
		cp := *ap
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = m.nextID
	m.nextID++
	cp := *ap
	m.appointments[ap.ID] = &cp
	return nil
}

func (m *mockRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := m.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *ap
	m.appointments[ap.ID] = &cp
	return nil
}

func (m *mockRepo) DeleteAppointment(_ context.Context, ap *models.Appointment) error {
	delete(m.appointments, ap.ID)
	return nil
}

func (m *mockRepo) ListAppointments(_ context.Context, filter domain.ListFilter) ([]models.Appointment, int64, error) {
	var result []models.Appointment
	for _, ap := range m.appointments {
		if filter.Status != "" && ap.Status != filter.Status {
			continue
		}
		if filter.ClientID != 0 && ap.ClientID != filter.ClientID {
			continue
		}
		if filter.Date != nil {
			y1, m1, d1 := ap.ScheduledAt.Date()
			y2, m2, d2 := filter.Date.Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		result = append(result, *ap)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ScheduledAt.Before(result[j].ScheduledAt)
	})

	return result, int64(len(result)), nil
}

func (m *mockRepo) IsSlotTaken(_ context.Context, slot time.Time, excludeID uint) (bool, error) {
	for _, ap := range m.appointments {
		if ap.ID == excludeID {
			continue
		}
		if ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if ap.ScheduledAt.Equal(slot) {
			return true, nil
		}
	}
	return false, nil
}

var _ domain.Repository = (*mockRepo)(nil)
