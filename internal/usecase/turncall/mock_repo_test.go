package turncall

import (
	"context"
	"sort"

	"gorm.io/gorm"

	domain "github.com/turnero-digital/turnero-api/internal/domain/attendance"
	"github.com/turnero-digital/turnero-api/internal/models"
)

// ── Mock attendance repository ──

type mockRepo struct {
	appointments map[uint]*models.Appointment
	attendances  map[uint]*models.Attendance
	calls        map[uint][]models.TurnCall
	operators    map[uint]*models.User
	nextID       uint
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		appointments: make(map[uint]*models.Appointment),
		attendances:  make(map[uint]*models.Attendance),
		calls:        make(map[uint][]models.TurnCall),
		operators:    make(map[uint]*models.User),
		nextID:       1,
	}
}

func (m *mockRepo) addAppointment(ap *models.Appointment) *models.Appointment {
	if ap.ID == 0 {
		ap.ID = m.nextID
		m.nextID++
	}
	m.appointments[ap.ID] = ap
	return ap
}

func (m *mockRepo) addAttendance(att *models.Attendance) *models.Attendance {
	if att.ID == 0 {
		att.ID = m.nextID
		m.nextID++
	}
	m.attendances[att.ID] = att
	return att
}

func (m *mockRepo) addOperator(u *models.User) *models.User {
	if u.ID == 0 {
		u.ID = m.nextID
		m.nextID++
	}
	m.operators[u.ID] = u
	return u
}

func (m *mockRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := m.appointments[id]; ok {
		cp := *ap
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepo) GetAttendance(_ context.Context, id uint) (*models.Attendance, error) {
	if att, ok := m.attendances[id]; ok {
		cp := *att
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepo) AttendanceForAppointment(_ context.Context, appointmentID uint) (*models.Attendance, error) {
	for _, att := range m.attendances {
		if att.AppointmentID == appointmentID {
			cp := *att
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepo) CreateAttendance(_ context.Context, att *models.Attendance, ap *models.Appointment) error {
	att.ID = m.nextID
	m.nextID++
	cpAtt := *att
	m.attendances[att.ID] = &cpAtt
	cpAp := *ap
	m.appointments[ap.ID] = &cpAp
	return nil
}

func (m *mockRepo) UpdateAttendance(_ context.Context, att *models.Attendance) error {
	if _, ok := m.attendances[att.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *att
	m.attendances[att.ID] = &cp
	return nil
}

func (m *mockRepo) RemoveAttendance(_ context.Context, att *models.Attendance, ap *models.Appointment) error {
	delete(m.calls, att.ID)
	delete(m.attendances, att.ID)
	cp := *ap
	m.appointments[ap.ID] = &cp
	return nil
}

func (m *mockRepo) ListAttendances(_ context.Context, _ domain.ListFilter) ([]models.Attendance, int64, error) {
	var result []models.Attendance
	for _, att := range m.attendances {
		result = append(result, *att)
	}
	return result, int64(len(result)), nil
}

func (m *mockRepo) GetOperator(_ context.Context, id uint) (*models.User, error) {
	if u, ok := m.operators[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRepo) CountCalls(_ context.Context, attendanceID uint) (int64, error) {
	return int64(len(m.calls[attendanceID])), nil
}

func (m *mockRepo) CreateCall(_ context.Context, call *models.TurnCall, att *models.Attendance) error {
	call.ID = m.nextID
	m.nextID++
	m.calls[att.ID] = append(m.calls[att.ID], *call)
	cp := *att
	m.attendances[att.ID] = &cp
	return nil
}

func (m *mockRepo) ListCalls(_ context.Context, attendanceID uint) ([]models.TurnCall, error) {
	calls := append([]models.TurnCall(nil), m.calls[attendanceID]...)
	sort.Slice(calls, func(i, j int) bool {
		return calls[i].Ordinal < calls[j].Ordinal
	})
	return calls, nil
}

var _ domain.Repository = (*mockRepo)(nil)
