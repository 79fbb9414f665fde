package dto

import "time"

type AppointmentListDTO struct {
	ID             uint      `json:"id"`
	ScheduledAt    time.Time `json:"scheduled_at"`
	ServiceType    string    `json:"service_type"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
	ClientName     string    `json:"client_name"`
	ClientDocument string    `json:"client_document"`
}

type AttendanceListDTO struct {
	ID             uint       `json:"id"`
	AppointmentID  uint       `json:"appointment_id"`
	CheckInAt      time.Time  `json:"check_in_at"`
	ServiceStartAt *time.Time `json:"service_start_at,omitempty"`
	Status         string     `json:"status"`
	ClientName     string     `json:"client_name"`
	ClientDocument string     `json:"client_document"`
}
