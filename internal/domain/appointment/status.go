package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusAttended  Status = "attended"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusAttended:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

// attended → pending y confirmed → pending existen solo para revertir
// la cita cuando se elimina su asistencia. cancelled es terminal.
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusAttended},
	StatusConfirmed: {StatusCancelled, StatusAttended, StatusPending},
	StatusAttended:  {StatusPending},
	StatusCancelled: {},
}

func CanTransition(from, to Status) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func InitialStatus() Status {
	return StatusPending
}
