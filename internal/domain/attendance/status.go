package attendance

// ===============================
// Attendance Status
// ===============================

type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusInService Status = "in_service"
	StatusServed    Status = "served"
	StatusAbsent    Status = "absent"
)

// Acciones sobre la asistencia y estados desde los que se permiten.
// Agotar los 3 llamados NO marca ausente por sí solo: ausente es
// siempre una acción explícita del operador.
var transitionMap = map[string][]Status{
	"call":        {StatusWaiting, StatusInService},
	"complete":    {StatusInService},
	"mark_absent": {StatusWaiting, StatusInService},
}

func ValidAction(action string, from Status) bool {
	allowed, ok := transitionMap[action]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == from {
			return true
		}
	}
	return false
}
