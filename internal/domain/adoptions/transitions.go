package adoptions

import "pet-adoption-api/internal/domain/pets"

// Máquina de estados de la solicitud:
//
//	Pending ──► Approved ──► Completed
//	    │            │
//	    └────────────┴──► Rejected
//
// Rejected y Completed son terminales. Agregar un estado o transición
// es una línea en estas tablas, no un if más en el service.

// validTransitions lista cada par (desde → hacia) permitido.
var validTransitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusCompleted, StatusRejected},
	// Rejected y Completed: terminales, sin salidas
}

// petEffect es el efecto sobre la mascota al ENTRAR a cada estado.
//   - Approved: sigue Pending (la reserva no cambia)
//   - Rejected: vuelve al pool
//   - Completed: adoptada, sin vuelta automática
var petEffect = map[Status]pets.AdoptionStatus{
	StatusApproved:  pets.StatusPending,
	StatusRejected:  pets.StatusAvailable,
	StatusCompleted: pets.StatusAdopted,
}

// CanTransition responde si pasar de from a to está permitido por la tabla.
func CanTransition(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false // estado terminal
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal responde si el estado no tiene transiciones de salida.
func IsTerminal(s Status) bool {
	_, ok := validTransitions[s]
	return !ok
}
