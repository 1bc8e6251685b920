package pets

import (
	"context"
	"strings"
)

// Tracker de disponibilidad.
//
// Todas las escrituras de AdoptionStatus del sistema pasan por estos
// cuatro métodos; el motor de solicitudes (adoptions) los invoca como
// efecto de cada transición:
//
//	Available ──MarkPending──► Pending ──MarkAdopted──► Adopted
//	     ▲                        │
//	     └──────MarkAvailable─────┘
//
// MarkPending es el único condicionado: exige Available y se aplica como
// swap atómico en el repo, así dos solicitudes concurrentes sobre la misma
// mascota no pueden ganar las dos.

// MarkPending reserva la mascota para una solicitud nueva.
// Falla con ErrNotFound si no existe y ErrNotAvailable si no está Available.
func (s *Service) MarkPending(ctx context.Context, petID string) error {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return ErrNotFound
	}
	return s.repo.SwapAdoptionStatus(ctx, petID, StatusAvailable, StatusPending, s.now())
}

// MarkPendingOnApproval reafirma Pending al aprobar una solicitud.
// No cambia el pool: la mascota ya estaba reservada.
func (s *Service) MarkPendingOnApproval(ctx context.Context, petID string) error {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return ErrNotFound
	}
	return s.repo.SetAdoptionStatus(ctx, petID, StatusPending, s.now())
}

// MarkAvailable devuelve la mascota al pool (solicitud rechazada).
// Idempotente si ya estaba Available; solo exige existencia.
func (s *Service) MarkAvailable(ctx context.Context, petID string) error {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return ErrNotFound
	}
	return s.repo.SetAdoptionStatus(ctx, petID, StatusAvailable, s.now())
}

// MarkAdopted marca la adopción como concretada. No hay vuelta automática
// a Available desde acá.
func (s *Service) MarkAdopted(ctx context.Context, petID string) error {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return ErrNotFound
	}
	return s.repo.SetAdoptionStatus(ctx, petID, StatusAdopted, s.now())
}

// Availability expone el estado actual sin el resto del perfil.
func (s *Service) Availability(ctx context.Context, petID string) (AdoptionStatus, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.AdoptionStatus, nil
}
