package pets

import (
	"context"
	"time"
)

// Filter acota el listado público de mascotas.
// Edades en años completos; nil = sin límite.
type Filter struct {
	Type   Type
	Gender Gender
	Size   Size

	MinAgeYears *int
	MaxAgeYears *int
}

type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context, f Filter) ([]Pet, error)
	ListByShelter(ctx context.Context, shelterUserID string) ([]Pet, error)

	// SetAdoptionStatus escribe el estado sin condición previa (solo existencia).
	SetAdoptionStatus(ctx context.Context, id string, status AdoptionStatus, updatedAt time.Time) error

	// SwapAdoptionStatus escribe `to` solo si el estado actual es `from`.
	// Devuelve ErrNotAvailable si la mascota existe pero está en otro estado.
	// Es el cierre atómico de la carrera check-then-write en la creación de solicitudes.
	SwapAdoptionStatus(ctx context.Context, id string, from, to AdoptionStatus, updatedAt time.Time) error
}
