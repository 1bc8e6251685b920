package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-adoption-api/internal/domain/pets"
)

type petRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	current, exists := r.byID[p.ID]
	if !exists {
		return pets.ErrNotFound
	}

	// El perfil no pisa la disponibilidad: eso entra por Set/SwapAdoptionStatus.
	p.AdoptionStatus = current.AdoptionStatus
	r.byID[p.ID] = p
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) List(ctx context.Context, f pets.Filter) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if f.Gender != "" && p.Gender != f.Gender {
			continue
		}
		if f.Size != "" && p.Size != f.Size {
			continue
		}
		if f.MinAgeYears != nil && p.AgeYears < *f.MinAgeYears {
			continue
		}
		if f.MaxAgeYears != nil && p.AgeYears > *f.MaxAgeYears {
			continue
		}
		out = append(out, p)
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *petRepo) ListByShelter(ctx context.Context, shelterUserID string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if p.ShelterUserID == shelterUserID {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *petRepo) SetAdoptionStatus(ctx context.Context, id string, status pets.AdoptionStatus, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.ErrNotFound
	}

	p.AdoptionStatus = status
	p.UpdatedAt = updatedAt
	r.byID[id] = p
	return nil
}

// SwapAdoptionStatus: el check y la escritura pasan bajo el mismo lock,
// así dos Submit concurrentes sobre la misma mascota no ganan los dos.
func (r *petRepo) SwapAdoptionStatus(ctx context.Context, id string, from, to pets.AdoptionStatus, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.ErrNotFound
	}
	if p.AdoptionStatus != from {
		return pets.ErrNotAvailable
	}

	p.AdoptionStatus = to
	p.UpdatedAt = updatedAt
	r.byID[id] = p
	return nil
}
