package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption-api/internal/domain/shelters"
)

type shelterRepo struct {
	mu   sync.RWMutex
	byID map[string]shelters.Shelter
}

func NewShelterRepo() shelters.Repository {
	return &shelterRepo{
		byID: make(map[string]shelters.Shelter),
	}
}

func (r *shelterRepo) Create(ctx context.Context, sh shelters.Shelter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(sh.ID) == "" {
		return errors.New("shelter id required")
	}
	if _, exists := r.byID[sh.ID]; exists {
		return errors.New("shelter already exists")
	}
	r.byID[sh.ID] = sh
	return nil
}

func (r *shelterRepo) Update(ctx context.Context, sh shelters.Shelter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(sh.ID) == "" {
		return errors.New("shelter id required")
	}
	if _, exists := r.byID[sh.ID]; !exists {
		return shelters.ErrNotFound
	}
	r.byID[sh.ID] = sh
	return nil
}

func (r *shelterRepo) GetByID(ctx context.Context, id string) (shelters.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sh, ok := r.byID[id]
	if !ok {
		return shelters.Shelter{}, shelters.ErrNotFound
	}
	return sh, nil
}

func (r *shelterRepo) GetByUser(ctx context.Context, userID string) (shelters.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sh := range r.byID {
		if sh.UserID == userID {
			return sh, nil
		}
	}
	return shelters.Shelter{}, shelters.ErrNotFound
}

func (r *shelterRepo) List(ctx context.Context) ([]shelters.Shelter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]shelters.Shelter, 0, len(r.byID))
	for _, sh := range r.byID {
		out = append(out, sh)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
