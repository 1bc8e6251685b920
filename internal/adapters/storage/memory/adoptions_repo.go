package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption-api/internal/domain/adoptions"
)

type adoptionRepo struct {
	mu   sync.RWMutex
	byID map[string]adoptions.Adoption

	// Índice (applicant|pet) -> adoption id. Respalda la unicidad
	// también bajo concurrencia, como el unique index en Postgres.
	byApplicantPet map[string]string
}

func NewAdoptionRepo() adoptions.Repository {
	return &adoptionRepo{
		byID:           make(map[string]adoptions.Adoption),
		byApplicantPet: make(map[string]string),
	}
}

func pairKey(applicantUserID, petID string) string {
	return applicantUserID + "|" + petID
}

func (r *adoptionRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("adoption id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("adoption already exists")
	}

	key := pairKey(a.ApplicantUserID, a.PetID)
	if _, exists := r.byApplicantPet[key]; exists {
		return adoptions.ErrDuplicate
	}

	r.byID[a.ID] = a
	r.byApplicantPet[key] = a.ID
	return nil
}

func (r *adoptionRepo) Update(ctx context.Context, a adoptions.Adoption) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("adoption id required")
	}
	if _, exists := r.byID[a.ID]; !exists {
		return adoptions.ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *adoptionRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	return a, nil
}

func (r *adoptionRepo) FindByApplicantAndPet(ctx context.Context, applicantUserID, petID string) (adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byApplicantPet[pairKey(applicantUserID, petID)]
	if !ok {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *adoptionRepo) ListByApplicant(ctx context.Context, applicantUserID string) ([]adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.Adoption, 0)
	for _, a := range r.byID {
		if a.ApplicantUserID == applicantUserID {
			out = append(out, a)
		}
	}
	sortBySubmittedAt(out)
	return out, nil
}

func (r *adoptionRepo) ListByShelter(ctx context.Context, shelterUserID string) ([]adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.Adoption, 0)
	for _, a := range r.byID {
		if a.ShelterUserID == shelterUserID {
			out = append(out, a)
		}
	}
	sortBySubmittedAt(out)
	return out, nil
}

func (r *adoptionRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.Adoption, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sortBySubmittedAt(out)
	return out, nil
}

// Orden de presentación = orden de envío.
func sortBySubmittedAt(items []adoptions.Adoption) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].SubmittedAt.Before(items[j].SubmittedAt)
	})
}
