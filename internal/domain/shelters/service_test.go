package shelters

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Shelter
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Shelter{}}
}

func (r *testRepo) Create(ctx context.Context, sh Shelter) error {
	if sh.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[sh.ID] = sh
	return nil
}

func (r *testRepo) Update(ctx context.Context, sh Shelter) error {
	if _, ok := r.byID[sh.ID]; !ok {
		return ErrNotFound
	}
	r.byID[sh.ID] = sh
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Shelter, error) {
	sh, ok := r.byID[id]
	if !ok {
		return Shelter{}, ErrNotFound
	}
	return sh, nil
}

func (r *testRepo) GetByUser(ctx context.Context, userID string) (Shelter, error) {
	for _, sh := range r.byID {
		if sh.UserID == userID {
			return sh, nil
		}
	}
	return Shelter{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]Shelter, error) {
	out := make([]Shelter, 0, len(r.byID))
	for _, sh := range r.byID {
		out = append(out, sh)
	}
	return out, nil
}

func TestService_Register_OnePerUser(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	sh, err := svc.Register(context.Background(), "shelter-1", RegisterInput{
		Name:        "Patitas",
		Description: "Refugio de barrio",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if sh.Verified {
		t.Fatalf("new shelter must start unverified")
	}
	if sh.CreatedAt != now || sh.UpdatedAt != now {
		t.Fatalf("expected timestamps = now")
	}

	_, err = svc.Register(context.Background(), "shelter-1", RegisterInput{
		Name:        "Patitas 2",
		Description: "Otro intento",
	})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestService_Register_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Register(context.Background(), "", RegisterInput{Name: "X", Description: "Y"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty user, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "u1", RegisterInput{Description: "Y"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "u1", RegisterInput{Name: "X"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty description, got %v", err)
	}
}

func TestService_SetVerified_Idempotent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	sh, err := svc.Register(context.Background(), "shelter-1", RegisterInput{
		Name:        "Patitas",
		Description: "Refugio de barrio",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	got, err := svc.SetVerified(context.Background(), sh.ID, true)
	if err != nil {
		t.Fatalf("SetVerified error: %v", err)
	}
	if !got.Verified {
		t.Fatalf("expected verified")
	}

	// repetir no cambia el resultado
	got, err = svc.SetVerified(context.Background(), sh.ID, true)
	if err != nil || !got.Verified {
		t.Fatalf("expected idempotent verify, got %v verified=%v", err, got.Verified)
	}

	got, err = svc.SetVerified(context.Background(), sh.ID, false)
	if err != nil || got.Verified {
		t.Fatalf("expected unverify, got %v verified=%v", err, got.Verified)
	}

	if _, err := svc.SetVerified(context.Background(), "nope", true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
