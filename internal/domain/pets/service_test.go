package pets

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	current, ok := r.byID[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.AdoptionStatus = current.AdoptionStatus
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context, f Filter) ([]Pet, error) {
	out := make([]Pet, 0)
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
	return out, nil
}

func (r *testRepo) ListByShelter(ctx context.Context, shelterUserID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.ShelterUserID == shelterUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) SetAdoptionStatus(ctx context.Context, id string, status AdoptionStatus, updatedAt time.Time) error {
	p, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	p.AdoptionStatus = status
	p.UpdatedAt = updatedAt
	r.byID[id] = p
	return nil
}

func (r *testRepo) SwapAdoptionStatus(ctx context.Context, id string, from, to AdoptionStatus, updatedAt time.Time) error {
	p, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	if p.AdoptionStatus != from {
		return ErrNotAvailable
	}
	p.AdoptionStatus = to
	p.UpdatedAt = updatedAt
	r.byID[id] = p
	return nil
}

// -------------------------
// Helpers
// -------------------------

func validCreateInput() CreateInput {
	return CreateInput{
		Name:        "Milo",
		Type:        TypeDog,
		Breed:       "Mixed",
		AgeYears:    2,
		AgeMonths:   3,
		Gender:      GenderMale,
		Size:        SizeMedium,
		Description: "Friendly",
		Behavior:    "Calm",
	}
}

func createOne(t *testing.T, svc *Service, shelterUserID string) Pet {
	t.Helper()

	p, err := svc.Create(context.Background(), shelterUserID, validCreateInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	return p
}

// -------------------------
// Tests: Create / UpdateProfile
// -------------------------

func TestService_Create_DefaultsToAvailable(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p := createOne(t, svc, "shelter-1")

	if p.AdoptionStatus != StatusAvailable {
		t.Fatalf("expected new pet Available, got %s", p.AdoptionStatus)
	}
	if p.ShelterUserID != "shelter-1" {
		t.Fatalf("expected shelter owner set, got %s", p.ShelterUserID)
	}
	if p.CreatedAt != now || p.UpdatedAt != now {
		t.Fatalf("expected timestamps = now")
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"empty name", func(in *CreateInput) { in.Name = " " }},
		{"bad type", func(in *CreateInput) { in.Type = Type("Dragon") }},
		{"empty breed", func(in *CreateInput) { in.Breed = "" }},
		{"negative years", func(in *CreateInput) { in.AgeYears = -1 }},
		{"months out of range", func(in *CreateInput) { in.AgeMonths = 12 }},
		{"bad gender", func(in *CreateInput) { in.Gender = Gender("Other") }},
		{"bad size", func(in *CreateInput) { in.Size = Size("Huge") }},
		{"empty description", func(in *CreateInput) { in.Description = "" }},
		{"empty behavior", func(in *CreateInput) { in.Behavior = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreateInput()
			tc.mutate(&in)

			if _, err := svc.Create(context.Background(), "shelter-1", in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestService_UpdateProfile_CannotTouchAvailability(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p := createOne(t, svc, "shelter-1")

	// Simular reserva activa.
	if err := svc.MarkPending(context.Background(), p.ID); err != nil {
		t.Fatalf("MarkPending error: %v", err)
	}

	name := "Milo Updated"
	got, err := svc.UpdateProfile(context.Background(), p.ID, UpdateProfileInput{Name: &name})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if got.Name != "Milo Updated" {
		t.Fatalf("expected name updated, got %s", got.Name)
	}

	// El PATCH de perfil no pisa la reserva.
	st, err := svc.Availability(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Availability error: %v", err)
	}
	if st != StatusPending {
		t.Fatalf("expected Pending after profile edit, got %s", st)
	}
}

// -------------------------
// Tests: tracker
// -------------------------

func TestService_MarkPending_RequiresAvailable(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p := createOne(t, svc, "shelter-1")

	if err := svc.MarkPending(context.Background(), p.ID); err != nil {
		t.Fatalf("first MarkPending error: %v", err)
	}

	// La segunda reserva pierde: la mascota ya no está Available.
	if err := svc.MarkPending(context.Background(), p.ID); !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("expected ErrNotAvailable on second reserve, got %v", err)
	}

	if err := svc.MarkPending(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown pet, got %v", err)
	}
}

func TestService_MarkAvailable_Idempotent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p := createOne(t, svc, "shelter-1")

	if err := svc.MarkAvailable(context.Background(), p.ID); err != nil {
		t.Fatalf("MarkAvailable on Available pet should be a no-op, got %v", err)
	}

	_ = svc.MarkPending(context.Background(), p.ID)
	if err := svc.MarkAvailable(context.Background(), p.ID); err != nil {
		t.Fatalf("MarkAvailable error: %v", err)
	}

	st, _ := svc.Availability(context.Background(), p.ID)
	if st != StatusAvailable {
		t.Fatalf("expected Available, got %s", st)
	}
}

func TestService_MarkAdopted_ThenAvailabilityReads(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p := createOne(t, svc, "shelter-1")

	_ = svc.MarkPending(context.Background(), p.ID)
	if err := svc.MarkAdopted(context.Background(), p.ID); err != nil {
		t.Fatalf("MarkAdopted error: %v", err)
	}

	st, err := svc.Availability(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Availability error: %v", err)
	}
	if st != StatusAdopted {
		t.Fatalf("expected Adopted, got %s", st)
	}
}

// -------------------------
// Tests: List filters
// -------------------------

func TestService_List_RejectsUnknownFilterValues(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.List(context.Background(), Filter{Type: Type("Dragon")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad type filter, got %v", err)
	}
	if _, err := svc.List(context.Background(), Filter{Gender: Gender("Other")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad gender filter, got %v", err)
	}
	if _, err := svc.List(context.Background(), Filter{Size: Size("Huge")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad size filter, got %v", err)
	}
}
