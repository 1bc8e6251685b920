package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")

	// ErrNotAvailable: la mascota existe pero no está en estado Available.
	ErrNotAvailable = errors.New("pet is not available for adoption")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name        string
	Type        Type
	Breed       string
	AgeYears    int
	AgeMonths   int
	Gender      Gender
	Size        Size
	Color       string
	Description string
	Behavior    string
	Photos      []string
	Health      HealthStatus
}

func (s *Service) Create(ctx context.Context, shelterUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(shelterUserID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if !ValidType(in.Type) {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Breed) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.AgeYears < 0 || in.AgeMonths < 0 || in.AgeMonths > 11 {
		return Pet{}, ErrInvalidInput
	}
	if !ValidGender(in.Gender) {
		return Pet{}, ErrInvalidInput
	}
	if !ValidSize(in.Size) {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Description) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Behavior) == "" {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:             uuid.NewString(),
		ShelterUserID:  shelterUserID,
		Name:           strings.TrimSpace(in.Name),
		Type:           in.Type,
		Breed:          strings.TrimSpace(in.Breed),
		AgeYears:       in.AgeYears,
		AgeMonths:      in.AgeMonths,
		Gender:         in.Gender,
		Size:           in.Size,
		Color:          strings.TrimSpace(in.Color),
		Description:    strings.TrimSpace(in.Description),
		Behavior:       strings.TrimSpace(in.Behavior),
		Photos:         in.Photos,
		Health:         in.Health,
		AdoptionStatus: StatusAvailable,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]Pet, error) {
	if f.Type != "" && !ValidType(f.Type) {
		return nil, ErrInvalidInput
	}
	if f.Gender != "" && !ValidGender(f.Gender) {
		return nil, ErrInvalidInput
	}
	if f.Size != "" && !ValidSize(f.Size) {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, f)
}

func (s *Service) ListByShelter(ctx context.Context, shelterUserID string) ([]Pet, error) {
	shelterUserID = strings.TrimSpace(shelterUserID)
	if shelterUserID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByShelter(ctx, shelterUserID)
}

type UpdateProfileInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name        *string
	Breed       *string
	AgeYears    *int
	AgeMonths   *int
	Color       *string
	Description *string
	Behavior    *string
	Photos      *[]string
	Vaccinated  *bool
	Neutered    *bool
	MedicalCond *string
}

// UpdateProfile edita el perfil de la mascota.
// A propósito no acepta AdoptionStatus: la disponibilidad
// solo se escribe vía el tracker (availability.go).
func (s *Service) UpdateProfile(ctx context.Context, petID string, in UpdateProfileInput) (Pet, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Breed != nil {
		if strings.TrimSpace(*in.Breed) == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.AgeYears != nil {
		if *in.AgeYears < 0 {
			return Pet{}, ErrInvalidInput
		}
		p.AgeYears = *in.AgeYears
	}
	if in.AgeMonths != nil {
		if *in.AgeMonths < 0 || *in.AgeMonths > 11 {
			return Pet{}, ErrInvalidInput
		}
		p.AgeMonths = *in.AgeMonths
	}
	if in.Color != nil {
		p.Color = strings.TrimSpace(*in.Color)
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Behavior != nil {
		p.Behavior = strings.TrimSpace(*in.Behavior)
	}
	if in.Photos != nil {
		p.Photos = *in.Photos
	}
	if in.Vaccinated != nil {
		p.Health.Vaccinated = *in.Vaccinated
	}
	if in.Neutered != nil {
		p.Health.Neutered = *in.Neutered
	}
	if in.MedicalCond != nil {
		p.Health.MedicalConditions = strings.TrimSpace(*in.MedicalCond)
	}

	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}
