package shelters

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("shelter not found")
	ErrAlreadyExists = errors.New("shelter already registered for this user")
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

type RegisterInput struct {
	Name        string
	Description string
	Website     string
	Contact     ContactPerson
}

// Register da de alta el perfil del refugio. Uno por user.
// Nace sin verificar; un admin lo verifica después.
func (s *Service) Register(ctx context.Context, userID string, in RegisterInput) (Shelter, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Shelter{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Shelter{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Description) == "" {
		return Shelter{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByUser(ctx, userID); err == nil {
		return Shelter{}, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return Shelter{}, err
	}

	now := s.now()
	sh := Shelter{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Website:     strings.TrimSpace(in.Website),
		Contact:     in.Contact,
		Verified:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, sh); err != nil {
		return Shelter{}, err
	}
	return sh, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Shelter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Shelter{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByUser(ctx context.Context, userID string) (Shelter, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Shelter{}, ErrNotFound
	}
	return s.repo.GetByUser(ctx, userID)
}

func (s *Service) List(ctx context.Context) ([]Shelter, error) {
	return s.repo.List(ctx)
}

// SetVerified marca/desmarca la verificación (moderación admin).
// Idempotente.
func (s *Service) SetVerified(ctx context.Context, id string, verified bool) (Shelter, error) {
	sh, err := s.GetByID(ctx, id)
	if err != nil {
		return Shelter{}, err
	}

	sh.Verified = verified
	sh.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, sh); err != nil {
		return Shelter{}, err
	}
	return sh, nil
}
