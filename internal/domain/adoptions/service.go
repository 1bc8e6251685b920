package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("adoption not found")
	ErrForbidden    = errors.New("forbidden")

	// ErrDuplicate: ya existe solicitud para (applicant, pet), en cualquier estado.
	// Nota de producto: esto bloquea re-aplicar incluso tras un rechazo.
	ErrDuplicate = errors.New("application already exists for this pet")

	// ErrIllegalTransition se devuelve envuelto con el par (desde -> hacia).
	ErrIllegalTransition = errors.New("illegal status transition")
)

// PetTracker es lo que el motor necesita del módulo pets.
// *pets.Service lo satisface.
type PetTracker interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
	MarkPending(ctx context.Context, petID string) error
	MarkPendingOnApproval(ctx context.Context, petID string) error
	MarkAvailable(ctx context.Context, petID string) error
	MarkAdopted(ctx context.Context, petID string) error
}

// Actor es quien pide la operación; la identidad viene del verifier.
type Actor struct {
	UserID string
	Role   auth.Role
}

type Service struct {
	repo Repository
	pets PetTracker
	now  func() time.Time
}

func NewService(repo Repository, tracker PetTracker) *Service {
	return &Service{
		repo: repo,
		pets: tracker,
		now:  time.Now,
	}
}

type SubmitInput struct {
	PetID   string
	Details Details
}

// Submit crea la solicitud y reserva la mascota.
// Orden: validar cuestionario -> sin duplicado -> mascota existe y Available
// -> swap Available->Pending -> persistir. El duplicado se chequea antes que
// la disponibilidad: quien ya aplicó recibe ErrDuplicate aunque su propia
// solicitud sea la que tiene a la mascota reservada. El swap es condicional
// en el repo, así la segunda solicitud concurrente pierde con ErrNotAvailable.
func (s *Service) Submit(ctx context.Context, applicantUserID string, in SubmitInput) (Adoption, error) {
	applicantUserID = strings.TrimSpace(applicantUserID)
	petID := strings.TrimSpace(in.PetID)

	if applicantUserID == "" || petID == "" {
		return Adoption{}, ErrInvalidInput
	}
	if err := validateDetails(in.Details); err != nil {
		return Adoption{}, err
	}

	if _, err := s.repo.FindByApplicantAndPet(ctx, applicantUserID, petID); err == nil {
		return Adoption{}, ErrDuplicate
	} else if !errors.Is(err, ErrNotFound) {
		return Adoption{}, err
	}

	pet, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return Adoption{}, err
	}
	if pet.AdoptionStatus != pets.StatusAvailable {
		return Adoption{}, pets.ErrNotAvailable
	}

	// Reservar primero; la fila de la solicitud es el commit point.
	if err := s.pets.MarkPending(ctx, petID); err != nil {
		return Adoption{}, err
	}

	now := s.now()
	a := Adoption{
		ID:              uuid.NewString(),
		PetID:           petID,
		ApplicantUserID: applicantUserID,
		ShelterUserID:   pet.ShelterUserID,
		Status:          StatusPending,
		Details:         normalizeDetails(in.Details),
		SubmittedAt:     now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		// best-effort: liberar la reserva si no pudimos persistir
		_ = s.pets.MarkAvailable(ctx, petID)
		return Adoption{}, err
	}
	return a, nil
}

type TransitionInput struct {
	Comments string

	HomeVisitRequired bool
	HomeVisitDate     *time.Time
	HomeVisitNotes    string
}

// Transition aplica un cambio de estado pedido por el refugio dueño o un admin.
// El efecto sobre la mascota sale de petEffect y se aplica antes de persistir
// la solicitud (la solicitud es el commit point).
func (s *Service) Transition(ctx context.Context, id string, actor Actor, newStatus Status, in TransitionInput) (Adoption, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.TrimSpace(actor.UserID) == "" {
		return Adoption{}, ErrInvalidInput
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Adoption{}, err
	}

	if a.ShelterUserID != actor.UserID && actor.Role != auth.RoleAdmin {
		return Adoption{}, ErrForbidden
	}

	now := s.now()

	// Mismo estado: no-op que igual persiste updated_at.
	if newStatus == a.Status {
		a.UpdatedAt = now
		if err := s.repo.Update(ctx, a); err != nil {
			return Adoption{}, err
		}
		return a, nil
	}

	if !CanTransition(a.Status, newStatus) {
		return Adoption{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, a.Status, newStatus)
	}

	switch petEffect[newStatus] {
	case pets.StatusPending:
		err = s.pets.MarkPendingOnApproval(ctx, a.PetID)
	case pets.StatusAvailable:
		err = s.pets.MarkAvailable(ctx, a.PetID)
	case pets.StatusAdopted:
		err = s.pets.MarkAdopted(ctx, a.PetID)
	}
	if err != nil {
		return Adoption{}, err
	}

	if newStatus == StatusApproved {
		a.Approval = &ApprovalDetails{
			ApprovedByUserID:  actor.UserID,
			ApprovalDate:      now,
			Comments:          strings.TrimSpace(in.Comments),
			HomeVisitRequired: in.HomeVisitRequired,
			HomeVisitDate:     in.HomeVisitDate,
			HomeVisitNotes:    strings.TrimSpace(in.HomeVisitNotes),
		}
	}

	a.Status = newStatus
	a.UpdatedAt = now

	if err := s.repo.Update(ctx, a); err != nil {
		return Adoption{}, err
	}
	return a, nil
}

// GetForActor devuelve la solicitud si el actor es el solicitante,
// el refugio dueño o un admin.
func (s *Service) GetForActor(ctx context.Context, id string, actor Actor) (Adoption, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Adoption{}, ErrNotFound
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Adoption{}, err
	}

	if a.ApplicantUserID != actor.UserID &&
		a.ShelterUserID != actor.UserID &&
		actor.Role != auth.RoleAdmin {
		return Adoption{}, ErrForbidden
	}
	return a, nil
}

func (s *Service) ListByApplicant(ctx context.Context, applicantUserID string) ([]Adoption, error) {
	applicantUserID = strings.TrimSpace(applicantUserID)
	if applicantUserID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByApplicant(ctx, applicantUserID)
}

func (s *Service) ListByShelter(ctx context.Context, shelterUserID string) ([]Adoption, error) {
	shelterUserID = strings.TrimSpace(shelterUserID)
	if shelterUserID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByShelter(ctx, shelterUserID)
}

func (s *Service) ListAll(ctx context.Context) ([]Adoption, error) {
	return s.repo.List(ctx)
}

// validateDetails: fail fast, antes de tocar cualquier estado.
func validateDetails(d Details) error {
	if strings.TrimSpace(d.LivingArrangement) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(d.WorkSchedule) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(d.PetCareExperience) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(d.ReasonForAdoption) == "" {
		return ErrInvalidInput
	}
	if len(d.References) == 0 {
		return ErrInvalidInput
	}
	for _, ref := range d.References {
		if strings.TrimSpace(ref.Name) == "" {
			return ErrInvalidInput
		}
	}
	return nil
}

func normalizeDetails(d Details) Details {
	d.LivingArrangement = strings.TrimSpace(d.LivingArrangement)
	d.OtherPetsDetails = strings.TrimSpace(d.OtherPetsDetails)
	d.WorkSchedule = strings.TrimSpace(d.WorkSchedule)
	d.PetCareExperience = strings.TrimSpace(d.PetCareExperience)
	d.ReasonForAdoption = strings.TrimSpace(d.ReasonForAdoption)

	refs := make([]Reference, 0, len(d.References))
	for _, ref := range d.References {
		refs = append(refs, Reference{
			Name:         strings.TrimSpace(ref.Name),
			Relationship: strings.TrimSpace(ref.Relationship),
			Phone:        strings.TrimSpace(ref.Phone),
			Email:        strings.TrimSpace(ref.Email),
		})
	}
	d.References = refs

	if d.Vet != nil {
		d.Vet = &VetDetails{
			Name:    strings.TrimSpace(d.Vet.Name),
			Phone:   strings.TrimSpace(d.Vet.Phone),
			Address: strings.TrimSpace(d.Vet.Address),
		}
	}
	return d
}
