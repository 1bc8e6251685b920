package adoptions

import "context"

type Repository interface {
	Create(ctx context.Context, a Adoption) error
	Update(ctx context.Context, a Adoption) error
	GetByID(ctx context.Context, id string) (Adoption, error)

	// FindByApplicantAndPet devuelve ErrNotFound si el par no tiene solicitud.
	// Respalda la unicidad (applicant, pet) sin importar el estado.
	FindByApplicantAndPet(ctx context.Context, applicantUserID, petID string) (Adoption, error)

	// Listados en orden de presentación (SubmittedAt asc).
	ListByApplicant(ctx context.Context, applicantUserID string) ([]Adoption, error)
	ListByShelter(ctx context.Context, shelterUserID string) ([]Adoption, error)
	List(ctx context.Context) ([]Adoption, error)
}
