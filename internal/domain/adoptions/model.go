package adoptions

import "time"

// Reference es un contacto que avala al solicitante.
type Reference struct {
	Name         string
	Relationship string
	Phone        string
	Email        string
}

// VetDetails son los datos del veterinario del solicitante (opcional).
type VetDetails struct {
	Name    string
	Phone   string
	Address string
}

// Details es el cuestionario de la solicitud.
// Se fija al crear y no se edita después (no hay PATCH parcial).
type Details struct {
	LivingArrangement string
	HasChildren       bool
	HasOtherPets      bool
	OtherPetsDetails  string
	WorkSchedule      string
	PetCareExperience string
	ReasonForAdoption string

	Vet        *VetDetails
	References []Reference // al menos una
}

// ApprovalDetails se completa únicamente al transicionar a Approved.
type ApprovalDetails struct {
	ApprovedByUserID string
	ApprovalDate     time.Time
	Comments         string

	HomeVisitRequired bool
	HomeVisitDate     *time.Time
	HomeVisitNotes    string
}

// Adoption es la solicitud formal de un usuario por una mascota puntual.
type Adoption struct {
	ID string

	PetID           string
	ApplicantUserID string

	// Snapshot de pet.ShelterUserID al crear; no sigue cambios de
	// titularidad posteriores. Evita el join en cada check de autorización.
	ShelterUserID string

	Status   Status
	Details  Details
	Approval *ApprovalDetails

	SubmittedAt time.Time
	UpdatedAt   time.Time
}
