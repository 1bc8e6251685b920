package pets

import "time"

// HealthStatus resume el estado sanitario declarado por el refugio.
type HealthStatus struct {
	Vaccinated        bool
	Neutered          bool
	MedicalConditions string
}

// Pet representa un animal en adopción publicado por un refugio.
type Pet struct {
	ID            string
	ShelterUserID string // user del refugio dueño; inmutable tras la creación

	Name        string
	Type        Type
	Breed       string
	AgeYears    int
	AgeMonths   int // 0..11
	Gender      Gender
	Size        Size
	Color       string
	Description string
	Behavior    string
	Photos      []string

	Health HealthStatus

	AdoptionStatus AdoptionStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
