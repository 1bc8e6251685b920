package shelters

import "time"

// ContactPerson es el contacto visible del refugio.
type ContactPerson struct {
	Name     string
	Position string
	Phone    string
	Email    string
}

// Shelter es el perfil organizacional de un refugio.
// La identidad que decide adopciones es UserID (el user del refugio);
// este perfil agrega los datos públicos y el flag de verificación.
type Shelter struct {
	ID     string
	UserID string

	Name        string
	Description string
	Website     string
	Contact     ContactPerson

	Verified bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
