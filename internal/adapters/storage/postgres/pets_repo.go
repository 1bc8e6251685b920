package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pet-adoption-api/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	id, shelter_user_id,
	name, type, breed,
	age_years, age_months,
	gender, size, color,
	description, behavior, photos,
	vaccinated, neutered, medical_conditions,
	adoption_status,
	created_at, updated_at
`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	photos, err := json.Marshal(p.Photos)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
	`,
		p.ID,
		p.ShelterUserID,
		p.Name,
		string(p.Type),
		p.Breed,
		p.AgeYears,
		p.AgeMonths,
		string(p.Gender),
		string(p.Size),
		p.Color,
		p.Description,
		p.Behavior,
		photos,
		p.Health.Vaccinated,
		p.Health.Neutered,
		p.Health.MedicalConditions,
		string(p.AdoptionStatus),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

// Update escribe el perfil; adoption_status queda afuera a propósito
// (solo entra por Set/SwapAdoptionStatus).
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	photos, err := json.Marshal(p.Photos)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			breed = $3,
			age_years = $4,
			age_months = $5,
			color = $6,
			description = $7,
			behavior = $8,
			photos = $9,
			vaccinated = $10,
			neutered = $11,
			medical_conditions = $12,
			updated_at = $13
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Breed,
		p.AgeYears,
		p.AgeMonths,
		p.Color,
		p.Description,
		p.Behavior,
		photos,
		p.Health.Vaccinated,
		p.Health.Neutered,
		p.Health.MedicalConditions,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	return scanPet(row)
}

func (r *PetsRepo) List(ctx context.Context, f pets.Filter) ([]pets.Pet, error) {
	where := make([]string, 0, 5)
	args := make([]any, 0, 5)

	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.Type != "" {
		add("type = $%d", string(f.Type))
	}
	if f.Gender != "" {
		add("gender = $%d", string(f.Gender))
	}
	if f.Size != "" {
		add("size = $%d", string(f.Size))
	}
	if f.MinAgeYears != nil {
		add("age_years >= $%d", *f.MinAgeYears)
	}
	if f.MaxAgeYears != nil {
		add("age_years <= $%d", *f.MaxAgeYears)
	}

	query := `SELECT ` + petColumns + ` FROM pets`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPets(rows)
}

func (r *PetsRepo) ListByShelter(ctx context.Context, shelterUserID string) ([]pets.Pet, error) {
	shelterUserID = strings.TrimSpace(shelterUserID)
	if shelterUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE shelter_user_id = $1
		ORDER BY created_at ASC
	`, shelterUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPets(rows)
}

func (r *PetsRepo) SetAdoptionStatus(ctx context.Context, id string, status pets.AdoptionStatus, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET adoption_status = $2, updated_at = $3
		WHERE id = $1
	`, id, string(status), updatedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

// SwapAdoptionStatus es el update condicional que cierra la carrera:
// solo gana el request que encuentra el estado `from` todavía puesto.
func (r *PetsRepo) SwapAdoptionStatus(ctx context.Context, id string, from, to pets.AdoptionStatus, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET adoption_status = $3, updated_at = $4
		WHERE id = $1 AND adoption_status = $2
	`, id, string(from), string(to), updatedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		return nil
	}

	// 0 filas: distinguir inexistente de "estaba en otro estado".
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM pets WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return pets.ErrNotFound
	}
	return pets.ErrNotAvailable
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var (
		p       pets.Pet
		typ     string
		gender  string
		size    string
		status  string
		photos  []byte
		medCond sql.NullString
	)

	if err := row.Scan(
		&p.ID,
		&p.ShelterUserID,
		&p.Name,
		&typ,
		&p.Breed,
		&p.AgeYears,
		&p.AgeMonths,
		&gender,
		&size,
		&p.Color,
		&p.Description,
		&p.Behavior,
		&photos,
		&p.Health.Vaccinated,
		&p.Health.Neutered,
		&medCond,
		&status,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}

	p.Type = pets.Type(typ)
	p.Gender = pets.Gender(gender)
	p.Size = pets.Size(size)
	p.AdoptionStatus = pets.AdoptionStatus(status)
	if medCond.Valid {
		p.Health.MedicalConditions = medCond.String
	}
	if len(photos) > 0 {
		if err := json.Unmarshal(photos, &p.Photos); err != nil {
			return pets.Pet{}, err
		}
	}

	return p, nil
}

func scanPets(rows *sql.Rows) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
