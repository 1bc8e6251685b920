package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-adoption-api/internal/domain/shelters"
)

type SheltersRepo struct {
	db *sql.DB
}

func NewSheltersRepo(db *sql.DB) *SheltersRepo {
	return &SheltersRepo{db: db}
}

const shelterColumns = `
	id, user_id,
	name, description, website,
	contact_name, contact_position, contact_phone, contact_email,
	verified,
	created_at, updated_at
`

// Create inserta el perfil. El UNIQUE sobre user_id respalda el
// "uno por user" del service cuando dos registros corren a la vez.
func (r *SheltersRepo) Create(ctx context.Context, sh shelters.Shelter) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO shelters (`+shelterColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		sh.ID,
		sh.UserID,
		sh.Name,
		sh.Description,
		sh.Website,
		sh.Contact.Name,
		sh.Contact.Position,
		sh.Contact.Phone,
		sh.Contact.Email,
		sh.Verified,
		sh.CreatedAt,
		sh.UpdatedAt,
	)
	if err != nil && isUniqueViolation(err) {
		return shelters.ErrAlreadyExists
	}
	return err
}

func (r *SheltersRepo) Update(ctx context.Context, sh shelters.Shelter) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE shelters
		SET
			name = $2,
			description = $3,
			website = $4,
			contact_name = $5,
			contact_position = $6,
			contact_phone = $7,
			contact_email = $8,
			verified = $9,
			updated_at = $10
		WHERE id = $1
	`,
		sh.ID,
		sh.Name,
		sh.Description,
		sh.Website,
		sh.Contact.Name,
		sh.Contact.Position,
		sh.Contact.Phone,
		sh.Contact.Email,
		sh.Verified,
		sh.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return shelters.ErrNotFound
	}
	return nil
}

func (r *SheltersRepo) GetByID(ctx context.Context, id string) (shelters.Shelter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return shelters.Shelter{}, shelters.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+shelterColumns+`
		FROM shelters
		WHERE id = $1
	`, id)

	return scanShelter(row)
}

func (r *SheltersRepo) GetByUser(ctx context.Context, userID string) (shelters.Shelter, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return shelters.Shelter{}, shelters.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+shelterColumns+`
		FROM shelters
		WHERE user_id = $1
	`, userID)

	return scanShelter(row)
}

func (r *SheltersRepo) List(ctx context.Context) ([]shelters.Shelter, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+shelterColumns+`
		FROM shelters
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]shelters.Shelter, 0)
	for rows.Next() {
		sh, err := scanShelter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sh)
	}
	return out, rows.Err()
}

func scanShelter(row rowScanner) (shelters.Shelter, error) {
	var sh shelters.Shelter

	if err := row.Scan(
		&sh.ID,
		&sh.UserID,
		&sh.Name,
		&sh.Description,
		&sh.Website,
		&sh.Contact.Name,
		&sh.Contact.Position,
		&sh.Contact.Phone,
		&sh.Contact.Email,
		&sh.Verified,
		&sh.CreatedAt,
		&sh.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return shelters.Shelter{}, shelters.ErrNotFound
		}
		return shelters.Shelter{}, err
	}

	return sh, nil
}
