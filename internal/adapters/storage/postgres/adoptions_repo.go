package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"pet-adoption-api/internal/domain/adoptions"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

const adoptionColumns = `
	id, pet_id, applicant_user_id, shelter_user_id,
	status, details, approval,
	submitted_at, updated_at
`

// El cuestionario y los datos de aprobación van como jsonb:
// se fijan al crear / al aprobar y no se consultan por campo.
type detailsDoc struct {
	LivingArrangement string         `json:"living_arrangement"`
	HasChildren       bool           `json:"has_children"`
	HasOtherPets      bool           `json:"has_other_pets"`
	OtherPetsDetails  string         `json:"other_pets_details,omitempty"`
	WorkSchedule      string         `json:"work_schedule"`
	PetCareExperience string         `json:"pet_care_experience"`
	ReasonForAdoption string         `json:"reason_for_adoption"`
	Vet               *vetDoc        `json:"vet,omitempty"`
	References        []referenceDoc `json:"references"`
}

type vetDoc struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type referenceDoc struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
}

type approvalDoc struct {
	ApprovedByUserID  string  `json:"approved_by_user_id"`
	ApprovalDate      string  `json:"approval_date"`
	Comments          string  `json:"comments,omitempty"`
	HomeVisitRequired bool    `json:"home_visit_required"`
	HomeVisitDate     *string `json:"home_visit_date,omitempty"`
	HomeVisitNotes    string  `json:"home_visit_notes,omitempty"`
}

func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	details, approval, err := marshalDocs(a)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO adoptions (`+adoptionColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		a.ID,
		a.PetID,
		a.ApplicantUserID,
		a.ShelterUserID,
		string(a.Status),
		details,
		approval,
		a.SubmittedAt,
		a.UpdatedAt,
	)
	if err != nil && isUniqueViolation(err) {
		return adoptions.ErrDuplicate
	}
	return err
}

func (r *AdoptionsRepo) Update(ctx context.Context, a adoptions.Adoption) error {
	details, approval, err := marshalDocs(a)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE adoptions
		SET
			status = $2,
			details = $3,
			approval = $4,
			updated_at = $5
		WHERE id = $1
	`,
		a.ID,
		string(a.Status),
		details,
		approval,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return adoptions.ErrNotFound
	}
	return nil
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoptions
		WHERE id = $1
	`, id)

	return scanAdoption(row)
}

func (r *AdoptionsRepo) FindByApplicantAndPet(ctx context.Context, applicantUserID, petID string) (adoptions.Adoption, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoptions
		WHERE applicant_user_id = $1 AND pet_id = $2
	`, applicantUserID, petID)

	return scanAdoption(row)
}

func (r *AdoptionsRepo) ListByApplicant(ctx context.Context, applicantUserID string) ([]adoptions.Adoption, error) {
	return r.list(ctx, `WHERE applicant_user_id = $1`, applicantUserID)
}

func (r *AdoptionsRepo) ListByShelter(ctx context.Context, shelterUserID string) ([]adoptions.Adoption, error) {
	return r.list(ctx, `WHERE shelter_user_id = $1`, shelterUserID)
}

func (r *AdoptionsRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	return r.list(ctx, ``)
}

func (r *AdoptionsRepo) list(ctx context.Context, where string, args ...any) ([]adoptions.Adoption, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoptions
		`+where+`
		ORDER BY submitted_at ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Adoption, 0)
	for rows.Next() {
		a, err := scanAdoption(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func marshalDocs(a adoptions.Adoption) (details []byte, approval []byte, err error) {
	doc := detailsDoc{
		LivingArrangement: a.Details.LivingArrangement,
		HasChildren:       a.Details.HasChildren,
		HasOtherPets:      a.Details.HasOtherPets,
		OtherPetsDetails:  a.Details.OtherPetsDetails,
		WorkSchedule:      a.Details.WorkSchedule,
		PetCareExperience: a.Details.PetCareExperience,
		ReasonForAdoption: a.Details.ReasonForAdoption,
	}
	if a.Details.Vet != nil {
		doc.Vet = &vetDoc{Name: a.Details.Vet.Name, Phone: a.Details.Vet.Phone, Address: a.Details.Vet.Address}
	}
	for _, ref := range a.Details.References {
		doc.References = append(doc.References, referenceDoc{
			Name:         ref.Name,
			Relationship: ref.Relationship,
			Phone:        ref.Phone,
			Email:        ref.Email,
		})
	}

	details, err = json.Marshal(doc)
	if err != nil {
		return nil, nil, err
	}

	if a.Approval == nil {
		return details, nil, nil
	}

	ap := approvalDoc{
		ApprovedByUserID:  a.Approval.ApprovedByUserID,
		ApprovalDate:      a.Approval.ApprovalDate.Format(timeLayout),
		Comments:          a.Approval.Comments,
		HomeVisitRequired: a.Approval.HomeVisitRequired,
		HomeVisitNotes:    a.Approval.HomeVisitNotes,
	}
	if a.Approval.HomeVisitDate != nil {
		s := a.Approval.HomeVisitDate.Format(timeLayout)
		ap.HomeVisitDate = &s
	}

	approval, err = json.Marshal(ap)
	if err != nil {
		return nil, nil, err
	}
	return details, approval, nil
}

func scanAdoption(row rowScanner) (adoptions.Adoption, error) {
	var (
		a        adoptions.Adoption
		status   string
		details  []byte
		approval []byte
	)

	if err := row.Scan(
		&a.ID,
		&a.PetID,
		&a.ApplicantUserID,
		&a.ShelterUserID,
		&status,
		&details,
		&approval,
		&a.SubmittedAt,
		&a.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return adoptions.Adoption{}, adoptions.ErrNotFound
		}
		return adoptions.Adoption{}, err
	}

	a.Status = adoptions.Status(status)

	var doc detailsDoc
	if err := json.Unmarshal(details, &doc); err != nil {
		return adoptions.Adoption{}, err
	}
	a.Details = adoptions.Details{
		LivingArrangement: doc.LivingArrangement,
		HasChildren:       doc.HasChildren,
		HasOtherPets:      doc.HasOtherPets,
		OtherPetsDetails:  doc.OtherPetsDetails,
		WorkSchedule:      doc.WorkSchedule,
		PetCareExperience: doc.PetCareExperience,
		ReasonForAdoption: doc.ReasonForAdoption,
	}
	if doc.Vet != nil {
		a.Details.Vet = &adoptions.VetDetails{Name: doc.Vet.Name, Phone: doc.Vet.Phone, Address: doc.Vet.Address}
	}
	for _, ref := range doc.References {
		a.Details.References = append(a.Details.References, adoptions.Reference{
			Name:         ref.Name,
			Relationship: ref.Relationship,
			Phone:        ref.Phone,
			Email:        ref.Email,
		})
	}

	if len(approval) > 0 {
		var ap approvalDoc
		if err := json.Unmarshal(approval, &ap); err != nil {
			return adoptions.Adoption{}, err
		}
		parsed, err := parseDocTime(ap.ApprovalDate)
		if err != nil {
			return adoptions.Adoption{}, err
		}
		a.Approval = &adoptions.ApprovalDetails{
			ApprovedByUserID:  ap.ApprovedByUserID,
			ApprovalDate:      parsed,
			Comments:          ap.Comments,
			HomeVisitRequired: ap.HomeVisitRequired,
			HomeVisitNotes:    ap.HomeVisitNotes,
		}
		if ap.HomeVisitDate != nil {
			hv, err := parseDocTime(*ap.HomeVisitDate)
			if err != nil {
				return adoptions.Adoption{}, err
			}
			a.Approval.HomeVisitDate = &hv
		}
	}

	return a, nil
}
