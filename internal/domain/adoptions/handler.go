package adoptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adoptions", func(ar chi.Router) {
		ar.Post("/", submitHandler(svc))
		ar.Get("/{adoptionID}", getHandler(svc))
		ar.Patch("/{adoptionID}/status", transitionHandler(svc))
	})

	// Solicitudes del usuario autenticado (como adoptante)
	r.Get("/me/adoptions", listMineHandler(svc))

	// Solicitudes recibidas por el refugio autenticado
	r.Get("/me/shelter/adoptions", listForShelterHandler(svc))

	// Moderación
	r.Get("/admin/adoptions", adminListHandler(svc))
}

type referencePayload struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

type vetPayload struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type detailsRequest struct {
	LivingArrangement string `json:"living_arrangement"`

	// Punteros para exigir respuesta explícita (false también es respuesta).
	HasChildren  *bool `json:"has_children"`
	HasOtherPets *bool `json:"has_other_pets"`

	OtherPetsDetails  string             `json:"other_pets_details"`
	WorkSchedule      string             `json:"work_schedule"`
	PetCareExperience string             `json:"pet_care_experience"`
	ReasonForAdoption string             `json:"reason_for_adoption"`
	Vet               *vetPayload        `json:"vet"`
	References        []referencePayload `json:"references"`
}

type submitRequest struct {
	PetID   string         `json:"pet_id"`
	Details detailsRequest `json:"details"`
}

type transitionRequest struct {
	Status   string `json:"status"`
	Comments string `json:"comments"`

	HomeVisitRequired bool       `json:"home_visit_required"`
	HomeVisitDate     *time.Time `json:"home_visit_date"`
	HomeVisitNotes    string     `json:"home_visit_notes"`
}

type detailsResponse struct {
	LivingArrangement string             `json:"living_arrangement"`
	HasChildren       bool               `json:"has_children"`
	HasOtherPets      bool               `json:"has_other_pets"`
	OtherPetsDetails  string             `json:"other_pets_details,omitempty"`
	WorkSchedule      string             `json:"work_schedule"`
	PetCareExperience string             `json:"pet_care_experience"`
	ReasonForAdoption string             `json:"reason_for_adoption"`
	Vet               *vetPayload        `json:"vet,omitempty"`
	References        []referencePayload `json:"references"`
}

type approvalResponse struct {
	ApprovedByUserID  string     `json:"approved_by_user_id"`
	ApprovalDate      time.Time  `json:"approval_date"`
	Comments          string     `json:"comments,omitempty"`
	HomeVisitRequired bool       `json:"home_visit_required"`
	HomeVisitDate     *time.Time `json:"home_visit_date,omitempty"`
	HomeVisitNotes    string     `json:"home_visit_notes,omitempty"`
}

type adoptionResponse struct {
	ID              string            `json:"id"`
	PetID           string            `json:"pet_id"`
	ApplicantUserID string            `json:"applicant_user_id"`
	ShelterUserID   string            `json:"shelter_user_id"`
	Status          string            `json:"status"`
	Details         detailsResponse   `json:"details"`
	Approval        *approvalResponse `json:"approval,omitempty"`
	SubmittedAt     time.Time         `json:"submitted_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// submitHandler godoc
// @Summary  Enviar solicitud de adopción
// @Tags     adoptions
// @Router   /adoptions [post]
func submitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if req.Details.HasChildren == nil {
			http.Error(w, "has_children is required", http.StatusBadRequest)
			return
		}
		if req.Details.HasOtherPets == nil {
			http.Error(w, "has_other_pets is required", http.StatusBadRequest)
			return
		}

		a, err := svc.Submit(r.Context(), claims.UserID, SubmitInput{
			PetID:   req.PetID,
			Details: toDetails(req.Details),
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "incomplete application details", http.StatusBadRequest)
			case errors.Is(err, pets.ErrNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			case errors.Is(err, pets.ErrNotAvailable):
				http.Error(w, "pet is not available for adoption", http.StatusConflict)
			case errors.Is(err, ErrDuplicate):
				http.Error(w, "you have already applied for this pet", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toAdoptionResponse(a))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.GetForActor(r.Context(), chi.URLParam(r, "adoptionID"), Actor{
			UserID: claims.UserID,
			Role:   claims.Role,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrForbidden):
				http.Error(w, "forbidden", http.StatusForbidden)
			default:
				http.Error(w, "adoption not found", http.StatusNotFound)
			}
			return
		}

		writeJSON(w, http.StatusOK, toAdoptionResponse(a))
	}
}

// transitionHandler godoc
// @Summary  Cambiar el estado de una solicitud (refugio dueño o admin)
// @Tags     adoptions
// @Router   /adoptions/{adoptionID}/status [patch]
func transitionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req transitionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		newStatus, err := ParseStatus(strings.TrimSpace(req.Status))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		a, err := svc.Transition(r.Context(), chi.URLParam(r, "adoptionID"), Actor{
			UserID: claims.UserID,
			Role:   claims.Role,
		}, newStatus, TransitionInput{
			Comments:          req.Comments,
			HomeVisitRequired: req.HomeVisitRequired,
			HomeVisitDate:     req.HomeVisitDate,
			HomeVisitNotes:    req.HomeVisitNotes,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "adoption not found", http.StatusNotFound)
			case errors.Is(err, ErrForbidden):
				http.Error(w, "forbidden", http.StatusForbidden)
			case errors.Is(err, ErrIllegalTransition):
				// el mensaje trae el par (desde -> hacia)
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, pets.ErrNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "invalid input", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toAdoptionResponse(a))
	}
}

func listMineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByApplicant(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toAdoptionResponses(items))
	}
}

func listForShelterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if claims.Role != auth.RoleShelter && claims.Role != auth.RoleAdmin {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		items, err := svc.ListByShelter(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toAdoptionResponses(items))
	}
}

func adminListHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || !claims.IsAdmin() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toAdoptionResponses(items))
	}
}

func toDetails(d detailsRequest) Details {
	out := Details{
		LivingArrangement: d.LivingArrangement,
		HasChildren:       d.HasChildren != nil && *d.HasChildren,
		HasOtherPets:      d.HasOtherPets != nil && *d.HasOtherPets,
		OtherPetsDetails:  d.OtherPetsDetails,
		WorkSchedule:      d.WorkSchedule,
		PetCareExperience: d.PetCareExperience,
		ReasonForAdoption: d.ReasonForAdoption,
	}
	if d.Vet != nil {
		out.Vet = &VetDetails{Name: d.Vet.Name, Phone: d.Vet.Phone, Address: d.Vet.Address}
	}
	for _, ref := range d.References {
		out.References = append(out.References, Reference{
			Name:         ref.Name,
			Relationship: ref.Relationship,
			Phone:        ref.Phone,
			Email:        ref.Email,
		})
	}
	return out
}

func toAdoptionResponse(a Adoption) adoptionResponse {
	resp := adoptionResponse{
		ID:              a.ID,
		PetID:           a.PetID,
		ApplicantUserID: a.ApplicantUserID,
		ShelterUserID:   a.ShelterUserID,
		Status:          string(a.Status),
		Details: detailsResponse{
			LivingArrangement: a.Details.LivingArrangement,
			HasChildren:       a.Details.HasChildren,
			HasOtherPets:      a.Details.HasOtherPets,
			OtherPetsDetails:  a.Details.OtherPetsDetails,
			WorkSchedule:      a.Details.WorkSchedule,
			PetCareExperience: a.Details.PetCareExperience,
			ReasonForAdoption: a.Details.ReasonForAdoption,
		},
		SubmittedAt: a.SubmittedAt,
		UpdatedAt:   a.UpdatedAt,
	}

	if a.Details.Vet != nil {
		resp.Details.Vet = &vetPayload{
			Name:    a.Details.Vet.Name,
			Phone:   a.Details.Vet.Phone,
			Address: a.Details.Vet.Address,
		}
	}
	for _, ref := range a.Details.References {
		resp.Details.References = append(resp.Details.References, referencePayload{
			Name:         ref.Name,
			Relationship: ref.Relationship,
			Phone:        ref.Phone,
			Email:        ref.Email,
		})
	}

	if a.Approval != nil {
		resp.Approval = &approvalResponse{
			ApprovedByUserID:  a.Approval.ApprovedByUserID,
			ApprovalDate:      a.Approval.ApprovalDate,
			Comments:          a.Approval.Comments,
			HomeVisitRequired: a.Approval.HomeVisitRequired,
			HomeVisitDate:     a.Approval.HomeVisitDate,
			HomeVisitNotes:    a.Approval.HomeVisitNotes,
		}
	}

	return resp
}

func toAdoptionResponses(items []Adoption) []adoptionResponse {
	out := make([]adoptionResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAdoptionResponse(a))
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
