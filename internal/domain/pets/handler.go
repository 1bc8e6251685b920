package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		// Listado y perfil son públicos (catálogo de adopción)
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Get("/{petID}/availability", getAvailabilityHandler(svc))

		// Alta y edición: refugio dueño (o admin)
		pr.Post("/", createPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
	})

	// Mascotas del refugio autenticado
	r.Get("/me/pets", listMyPetsHandler(svc))
}

type healthStatusPayload struct {
	Vaccinated        bool   `json:"vaccinated"`
	Neutered          bool   `json:"neutered"`
	MedicalConditions string `json:"medical_conditions"`
}

type createPetRequest struct {
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	Breed       string              `json:"breed"`
	AgeYears    int                 `json:"age_years"`
	AgeMonths   int                 `json:"age_months"`
	Gender      string              `json:"gender"`
	Size        string              `json:"size"`
	Color       string              `json:"color"`
	Description string              `json:"description"`
	Behavior    string              `json:"behavior"`
	Photos      []string            `json:"photos"`
	Health      healthStatusPayload `json:"health"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	// adoption_status no se acepta acá: lo escribe solo el flujo de adopción.
	Name        *string   `json:"name"`
	Breed       *string   `json:"breed"`
	AgeYears    *int      `json:"age_years"`
	AgeMonths   *int      `json:"age_months"`
	Color       *string   `json:"color"`
	Description *string   `json:"description"`
	Behavior    *string   `json:"behavior"`
	Photos      *[]string `json:"photos"`
	Vaccinated  *bool     `json:"vaccinated"`
	Neutered    *bool     `json:"neutered"`
	MedicalCond *string   `json:"medical_conditions"`
}

type petResponse struct {
	ID             string              `json:"id"`
	ShelterUserID  string              `json:"shelter_user_id"`
	Name           string              `json:"name"`
	Type           string              `json:"type"`
	Breed          string              `json:"breed"`
	AgeYears       int                 `json:"age_years"`
	AgeMonths      int                 `json:"age_months"`
	Gender         string              `json:"gender"`
	Size           string              `json:"size"`
	Color          string              `json:"color"`
	Description    string              `json:"description"`
	Behavior       string              `json:"behavior"`
	Photos         []string            `json:"photos"`
	Health         healthStatusPayload `json:"health"`
	AdoptionStatus string              `json:"adoption_status"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type availabilityResponse struct {
	PetID          string `json:"pet_id"`
	AdoptionStatus string `json:"adoption_status"`
}

// createPetHandler godoc
// @Summary  Publicar mascota en adopción
// @Tags     pets
// @Router   /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if claims.Role != auth.RoleShelter && claims.Role != auth.RoleAdmin {
			http.Error(w, "only shelters can publish pets", http.StatusForbidden)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:        req.Name,
			Type:        Type(req.Type),
			Breed:       req.Breed,
			AgeYears:    req.AgeYears,
			AgeMonths:   req.AgeMonths,
			Gender:      Gender(req.Gender),
			Size:        Size(req.Size),
			Color:       req.Color,
			Description: req.Description,
			Behavior:    req.Behavior,
			Photos:      req.Photos,
			Health: HealthStatus{
				Vaccinated:        req.Health.Vaccinated,
				Neutered:          req.Health.Neutered,
				MedicalConditions: req.Health.MedicalConditions,
			},
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary  Listar mascotas con filtros opcionales
// @Tags     pets
// @Router   /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		f := Filter{
			Type:   Type(strings.TrimSpace(q.Get("type"))),
			Gender: Gender(strings.TrimSpace(q.Get("gender"))),
			Size:   Size(strings.TrimSpace(q.Get("size"))),
		}

		if v := strings.TrimSpace(q.Get("min_age")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				http.Error(w, "min_age must be a non-negative integer", http.StatusBadRequest)
				return
			}
			f.MinAgeYears = &n
		}
		if v := strings.TrimSpace(q.Get("max_age")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				http.Error(w, "max_age must be a non-negative integer", http.StatusBadRequest)
				return
			}
			f.MaxAgeYears = &n
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "invalid filter", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// getAvailabilityHandler expone solo el estado, para polls baratos desde la UI.
func getAvailabilityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		st, err := svc.Availability(r.Context(), petID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, availabilityResponse{
			PetID:          petID,
			AdoptionStatus: string(st),
		})
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		current, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		// Owner (refugio) o admin
		if current.ShelterUserID != claims.UserID && !claims.IsAdmin() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updatePetRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.UpdateProfile(r.Context(), petID, UpdateProfileInput{
			Name:        req.Name,
			Breed:       req.Breed,
			AgeYears:    req.AgeYears,
			AgeMonths:   req.AgeMonths,
			Color:       req.Color,
			Description: req.Description,
			Behavior:    req.Behavior,
			Photos:      req.Photos,
			Vaccinated:  req.Vaccinated,
			Neutered:    req.Neutered,
			MedicalCond: req.MedicalCond,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

func listMyPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByShelter(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:            p.ID,
		ShelterUserID: p.ShelterUserID,
		Name:          p.Name,
		Type:          string(p.Type),
		Breed:         p.Breed,
		AgeYears:      p.AgeYears,
		AgeMonths:     p.AgeMonths,
		Gender:        string(p.Gender),
		Size:          string(p.Size),
		Color:         p.Color,
		Description:   p.Description,
		Behavior:      p.Behavior,
		Photos:        p.Photos,
		Health: healthStatusPayload{
			Vaccinated:        p.Health.Vaccinated,
			Neutered:          p.Health.Neutered,
			MedicalConditions: p.Health.MedicalConditions,
		},
		AdoptionStatus: string(p.AdoptionStatus),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
