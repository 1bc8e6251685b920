package shelters

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/shelters", func(sr chi.Router) {
		sr.Post("/", registerHandler(svc))
		sr.Get("/", listHandler(svc))
		sr.Get("/{shelterID}", getHandler(svc))
	})

	// Perfil del refugio autenticado
	r.Get("/me/shelter", getMineHandler(svc))

	// Moderación
	r.Put("/admin/shelters/{shelterID}/verify", setVerifiedHandler(svc, true))
	r.Put("/admin/shelters/{shelterID}/reject", setVerifiedHandler(svc, false))
}

type contactPayload struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type registerRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Website     string         `json:"website"`
	Contact     contactPayload `json:"contact"`
}

type shelterResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Website     string         `json:"website,omitempty"`
	Contact     contactPayload `json:"contact"`
	Verified    bool           `json:"verified"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if claims.Role != auth.RoleShelter && claims.Role != auth.RoleAdmin {
			http.Error(w, "only shelter accounts can register a shelter", http.StatusForbidden)
			return
		}

		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sh, err := svc.Register(r.Context(), claims.UserID, RegisterInput{
			Name:        req.Name,
			Description: req.Description,
			Website:     req.Website,
			Contact: ContactPerson{
				Name:     req.Contact.Name,
				Position: req.Contact.Position,
				Phone:    req.Contact.Phone,
				Email:    req.Contact.Email,
			},
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrAlreadyExists):
				http.Error(w, "shelter already registered", http.StatusConflict)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toShelterResponse(sh))
	}
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]shelterResponse, 0, len(items))
		for _, sh := range items {
			out = append(out, toShelterResponse(sh))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sh, err := svc.GetByID(r.Context(), chi.URLParam(r, "shelterID"))
		if err != nil {
			http.Error(w, "shelter not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toShelterResponse(sh))
	}
}

func getMineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sh, err := svc.GetByUser(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "shelter not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toShelterResponse(sh))
	}
}

func setVerifiedHandler(svc *Service, verified bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || !claims.IsAdmin() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		sh, err := svc.SetVerified(r.Context(), chi.URLParam(r, "shelterID"), verified)
		if err != nil {
			http.Error(w, "shelter not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toShelterResponse(sh))
	}
}

func toShelterResponse(sh Shelter) shelterResponse {
	return shelterResponse{
		ID:          sh.ID,
		UserID:      sh.UserID,
		Name:        sh.Name,
		Description: sh.Description,
		Website:     sh.Website,
		Contact: contactPayload{
			Name:     sh.Contact.Name,
			Position: sh.Contact.Position,
			Phone:    sh.Contact.Phone,
			Email:    sh.Contact.Email,
		},
		Verified:  sh.Verified,
		CreatedAt: sh.CreatedAt,
		UpdatedAt: sh.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
