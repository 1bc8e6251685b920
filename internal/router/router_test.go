package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-adoption-api/internal/router"
)

func TestHTTP_EndToEnd_AdoptionLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	shelterID := "shelter-1"
	applicantID := "user-1"
	rivalID := "user-2"

	// 1) El refugio publica una mascota; nace Available
	petID := createPet(t, ts.URL, shelterID)
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/availability", "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 availability, got %d body=%s", st, string(body))
		}
		if got := availabilityOf(t, body); got != "Available" {
			t.Fatalf("expected Available, got %s", got)
		}
	}

	// 2) Un usuario común no puede publicar
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets", applicantID, "user", petPayload())
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 create pet as plain user, got %d", st)
		}
	}

	// 3) user-1 aplica; la mascota queda reservada
	adoptionID := submitAdoption(t, ts.URL, applicantID, petID)
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/availability", "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 availability, got %d", st)
		}
		if got := availabilityOf(t, body); got != "Pending" {
			t.Fatalf("expected Pending after submit, got %s body=%s", got, string(body))
		}
	}

	// 4) user-2 llega tarde: la mascota ya no está disponible
	{
		st, _ := doReq(t, ts.URL, "POST", "/adoptions", rivalID, "user", adoptionPayload(petID))
		if st != http.StatusConflict {
			t.Fatalf("expected 409 for second applicant, got %d", st)
		}
	}

	// 5) user-1 tampoco puede duplicar su propia solicitud. Aunque su propia
	// solicitud dejó la mascota en Pending, el conflicto reportado es el duplicado.
	{
		st, body := doReq(t, ts.URL, "POST", "/adoptions", applicantID, "user", adoptionPayload(petID))
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate, got %d", st)
		}
		if !strings.Contains(string(body), "already applied") {
			t.Fatalf("expected duplicate message, got body=%s", string(body))
		}
	}

	// 6) Solo los involucrados ven la solicitud
	{
		st, _ := doReq(t, ts.URL, "GET", "/adoptions/"+adoptionID, rivalID, "user", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 get adoption by stranger, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/adoptions/"+adoptionID, applicantID, "user", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get adoption by applicant, got %d", st)
		}
	}

	// 7) Otro refugio no decide sobre solicitudes ajenas
	{
		st, _ := doReq(t, ts.URL, "PATCH", "/adoptions/"+adoptionID+"/status", "shelter-9", "shelter", map[string]any{
			"status": "Approved",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 transition by foreign shelter, got %d", st)
		}
	}

	// 8) Saltarse la aprobación es transición ilegal
	{
		st, body := doReq(t, ts.URL, "PATCH", "/adoptions/"+adoptionID+"/status", shelterID, "shelter", map[string]any{
			"status": "Completed",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 Pending->Completed, got %d body=%s", st, string(body))
		}
	}

	// 9) El refugio aprueba: queda registro y la reserva se mantiene
	{
		st, body := doReq(t, ts.URL, "PATCH", "/adoptions/"+adoptionID+"/status", shelterID, "shelter", map[string]any{
			"status":              "Approved",
			"comments":            "Looks great",
			"home_visit_required": true,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 approve, got %d body=%s", st, string(body))
		}

		var resp struct {
			Status   string `json:"status"`
			Approval *struct {
				ApprovedByUserID  string `json:"approved_by_user_id"`
				HomeVisitRequired bool   `json:"home_visit_required"`
			} `json:"approval"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "Approved" || resp.Approval == nil {
			t.Fatalf("expected Approved with approval details, body=%s", string(body))
		}
		if resp.Approval.ApprovedByUserID != shelterID || !resp.Approval.HomeVisitRequired {
			t.Fatalf("unexpected approval details, body=%s", string(body))
		}

		_, avBody := doReq(t, ts.URL, "GET", "/pets/"+petID+"/availability", "", "", nil)
		if got := availabilityOf(t, avBody); got != "Pending" {
			t.Fatalf("expected pet still Pending after approve, got %s", got)
		}
	}

	// 10) Se concreta la adopción
	{
		st, body := doReq(t, ts.URL, "PATCH", "/adoptions/"+adoptionID+"/status", shelterID, "shelter", map[string]any{
			"status": "Completed",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 complete, got %d body=%s", st, string(body))
		}

		_, avBody := doReq(t, ts.URL, "GET", "/pets/"+petID+"/availability", "", "", nil)
		if got := availabilityOf(t, avBody); got != "Adopted" {
			t.Fatalf("expected Adopted, got %s", got)
		}
	}

	// 11) Listados por rol
	{
		st, _ := doReq(t, ts.URL, "GET", "/me/adoptions", applicantID, "user", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 my adoptions, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/me/shelter/adoptions", shelterID, "shelter", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 shelter adoptions, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/admin/adoptions", "admin-1", "admin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 admin list, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/admin/adoptions", applicantID, "user", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 admin list as user, got %d", st)
		}
	}
}

func TestHTTP_Reject_ReleasesPet_ForOtherApplicants(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	shelterID := "shelter-1"

	petID := createPet(t, ts.URL, shelterID)
	adoptionID := submitAdoption(t, ts.URL, "user-1", petID)

	// Rechazo: la mascota vuelve al pool
	{
		st, body := doReq(t, ts.URL, "PATCH", "/adoptions/"+adoptionID+"/status", shelterID, "shelter", map[string]any{
			"status":   "Rejected",
			"comments": "No yard",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 reject, got %d body=%s", st, string(body))
		}

		_, avBody := doReq(t, ts.URL, "GET", "/pets/"+petID+"/availability", "", "", nil)
		if got := availabilityOf(t, avBody); got != "Available" {
			t.Fatalf("expected Available after reject, got %s", got)
		}
	}

	// Otro usuario puede aplicar; el rechazado no
	{
		st, _ := doReq(t, ts.URL, "POST", "/adoptions", "user-1", "user", adoptionPayload(petID))
		if st != http.StatusConflict {
			t.Fatalf("expected 409 re-apply after rejection, got %d", st)
		}
	}
	submitAdoption(t, ts.URL, "user-2", petID)

	// Admin puede decidir aunque no sea el refugio dueño
	{
		_, body := doReq(t, ts.URL, "GET", "/me/adoptions", "user-2", "user", nil)
		var mine []struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &mine)
		if len(mine) != 1 {
			t.Fatalf("expected 1 adoption for user-2, body=%s", string(body))
		}

		st, body2 := doReq(t, ts.URL, "PATCH", "/adoptions/"+mine[0].ID+"/status", "admin-1", "admin", map[string]any{
			"status": "Approved",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 admin approve, got %d body=%s", st, string(body2))
		}
	}
}

func TestHTTP_Submit_RequiresCompleteQuestionnaire(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	petID := createPet(t, ts.URL, "shelter-1")

	// has_children / has_other_pets exigen respuesta explícita
	payload := adoptionPayload(petID)
	details := payload["details"].(map[string]any)
	delete(details, "has_children")

	st, body := doReq(t, ts.URL, "POST", "/adoptions", "user-1", "user", payload)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 missing has_children, got %d body=%s", st, string(body))
	}

	// y al menos una referencia
	payload = adoptionPayload(petID)
	payload["details"].(map[string]any)["references"] = []any{}

	st, body = doReq(t, ts.URL, "POST", "/adoptions", "user-1", "user", payload)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 without references, got %d body=%s", st, string(body))
	}

	// Ninguno de los intentos inválidos reservó la mascota
	_, avBody := doReq(t, ts.URL, "GET", "/pets/"+petID+"/availability", "", "", nil)
	if got := availabilityOf(t, avBody); got != "Available" {
		t.Fatalf("expected pet still Available, got %s", got)
	}
}

func TestHTTP_Shelters_RegisterAndVerify(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// Registro
	st, body := doReq(t, ts.URL, "POST", "/shelters", "shelter-1", "shelter", map[string]any{
		"name":        "Patitas",
		"description": "Refugio de barrio",
		"website":     "https://patitas.example",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register shelter, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID       string `json:"id"`
		Verified bool   `json:"verified"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" || resp.Verified {
		t.Fatalf("expected unverified shelter with id, body=%s", string(body))
	}

	// Doble registro del mismo user => 409
	st, _ = doReq(t, ts.URL, "POST", "/shelters", "shelter-1", "shelter", map[string]any{
		"name":        "Patitas 2",
		"description": "Otro",
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate shelter, got %d", st)
	}

	// Verificación: solo admin
	st, _ = doReq(t, ts.URL, "PUT", "/admin/shelters/"+resp.ID+"/verify", "shelter-1", "shelter", nil)
	if st != http.StatusForbidden {
		t.Fatalf("expected 403 verify as shelter, got %d", st)
	}

	st, body = doReq(t, ts.URL, "PUT", "/admin/shelters/"+resp.ID+"/verify", "admin-1", "admin", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 verify as admin, got %d body=%s", st, string(body))
	}
	_ = json.Unmarshal(body, &resp)
	if !resp.Verified {
		t.Fatalf("expected verified shelter, body=%s", string(body))
	}
}

// -------------------------
// Helpers
// -------------------------

func petPayload() map[string]any {
	return map[string]any{
		"name":        "Milo",
		"type":        "Dog",
		"breed":       "Mixed",
		"age_years":   2,
		"age_months":  3,
		"gender":      "Male",
		"size":        "Medium",
		"description": "Friendly",
		"behavior":    "Calm",
		"health": map[string]any{
			"vaccinated": true,
			"neutered":   false,
		},
	}
}

func adoptionPayload(petID string) map[string]any {
	return map[string]any{
		"pet_id": petID,
		"details": map[string]any{
			"living_arrangement":  "House with yard",
			"has_children":        false,
			"has_other_pets":      false,
			"work_schedule":       "Remote",
			"pet_care_experience": "Had dogs before",
			"reason_for_adoption": "Company",
			"references": []map[string]any{
				{"name": "Ana", "relationship": "Friend", "phone": "555-0101"},
			},
		},
	}
}

func createPet(t *testing.T, baseURL, shelterUserID string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", shelterUserID, "shelter", petPayload())
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func submitAdoption(t *testing.T, baseURL, applicantID, petID string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/adoptions", applicantID, "user", adoptionPayload(petID))
	if st != http.StatusCreated {
		t.Fatalf("expected 201 submit adoption, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("submit adoption: missing id body=%s", string(body))
	}
	return resp.ID
}

func availabilityOf(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		AdoptionStatus string `json:"adoption_status"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("availability unmarshal: %v body=%s", err, string(body))
	}
	return resp.AdoptionStatus
}

func doReq(t *testing.T, baseURL, method, path, debugUserID, debugRole string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}
	if debugRole != "" {
		req.Header.Set("X-Debug-User-Role", debugRole)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
