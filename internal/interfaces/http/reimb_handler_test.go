package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Reembolsos-api/internal/application/service"
	"github.com/jhoicas/Reembolsos-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Reembolsos-api/internal/interfaces/http"
)

// stubReimbRepo implementa el puerto de persistencia en memoria para
// ejercitar handler + servicio sin base de datos.
type stubReimbRepo struct {
	reimbs      []entity.Reimbursement
	updateCalls int
	saveCalls   int
	getCalls    int
}

func (s *stubReimbRepo) GetAll() ([]entity.Reimbursement, error) {
	s.getCalls++
	return s.reimbs, nil
}

func (s *stubReimbRepo) GetByID(id int) (*entity.Reimbursement, error) {
	s.getCalls++
	for i := range s.reimbs {
		if s.reimbs[i].ID == id {
			return &s.reimbs[i], nil
		}
	}
	return nil, nil
}

func (s *stubReimbRepo) GetByAuthor(authorID int) ([]entity.Reimbursement, error) {
	s.getCalls++
	var out []entity.Reimbursement
	for _, r := range s.reimbs {
		if r.AuthorID == authorID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubReimbRepo) Save(newReimb *entity.NewReimbursement) (*entity.Reimbursement, error) {
	s.saveCalls++
	r := entity.Reimbursement{
		ID:          len(s.reimbs) + 1,
		Amount:      newReimb.Amount,
		Submitted:   newReimb.Submitted,
		Description: newReimb.Description,
		AuthorID:    newReimb.AuthorID,
		StatusID:    newReimb.StatusID,
		TypeID:      newReimb.TypeID,
	}
	s.reimbs = append(s.reimbs, r)
	return &r, nil
}

func (s *stubReimbRepo) UpdateByID(reimb *entity.Reimbursement) error {
	s.updateCalls++
	return nil
}

func (s *stubReimbRepo) DeleteByID(id int) (bool, error) { return false, nil }

// buildReimbApp monta las rutas del handler sin middleware de auth; la
// autorización se prueba aparte en auth_middleware_test.go.
func buildReimbApp(repo *stubReimbRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewReimbHandler(service.NewReimbService(repo))
	app.Get("/api/reimbursements", h.GetAll)
	app.Get("/api/reimbursements/author/:id", h.GetByAuthor)
	app.Get("/api/reimbursements/:id", h.GetByID)
	app.Post("/api/reimbursements", h.Create)
	app.Put("/api/reimbursements", h.Update)
	return app
}

func seededRepo() *stubReimbRepo {
	return &stubReimbRepo{reimbs: []entity.Reimbursement{
		{ID: 1, Amount: decimal.NewFromInt(120), Description: "Hotel", AuthorID: 9, StatusID: entity.StatusPending, TypeID: entity.TypeLodging},
		{ID: 2, Amount: decimal.NewFromInt(35), Description: "Taxi", AuthorID: 4, StatusID: entity.StatusPending, TypeID: entity.TypeTravel},
	}}
}

func TestReimbHandler_GetByID_Retorna200ConNombresResueltos(t *testing.T) {
	app := buildReimbApp(seededRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/reimbursements/1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(1), body["reimb_id"])
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, "lodging", body["type"])
}

func TestReimbHandler_GetByID_IdNoNumerico_Retorna400SinTocarElRepo(t *testing.T) {
	repo := seededRepo()
	app := buildReimbApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/reimbursements/abc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, repo.getCalls, "un id no numérico se rechaza antes del servicio")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Invalid parameters provided")
	assert.Contains(t, string(body), "Provided id is not a number")
}

func TestReimbHandler_GetAll_SinDatos_Retorna404(t *testing.T) {
	app := buildReimbApp(&stubReimbRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/reimbursements", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "No data found.")
	assert.Contains(t, string(body), "No reimbursements found.")
}

func TestReimbHandler_Create_Retorna201ConIdDelServidor(t *testing.T) {
	repo := seededRepo()
	app := buildReimbApp(repo)

	payload := map[string]interface{}{
		"amount":      "75.50",
		"description": "Cena con cliente",
		"author_id":   4,
		"type_id":     entity.TypeFood,
	}
	raw, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/reimbursements", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, repo.saveCalls)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(3), body["reimb_id"], "el id lo asigna el servidor")
	assert.Equal(t, "pending", body["status"], "todo reembolso nace pending")
}

func TestReimbHandler_Update_EstadoFueraDeRango_Retorna409SinActualizar(t *testing.T) {
	repo := seededRepo()
	app := buildReimbApp(repo)

	payload := map[string]interface{}{
		"reimb_id":     1,
		"amount":       "120",
		"submitted":    "2026-08-01T10:00:00Z",
		"resolved":     "2026-08-02T10:00:00Z",
		"description":  "Hotel",
		"author_id":    9,
		"resolver_id":  2,
		"reimb_status": 9,
		"reimb_type":   entity.TypeLodging,
	}
	raw, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPut, "/api/reimbursements", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, 0, repo.updateCalls, "un estado fuera de catálogo no debe escribir")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Could not save Data")
}

func TestReimbHandler_Update_ResolucionValida_RetornaUpdatedTrue(t *testing.T) {
	repo := seededRepo()
	app := buildReimbApp(repo)

	payload := map[string]interface{}{
		"reimb_id":     1,
		"amount":       "120",
		"submitted":    "2026-08-01T10:00:00Z",
		"resolved":     "2026-08-02T10:00:00Z",
		"description":  "Hotel",
		"author_id":    9,
		"resolver_id":  2,
		"reimb_status": "2",
		"reimb_type":   entity.TypeLodging,
	}
	raw, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPut, "/api/reimbursements", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, repo.updateCalls)

	var body map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body["updated"])
}
