package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocl-logistics/ocl-backend/app/models"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/apperr"
)

// fakeColdCallRepo is an in-memory ColdCallRepository for handler tests.
type fakeColdCallRepo struct {
	mu      sync.Mutex
	rows    map[uint]*models.ColdCallRow
	nextID  uint
	updates []map[string]any
}

func newFakeColdCallRepo() *fakeColdCallRepo {
	return &fakeColdCallRepo{rows: map[uint]*models.ColdCallRow{}, nextID: 1}
}

func (f *fakeColdCallRepo) ListTabs() ([]models.TabCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := map[string]int64{}
	for _, r := range f.rows {
		counts[r.TabName]++
	}
	var tabs []models.TabCount
	for name, n := range counts {
		tabs = append(tabs, models.TabCount{TabName: name, Count: n})
	}
	return tabs, nil
}

func (f *fakeColdCallRepo) ListRows(tabName string) ([]models.ColdCallRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rows []models.ColdCallRow
	for _, r := range f.rows {
		if r.TabName == tabName {
			rows = append(rows, *r)
		}
	}
	return rows, nil
}

func (f *fakeColdCallRepo) GetByID(id uint) (*models.ColdCallRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, apperr.NotFound("row not found")
	}
	copied := *row
	return &copied, nil
}

func (f *fakeColdCallRepo) Create(row *models.ColdCallRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row.ID = f.nextID
	f.nextID++
	copied := *row
	f.rows[row.ID] = &copied
	return nil
}

func (f *fakeColdCallRepo) MaxRowNumber(tabName string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	highest := 0
	for _, r := range f.rows {
		if r.TabName == tabName && r.RowNumber > highest {
			highest = r.RowNumber
		}
	}
	return highest, nil
}

func (f *fakeColdCallRepo) UpdateFields(id uint, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return apperr.NotFound("row not found")
	}
	f.updates = append(f.updates, fields)
	if v, ok := fields["row_number"]; ok {
		f.rows[id].RowNumber = v.(int)
	}
	if v, ok := fields["company_name"]; ok {
		f.rows[id].CompanyName = v.(string)
	}
	return nil
}

func (f *fakeColdCallRepo) Delete(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return apperr.NotFound("row not found")
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeColdCallRepo) DeleteTab(tabName string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, r := range f.rows {
		if r.TabName == tabName {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

func newColdCallTestApp(repo *fakeColdCallRepo) *fiber.App {
	ccc := NewColdCallController(repo)
	app := fiber.New()
	app.Get("/", ccc.HandleListTabs)
	app.Get("/:tabName", ccc.HandleListRows)
	app.Post("/", ccc.HandleCreateRow)
	app.Put("/bulk/:tabName", ccc.HandleBulkUpdate)
	app.Put("/:id", ccc.HandleUpdateRow)
	app.Delete("/tab/:tabName", ccc.HandleDeleteTab)
	app.Delete("/:id", ccc.HandleDeleteRow)
	return app
}

func jsonBody(t *testing.T, resp io.Reader) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestCreateRowAssignsNextRowNumber(t *testing.T) {
	t.Parallel()

	repo := newFakeColdCallRepo()
	repo.Create(&models.ColdCallRow{TabName: "Dhaka", RowNumber: 4})
	app := newColdCallTestApp(repo)

	req := httptest.NewRequest("POST", "/",
		strings.NewReader(`{"tabName":"Dhaka","companyName":"Acme Traders"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := jsonBody(t, resp.Body)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(5), data["rowNumber"])
	assert.Equal(t, "Acme Traders", data["companyName"])
}

func TestCreateRowRequiresTabName(t *testing.T) {
	t.Parallel()

	app := newColdCallTestApp(newFakeColdCallRepo())
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"companyName":"Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := jsonBody(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "tabName")
}

func TestCreateRowRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	app := newColdCallTestApp(newFakeColdCallRepo())
	req := httptest.NewRequest("POST", "/",
		strings.NewReader(`{"tabName":"Dhaka","bogusField":1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateRowRejectsBadEnums(t *testing.T) {
	t.Parallel()

	app := newColdCallTestApp(newFakeColdCallRepo())
	req := httptest.NewRequest("POST", "/",
		strings.NewReader(`{"tabName":"Dhaka","broadcast":"MAYBE"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateRowOnlyTouchesSentFields(t *testing.T) {
	t.Parallel()

	repo := newFakeColdCallRepo()
	repo.Create(&models.ColdCallRow{TabName: "Dhaka", CompanyName: "Old Name", Status: "pending"})
	app := newColdCallTestApp(repo)

	req := httptest.NewRequest("PUT", "/1",
		strings.NewReader(`{"companyName":"New Name"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, repo.updates, 1)
	assert.Equal(t, map[string]any{"company_name": "New Name"}, repo.updates[0])
}

func TestUpdateUnknownRowReturns404(t *testing.T) {
	t.Parallel()

	app := newColdCallTestApp(newFakeColdCallRepo())
	req := httptest.NewRequest("PUT", "/99", strings.NewReader(`{"rating":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestBulkUpdateReportsPerRowResults(t *testing.T) {
	t.Parallel()

	repo := newFakeColdCallRepo()
	repo.Create(&models.ColdCallRow{TabName: "Dhaka", RowNumber: 1})
	repo.Create(&models.ColdCallRow{TabName: "Dhaka", RowNumber: 2})
	app := newColdCallTestApp(repo)

	// row 1 and 2 are reordered, row 99 does not exist
	payload := `{"rows":[
		{"id":1,"rowNumber":2},
		{"id":2,"rowNumber":1},
		{"id":99,"rowNumber":3}
	]}`
	req := httptest.NewRequest("PUT", "/bulk/Dhaka", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := jsonBody(t, resp.Body)
	results := body["data"].(map[string]any)["results"].([]any)
	require.Len(t, results, 3)

	first := results[0].(map[string]any)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, true, first["success"])

	last := results[2].(map[string]any)
	assert.Equal(t, float64(99), last["id"])
	assert.Equal(t, false, last["success"])
	assert.NotEmpty(t, last["error"])

	// the successful updates went through despite the failed one
	assert.Equal(t, 2, repo.rows[1].RowNumber)
	assert.Equal(t, 1, repo.rows[2].RowNumber)
}

func TestBulkUpdateRejectsRowsFromOtherTabs(t *testing.T) {
	t.Parallel()

	repo := newFakeColdCallRepo()
	repo.Create(&models.ColdCallRow{TabName: "Dhaka", RowNumber: 1})
	repo.Create(&models.ColdCallRow{TabName: "Sylhet", RowNumber: 1})
	app := newColdCallTestApp(repo)

	payload := `{"rows":[
		{"id":1,"rowNumber":2},
		{"id":2,"rowNumber":2}
	]}`
	req := httptest.NewRequest("PUT", "/bulk/Dhaka", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := jsonBody(t, resp.Body)
	results := body["data"].(map[string]any)["results"].([]any)
	require.Len(t, results, 2)

	assert.Equal(t, true, results[0].(map[string]any)["success"])
	foreign := results[1].(map[string]any)
	assert.Equal(t, false, foreign["success"])
	assert.Contains(t, foreign["error"], "tab")

	// the Sylhet row stayed untouched
	assert.Equal(t, 1, repo.rows[2].RowNumber)
}

func TestBulkUpdateRejectsEmptyBatch(t *testing.T) {
	t.Parallel()

	app := newColdCallTestApp(newFakeColdCallRepo())
	req := httptest.NewRequest("PUT", "/bulk/Dhaka", strings.NewReader(`{"rows":[]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteTabReportsCount(t *testing.T) {
	t.Parallel()

	repo := newFakeColdCallRepo()
	repo.Create(&models.ColdCallRow{TabName: "Dhaka"})
	repo.Create(&models.ColdCallRow{TabName: "Dhaka"})
	repo.Create(&models.ColdCallRow{TabName: "Sylhet"})
	app := newColdCallTestApp(repo)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/tab/Dhaka", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := jsonBody(t, resp.Body)
	assert.Equal(t, float64(2), body["data"].(map[string]any)["deletedCount"])

	// deleting an unknown tab is not an error
	resp, err = app.Test(httptest.NewRequest("DELETE", "/tab/Nowhere", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = jsonBody(t, resp.Body)
	assert.Equal(t, float64(0), body["data"].(map[string]any)["deletedCount"])
}
