package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocl-logistics/ocl-backend/app/models"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/apperr"
)

// fakeShipmentRepo is an in-memory ShipmentRepository for handler tests.
type fakeShipmentRepo struct {
	shipments map[uint]*models.Shipment
}

func newFakeShipmentRepo() *fakeShipmentRepo {
	return &fakeShipmentRepo{shipments: map[uint]*models.Shipment{}}
}

func (f *fakeShipmentRepo) Create(s *models.Shipment) error {
	s.ID = uint(len(f.shipments) + 1)
	copied := *s
	f.shipments[s.ID] = &copied
	return nil
}

func (f *fakeShipmentRepo) GetByID(id uint) (*models.Shipment, error) {
	s, ok := f.shipments[id]
	if !ok {
		return nil, apperr.NotFound("shipment not found")
	}
	copied := *s
	return &copied, nil
}

func (f *fakeShipmentRepo) GetByTrackingCode(code string) (*models.Shipment, error) {
	for _, s := range f.shipments {
		if s.TrackingCode == code {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("shipment not found")
}

func (f *fakeShipmentRepo) List(status string, offset, limit int) ([]models.Shipment, int64, error) {
	return nil, 0, nil
}

func (f *fakeShipmentRepo) CountByStatus(status string) (int64, error) { return 0, nil }

func (f *fakeShipmentRepo) Update(s *models.Shipment) error {
	copied := *s
	f.shipments[s.ID] = &copied
	return nil
}

func (f *fakeShipmentRepo) Delete(id uint) error {
	delete(f.shipments, id)
	return nil
}

func newShipmentTestApp(repo *fakeShipmentRepo) *fiber.App {
	shc := NewShipmentController(repo)
	app := fiber.New()
	app.Get("/track/:code", shc.HandleTrack)
	app.Post("/shipments", shc.HandleCreate)
	app.Put("/shipments/:id", shc.HandleUpdate)
	return app
}

func TestCreateShipmentAssignsTrackingCode(t *testing.T) {
	t.Parallel()

	repo := newFakeShipmentRepo()
	app := newShipmentTestApp(repo)

	payload := `{"consigneeName":"Rahim Uddin","origin":"Karachi","destination":"Lahore"}`
	req := httptest.NewRequest("POST", "/shipments", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := jsonBody(t, resp.Body)
	data := body["data"].(map[string]any)
	code := data["trackingCode"].(string)
	assert.True(t, strings.HasPrefix(code, "OCL-"))
	assert.Len(t, code, 12)
	assert.Equal(t, "booked", data["status"])
}

func TestCreateShipmentRequiresRouteFields(t *testing.T) {
	t.Parallel()

	app := newShipmentTestApp(newFakeShipmentRepo())
	req := httptest.NewRequest("POST", "/shipments", strings.NewReader(`{"consigneeName":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateShipmentStampsDeliveredOnce(t *testing.T) {
	t.Parallel()

	repo := newFakeShipmentRepo()
	repo.Create(&models.Shipment{
		TrackingCode: "OCL-TEST0001", ConsigneeName: "Rahim", Origin: "Karachi",
		Destination: "Islamabad", Status: models.SHIPMENT_TRANSIT,
	})
	app := newShipmentTestApp(repo)

	req := httptest.NewRequest("PUT", "/shipments/1", strings.NewReader(`{"status":"delivered"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	first := repo.shipments[1].DeliveredAt
	require.NotNil(t, first)

	// a later edit keeps the original delivery timestamp
	req = httptest.NewRequest("PUT", "/shipments/1", strings.NewReader(`{"notes":"left at gate"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, first, repo.shipments[1].DeliveredAt)
}

func TestUpdateShipmentRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	repo := newFakeShipmentRepo()
	repo.Create(&models.Shipment{
		TrackingCode: "OCL-TEST0002", ConsigneeName: "Karim", Origin: "Karachi",
		Destination: "Multan", Status: models.SHIPMENT_BOOKED,
	})
	app := newShipmentTestApp(repo)

	req := httptest.NewRequest("PUT", "/shipments/1", strings.NewReader(`{"status":"teleported"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTrackExposesOnlyPublicFields(t *testing.T) {
	t.Parallel()

	repo := newFakeShipmentRepo()
	repo.Create(&models.Shipment{
		TrackingCode: "OCL-ABCD1234", ConsigneeName: "Rahim Uddin", Origin: "Karachi",
		Destination: "Lahore", CourierName: "K. Courier", CourierPhone: "017000000",
		Status: models.SHIPMENT_TRANSIT, Notes: "fragile",
	})
	app := newShipmentTestApp(repo)

	resp, err := app.Test(httptest.NewRequest("GET", "/track/ocl-abcd1234", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := jsonBody(t, resp.Body)
	data := body["data"].(map[string]any)
	assert.Equal(t, "OCL-ABCD1234", data["trackingCode"])
	assert.Equal(t, "in-transit", data["status"])
	assert.NotContains(t, data, "consigneeName")
	assert.NotContains(t, data, "courierPhone")
	assert.NotContains(t, data, "notes")
}

func TestTrackUnknownCodeReturns404(t *testing.T) {
	t.Parallel()

	app := newShipmentTestApp(newFakeShipmentRepo())
	resp, err := app.Test(httptest.NewRequest("GET", "/track/OCL-NOPE0000", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
