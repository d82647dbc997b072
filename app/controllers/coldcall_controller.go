package controllers

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/ocl-logistics/ocl-backend/app/models"
	"github.com/ocl-logistics/ocl-backend/app/repository"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/apperr"
)

// ColdCallController handles the cold-call sheet HTTP requests
type ColdCallController struct {
	repo repository.ColdCallRepository
}

// NewColdCallController creates a new cold-call controller with repository
func NewColdCallController(repo repository.ColdCallRepository) *ColdCallController {
	return &ColdCallController{repo: repo}
}

// rowPayload enumerates every accepted row field. Pointer fields distinguish
// "absent" from "set to empty" so updates stay partial. Unknown fields are
// rejected at decode time.
type rowPayload struct {
	TabName         *string `json:"tabName"`
	ConcernName     *string `json:"concernName"`
	CompanyName     *string `json:"companyName"`
	Destination     *string `json:"destination"`
	Phone1          *string `json:"phone1"`
	Phone2          *string `json:"phone2"`
	Sujata          *string `json:"sujata"`
	FollowUpDate    *string `json:"followUpDate"`
	Rating          *string `json:"rating"`
	Broadcast       *string `json:"broadcast"`
	Status          *string `json:"status"`
	RowNumber       *int    `json:"rowNumber"`
	BackgroundColor *string `json:"backgroundColor"`
}

func decodeRowPayload(body []byte, out interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return apperr.Validation("invalid request body: " + err.Error())
	}
	return nil
}

func (p *rowPayload) validate() error {
	if p.Broadcast != nil && !models.ValidBroadcast(*p.Broadcast) {
		return apperr.Validation("broadcast must be YES, NO or empty")
	}
	if p.Status != nil && !models.ValidCallStatus(*p.Status) {
		return apperr.Validation("status must be done, pending, notWorking or empty")
	}
	return nil
}

// fields maps the set payload fields onto database columns for a partial
// update.
func (p *rowPayload) fields() map[string]any {
	out := map[string]any{}
	set := func(column string, v *string) {
		if v != nil {
			out[column] = *v
		}
	}
	set("tab_name", p.TabName)
	set("concern_name", p.ConcernName)
	set("company_name", p.CompanyName)
	set("destination", p.Destination)
	set("phone1", p.Phone1)
	set("phone2", p.Phone2)
	set("sujata", p.Sujata)
	set("follow_up_date", p.FollowUpDate)
	set("rating", p.Rating)
	set("broadcast", p.Broadcast)
	set("status", p.Status)
	set("background_color", p.BackgroundColor)
	if p.RowNumber != nil {
		out["row_number"] = *p.RowNumber
	}
	return out
}

func str(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// HandleListTabs returns every tab with its row count
func (ccc *ColdCallController) HandleListTabs(c *fiber.Ctx) error {
	tabs, err := ccc.repo.ListTabs()
	if err != nil {
		return respondError(c, err)
	}
	if tabs == nil {
		tabs = []models.TabCount{}
	}
	return respondData(c, fiber.Map{"tabs": tabs})
}

// HandleListRows returns all rows of a tab in display order. An unknown tab
// yields an empty list.
func (ccc *ColdCallController) HandleListRows(c *fiber.Ctx) error {
	rows, err := ccc.repo.ListRows(c.Params("tabName"))
	if err != nil {
		return respondError(c, err)
	}
	if rows == nil {
		rows = []models.ColdCallRow{}
	}
	return respondData(c, rows)
}

// HandleCreateRow creates a row at the end of its tab
func (ccc *ColdCallController) HandleCreateRow(c *fiber.Ctx) error {
	var payload rowPayload
	if err := decodeRowPayload(c.Body(), &payload); err != nil {
		return respondError(c, err)
	}
	if err := payload.validate(); err != nil {
		return respondError(c, err)
	}

	tabName := strings.TrimSpace(str(payload.TabName))
	if tabName == "" {
		return respondError(c, apperr.Validation("tabName is required"))
	}

	// max+1 within the tab; two concurrent creates may compute the same
	// number (see ListRows tiebreak), which only affects display order.
	highest, err := ccc.repo.MaxRowNumber(tabName)
	if err != nil {
		return respondError(c, err)
	}

	row := &models.ColdCallRow{
		TabName:         tabName,
		ConcernName:     str(payload.ConcernName),
		CompanyName:     str(payload.CompanyName),
		Destination:     str(payload.Destination),
		Phone1:          str(payload.Phone1),
		Phone2:          str(payload.Phone2),
		Sujata:          str(payload.Sujata),
		FollowUpDate:    str(payload.FollowUpDate),
		Rating:          str(payload.Rating),
		Broadcast:       str(payload.Broadcast),
		Status:          str(payload.Status),
		RowNumber:       highest + 1,
		BackgroundColor: str(payload.BackgroundColor),
	}

	if err := ccc.repo.Create(row); err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, row)
}

// HandleUpdateRow applies a partial update to a single row
func (ccc *ColdCallController) HandleUpdateRow(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	var payload rowPayload
	if err := decodeRowPayload(c.Body(), &payload); err != nil {
		return respondError(c, err)
	}
	if err := payload.validate(); err != nil {
		return respondError(c, err)
	}

	if err := ccc.repo.UpdateFields(id, payload.fields()); err != nil {
		return respondError(c, err)
	}

	row, err := ccc.repo.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, row)
}

type bulkUpdateRequest struct {
	Rows []bulkRowPayload `json:"rows"`
}

type bulkRowPayload struct {
	ID uint `json:"id"`
	rowPayload
}

// bulkItemResult reports the outcome of one row inside a bulk update. The
// batch is best-effort: some rows may succeed while others fail, and the
// caller reconciles using these per-item results.
type bulkItemResult struct {
	ID      uint   `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// HandleBulkUpdate applies independent per-row updates within the addressed
// tab, typically a tab-wide reorder. Rows belonging to another tab fail
// individually. Updates run concurrently; there is no cross-row atomicity.
func (ccc *ColdCallController) HandleBulkUpdate(c *fiber.Ctx) error {
	tabName := c.Params("tabName")

	var req bulkUpdateRequest
	if err := decodeRowPayload(c.Body(), &req); err != nil {
		return respondError(c, err)
	}
	if len(req.Rows) == 0 {
		return respondError(c, apperr.Validation("rows must not be empty"))
	}

	results := make([]bulkItemResult, len(req.Rows))
	var wg sync.WaitGroup
	for i := range req.Rows {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item := req.Rows[i]
			results[i] = bulkItemResult{ID: item.ID, Success: true}

			if err := item.validate(); err != nil {
				results[i] = bulkItemResult{ID: item.ID, Error: err.Error()}
				return
			}
			row, err := ccc.repo.GetByID(item.ID)
			if err != nil {
				results[i] = bulkItemResult{ID: item.ID, Error: "row not found"}
				return
			}
			if row.TabName != tabName {
				results[i] = bulkItemResult{ID: item.ID, Error: "row is not in this tab"}
				return
			}
			if err := ccc.repo.UpdateFields(item.ID, item.fields()); err != nil {
				results[i] = bulkItemResult{ID: item.ID, Error: "update failed"}
			}
		}(i)
	}
	wg.Wait()

	return respondData(c, fiber.Map{"results": results})
}

// HandleDeleteRow removes a single row
func (ccc *ColdCallController) HandleDeleteRow(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := ccc.repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.Map{"deleted": true})
}

// HandleDeleteTab removes every row of a tab and reports how many went
func (ccc *ColdCallController) HandleDeleteTab(c *fiber.Ctx) error {
	count, err := ccc.repo.DeleteTab(c.Params("tabName"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.Map{"deletedCount": count})
}

// Global cold-call controller instance

var coldCallController *ColdCallController

// InitializeColdCallController initializes the global cold-call controller
func InitializeColdCallController() {
	repo := repository.GetGlobalFactory().GetColdCallRepository()
	coldCallController = NewColdCallController(repo)
}

// GetColdCallController returns the global cold-call controller instance
func GetColdCallController() *ColdCallController {
	if coldCallController == nil {
		InitializeColdCallController()
	}
	return coldCallController
}
