package repository

import (
	"time"

	"github.com/ocl-logistics/ocl-backend/app/models"
	"gorm.io/gorm"
)

// coldCallRepository implements the ColdCallRepository interface
type coldCallRepository struct {
	db *gorm.DB
}

// NewColdCallRepository creates a new cold-call repository instance
func NewColdCallRepository(db *gorm.DB) ColdCallRepository {
	return &coldCallRepository{db: db}
}

// ListTabs returns every tab that currently holds rows, with its row count.
// Counts are recomputed per call; a tab disappears once its last row is
// deleted.
func (r *coldCallRepository) ListTabs() ([]models.TabCount, error) {
	var tabs []models.TabCount
	err := r.db.Model(&models.ColdCallRow{}).
		Select("tab_name, COUNT(*) AS count").
		Group("tab_name").Order("tab_name ASC").Scan(&tabs).Error
	return tabs, err
}

// ListRows returns all rows of a tab in display order. RowNumber is not
// unique, so creation time and id break ties to keep the order stable.
// An unknown tab yields an empty list, not an error.
func (r *coldCallRepository) ListRows(tabName string) ([]models.ColdCallRow, error) {
	var rows []models.ColdCallRow
	err := r.db.Where("tab_name = ?", tabName).
		Order("`row_number` ASC, created_at ASC, id ASC").Find(&rows).Error
	return rows, err
}

// GetByID retrieves a single row by its ID
func (r *coldCallRepository) GetByID(id uint) (*models.ColdCallRow, error) {
	var row models.ColdCallRow
	if err := r.db.First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create creates a new row in the database
func (r *coldCallRepository) Create(row *models.ColdCallRow) error {
	return r.db.Create(row).Error
}

// MaxRowNumber returns the highest row number within a tab, 0 for an empty
// or unknown tab.
func (r *coldCallRepository) MaxRowNumber(tabName string) (int, error) {
	var highest int
	err := r.db.Model(&models.ColdCallRow{}).
		Where("tab_name = ?", tabName).
		Select("COALESCE(MAX(`row_number`), 0)").Scan(&highest).Error
	return highest, err
}

// UpdateFields applies a partial update to a row. Only the supplied columns
// change; updated_at is rewritten on every call.
func (r *coldCallRepository) UpdateFields(id uint, fields map[string]any) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	fields["updated_at"] = time.Now()
	return r.db.Model(&models.ColdCallRow{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a row by its ID
func (r *coldCallRepository) Delete(id uint) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	return r.db.Delete(&models.ColdCallRow{}, id).Error
}

// DeleteTab removes every row of a tab and returns how many were deleted.
// Zero is a valid outcome for an unknown tab.
func (r *coldCallRepository) DeleteTab(tabName string) (int64, error) {
	result := r.db.Where("tab_name = ?", tabName).Delete(&models.ColdCallRow{})
	return result.RowsAffected, result.Error
}
