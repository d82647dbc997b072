package repository

import (
	"github.com/ocl-logistics/ocl-backend/app/models"
	"gorm.io/gorm"
)

// branchRepository implements the BranchRepository interface
type branchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new branch repository instance
func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db: db}
}

// GetAll retrieves every branch office, alphabetically by city
func (r *branchRepository) GetAll() ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.Order("city ASC").Find(&branches).Error
	return branches, err
}
