package repository

import (
	"github.com/ocl-logistics/ocl-backend/app/models"
	"gorm.io/gorm"
)

// adminRepository implements the AdminRepository interface
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository instance
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// Create creates a new admin account in the database
func (r *adminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// GetByID retrieves an admin by its ID
func (r *adminRepository) GetByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByEmail retrieves an admin by email address
func (r *adminRepository) GetByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByTokenHash retrieves an admin by the SHA-256 hash of its API token
func (r *adminRepository) GetByTokenHash(hash string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("api_token_hash = ?", hash).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// Update updates an existing admin in the database
func (r *adminRepository) Update(admin *models.Admin) error {
	return r.db.Save(admin).Error
}
