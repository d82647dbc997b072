package repository

import (
	"github.com/ocl-logistics/ocl-backend/app/models"
	"gorm.io/gorm"
)

// shipmentRepository implements the ShipmentRepository interface
type shipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository creates a new shipment repository instance
func NewShipmentRepository(db *gorm.DB) ShipmentRepository {
	return &shipmentRepository{db: db}
}

// Create creates a new shipment record in the database
func (r *shipmentRepository) Create(shipment *models.Shipment) error {
	return r.db.Create(shipment).Error
}

// GetByID retrieves a shipment by its ID
func (r *shipmentRepository) GetByID(id uint) (*models.Shipment, error) {
	var shipment models.Shipment
	if err := r.db.First(&shipment, id).Error; err != nil {
		return nil, err
	}
	return &shipment, nil
}

// GetByTrackingCode retrieves a shipment by its public tracking code
func (r *shipmentRepository) GetByTrackingCode(code string) (*models.Shipment, error) {
	var shipment models.Shipment
	if err := r.db.Where("tracking_code = ?", code).First(&shipment).Error; err != nil {
		return nil, err
	}
	return &shipment, nil
}

// List retrieves shipments with pagination, optionally filtered by status
func (r *shipmentRepository) List(status string, offset, limit int) ([]models.Shipment, int64, error) {
	q := r.db.Model(&models.Shipment{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var shipments []models.Shipment
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&shipments).Error
	return shipments, total, err
}

// CountByStatus returns the number of shipments in a given status
func (r *shipmentRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Shipment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// Update updates an existing shipment in the database
func (r *shipmentRepository) Update(shipment *models.Shipment) error {
	return r.db.Save(shipment).Error
}

// Delete soft deletes a shipment by its ID
func (r *shipmentRepository) Delete(id uint) error {
	var shipment models.Shipment
	if err := r.db.First(&shipment, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&shipment).Error
}
