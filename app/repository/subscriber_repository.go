package repository

import (
	"github.com/ocl-logistics/ocl-backend/app/models"
	"gorm.io/gorm"
)

// subscriberRepository implements the SubscriberRepository interface
type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository creates a new subscriber repository instance
func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

// Create creates a new subscriber in the database
func (r *subscriberRepository) Create(sub *models.Subscriber) error {
	return r.db.Create(sub).Error
}

// GetByEmail retrieves a subscriber by email address
func (r *subscriberRepository) GetByEmail(email string) (*models.Subscriber, error) {
	var sub models.Subscriber
	if err := r.db.Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// List retrieves subscribers with pagination, newest first
func (r *subscriberRepository) List(offset, limit int) ([]models.Subscriber, int64, error) {
	var total int64
	if err := r.db.Model(&models.Subscriber{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []models.Subscriber
	err := r.db.Order("subscribed_at DESC").Offset(offset).Limit(limit).Find(&subs).Error
	return subs, total, err
}

// Count returns the total number of subscribers
func (r *subscriberRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscriber{}).Count(&count).Error
	return count, err
}

// Delete removes a subscriber by its ID
func (r *subscriberRepository) Delete(id uint) error {
	var sub models.Subscriber
	if err := r.db.First(&sub, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&sub).Error
}
