package repository

import (
	"github.com/ocl-logistics/ocl-backend/app/models"
	"gorm.io/gorm"
)

// NewsFilter narrows a news listing. Nil pointer fields are "no filter";
// controllers force Published for unauthenticated callers before the filter
// reaches the repository.
type NewsFilter struct {
	Category  string
	Featured  *bool
	Published *bool
}

// NewsRepository defines the interface for news-related database operations
type NewsRepository interface {
	Create(post *models.NewsPost) error
	GetByID(id uint) (*models.NewsPost, error)
	GetBySlug(slug string) (*models.NewsPost, error)
	List(filter NewsFilter, offset, limit int) ([]models.NewsPost, int64, error)
	GetFeatured(limit int) ([]models.NewsPost, error)
	Categories() ([]string, error)
	Update(post *models.NewsPost) error
	Delete(id uint) error
	IncrementViews(id uint) error
	CountPublished() (int64, error)
	SumViews() (int64, error)
	CountSlugs(base string) (int64, error)
}

// ColdCallRepository defines the interface for cold-call sheet operations
type ColdCallRepository interface {
	ListTabs() ([]models.TabCount, error)
	ListRows(tabName string) ([]models.ColdCallRow, error)
	GetByID(id uint) (*models.ColdCallRow, error)
	Create(row *models.ColdCallRow) error
	MaxRowNumber(tabName string) (int, error)
	UpdateFields(id uint, fields map[string]any) error
	Delete(id uint) error
	DeleteTab(tabName string) (int64, error)
}

// SubscriberRepository defines the interface for newsletter operations
type SubscriberRepository interface {
	Create(sub *models.Subscriber) error
	GetByEmail(email string) (*models.Subscriber, error)
	List(offset, limit int) ([]models.Subscriber, int64, error)
	Count() (int64, error)
	Delete(id uint) error
}

// ShipmentRepository defines the interface for courier assignment records
type ShipmentRepository interface {
	Create(shipment *models.Shipment) error
	GetByID(id uint) (*models.Shipment, error)
	GetByTrackingCode(code string) (*models.Shipment, error)
	List(status string, offset, limit int) ([]models.Shipment, int64, error)
	CountByStatus(status string) (int64, error)
	Update(shipment *models.Shipment) error
	Delete(id uint) error
}

// AdminRepository defines the interface for admin account operations
type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByID(id uint) (*models.Admin, error)
	GetByEmail(email string) (*models.Admin, error)
	GetByTokenHash(hash string) (*models.Admin, error)
	Update(admin *models.Admin) error
}

// BranchRepository defines the interface for site branch records
type BranchRepository interface {
	GetAll() ([]models.Branch, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	News       NewsRepository
	ColdCall   ColdCallRepository
	Subscriber SubscriberRepository
	Shipment   ShipmentRepository
	Admin      AdminRepository
	Branch     BranchRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		News:       NewNewsRepository(db),
		ColdCall:   NewColdCallRepository(db),
		Subscriber: NewSubscriberRepository(db),
		Shipment:   NewShipmentRepository(db),
		Admin:      NewAdminRepository(db),
		Branch:     NewBranchRepository(db),
	}
}
