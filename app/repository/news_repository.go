package repository

import (
	"github.com/ocl-logistics/ocl-backend/app/models"
	"gorm.io/gorm"
)

// newsRepository implements the NewsRepository interface
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository instance
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create creates a new news post in the database
func (r *newsRepository) Create(post *models.NewsPost) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a news post by its ID
func (r *newsRepository) GetByID(id uint) (*models.NewsPost, error) {
	var post models.NewsPost
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetBySlug retrieves a news post by its slug
func (r *newsRepository) GetBySlug(slug string) (*models.NewsPost, error) {
	var post models.NewsPost
	if err := r.db.Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves news posts matching the filter with pagination. It returns
// the page of posts plus the total number of matches.
func (r *newsRepository) List(filter NewsFilter, offset, limit int) ([]models.NewsPost, int64, error) {
	q := r.filtered(filter)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.NewsPost
	err := q.Order("published_at DESC, created_at DESC").
		Offset(offset).Limit(limit).Find(&posts).Error
	return posts, total, err
}

func (r *newsRepository) filtered(filter NewsFilter) *gorm.DB {
	q := r.db.Model(&models.NewsPost{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}
	if filter.Published != nil {
		q = q.Where("published = ?", *filter.Published)
	}
	return q
}

// GetFeatured retrieves published featured posts, newest first
func (r *newsRepository) GetFeatured(limit int) ([]models.NewsPost, error) {
	var posts []models.NewsPost
	err := r.db.Where("published = ? AND featured = ?", true, true).
		Order("published_at DESC, created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

// Categories returns the distinct categories among published posts
func (r *newsRepository) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.NewsPost{}).
		Where("published = ?", true).
		Distinct().Order("category ASC").Pluck("category", &categories).Error
	return categories, err
}

// Update updates an existing news post in the database
func (r *newsRepository) Update(post *models.NewsPost) error {
	return r.db.Save(post).Error
}

// Delete soft deletes a news post by its ID
func (r *newsRepository) Delete(id uint) error {
	return r.db.Delete(&models.NewsPost{}, id).Error
}

// IncrementViews bumps the view counter atomically in the database, so
// concurrent detail fetches never lose a count.
func (r *newsRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.NewsPost{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// CountPublished returns the number of published posts
func (r *newsRepository) CountPublished() (int64, error) {
	var count int64
	err := r.db.Model(&models.NewsPost{}).Where("published = ?", true).Count(&count).Error
	return count, err
}

// SumViews returns the total view count across all posts
func (r *newsRepository) SumViews() (int64, error) {
	var total int64
	err := r.db.Model(&models.NewsPost{}).
		Select("COALESCE(SUM(views), 0)").Scan(&total).Error
	return total, err
}

// CountSlugs counts posts whose slug is the base slug or a suffixed variant
// of it (base, base-1, base-2, ...). Soft-deleted posts are included so a
// deleted article never frees its slug for silent reuse.
func (r *newsRepository) CountSlugs(base string) (int64, error) {
	var count int64
	err := r.db.Unscoped().Model(&models.NewsPost{}).
		Where("slug = ? OR slug LIKE ?", base, base+"-%").Count(&count).Error
	return count, err
}
