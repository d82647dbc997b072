package models

import (
	"time"

	"gorm.io/gorm"
)

const DefaultNewsAuthor = "OCL Team"

// NewsPost is a published or draft article on the company site.
type NewsPost struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"type:varchar(200)" json:"title" validate:"required,max=200"`
	Slug        string         `gorm:"uniqueIndex;type:varchar(220)" json:"slug"`
	Excerpt     string         `gorm:"type:varchar(500)" json:"excerpt" validate:"required,max=500"`
	Content     string         `gorm:"type:text" json:"content" validate:"required"`
	Category    string         `gorm:"type:varchar(100);default:'General'" json:"category"`
	Author      string         `gorm:"type:varchar(150)" json:"author"`
	AuthorID    uint           `gorm:"index" json:"authorId"`
	Image       string         `gorm:"type:varchar(255)" json:"image"`
	ImageKey    string         `gorm:"type:varchar(255)" json:"imageKey"`
	Published   bool           `gorm:"type:tinyint(1);default:0" json:"published"`
	PublishedAt *time.Time     `gorm:"type:timestamp;default:null" json:"publishedAt"`
	Featured    bool           `gorm:"type:tinyint(1);default:0" json:"featured"`
	Views       int64          `gorm:"default:0" json:"views"`
	Tags        []string       `gorm:"serializer:json;type:json" json:"tags"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the NewsPost model
func (NewsPost) TableName() string {
	return "news_posts"
}

// SetPublished applies a publish flag change. PublishedAt is stamped only on
// the first transition to published and never moves afterward, no matter how
// often the flag is toggled or the post is edited.
func (n *NewsPost) SetPublished(published bool, now time.Time) {
	n.Published = published
	if published && n.PublishedAt == nil {
		n.PublishedAt = &now
	}
}

// HasImage reports whether an image file is attached to the post.
func (n *NewsPost) HasImage() bool {
	return n.ImageKey != ""
}
