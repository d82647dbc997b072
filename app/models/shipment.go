package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SHIPMENT_BOOKED    = "booked"
	SHIPMENT_TRANSIT   = "in-transit"
	SHIPMENT_DELIVERED = "delivered"
	SHIPMENT_RETURNED  = "returned"
)

// Shipment is a courier assignment record: which courier carries which
// consignment, and where it currently stands. Public tracking works through
// the generated TrackingCode.
type Shipment struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	TrackingCode  string         `gorm:"uniqueIndex;type:varchar(20)" json:"trackingCode"`
	ConsigneeName string         `gorm:"type:varchar(255)" json:"consigneeName" validate:"required,max=255"`
	Origin        string         `gorm:"type:varchar(255)" json:"origin" validate:"required,max=255"`
	Destination   string         `gorm:"type:varchar(255)" json:"destination" validate:"required,max=255"`
	CourierName   string         `gorm:"type:varchar(150)" json:"courierName"`
	CourierPhone  string         `gorm:"type:varchar(50)" json:"courierPhone"`
	Status        string         `gorm:"type:varchar(20);default:'booked'" json:"status" validate:"omitempty,oneof=booked in-transit delivered returned"`
	AssignedAt    *time.Time     `gorm:"type:timestamp;default:null" json:"assignedAt"`
	DeliveredAt   *time.Time     `gorm:"type:timestamp;default:null" json:"deliveredAt"`
	Notes         string         `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Shipment model
func (Shipment) TableName() string {
	return "shipments"
}

// NewTrackingCode produces a short public tracking code, e.g. OCL-1A2B3C4D.
func NewTrackingCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "OCL-" + id[:8]
}

// ValidShipmentStatus reports whether v is an accepted shipment status.
func ValidShipmentStatus(v string) bool {
	switch v {
	case SHIPMENT_BOOKED, SHIPMENT_TRANSIT, SHIPMENT_DELIVERED, SHIPMENT_RETURNED:
		return true
	}
	return false
}

// SetStatus applies a status change. DeliveredAt is stamped on the first
// transition to delivered and kept on later edits.
func (s *Shipment) SetStatus(status string, now time.Time) {
	s.Status = status
	if status == SHIPMENT_DELIVERED && s.DeliveredAt == nil {
		s.DeliveredAt = &now
	}
}
