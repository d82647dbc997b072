package models

import (
	"time"
)

const (
	BROADCAST_YES = "YES"
	BROADCAST_NO  = "NO"

	CALL_STATUS_DONE        = "done"
	CALL_STATUS_PENDING     = "pending"
	CALL_STATUS_NOT_WORKING = "notWorking"
)

// ColdCallRow is one sales-lead record inside a named tab. Tabs behave like
// spreadsheet sheets: rows are ordered by RowNumber, which is assigned as
// max+1 within the tab at creation time. RowNumber is not unique; listings
// break ties on (created_at, id).
type ColdCallRow struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TabName         string    `gorm:"index;type:varchar(100)" json:"tabName" validate:"required"`
	ConcernName     string    `gorm:"type:varchar(255)" json:"concernName"`
	CompanyName     string    `gorm:"type:varchar(255)" json:"companyName"`
	Destination     string    `gorm:"type:varchar(255)" json:"destination"`
	Phone1          string    `gorm:"type:varchar(50)" json:"phone1"`
	Phone2          string    `gorm:"type:varchar(50)" json:"phone2"`
	Sujata          string    `gorm:"type:varchar(255)" json:"sujata"`
	FollowUpDate    string    `gorm:"type:varchar(50)" json:"followUpDate"`
	Rating          string    `gorm:"type:varchar(50)" json:"rating"`
	Broadcast       string    `gorm:"type:varchar(10)" json:"broadcast" validate:"omitempty,oneof=YES NO"`
	Status          string    `gorm:"type:varchar(20)" json:"status" validate:"omitempty,oneof=done pending notWorking"`
	RowNumber       int       `gorm:"default:0" json:"rowNumber"`
	BackgroundColor string    `gorm:"type:varchar(50)" json:"backgroundColor"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for the ColdCallRow model
func (ColdCallRow) TableName() string {
	return "coldcall_rows"
}

// TabCount pairs a tab name with its current row count.
type TabCount struct {
	TabName string `json:"tabName"`
	Count   int64  `json:"count"`
}

// ValidBroadcast reports whether v is an accepted broadcast marker.
func ValidBroadcast(v string) bool {
	return v == "" || v == BROADCAST_YES || v == BROADCAST_NO
}

// ValidCallStatus reports whether v is an accepted call status.
func ValidCallStatus(v string) bool {
	switch v {
	case "", CALL_STATUS_DONE, CALL_STATUS_PENDING, CALL_STATUS_NOT_WORKING:
		return true
	}
	return false
}
