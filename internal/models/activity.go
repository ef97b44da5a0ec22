package models

import (
	"time"
)

type ActivityType string

const (
	ActivityTypeCall    ActivityType = "call"
	ActivityTypeEmail   ActivityType = "email"
	ActivityTypeMeeting ActivityType = "meeting"
	ActivityTypeNote    ActivityType = "note"
	ActivityTypeTask    ActivityType = "task"
	ActivityTypeDeal    ActivityType = "deal"
	ActivityTypeContact ActivityType = "contact"
)

// Activity is an append-only log row recorded after notable mutations.
// Rows are never updated once written; there is no UpdatedAt.
type Activity struct {
	ID           uint64       `gorm:"primarykey" json:"id"`
	ActivityType ActivityType `gorm:"type:varchar(20);not null" json:"activity_type"`
	Title        string       `gorm:"type:varchar(200);not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	ContactID    *uint64      `gorm:"index" json:"contact_id"`
	DealID       *uint64      `gorm:"index" json:"deal_id"`

	CreatedByID uint64    `gorm:"not null" json:"created_by_id"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`

	// Relations
	Contact   *Contact `gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE" json:"contact,omitempty"`
	Deal      *Deal    `gorm:"foreignKey:DealID;constraint:OnDelete:CASCADE" json:"deal,omitempty"`
	CreatedBy User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"created_by,omitempty"`
}
