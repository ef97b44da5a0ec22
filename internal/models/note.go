package models

import (
	"time"
)

// Note is a free-form attachment to a contact, deal and/or company.
type Note struct {
	ID        uint64  `gorm:"primarykey" json:"id"`
	Title     string  `gorm:"type:varchar(200);not null" json:"title"`
	Content   string  `gorm:"type:text;not null" json:"content"`
	ContactID *uint64 `gorm:"index" json:"contact_id"`
	DealID    *uint64 `gorm:"index" json:"deal_id"`
	CompanyID *uint64 `gorm:"index" json:"company_id"`

	CreatedByID uint64    `gorm:"not null" json:"created_by_id"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Contact   *Contact `gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE" json:"contact,omitempty"`
	Deal      *Deal    `gorm:"foreignKey:DealID;constraint:OnDelete:CASCADE" json:"deal,omitempty"`
	Company   *Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"company,omitempty"`
	CreatedBy User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"created_by,omitempty"`
}
