package models

import (
	"errors"
	"regexp"
	"time"

	"gorm.io/gorm"
)

type ContactType string

const (
	ContactTypeLead     ContactType = "lead"
	ContactTypeCustomer ContactType = "customer"
	ContactTypeProspect ContactType = "prospect"
)

// ContactTypeChoices lists the valid contact types for form selects.
func ContactTypeChoices() []ContactType {
	return []ContactType{ContactTypeLead, ContactTypeCustomer, ContactTypeProspect}
}

type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusUnqualified LeadStatus = "unqualified"
	LeadStatusConverted   LeadStatus = "converted"
)

// LeadStatusChoices lists the valid lead statuses for form selects.
func LeadStatusChoices() []LeadStatus {
	return []LeadStatus{LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusUnqualified, LeadStatusConverted}
}

// ErrInvalidPhone is returned when a phone value does not match PhonePattern.
var ErrInvalidPhone = errors.New("phone number must be entered in the format: '+999999999', up to 15 digits allowed")

// PhonePattern is the accepted phone number format.
var PhonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

type Contact struct {
	ID          uint64      `gorm:"primarykey" json:"id"`
	FirstName   string      `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName    string      `gorm:"type:varchar(50);not null" json:"last_name"`
	Email       string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone       string      `gorm:"type:varchar(17)" json:"phone"`
	Company     string      `gorm:"type:varchar(100)" json:"company"`
	JobTitle    string      `gorm:"type:varchar(100)" json:"job_title"`
	ContactType ContactType `gorm:"type:varchar(20);not null;default:'lead'" json:"contact_type"`
	LeadStatus  LeadStatus  `gorm:"type:varchar(20);not null;default:'new'" json:"lead_status"`
	Address     string      `gorm:"type:text" json:"address"`
	City        string      `gorm:"type:varchar(50)" json:"city"`
	State       string      `gorm:"type:varchar(50)" json:"state"`
	Country     string      `gorm:"type:varchar(50)" json:"country"`
	ZipCode     string      `gorm:"type:varchar(10)" json:"zip_code"`
	Notes       string      `gorm:"type:text" json:"notes"`

	AssignedToID *uint64   `gorm:"index" json:"assigned_to_id"`
	CreatedByID  uint64    `gorm:"not null" json:"created_by_id"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	AssignedTo *User      `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL" json:"assigned_to,omitempty"`
	CreatedBy  User       `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"created_by,omitempty"`
	Deals      []Deal     `gorm:"foreignKey:ContactID" json:"deals,omitempty"`
	Tasks      []Task     `gorm:"foreignKey:ContactID" json:"tasks,omitempty"`
	ContactNotes []Note   `gorm:"foreignKey:ContactID" json:"-"`
	Activities []Activity `gorm:"foreignKey:ContactID" json:"activities,omitempty"`
}

// FullName returns "First Last".
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// BeforeSave validates the phone format. Validation lives at the persistence
// layer; handlers pass form values through unchecked.
func (c *Contact) BeforeSave(tx *gorm.DB) error {
	if c.Phone != "" && !PhonePattern.MatchString(c.Phone) {
		return ErrInvalidPhone
	}
	return nil
}
