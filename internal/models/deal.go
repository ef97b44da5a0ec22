package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DealStage string

const (
	DealStageProspecting   DealStage = "prospecting"
	DealStageQualification DealStage = "qualification"
	DealStageProposal      DealStage = "proposal"
	DealStageNegotiation   DealStage = "negotiation"
	DealStageClosedWon     DealStage = "closed_won"
	DealStageClosedLost    DealStage = "closed_lost"
)

// DealStageChoices lists the pipeline stages in order for form selects.
func DealStageChoices() []DealStage {
	return []DealStage{DealStageProspecting, DealStageQualification, DealStageProposal, DealStageNegotiation, DealStageClosedWon, DealStageClosedLost}
}

type Deal struct {
	ID          uint64          `gorm:"primarykey" json:"id"`
	Title       string          `gorm:"type:varchar(200);not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	ContactID   uint64          `gorm:"not null;index" json:"contact_id"`
	CompanyID   *uint64         `gorm:"index" json:"company_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Stage       DealStage       `gorm:"type:varchar(20);not null;default:'prospecting';index" json:"stage"`
	// Probability of closing, 0-100%.
	Probability       uint       `gorm:"not null;default:0" json:"probability"`
	ExpectedCloseDate time.Time  `gorm:"not null" json:"expected_close_date"`
	ActualCloseDate   *time.Time `json:"actual_close_date"`

	AssignedToID *uint64   `gorm:"index" json:"assigned_to_id"`
	CreatedByID  uint64    `gorm:"not null" json:"created_by_id"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Contact    Contact    `gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE" json:"contact,omitempty"`
	Company    *Company   `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"company,omitempty"`
	AssignedTo *User      `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL" json:"assigned_to,omitempty"`
	CreatedBy  User       `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"created_by,omitempty"`
	Tasks      []Task     `gorm:"foreignKey:DealID" json:"tasks,omitempty"`
	DealNotes  []Note     `gorm:"foreignKey:DealID" json:"-"`
	Activities []Activity `gorm:"foreignKey:DealID" json:"activities,omitempty"`
}

// IsClosed reports whether the deal has left the pipeline.
func (d Deal) IsClosed() bool {
	return d.Stage == DealStageClosedWon || d.Stage == DealStageClosedLost
}

// IsWon reports whether the deal closed as won.
func (d Deal) IsWon() bool {
	return d.Stage == DealStageClosedWon
}
