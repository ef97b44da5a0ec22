package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CompanyType string

const (
	CompanyTypeProspect CompanyType = "prospect"
	CompanyTypeCustomer CompanyType = "customer"
	CompanyTypePartner  CompanyType = "partner"
	CompanyTypeVendor   CompanyType = "vendor"
)

// CompanyTypeChoices lists the valid company types for form selects.
func CompanyTypeChoices() []CompanyType {
	return []CompanyType{CompanyTypeProspect, CompanyTypeCustomer, CompanyTypePartner, CompanyTypeVendor}
}

type Company struct {
	ID            uint64              `gorm:"primarykey" json:"id"`
	Name          string              `gorm:"type:varchar(200);uniqueIndex;not null" json:"name"`
	Website       string              `gorm:"type:varchar(200)" json:"website"`
	Industry      string              `gorm:"type:varchar(100)" json:"industry"`
	CompanyType   CompanyType         `gorm:"type:varchar(20);not null;default:'prospect'" json:"company_type"`
	AnnualRevenue decimal.NullDecimal `gorm:"type:decimal(15,2)" json:"annual_revenue"`
	EmployeeCount *uint               `json:"employee_count"`
	Description   string              `gorm:"type:text" json:"description"`
	Address       string              `gorm:"type:text" json:"address"`
	City          string              `gorm:"type:varchar(50)" json:"city"`
	State         string              `gorm:"type:varchar(50)" json:"state"`
	Country       string              `gorm:"type:varchar(50)" json:"country"`
	ZipCode       string              `gorm:"type:varchar(10)" json:"zip_code"`

	CreatedByID uint64    `gorm:"not null" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	CreatedBy    User   `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"created_by,omitempty"`
	Deals        []Deal `gorm:"foreignKey:CompanyID" json:"deals,omitempty"`
	CompanyNotes []Note `gorm:"foreignKey:CompanyID" json:"-"`
}
