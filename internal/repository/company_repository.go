package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/hiyoko-dev/crm-web/internal/database"
	"github.com/hiyoko-dev/crm-web/internal/models"
	"github.com/hiyoko-dev/crm-web/internal/utils"
)

// GormCompanyRepository is a GORM implementation of CompanyRepository
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Create creates a new company
func (r *GormCompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

// FindByID finds a company by ID
func (r *GormCompanyRepository) FindByID(id uint64) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// List retrieves companies matching the filter, alphabetical, paginated.
// Search matches case-insensitive substrings of name and industry.
func (r *GormCompanyRepository) List(filter CompanyFilter) ([]models.Company, utils.Page, error) {
	query := r.db.Model(&models.Company{})

	if filter.Search != "" {
		q := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(industry) LIKE ?", q, q)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, utils.Page{}, err
	}

	page := utils.ClampPage(filter.Page, total)

	var companies []models.Company
	err := query.
		Order("name ASC").
		Scopes(database.Paginate(page)).
		Find(&companies).Error
	if err != nil {
		return nil, utils.Page{}, err
	}

	return companies, page, nil
}

// ListAll returns every company ordered by name
func (r *GormCompanyRepository) ListAll() ([]models.Company, error) {
	var companies []models.Company
	if err := r.db.Order("name ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}
