package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/hiyoko-dev/crm-web/internal/database"
	"github.com/hiyoko-dev/crm-web/internal/models"
	"github.com/hiyoko-dev/crm-web/internal/utils"
)

// GormDealRepository is a GORM implementation of DealRepository
type GormDealRepository struct {
	db *gorm.DB
}

// NewDealRepository creates a new DealRepository
func NewDealRepository(db *gorm.DB) DealRepository {
	return &GormDealRepository{db: db}
}

// Create creates a new deal
func (r *GormDealRepository) Create(deal *models.Deal) error {
	return r.db.Create(deal).Error
}

// FindByID finds a deal by ID with optional preloading
func (r *GormDealRepository) FindByID(id uint64, preload ...string) (*models.Deal, error) {
	var deal models.Deal
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&deal, id).Error; err != nil {
		return nil, err
	}

	return &deal, nil
}

// List retrieves deals matching the filter, newest first, paginated.
// Search matches case-insensitive substrings of the deal title, the contact's
// first/last name and the company name, so the list needs the joins even
// though results are preloaded separately.
func (r *GormDealRepository) List(filter DealFilter) ([]models.Deal, utils.Page, error) {
	query := r.db.Model(&models.Deal{}).
		Joins("LEFT JOIN contacts ON contacts.id = deals.contact_id").
		Joins("LEFT JOIN companies ON companies.id = deals.company_id")

	if filter.Search != "" {
		q := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(deals.title) LIKE ? OR LOWER(contacts.first_name) LIKE ? OR LOWER(contacts.last_name) LIKE ? OR LOWER(companies.name) LIKE ?",
			q, q, q, q,
		)
	}
	if filter.Stage != nil {
		query = query.Where("deals.stage = ?", *filter.Stage)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, utils.Page{}, err
	}

	page := utils.ClampPage(filter.Page, total)

	var deals []models.Deal
	err := query.
		Select("deals.*").
		Preload("Contact").
		Preload("Company").
		Preload("AssignedTo").
		Order("deals.created_at DESC").
		Scopes(database.Paginate(page)).
		Find(&deals).Error
	if err != nil {
		return nil, utils.Page{}, err
	}

	return deals, page, nil
}

// ListAll returns every deal, newest first
func (r *GormDealRepository) ListAll() ([]models.Deal, error) {
	var deals []models.Deal
	if err := r.db.Order("created_at DESC").Find(&deals).Error; err != nil {
		return nil, err
	}
	return deals, nil
}
