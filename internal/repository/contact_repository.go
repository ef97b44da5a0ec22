package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/hiyoko-dev/crm-web/internal/database"
	"github.com/hiyoko-dev/crm-web/internal/models"
	"github.com/hiyoko-dev/crm-web/internal/utils"
)

// GormContactRepository is a GORM implementation of ContactRepository
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &GormContactRepository{db: db}
}

// Create creates a new contact
func (r *GormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// FindByID finds a contact by ID with optional preloading
func (r *GormContactRepository) FindByID(id uint64, preload ...string) (*models.Contact, error) {
	var contact models.Contact
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&contact, id).Error; err != nil {
		return nil, err
	}

	return &contact, nil
}

// List retrieves contacts matching the filter, newest first, paginated.
// Search matches case-insensitive substrings of first name, last name, email
// and company; unknown filter values match nothing rather than erroring.
func (r *GormContactRepository) List(filter ContactFilter) ([]models.Contact, utils.Page, error) {
	query := r.db.Model(&models.Contact{})

	if filter.Search != "" {
		q := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ?",
			q, q, q, q,
		)
	}
	if filter.ContactType != nil {
		query = query.Where("contact_type = ?", *filter.ContactType)
	}
	if filter.LeadStatus != nil {
		query = query.Where("lead_status = ?", *filter.LeadStatus)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, utils.Page{}, err
	}

	page := utils.ClampPage(filter.Page, total)

	var contacts []models.Contact
	err := query.
		Preload("AssignedTo").
		Preload("CreatedBy").
		Order("created_at DESC").
		Scopes(database.Paginate(page)).
		Find(&contacts).Error
	if err != nil {
		return nil, utils.Page{}, err
	}

	return contacts, page, nil
}

// Update performs a full-record update
func (r *GormContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// ListAll returns every contact, newest first
func (r *GormContactRepository) ListAll() ([]models.Contact, error) {
	var contacts []models.Contact
	if err := r.db.Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}
