package repository

import (
	"gorm.io/gorm"

	"github.com/hiyoko-dev/crm-web/internal/models"
)

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// Create appends a log row
func (r *GormActivityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

// Recent lists the most recent activities with relations preloaded
func (r *GormActivityRepository) Recent(limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.
		Preload("Contact").
		Preload("Deal").
		Preload("CreatedBy").
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

// ListForContact lists a contact's most recent activities
func (r *GormActivityRepository) ListForContact(contactID uint64, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("contact_id = ?", contactID).
		Preload("CreatedBy").
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

// ListForDeal lists a deal's most recent activities
func (r *GormActivityRepository) ListForDeal(dealID uint64, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("deal_id = ?", dealID).
		Preload("CreatedBy").
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
