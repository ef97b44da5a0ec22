package repository

import (
	"gorm.io/gorm"

	"github.com/hiyoko-dev/crm-web/internal/models"
)

// GormNoteRepository is a GORM implementation of NoteRepository
type GormNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &GormNoteRepository{db: db}
}

// Create creates a new note
func (r *GormNoteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// ListForContact lists a contact's notes, newest first
func (r *GormNoteRepository) ListForContact(contactID uint64) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Where("contact_id = ?", contactID).
		Preload("CreatedBy").
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

// ListForDeal lists a deal's notes, newest first
func (r *GormNoteRepository) ListForDeal(dealID uint64) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Where("deal_id = ?", dealID).
		Preload("CreatedBy").
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}
