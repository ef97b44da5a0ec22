package repository

import (
	"github.com/hiyoko-dev/crm-web/internal/models"
	"github.com/hiyoko-dev/crm-web/internal/utils"
)

// ContactFilter holds search/filter options for listing contacts
type ContactFilter struct {
	Search      string
	ContactType *models.ContactType
	LeadStatus  *models.LeadStatus
	Page        int
}

// ContactRepository defines the interface for contact data access
type ContactRepository interface {
	// Create creates a new contact
	Create(contact *models.Contact) error

	// FindByID finds a contact by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Contact, error)

	// List retrieves contacts matching the filter, newest first, paginated
	List(filter ContactFilter) ([]models.Contact, utils.Page, error)

	// Update performs a full-record update
	Update(contact *models.Contact) error

	// ListAll returns every contact, newest first (form pickers)
	ListAll() ([]models.Contact, error)
}

// CompanyFilter holds search options for listing companies
type CompanyFilter struct {
	Search string
	Page   int
}

// CompanyRepository defines the interface for company data access
type CompanyRepository interface {
	// Create creates a new company
	Create(company *models.Company) error

	// FindByID finds a company by ID
	FindByID(id uint64) (*models.Company, error)

	// List retrieves companies matching the filter, alphabetical, paginated
	List(filter CompanyFilter) ([]models.Company, utils.Page, error)

	// ListAll returns every company ordered by name (form pickers)
	ListAll() ([]models.Company, error)
}

// DealFilter holds search/filter options for listing deals
type DealFilter struct {
	Search string
	Stage  *models.DealStage
	Page   int
}

// DealRepository defines the interface for deal data access
type DealRepository interface {
	// Create creates a new deal
	Create(deal *models.Deal) error

	// FindByID finds a deal by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Deal, error)

	// List retrieves deals matching the filter, newest first, paginated
	List(filter DealFilter) ([]models.Deal, utils.Page, error)

	// ListAll returns every deal ordered by creation time (form pickers)
	ListAll() ([]models.Deal, error)
}

// TaskFilter holds filter options for listing tasks. AssignedToID restricts
// results to one assignee; handlers set it for non-superuser requesters.
type TaskFilter struct {
	Status       *models.TaskStatus
	AssignedToID *uint64
	Page         int
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// List retrieves tasks matching the filter by ascending due date, paginated
	List(filter TaskFilter) ([]models.Task, utils.Page, error)

	// CountOverdue counts tasks past due and still pending or in progress
	CountOverdue() (int64, error)
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	// Create creates a new note
	Create(note *models.Note) error

	// ListForContact lists a contact's notes, newest first
	ListForContact(contactID uint64) ([]models.Note, error)

	// ListForDeal lists a deal's notes, newest first
	ListForDeal(dealID uint64) ([]models.Note, error)
}

// ActivityRepository defines the interface for the append-only activity log
type ActivityRepository interface {
	// Create appends a log row; rows are never updated afterwards
	Create(activity *models.Activity) error

	// Recent lists the most recent activities with relations preloaded
	Recent(limit int) ([]models.Activity, error)

	// ListForContact lists a contact's most recent activities
	ListForContact(contactID uint64, limit int) ([]models.Activity, error)

	// ListForDeal lists a deal's most recent activities
	ListForDeal(dealID uint64, limit int) ([]models.Activity, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// ListAll returns every user ordered by username (assignment pickers)
	ListAll() ([]models.User, error)
}
