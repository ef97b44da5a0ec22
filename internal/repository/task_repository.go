package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/hiyoko-dev/crm-web/internal/database"
	"github.com/hiyoko-dev/crm-web/internal/models"
	"github.com/hiyoko-dev/crm-web/internal/utils"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// List retrieves tasks matching the filter by ascending due date, paginated
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, utils.Page, error) {
	query := r.db.Model(&models.Task{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.AssignedToID != nil {
		query = query.Where("assigned_to_id = ?", *filter.AssignedToID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, utils.Page{}, err
	}

	page := utils.ClampPage(filter.Page, total)

	var tasks []models.Task
	err := query.
		Preload("Contact").
		Preload("Deal").
		Preload("AssignedTo").
		Order("due_date ASC").
		Scopes(database.Paginate(page)).
		Find(&tasks).Error
	if err != nil {
		return nil, utils.Page{}, err
	}

	return tasks, page, nil
}

// CountOverdue counts tasks past due and still pending or in progress
func (r *GormTaskRepository) CountOverdue() (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("due_date < ?", time.Now()).
		Where("status IN ?", []models.TaskStatus{models.TaskStatusPending, models.TaskStatusInProgress}).
		Count(&count).Error
	return count, err
}
