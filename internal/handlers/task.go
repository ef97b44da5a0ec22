package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apierrors "github.com/hiyoko-dev/crm-web/internal/errors"
	"github.com/hiyoko-dev/crm-web/internal/middleware"
	"github.com/hiyoko-dev/crm-web/internal/models"
	"github.com/hiyoko-dev/crm-web/internal/repository"
	"github.com/hiyoko-dev/crm-web/internal/services"
	"github.com/hiyoko-dev/crm-web/internal/utils"
)

// TaskHandler serves the task list and create pages.
type TaskHandler struct {
	taskRepo    repository.TaskRepository
	contactRepo repository.ContactRepository
	dealRepo    repository.DealRepository
	userRepo    repository.UserRepository
	recorder    *services.ActivityService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(
	taskRepo repository.TaskRepository,
	contactRepo repository.ContactRepository,
	dealRepo repository.DealRepository,
	userRepo repository.UserRepository,
	recorder *services.ActivityService,
) *TaskHandler {
	return &TaskHandler{
		taskRepo:    taskRepo,
		contactRepo: contactRepo,
		dealRepo:    dealRepo,
		userRepo:    userRepo,
		recorder:    recorder,
	}
}

// List renders the task list filtered by status. Non-superusers only see
// their own assignments.
func (h *TaskHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login/")
		return
	}

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}

	filter := repository.TaskFilter{
		Page: utils.RequestedPage(c),
	}
	if v := c.Query("status"); v != "" {
		status := models.TaskStatus(v)
		filter.Status = &status
	}
	if !user.IsSuperuser {
		filter.AssignedToID = &user.ID
	}

	tasks, page, err := h.taskRepo.List(filter)
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}

	render(c, http.StatusOK, "task_list.html", gin.H{
		"tasks":         tasks,
		"page":          page,
		"status":        c.Query("status"),
		"task_statuses": models.TaskStatusChoices(),
	})
}

// CreatePage renders an empty task form with its pickers.
func (h *TaskHandler) CreatePage(c *gin.Context) {
	contacts, err := h.contactRepo.ListAll()
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}
	deals, err := h.dealRepo.ListAll()
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}
	users, err := h.userRepo.ListAll()
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}

	render(c, http.StatusOK, "task_form.html", gin.H{
		"contacts":   contacts,
		"deals":      deals,
		"users":      users,
		"task_types": models.TaskTypeChoices(),
		"priorities": models.TaskPriorityChoices(),
	})
}

// Create inserts a new task from raw form values and records the activity.
// The assignee is required; contact and deal references are optional but must
// resolve when present.
func (h *TaskHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login/")
		return
	}

	assignedToID, err := strconv.ParseUint(c.PostForm("assigned_to"), 10, 64)
	if err != nil {
		apierrors.NotFound(c)
		return
	}
	if _, err := h.userRepo.FindByID(assignedToID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c)
			return
		}
		apierrors.ServerError(c, err)
		return
	}

	contactID, ok := optionalFormID(c, "contact")
	if !ok {
		apierrors.NotFound(c)
		return
	}
	if contactID != nil {
		if _, err := h.contactRepo.FindByID(*contactID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.NotFound(c)
				return
			}
			apierrors.ServerError(c, err)
			return
		}
	}

	dealID, ok := optionalFormID(c, "deal")
	if !ok {
		apierrors.NotFound(c)
		return
	}
	if dealID != nil {
		if _, err := h.dealRepo.FindByID(*dealID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.NotFound(c)
				return
			}
			apierrors.ServerError(c, err)
			return
		}
	}

	dueDate, err := parseDateTime(c.PostForm("due_date"))
	if err != nil {
		apierrors.ServerError(c, fmt.Errorf("invalid due date: %w", err))
		return
	}

	task := models.Task{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		TaskType:     models.TaskType(c.DefaultPostForm("task_type", string(models.TaskTypeOther))),
		Priority:     models.TaskPriority(c.DefaultPostForm("priority", string(models.TaskPriorityMedium))),
		Status:       models.TaskStatusPending,
		DueDate:      dueDate,
		ContactID:    contactID,
		DealID:       dealID,
		AssignedToID: assignedToID,
		CreatedByID:  userID,
	}

	if err := h.taskRepo.Create(&task); err != nil {
		apierrors.ServerError(c, err)
		return
	}

	if err := h.recorder.Record(
		models.ActivityTypeTask,
		fmt.Sprintf("Task created: %s", task.Title),
		"",
		contactID,
		dealID,
		userID,
	); err != nil {
		apierrors.ServerError(c, err)
		return
	}

	addFlash(c, fmt.Sprintf("Task %q created successfully!", task.Title))
	c.Redirect(http.StatusFound, "/tasks/")
}
