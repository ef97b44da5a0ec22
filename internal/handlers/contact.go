package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apierrors "github.com/hiyoko-dev/crm-web/internal/errors"
	"github.com/hiyoko-dev/crm-web/internal/middleware"
	"github.com/hiyoko-dev/crm-web/internal/models"
	"github.com/hiyoko-dev/crm-web/internal/repository"
	"github.com/hiyoko-dev/crm-web/internal/services"
	"github.com/hiyoko-dev/crm-web/internal/utils"
)

// ContactHandler serves the contact list, detail, create and edit pages.
type ContactHandler struct {
	contactRepo  repository.ContactRepository
	noteRepo     repository.NoteRepository
	activityRepo repository.ActivityRepository
	userRepo     repository.UserRepository
	recorder     *services.ActivityService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(
	contactRepo repository.ContactRepository,
	noteRepo repository.NoteRepository,
	activityRepo repository.ActivityRepository,
	userRepo repository.UserRepository,
	recorder *services.ActivityService,
) *ContactHandler {
	return &ContactHandler{
		contactRepo:  contactRepo,
		noteRepo:     noteRepo,
		activityRepo: activityRepo,
		userRepo:     userRepo,
		recorder:     recorder,
	}
}

// List renders the contact list with search, type and status filters.
// Unknown filter values match nothing rather than erroring.
func (h *ContactHandler) List(c *gin.Context) {
	filter := repository.ContactFilter{
		Search: c.Query("search"),
		Page:   utils.RequestedPage(c),
	}
	if v := c.Query("type"); v != "" {
		contactType := models.ContactType(v)
		filter.ContactType = &contactType
	}
	if v := c.Query("status"); v != "" {
		leadStatus := models.LeadStatus(v)
		filter.LeadStatus = &leadStatus
	}

	contacts, page, err := h.contactRepo.List(filter)
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}

	render(c, http.StatusOK, "contact_list.html", gin.H{
		"contacts":      contacts,
		"page":          page,
		"search":        filter.Search,
		"contact_type":  c.Query("type"),
		"lead_status":   c.Query("status"),
		"contact_types": models.ContactTypeChoices(),
		"lead_statuses": models.LeadStatusChoices(),
	})
}

// Detail renders a contact with its deals, tasks, notes and recent activities.
func (h *ContactHandler) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c)
		return
	}

	contact, err := h.contactRepo.FindByID(id, "AssignedTo", "CreatedBy", "Deals", "Tasks")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c)
			return
		}
		apierrors.ServerError(c, err)
		return
	}

	notes, err := h.noteRepo.ListForContact(id)
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}
	activities, err := h.activityRepo.ListForContact(id, 10)
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}

	render(c, http.StatusOK, "contact_detail.html", gin.H{
		"contact":    contact,
		"deals":      contact.Deals,
		"tasks":      contact.Tasks,
		"notes":      notes,
		"activities": activities,
	})
}

// CreatePage renders an empty contact form with its reference data.
func (h *ContactHandler) CreatePage(c *gin.Context) {
	users, err := h.userRepo.ListAll()
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}

	render(c, http.StatusOK, "contact_form.html", gin.H{
		"contact": &models.Contact{
			ContactType: models.ContactTypeLead,
			LeadStatus:  models.LeadStatusNew,
		},
		"contact_types": models.ContactTypeChoices(),
		"lead_statuses": models.LeadStatusChoices(),
		"users":         users,
	})
}

// Create inserts a new contact from raw form values and records the activity.
// The contact write and the activity write are independent statements.
func (h *ContactHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login/")
		return
	}

	contact := models.Contact{
		FirstName:   c.PostForm("first_name"),
		LastName:    c.PostForm("last_name"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		Company:     c.PostForm("company"),
		JobTitle:    c.PostForm("job_title"),
		ContactType: models.ContactType(c.DefaultPostForm("contact_type", string(models.ContactTypeLead))),
		LeadStatus:  models.LeadStatus(c.DefaultPostForm("lead_status", string(models.LeadStatusNew))),
		Address:     c.PostForm("address"),
		City:        c.PostForm("city"),
		State:       c.PostForm("state"),
		Country:     c.PostForm("country"),
		ZipCode:     c.PostForm("zip_code"),
		Notes:       c.PostForm("notes"),
		CreatedByID: userID,
	}

	if err := h.contactRepo.Create(&contact); err != nil {
		apierrors.ServerError(c, err)
		return
	}

	if err := h.recorder.Record(
		models.ActivityTypeContact,
		fmt.Sprintf("Contact created: %s", contact.FullName()),
		"",
		&contact.ID,
		nil,
		userID,
	); err != nil {
		apierrors.ServerError(c, err)
		return
	}

	addFlash(c, fmt.Sprintf("Contact %s created successfully!", contact.FullName()))
	c.Redirect(http.StatusFound, fmt.Sprintf("/contacts/%d/", contact.ID))
}

// EditPage renders the contact form populated with the existing record.
func (h *ContactHandler) EditPage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c)
		return
	}

	contact, err := h.contactRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c)
			return
		}
		apierrors.ServerError(c, err)
		return
	}

	users, err := h.userRepo.ListAll()
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}

	var assignedToID uint64
	if contact.AssignedToID != nil {
		assignedToID = *contact.AssignedToID
	}

	render(c, http.StatusOK, "contact_form.html", gin.H{
		"contact":        contact,
		"assigned_to_id": assignedToID,
		"contact_types":  models.ContactTypeChoices(),
		"lead_statuses":  models.LeadStatusChoices(),
		"users":          users,
	})
}

// Edit overwrites every contact field from the submitted form and records the
// activity.
func (h *ContactHandler) Edit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login/")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c)
		return
	}

	contact, err := h.contactRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c)
			return
		}
		apierrors.ServerError(c, err)
		return
	}

	contact.FirstName = c.PostForm("first_name")
	contact.LastName = c.PostForm("last_name")
	contact.Email = c.PostForm("email")
	contact.Phone = c.PostForm("phone")
	contact.Company = c.PostForm("company")
	contact.JobTitle = c.PostForm("job_title")
	contact.ContactType = models.ContactType(c.PostForm("contact_type"))
	contact.LeadStatus = models.LeadStatus(c.PostForm("lead_status"))
	contact.Address = c.PostForm("address")
	contact.City = c.PostForm("city")
	contact.State = c.PostForm("state")
	contact.Country = c.PostForm("country")
	contact.ZipCode = c.PostForm("zip_code")
	contact.Notes = c.PostForm("notes")

	assignedToID, ok := optionalFormID(c, "assigned_to")
	if !ok {
		apierrors.NotFound(c)
		return
	}
	if assignedToID != nil {
		if _, err := h.userRepo.FindByID(*assignedToID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.NotFound(c)
				return
			}
			apierrors.ServerError(c, err)
			return
		}
	}
	contact.AssignedToID = assignedToID
	contact.AssignedTo = nil

	if err := h.contactRepo.Update(contact); err != nil {
		apierrors.ServerError(c, err)
		return
	}

	if err := h.recorder.Record(
		models.ActivityTypeContact,
		fmt.Sprintf("Contact updated: %s", contact.FullName()),
		"",
		&contact.ID,
		nil,
		userID,
	); err != nil {
		apierrors.ServerError(c, err)
		return
	}

	addFlash(c, fmt.Sprintf("Contact %s updated successfully!", contact.FullName()))
	c.Redirect(http.StatusFound, fmt.Sprintf("/contacts/%d/", contact.ID))
}
