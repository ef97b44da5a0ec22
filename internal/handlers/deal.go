package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apierrors "github.com/hiyoko-dev/crm-web/internal/errors"
	"github.com/hiyoko-dev/crm-web/internal/middleware"
	"github.com/hiyoko-dev/crm-web/internal/models"
	"github.com/hiyoko-dev/crm-web/internal/repository"
	"github.com/hiyoko-dev/crm-web/internal/services"
	"github.com/hiyoko-dev/crm-web/internal/utils"
)

// DealHandler serves the deal list, detail and create pages.
type DealHandler struct {
	dealRepo     repository.DealRepository
	contactRepo  repository.ContactRepository
	companyRepo  repository.CompanyRepository
	noteRepo     repository.NoteRepository
	activityRepo repository.ActivityRepository
	userRepo     repository.UserRepository
	recorder     *services.ActivityService
}

// NewDealHandler creates a new DealHandler.
func NewDealHandler(
	dealRepo repository.DealRepository,
	contactRepo repository.ContactRepository,
	companyRepo repository.CompanyRepository,
	noteRepo repository.NoteRepository,
	activityRepo repository.ActivityRepository,
	userRepo repository.UserRepository,
	recorder *services.ActivityService,
) *DealHandler {
	return &DealHandler{
		dealRepo:     dealRepo,
		contactRepo:  contactRepo,
		companyRepo:  companyRepo,
		noteRepo:     noteRepo,
		activityRepo: activityRepo,
		userRepo:     userRepo,
		recorder:     recorder,
	}
}

// List renders the deal list with search and stage filters.
func (h *DealHandler) List(c *gin.Context) {
	filter := repository.DealFilter{
		Search: c.Query("search"),
		Page:   utils.RequestedPage(c),
	}
	if v := c.Query("stage"); v != "" {
		stage := models.DealStage(v)
		filter.Stage = &stage
	}

	deals, page, err := h.dealRepo.List(filter)
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}

	render(c, http.StatusOK, "deal_list.html", gin.H{
		"deals":       deals,
		"page":        page,
		"search":      filter.Search,
		"stage":       c.Query("stage"),
		"deal_stages": models.DealStageChoices(),
	})
}

// Detail renders a deal with its tasks, notes and recent activities.
func (h *DealHandler) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.NotFound(c)
		return
	}

	deal, err := h.dealRepo.FindByID(id, "Contact", "Company", "AssignedTo", "CreatedBy", "Tasks")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c)
			return
		}
		apierrors.ServerError(c, err)
		return
	}

	notes, err := h.noteRepo.ListForDeal(id)
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}
	activities, err := h.activityRepo.ListForDeal(id, 10)
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}

	render(c, http.StatusOK, "deal_detail.html", gin.H{
		"deal":       deal,
		"tasks":      deal.Tasks,
		"notes":      notes,
		"activities": activities,
	})
}

// CreatePage renders an empty deal form with contact and company pickers.
func (h *DealHandler) CreatePage(c *gin.Context) {
	contacts, err := h.contactRepo.ListAll()
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}
	companies, err := h.companyRepo.ListAll()
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}
	users, err := h.userRepo.ListAll()
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}

	render(c, http.StatusOK, "deal_form.html", gin.H{
		"contacts":    contacts,
		"companies":   companies,
		"users":       users,
		"deal_stages": models.DealStageChoices(),
	})
}

// Create inserts a new deal from raw form values and records the activity.
// The referenced contact must exist; a missing contact or company renders the
// not-found page.
func (h *DealHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login/")
		return
	}

	contactID, err := strconv.ParseUint(c.PostForm("contact"), 10, 64)
	if err != nil {
		apierrors.NotFound(c)
		return
	}
	contact, err := h.contactRepo.FindByID(contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c)
			return
		}
		apierrors.ServerError(c, err)
		return
	}

	companyID, ok := optionalFormID(c, "company")
	if !ok {
		apierrors.NotFound(c)
		return
	}
	if companyID != nil {
		if _, err := h.companyRepo.FindByID(*companyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.NotFound(c)
				return
			}
			apierrors.ServerError(c, err)
			return
		}
	}

	amount, err := decimal.NewFromString(c.PostForm("amount"))
	if err != nil {
		apierrors.ServerError(c, fmt.Errorf("invalid amount: %w", err))
		return
	}

	probability, _ := strconv.Atoi(c.DefaultPostForm("probability", "0"))
	expectedCloseDate, err := parseDate(c.PostForm("expected_close_date"))
	if err != nil {
		apierrors.ServerError(c, fmt.Errorf("invalid expected close date: %w", err))
		return
	}

	deal := models.Deal{
		Title:             c.PostForm("title"),
		Description:       c.PostForm("description"),
		ContactID:         contact.ID,
		CompanyID:         companyID,
		Amount:            amount,
		Stage:             models.DealStage(c.DefaultPostForm("stage", string(models.DealStageProspecting))),
		Probability:       uint(probability),
		ExpectedCloseDate: expectedCloseDate,
		CreatedByID:       userID,
	}

	if err := h.dealRepo.Create(&deal); err != nil {
		apierrors.ServerError(c, err)
		return
	}

	if err := h.recorder.Record(
		models.ActivityTypeDeal,
		fmt.Sprintf("Deal created: %s", deal.Title),
		"",
		&contact.ID,
		&deal.ID,
		userID,
	); err != nil {
		apierrors.ServerError(c, err)
		return
	}

	addFlash(c, fmt.Sprintf("Deal %q created successfully!", deal.Title))
	c.Redirect(http.StatusFound, fmt.Sprintf("/deals/%d/", deal.ID))
}
