package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/hiyoko-dev/crm-web/internal/errors"
	"github.com/hiyoko-dev/crm-web/internal/middleware"
	"github.com/hiyoko-dev/crm-web/internal/models"
	"github.com/hiyoko-dev/crm-web/internal/repository"
	"github.com/hiyoko-dev/crm-web/internal/utils"
)

// CompanyHandler serves the company list and create pages. Company mutations
// are not written to the activity log.
type CompanyHandler struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyRepo repository.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{
		companyRepo: companyRepo,
	}
}

// List renders the company list with search, alphabetical.
func (h *CompanyHandler) List(c *gin.Context) {
	filter := repository.CompanyFilter{
		Search: c.Query("search"),
		Page:   utils.RequestedPage(c),
	}

	companies, page, err := h.companyRepo.List(filter)
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}

	render(c, http.StatusOK, "company_list.html", gin.H{
		"companies": companies,
		"page":      page,
		"search":    filter.Search,
	})
}

// CreatePage renders an empty company form.
func (h *CompanyHandler) CreatePage(c *gin.Context) {
	render(c, http.StatusOK, "company_form.html", gin.H{
		"company_types": models.CompanyTypeChoices(),
	})
}

// Create inserts a new company from raw form values. Name uniqueness is
// enforced by the database; a duplicate surfaces as the generic error page.
func (h *CompanyHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login/")
		return
	}

	company := models.Company{
		Name:        c.PostForm("name"),
		Website:     c.PostForm("website"),
		Industry:    c.PostForm("industry"),
		CompanyType: models.CompanyType(c.DefaultPostForm("company_type", string(models.CompanyTypeProspect))),
		Description: c.PostForm("description"),
		CreatedByID: userID,
	}

	if err := h.companyRepo.Create(&company); err != nil {
		apierrors.ServerError(c, err)
		return
	}

	addFlash(c, fmt.Sprintf("Company %q created successfully!", company.Name))
	c.Redirect(http.StatusFound, "/companies/")
}
