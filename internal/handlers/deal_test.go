package handlers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/hiyoko-dev/crm-web/internal/models"
)

type DealHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	router  *gin.Engine
	user    *models.User
	contact *models.Contact
}

func (suite *DealHandlerTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())

	suite.user = &models.User{Username: "agent", PasswordHash: "x"}
	suite.Require().NoError(suite.db.Create(suite.user).Error)

	suite.contact = &models.Contact{
		FirstName: "John", LastName: "Smith", Email: "john@example.com",
		ContactType: models.ContactTypeLead, LeadStatus: models.LeadStatusNew,
		CreatedByID: suite.user.ID,
	}
	suite.Require().NoError(suite.db.Create(suite.contact).Error)

	suite.router = newRouter(suite.db, suite.user.ID)
}

func (suite *DealHandlerTestSuite) TestCreate() {
	w := doPostForm(suite.router, "/deals/create/", url.Values{
		"title":               {"Enterprise License"},
		"contact":             {fmt.Sprint(suite.contact.ID)},
		"amount":              {"50000.00"},
		"stage":               {"negotiation"},
		"probability":         {"75"},
		"expected_close_date": {"2026-10-15"},
	})

	suite.Equal(http.StatusFound, w.Code)

	var deal models.Deal
	suite.Require().NoError(suite.db.Where("title = ?", "Enterprise License").First(&deal).Error)
	suite.Equal(fmt.Sprintf("/deals/%d/", deal.ID), w.Header().Get("Location"))
	suite.True(deal.Amount.Equal(decimal.RequireFromString("50000.00")))
	suite.Equal(models.DealStageNegotiation, deal.Stage)
	suite.Equal(uint(75), deal.Probability)
	suite.False(deal.IsClosed())
	suite.False(deal.IsWon())

	var activity models.Activity
	suite.Require().NoError(suite.db.Where("activity_type = ?", models.ActivityTypeDeal).First(&activity).Error)
	suite.Equal("Deal created: Enterprise License", activity.Title)
	suite.Require().NotNil(activity.DealID)
	suite.Equal(deal.ID, *activity.DealID)
	suite.Require().NotNil(activity.ContactID)
	suite.Equal(suite.contact.ID, *activity.ContactID)
}

func (suite *DealHandlerTestSuite) TestCreate_UnknownContactRenders404() {
	w := doPostForm(suite.router, "/deals/create/", url.Values{
		"title":               {"Orphan"},
		"contact":             {"424242"},
		"amount":              {"100.00"},
		"expected_close_date": {"2026-10-15"},
	})

	suite.Equal(http.StatusNotFound, w.Code)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Deal{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *DealHandlerTestSuite) TestCreate_UnknownCompanyRenders404() {
	w := doPostForm(suite.router, "/deals/create/", url.Values{
		"title":               {"Orphan"},
		"contact":             {fmt.Sprint(suite.contact.ID)},
		"company":             {"424242"},
		"amount":              {"100.00"},
		"expected_close_date": {"2026-10-15"},
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *DealHandlerTestSuite) TestCreate_BadAmountFails() {
	w := doPostForm(suite.router, "/deals/create/", url.Values{
		"title":               {"Bad amount"},
		"contact":             {fmt.Sprint(suite.contact.ID)},
		"amount":              {"not-a-number"},
		"expected_close_date": {"2026-10-15"},
	})

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *DealHandlerTestSuite) createDeal(title string, stage models.DealStage) *models.Deal {
	deal := &models.Deal{
		Title:             title,
		ContactID:         suite.contact.ID,
		Amount:            decimal.NewFromInt(1000),
		Stage:             stage,
		ExpectedCloseDate: time.Now().AddDate(0, 1, 0),
		CreatedByID:       suite.user.ID,
	}
	suite.Require().NoError(suite.db.Create(deal).Error)
	return deal
}

func (suite *DealHandlerTestSuite) TestList_StageFilter() {
	suite.createDeal("Enterprise License", models.DealStageNegotiation)
	suite.createDeal("Starter Pack", models.DealStageProspecting)

	w := doGet(suite.router, "/deals/?stage=negotiation")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Enterprise License")
	suite.NotContains(w.Body.String(), "Starter Pack")
}

func (suite *DealHandlerTestSuite) TestList_SearchMatchesContactName() {
	suite.createDeal("Mystery Deal", models.DealStageProposal)

	w := doGet(suite.router, "/deals/?search=smith")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Mystery Deal")
}

func (suite *DealHandlerTestSuite) TestDetail() {
	deal := suite.createDeal("Enterprise License", models.DealStageNegotiation)

	w := doGet(suite.router, fmt.Sprintf("/deals/%d/", deal.ID))
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Enterprise License")
	suite.Contains(w.Body.String(), "John Smith")
}

func (suite *DealHandlerTestSuite) TestDetail_UnknownIDRenders404() {
	w := doGet(suite.router, "/deals/9999/")
	suite.Equal(http.StatusNotFound, w.Code)
}

func TestDealHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DealHandlerTestSuite))
}
