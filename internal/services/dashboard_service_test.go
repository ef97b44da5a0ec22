package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/hiyoko-dev/crm-web/internal/models"
	"github.com/hiyoko-dev/crm-web/internal/repository"
	"github.com/hiyoko-dev/crm-web/internal/services"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *services.DashboardService
	user    *models.User
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.service = services.NewDashboardService(
		suite.db,
		repository.NewTaskRepository(suite.db),
		repository.NewActivityRepository(suite.db),
	)

	suite.user = &models.User{Username: "dash", PasswordHash: "x"}
	suite.Require().NoError(suite.db.Create(suite.user).Error)
}

func (suite *DashboardServiceTestSuite) TestStats_Totals() {
	contact := &models.Contact{
		FirstName: "Only", LastName: "Contact", Email: "only@x.com",
		ContactType: models.ContactTypeLead, LeadStatus: models.LeadStatusNew,
		CreatedByID: suite.user.ID,
	}
	suite.Require().NoError(suite.db.Create(contact).Error)

	for i, name := range []string{"TechCorp", "Global Mfg"} {
		company := &models.Company{
			Name:        name,
			CompanyType: models.CompanyTypeProspect,
			CreatedByID: suite.user.ID,
		}
		suite.Require().NoError(suite.db.Create(company).Error, "company %d", i)
	}

	for i, stage := range []models.DealStage{
		models.DealStageProspecting,
		models.DealStageNegotiation,
		models.DealStageNegotiation,
		models.DealStageClosedWon,
	} {
		deal := &models.Deal{
			Title:             fmt.Sprintf("Deal %d", i),
			ContactID:         contact.ID,
			Amount:            decimal.NewFromInt(int64(1000 * (i + 1))),
			Stage:             stage,
			ExpectedCloseDate: time.Now().AddDate(0, 1, 0),
			CreatedByID:       suite.user.ID,
		}
		suite.Require().NoError(suite.db.Create(deal).Error)
	}

	stats, err := suite.service.Stats()
	suite.Require().NoError(err)

	suite.Equal(int64(1), stats.TotalContacts)
	suite.Equal(int64(4), stats.TotalDeals)
	suite.Equal(int64(2), stats.TotalCompanies)

	byStage := make(map[models.DealStage]int64)
	for _, sc := range stats.DealsByStage {
		byStage[sc.Stage] = sc.Count
	}
	suite.Equal(int64(2), byStage[models.DealStageNegotiation])
	suite.Equal(int64(1), byStage[models.DealStageProspecting])

	// Deal 3 (4000) is the only won deal.
	suite.True(stats.TotalRevenue.Equal(decimal.NewFromInt(4000)),
		"revenue = %s", stats.TotalRevenue)
}

func (suite *DashboardServiceTestSuite) TestStats_OverdueTasks() {
	now := time.Now()
	for _, tc := range []struct {
		due    time.Time
		status models.TaskStatus
	}{
		{now.Add(-24 * time.Hour), models.TaskStatusPending},
		{now.Add(-1 * time.Hour), models.TaskStatusInProgress},
		{now.Add(-48 * time.Hour), models.TaskStatusCompleted},
		{now.Add(24 * time.Hour), models.TaskStatusPending},
	} {
		task := &models.Task{
			Title:        "Task",
			TaskType:     models.TaskTypeOther,
			Priority:     models.TaskPriorityMedium,
			Status:       tc.status,
			DueDate:      tc.due,
			AssignedToID: suite.user.ID,
			CreatedByID:  suite.user.ID,
		}
		suite.Require().NoError(suite.db.Create(task).Error)
	}

	stats, err := suite.service.Stats()
	suite.Require().NoError(err)
	suite.Equal(int64(2), stats.OverdueTasks)
}

func (suite *DashboardServiceTestSuite) TestStats_RecentActivitiesCappedAtTen() {
	for i := 0; i < 12; i++ {
		activity := &models.Activity{
			ActivityType: models.ActivityTypeNote,
			Title:        fmt.Sprintf("Activity %02d", i),
			CreatedByID:  suite.user.ID,
			CreatedAt:    time.Now().Add(time.Duration(i) * time.Minute),
		}
		suite.Require().NoError(suite.db.Create(activity).Error)
	}

	stats, err := suite.service.Stats()
	suite.Require().NoError(err)

	suite.Require().Len(stats.RecentActivities, 10)
	// Newest first; the two oldest fall off.
	suite.Equal("Activity 11", stats.RecentActivities[0].Title)
	suite.Equal("Activity 02", stats.RecentActivities[9].Title)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
