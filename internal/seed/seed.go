// Package seed loads a small, fixed set of sample CRM records for local
// development and demos.
package seed

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hiyoko-dev/crm-web/internal/models"
)

// ErrAlreadySeeded is returned when contacts already exist and force is false.
var ErrAlreadySeeded = errors.New("seed: contacts already exist, use force to seed anyway")

// Run inserts the sample data set.
func Run(db *gorm.DB, force bool) error {
	if !force {
		var count int64
		if err := db.Model(&models.Contact{}).Count(&count).Error; err != nil {
			return fmt.Errorf("seed: failed to check existing data: %w", err)
		}
		if count > 0 {
			return ErrAlreadySeeded
		}
	}

	admin, err := ensureUser(db, models.User{
		Username:    "admin",
		FirstName:   "Admin",
		LastName:    "User",
		Email:       "admin@example.com",
		IsSuperuser: true,
	}, "admin123")
	if err != nil {
		return err
	}
	if _, err := ensureUser(db, models.User{
		Username:  "sales_user",
		FirstName: "Sales",
		LastName:  "User",
		Email:     "sales@example.com",
	}, "password123"); err != nil {
		return err
	}
	if _, err := ensureUser(db, models.User{
		Username:  "manager",
		FirstName: "Sales",
		LastName:  "Manager",
		Email:     "manager@example.com",
	}, "password123"); err != nil {
		return err
	}

	companies := []models.Company{
		{
			Name:        "TechCorp Industries",
			Industry:    "Technology",
			CompanyType: models.CompanyTypeProspect,
			Website:     "https://techcorp.example.com",
			Description: "Leading technology solutions provider",
		},
		{
			Name:        "Global Manufacturing Co",
			Industry:    "Manufacturing",
			CompanyType: models.CompanyTypeCustomer,
			Website:     "https://globalmfg.example.com",
			Description: "Large manufacturing company",
		},
		{
			Name:        "StartupXYZ",
			Industry:    "Software",
			CompanyType: models.CompanyTypeProspect,
			Website:     "https://startupxyz.example.com",
			Description: "Innovative startup in AI space",
		},
	}
	for i := range companies {
		companies[i].CreatedByID = admin.ID
		if err := firstOrCreate(db, &companies[i], "name = ?", companies[i].Name); err != nil {
			return fmt.Errorf("seed: failed to create company: %w", err)
		}
	}

	contacts := []models.Contact{
		{
			FirstName:   "John",
			LastName:    "Smith",
			Email:       "john.smith@techcorp.example.com",
			Phone:       "+15551234567",
			Company:     "TechCorp Industries",
			JobTitle:    "CTO",
			ContactType: models.ContactTypeLead,
			LeadStatus:  models.LeadStatusQualified,
		},
		{
			FirstName:   "Sarah",
			LastName:    "Johnson",
			Email:       "sarah.j@globalmfg.example.com",
			Phone:       "+15552345678",
			Company:     "Global Manufacturing Co",
			JobTitle:    "Procurement Manager",
			ContactType: models.ContactTypeCustomer,
			LeadStatus:  models.LeadStatusConverted,
		},
		{
			FirstName:   "Mike",
			LastName:    "Davis",
			Email:       "mike@startupxyz.example.com",
			Phone:       "+15553456789",
			Company:     "StartupXYZ",
			JobTitle:    "CEO",
			ContactType: models.ContactTypeLead,
			LeadStatus:  models.LeadStatusContacted,
		},
		{
			FirstName:   "Emily",
			LastName:    "Brown",
			Email:       "emily.brown@example.com",
			Phone:       "+15554567890",
			Company:     "FreelanceConsulting",
			JobTitle:    "Consultant",
			ContactType: models.ContactTypeProspect,
			LeadStatus:  models.LeadStatusNew,
		},
	}
	for i := range contacts {
		contacts[i].CreatedByID = admin.ID
		if err := firstOrCreate(db, &contacts[i], "email = ?", contacts[i].Email); err != nil {
			return fmt.Errorf("seed: failed to create contact: %w", err)
		}
	}

	deals := []models.Deal{
		{
			Title:             "Enterprise Software License",
			Description:       "Annual software license for enterprise solution",
			Amount:            decimal.NewFromInt(50000),
			Stage:             models.DealStageNegotiation,
			Probability:       75,
			ExpectedCloseDate: time.Now().AddDate(0, 0, 30),
		},
		{
			Title:             "Manufacturing Equipment",
			Description:       "Custom manufacturing equipment order",
			Amount:            decimal.NewFromInt(125000),
			Stage:             models.DealStageProposal,
			Probability:       60,
			ExpectedCloseDate: time.Now().AddDate(0, 0, 45),
		},
		{
			Title:             "Consulting Services",
			Description:       "IT consulting services for digital transformation",
			Amount:            decimal.NewFromInt(25000),
			Stage:             models.DealStageQualification,
			Probability:       40,
			ExpectedCloseDate: time.Now().AddDate(0, 0, 60),
		},
	}
	for i := range deals {
		deals[i].ContactID = contacts[i%len(contacts)].ID
		if i < len(companies) {
			deals[i].CompanyID = &companies[i].ID
		}
		deals[i].CreatedByID = admin.ID
		if err := firstOrCreate(db, &deals[i], "title = ?", deals[i].Title); err != nil {
			return fmt.Errorf("seed: failed to create deal: %w", err)
		}
	}

	tasks := []models.Task{
		{
			Title:       "Follow up call with John Smith",
			Description: "Discuss pricing and implementation timeline",
			TaskType:    models.TaskTypeCall,
			Priority:    models.TaskPriorityHigh,
			DueDate:     time.Now().AddDate(0, 0, 1),
		},
		{
			Title:       "Prepare proposal document",
			Description: "Create detailed proposal for manufacturing equipment",
			TaskType:    models.TaskTypeOther,
			Priority:    models.TaskPriorityMedium,
			DueDate:     time.Now().AddDate(0, 0, 5),
		},
		{
			Title:       "Schedule demo meeting",
			Description: "Schedule product demo with startup team",
			TaskType:    models.TaskTypeMeeting,
			Priority:    models.TaskPriorityMedium,
			DueDate:     time.Now().AddDate(0, 0, 3),
		},
	}
	for i := range tasks {
		tasks[i].ContactID = &contacts[i%len(contacts)].ID
		if i < len(deals) {
			tasks[i].DealID = &deals[i].ID
		}
		tasks[i].AssignedToID = admin.ID
		tasks[i].CreatedByID = admin.ID
		if err := firstOrCreate(db, &tasks[i], "title = ?", tasks[i].Title); err != nil {
			return fmt.Errorf("seed: failed to create task: %w", err)
		}
	}

	notes := []models.Note{
		{
			Title:     "Pricing discussion",
			Content:   "Customer is comparing us against two competitors; emphasize support SLA.",
			ContactID: &contacts[0].ID,
			DealID:    &deals[0].ID,
		},
		{
			Title:     "Procurement process",
			Content:   "Manufacturing order requires sign-off from their procurement board, expect delays.",
			ContactID: &contacts[1].ID,
			DealID:    &deals[1].ID,
		},
		{
			Title:     "Intro call summary",
			Content:   "Startup team wants a demo focused on the reporting features.",
			ContactID: &contacts[2].ID,
		},
	}
	for i := range notes {
		notes[i].CreatedByID = admin.ID
		if err := firstOrCreate(db, &notes[i], "title = ?", notes[i].Title); err != nil {
			return fmt.Errorf("seed: failed to create note: %w", err)
		}
	}

	for i := range contacts[:3] {
		activity := models.Activity{
			ActivityType: models.ActivityTypeContact,
			Title:        fmt.Sprintf("Contact created: %s", contacts[i].FullName()),
			ContactID:    &contacts[i].ID,
			CreatedByID:  admin.ID,
		}
		if err := db.Create(&activity).Error; err != nil {
			return fmt.Errorf("seed: failed to create activity: %w", err)
		}
	}
	for i := range deals[:2] {
		activity := models.Activity{
			ActivityType: models.ActivityTypeDeal,
			Title:        fmt.Sprintf("Deal created: %s", deals[i].Title),
			ContactID:    &deals[i].ContactID,
			DealID:       &deals[i].ID,
			CreatedByID:  admin.ID,
		}
		if err := db.Create(&activity).Error; err != nil {
			return fmt.Errorf("seed: failed to create activity: %w", err)
		}
	}

	log.Println("Successfully created sample data for CRM system")
	return nil
}

func ensureUser(db *gorm.DB, user models.User, password string) (*models.User, error) {
	var existing models.User
	err := db.Where("username = ?", user.Username).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("seed: failed to look up user %s: %w", user.Username, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("seed: failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("seed: failed to create user %s: %w", user.Username, err)
	}
	return &user, nil
}

func firstOrCreate(db *gorm.DB, record any, query string, args ...any) error {
	err := db.Where(query, args...).First(record).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(record).Error
}
