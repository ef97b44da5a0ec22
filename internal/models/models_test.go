package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hiyoko-dev/crm-web/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.Company{},
		&models.Deal{},
		&models.Task{},
		&models.Note{},
		&models.Activity{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestContact_FullName(t *testing.T) {
	contact := models.Contact{FirstName: "John", LastName: "Smith"}
	assert.Equal(t, "John Smith", contact.FullName())
}

func TestContact_EmailUnique(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "owner")

	first := models.Contact{
		FirstName:   "John",
		LastName:    "Smith",
		Email:       "john@x.com",
		CreatedByID: user.ID,
	}
	require.NoError(t, db.Create(&first).Error)

	duplicate := models.Contact{
		FirstName:   "Johnny",
		LastName:    "Smithers",
		Email:       "john@x.com",
		CreatedByID: user.ID,
	}
	assert.Error(t, db.Create(&duplicate).Error)
}

func TestContact_PhoneValidation(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "owner")

	tests := []struct {
		name    string
		phone   string
		wantErr bool
	}{
		{"empty phone is allowed", "", false},
		{"plain digits", "5551234567", false},
		{"with plus and country code", "+15551234567", false},
		{"too short", "12345678", true},
		{"contains dashes", "+1-555-123-4567", true},
		{"contains letters", "555CALLNOW", true},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact := models.Contact{
				FirstName:   "Test",
				LastName:    "Contact",
				Email:       "test" + string(rune('a'+i)) + "@example.com",
				Phone:       tt.phone,
				CreatedByID: user.ID,
			}
			err := db.Create(&contact).Error
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidPhone)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeal_IsClosedIsWon(t *testing.T) {
	tests := []struct {
		stage    models.DealStage
		isClosed bool
		isWon    bool
	}{
		{models.DealStageProspecting, false, false},
		{models.DealStageQualification, false, false},
		{models.DealStageProposal, false, false},
		{models.DealStageNegotiation, false, false},
		{models.DealStageClosedWon, true, true},
		{models.DealStageClosedLost, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			deal := models.Deal{Stage: tt.stage}
			assert.Equal(t, tt.isClosed, deal.IsClosed())
			assert.Equal(t, tt.isWon, deal.IsWon())
		})
	}
}

func TestTask_IsOverdue(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name    string
		dueDate time.Time
		status  models.TaskStatus
		want    bool
	}{
		{"past due and pending", past, models.TaskStatusPending, true},
		{"past due and in progress", past, models.TaskStatusInProgress, true},
		{"past due and cancelled", past, models.TaskStatusCancelled, true},
		{"past due but completed", past, models.TaskStatusCompleted, false},
		{"future due and pending", future, models.TaskStatusPending, false},
		{"future due and completed", future, models.TaskStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := models.Task{DueDate: tt.dueDate, Status: tt.status}
			assert.Equal(t, tt.want, task.IsOverdue())
		})
	}
}
