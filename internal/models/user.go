package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string    `gorm:"type:varchar(50)" json:"first_name"`
	LastName     string    `gorm:"type:varchar(50)" json:"last_name"`
	Email        string    `gorm:"type:varchar(255)" json:"email"`
	IsSuperuser  bool      `gorm:"not null;default:false" json:"is_superuser"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	CreatedContacts []Contact `gorm:"foreignKey:CreatedByID" json:"-"`
	AssignedTasks   []Task    `gorm:"foreignKey:AssignedToID" json:"-"`
}
