package models

import (
	"time"
)

type TaskType string

const (
	TaskTypeCall     TaskType = "call"
	TaskTypeEmail    TaskType = "email"
	TaskTypeMeeting  TaskType = "meeting"
	TaskTypeDemo     TaskType = "demo"
	TaskTypeFollowUp TaskType = "follow_up"
	TaskTypeOther    TaskType = "other"
)

// TaskTypeChoices lists the valid task types for form selects.
func TaskTypeChoices() []TaskType {
	return []TaskType{TaskTypeCall, TaskTypeEmail, TaskTypeMeeting, TaskTypeDemo, TaskTypeFollowUp, TaskTypeOther}
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// TaskPriorityChoices lists the valid priorities for form selects.
func TaskPriorityChoices() []TaskPriority {
	return []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent}
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// TaskStatusChoices lists the valid statuses for form selects.
func TaskStatusChoices() []TaskStatus {
	return []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled}
}

type Task struct {
	ID            uint64       `gorm:"primarykey" json:"id"`
	Title         string       `gorm:"type:varchar(200);not null" json:"title"`
	Description   string       `gorm:"type:text" json:"description"`
	TaskType      TaskType     `gorm:"type:varchar(20);not null;default:'other'" json:"task_type"`
	Priority      TaskPriority `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`
	Status        TaskStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DueDate       time.Time    `gorm:"not null;index" json:"due_date"`
	CompletedDate *time.Time   `json:"completed_date"`
	ContactID     *uint64      `gorm:"index" json:"contact_id"`
	DealID        *uint64      `gorm:"index" json:"deal_id"`

	AssignedToID uint64    `gorm:"not null;index" json:"assigned_to_id"`
	CreatedByID  uint64    `gorm:"not null" json:"created_by_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Contact    *Contact `gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE" json:"contact,omitempty"`
	Deal       *Deal    `gorm:"foreignKey:DealID;constraint:OnDelete:CASCADE" json:"deal,omitempty"`
	AssignedTo User     `gorm:"foreignKey:AssignedToID;constraint:OnDelete:CASCADE" json:"assigned_to,omitempty"`
	CreatedBy  User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"created_by,omitempty"`
}

// IsOverdue reports whether the task is past due and not completed.
func (t Task) IsOverdue() bool {
	return t.DueDate.Before(time.Now()) && t.Status != TaskStatusCompleted
}
