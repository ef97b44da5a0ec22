package services

import (
	"github.com/hiyoko-dev/crm-web/internal/models"
	"github.com/hiyoko-dev/crm-web/internal/repository"
)

// ActivityService appends rows to the activity log. It is invoked from the
// contact, deal and task mutation handlers only; company and note mutations
// are not logged, so callers must not assume full coverage.
type ActivityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService creates a new ActivityService.
func NewActivityService(activityRepo repository.ActivityRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
	}
}

// Record appends an immutable log row with a server-assigned timestamp.
func (s *ActivityService) Record(activityType models.ActivityType, title, description string, contactID, dealID *uint64, userID uint64) error {
	activity := &models.Activity{
		ActivityType: activityType,
		Title:        title,
		Description:  description,
		ContactID:    contactID,
		DealID:       dealID,
		CreatedByID:  userID,
	}
	return s.activityRepo.Create(activity)
}
