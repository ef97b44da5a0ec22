package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hiyoko-dev/crm-web/internal/models"
	"github.com/hiyoko-dev/crm-web/internal/repository"
)

// StageCount is a per-stage deal tally.
type StageCount struct {
	Stage models.DealStage `json:"stage"`
	Count int64            `json:"count"`
}

// DashboardStats aggregates the key metrics shown on the dashboard.
type DashboardStats struct {
	TotalContacts    int64
	TotalDeals       int64
	TotalCompanies   int64
	RecentActivities []models.Activity
	DealsByStage     []StageCount
	TotalRevenue     decimal.Decimal
	OverdueTasks     int64
}

// DashboardService computes the dashboard aggregates.
type DashboardService struct {
	db           *gorm.DB
	taskRepo     repository.TaskRepository
	activityRepo repository.ActivityRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(db *gorm.DB, taskRepo repository.TaskRepository, activityRepo repository.ActivityRepository) *DashboardService {
	return &DashboardService{
		db:           db,
		taskRepo:     taskRepo,
		activityRepo: activityRepo,
	}
}

// Stats gathers all dashboard metrics. Each aggregate is an independent query;
// there is no snapshot consistency across them.
func (s *DashboardService) Stats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.Contact{}).Count(&stats.TotalContacts).Error; err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}
	if err := s.db.Model(&models.Deal{}).Count(&stats.TotalDeals).Error; err != nil {
		return nil, fmt.Errorf("failed to count deals: %w", err)
	}
	if err := s.db.Model(&models.Company{}).Count(&stats.TotalCompanies).Error; err != nil {
		return nil, fmt.Errorf("failed to count companies: %w", err)
	}

	activities, err := s.activityRepo.Recent(10)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent activities: %w", err)
	}
	stats.RecentActivities = activities

	if err := s.db.Model(&models.Deal{}).
		Select("stage, COUNT(*) AS count").
		Group("stage").
		Scan(&stats.DealsByStage).Error; err != nil {
		return nil, fmt.Errorf("failed to group deals by stage: %w", err)
	}

	var revenue struct {
		Total decimal.Decimal
	}
	if err := s.db.Model(&models.Deal{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("stage = ?", models.DealStageClosedWon).
		Scan(&revenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum won deals: %w", err)
	}
	stats.TotalRevenue = revenue.Total

	overdue, err := s.taskRepo.CountOverdue()
	if err != nil {
		return nil, fmt.Errorf("failed to count overdue tasks: %w", err)
	}
	stats.OverdueTasks = overdue

	return stats, nil
}
