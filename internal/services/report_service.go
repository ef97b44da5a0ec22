package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hiyoko-dev/crm-web/internal/models"
)

// StatusCount is a per-status task tally.
type StatusCount struct {
	Status models.TaskStatus `json:"status"`
	Count  int64             `json:"count"`
}

// ReportStats aggregates the metrics shown on the reports page.
type ReportStats struct {
	TotalDeals     int64
	WonDeals       int64
	LostDeals      int64
	TotalRevenue   decimal.Decimal
	ConversionRate float64
	TasksByStatus  []StatusCount
}

// ReportService computes the reports-page aggregates.
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportService.
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// Stats gathers deal, revenue, conversion and task metrics.
func (s *ReportService) Stats() (*ReportStats, error) {
	stats := &ReportStats{}

	if err := s.db.Model(&models.Deal{}).Count(&stats.TotalDeals).Error; err != nil {
		return nil, fmt.Errorf("failed to count deals: %w", err)
	}
	if err := s.db.Model(&models.Deal{}).
		Where("stage = ?", models.DealStageClosedWon).
		Count(&stats.WonDeals).Error; err != nil {
		return nil, fmt.Errorf("failed to count won deals: %w", err)
	}
	if err := s.db.Model(&models.Deal{}).
		Where("stage = ?", models.DealStageClosedLost).
		Count(&stats.LostDeals).Error; err != nil {
		return nil, fmt.Errorf("failed to count lost deals: %w", err)
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

	var totalLeads, convertedLeads int64
	if err := s.db.Model(&models.Contact{}).
		Where("contact_type = ?", models.ContactTypeLead).
		Count(&totalLeads).Error; err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}
	if err := s.db.Model(&models.Contact{}).
		Where("contact_type = ? AND lead_status = ?", models.ContactTypeLead, models.LeadStatusConverted).
		Count(&convertedLeads).Error; err != nil {
		return nil, fmt.Errorf("failed to count converted leads: %w", err)
	}
	if totalLeads > 0 {
		stats.ConversionRate = float64(convertedLeads) / float64(totalLeads) * 100
	}

	if err := s.db.Model(&models.Task{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&stats.TasksByStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to group tasks by status: %w", err)
	}

	return stats, nil
}
