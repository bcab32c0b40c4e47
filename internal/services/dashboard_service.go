package services

import (
	"context"

	"github.com/engagecrm/engage-backend/internal/models"
	"github.com/engagecrm/engage-backend/internal/repositories"
)

// DashboardStats aggregates the headline figures shown on the dashboard
type DashboardStats struct {
	Campaigns      int64 `json:"campaigns"`
	Customers      int64 `json:"customers"`
	Tasks          int64 `json:"tasks"`
	OpenTasks      int64 `json:"openTasks"`
	MessagesSent   int   `json:"messagesSent"`
	MessagesFailed int   `json:"messagesFailed"`
}

// DashboardService computes aggregate statistics across collections
type DashboardService struct {
	campaignRepo repositories.CampaignRepository
	customerRepo repositories.CustomerRepository
	taskRepo     repositories.TaskRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	campaignRepo repositories.CampaignRepository,
	customerRepo repositories.CustomerRepository,
	taskRepo repositories.TaskRepository,
) *DashboardService {
	return &DashboardService{
		campaignRepo: campaignRepo,
		customerRepo: customerRepo,
		taskRepo:     taskRepo,
	}
}

// GetStats returns counts and delivery totals
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.Customers, err = s.customerRepo.Count(ctx); err != nil {
		return nil, err
	}

	campaigns, err := s.campaignRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	stats.Campaigns = int64(len(campaigns))
	for _, c := range campaigns {
		stats.MessagesSent += c.SentCount
		stats.MessagesFailed += c.FailedCount
	}

	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	stats.Tasks = int64(len(tasks))
	for _, t := range tasks {
		if t.Status != models.TaskStatusCompleted && t.Status != models.TaskStatusArchived {
			stats.OpenTasks++
		}
	}

	return stats, nil
}
