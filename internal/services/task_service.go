package services

import (
	"context"
	"time"

	"github.com/engagecrm/engage-backend/internal/apperrors"
	"github.com/engagecrm/engage-backend/internal/models"
	"github.com/engagecrm/engage-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateTaskRequest is the input to CreateTask
type CreateTaskRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     time.Time `json:"dueDate"`
	CustomerID  string    `json:"customerId"`
}

// UpdateTaskRequest carries a partial task update
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	CustomerID  *string    `json:"customerId"`
}

// TaskService handles task-related business logic
type TaskService struct {
	taskRepo repositories.TaskRepository
	log      *zap.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repositories.TaskRepository, log *zap.Logger) *TaskService {
	return &TaskService{taskRepo: taskRepo, log: log}
}

// CreateTask validates and persists a new task
func (s *TaskService) CreateTask(ctx context.Context, req *CreateTaskRequest) (*models.Task, error) {
	if req.Status == "" {
		req.Status = models.TaskStatusToDo
	}
	if req.Priority == "" {
		req.Priority = models.TaskPriorityMedium
	}

	ve := &apperrors.ValidationError{}
	if req.Title == "" {
		ve.Add("title", "title is required")
	}
	if !models.IsValidTaskStatus(req.Status) {
		ve.Add("status", "unknown task status")
	}
	if !models.IsValidTaskPriority(req.Priority) {
		ve.Add("priority", "unknown task priority")
	}
	customerID, err := parseOptionalObjectID(req.CustomerID)
	if err != nil {
		ve.Add("customerId", "invalid customer ID")
	}
	if !ve.Empty() {
		return nil, ve
	}

	now := time.Now()
	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		CustomerID:  customerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		s.log.Error("failed to create task", zap.Error(err))
		return nil, err
	}
	return task, nil
}

// GetTask retrieves a task by ID
func (s *TaskService) GetTask(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	return s.taskRepo.FindByID(ctx, id)
}

// ListTasks returns all tasks, newest first
func (s *TaskService) ListTasks(ctx context.Context) ([]*models.Task, error) {
	return s.taskRepo.FindAll(ctx)
}

// UpdateTask applies a partial update
func (s *TaskService) UpdateTask(ctx context.Context, id primitive.ObjectID, req *UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ve := &apperrors.ValidationError{}
	if req.Title != nil && *req.Title == "" {
		ve.Add("title", "title is required")
	}
	if req.Status != nil && !models.IsValidTaskStatus(*req.Status) {
		ve.Add("status", "unknown task status")
	}
	if req.Priority != nil && !models.IsValidTaskPriority(*req.Priority) {
		ve.Add("priority", "unknown task priority")
	}
	var customerID primitive.ObjectID
	if req.CustomerID != nil {
		customerID, err = parseOptionalObjectID(*req.CustomerID)
		if err != nil {
			ve.Add("customerId", "invalid customer ID")
		}
	}
	if !ve.Empty() {
		return nil, ve
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.CustomerID != nil {
		task.CustomerID = customerID
	}
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask permanently removes a task
func (s *TaskService) DeleteTask(ctx context.Context, id primitive.ObjectID) error {
	return s.taskRepo.Delete(ctx, id)
}

// parseOptionalObjectID accepts an empty string as the zero ObjectID.
func parseOptionalObjectID(hex string) (primitive.ObjectID, error) {
	if hex == "" {
		return primitive.NilObjectID, nil
	}
	return primitive.ObjectIDFromHex(hex)
}
