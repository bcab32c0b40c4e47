package services

import (
	"context"
	"testing"

	"github.com/engagecrm/engage-backend/internal/apperrors"
	"github.com/engagecrm/engage-backend/internal/models"
	"github.com/engagecrm/engage-backend/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestCreateTaskDefaults(t *testing.T) {
	svc := NewTaskService(memory.NewTaskRepository(), zap.NewNop())

	task, err := svc.CreateTask(context.Background(), &CreateTaskRequest{
		Title: "Call back Asha about renewal",
	})
	require.NoError(t, err)

	assert.Equal(t, models.TaskStatusToDo, task.Status)
	assert.Equal(t, models.TaskPriorityMedium, task.Priority)
	assert.True(t, task.CustomerID.IsZero())
	assert.False(t, task.ID.IsZero())
}

func TestCreateTaskWithCustomerLink(t *testing.T) {
	svc := NewTaskService(memory.NewTaskRepository(), zap.NewNop())
	customerID := primitive.NewObjectID()

	task, err := svc.CreateTask(context.Background(), &CreateTaskRequest{
		Title:      "Prepare onboarding call",
		Priority:   models.TaskPriorityHigh,
		CustomerID: customerID.Hex(),
	})
	require.NoError(t, err)
	assert.Equal(t, customerID, task.CustomerID)
}

func TestCreateTaskValidation(t *testing.T) {
	svc := NewTaskService(memory.NewTaskRepository(), zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name  string
		req   CreateTaskRequest
		field string
	}{
		{"missing title", CreateTaskRequest{}, "title"},
		{"bad status", CreateTaskRequest{Title: "T", Status: "Waiting"}, "status"},
		{"bad priority", CreateTaskRequest{Title: "T", Priority: "Urgent"}, "priority"},
		{"bad customer id", CreateTaskRequest{Title: "T", CustomerID: "not-a-hex-id"}, "customerId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTask(ctx, &tt.req)
			require.Error(t, err)
			ve, ok := err.(*apperrors.ValidationError)
			require.True(t, ok)
			assert.Contains(t, ve.Fields, tt.field)
		})
	}
}

func TestUpdateTaskStatusOnly(t *testing.T) {
	svc := NewTaskService(memory.NewTaskRepository(), zap.NewNop())
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, &CreateTaskRequest{
		Title: "Send proposal", Priority: models.TaskPriorityHigh,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTask(ctx, task.ID, &UpdateTaskRequest{
		Status: strPtr(models.TaskStatusCompleted),
	})
	require.NoError(t, err)

	assert.Equal(t, models.TaskStatusCompleted, updated.Status)
	assert.Equal(t, "Send proposal", updated.Title)
	assert.Equal(t, models.TaskPriorityHigh, updated.Priority)
}

func TestUpdateTaskNotFound(t *testing.T) {
	svc := NewTaskService(memory.NewTaskRepository(), zap.NewNop())

	_, err := svc.UpdateTask(context.Background(), primitive.NewObjectID(), &UpdateTaskRequest{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteTask(t *testing.T) {
	svc := NewTaskService(memory.NewTaskRepository(), zap.NewNop())
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, &CreateTaskRequest{Title: "Cleanup"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, task.ID))
	assert.ErrorIs(t, svc.DeleteTask(ctx, task.ID), apperrors.ErrNotFound)
}
