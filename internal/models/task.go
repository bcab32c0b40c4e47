package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task statuses.
const (
	TaskStatusToDo       = "To Do"
	TaskStatusInProgress = "In Progress"
	TaskStatusCompleted  = "Completed"
	TaskStatusBlocked    = "Blocked"
	TaskStatusArchived   = "Archived"
)

// Task priorities.
const (
	TaskPriorityHigh   = "High"
	TaskPriorityMedium = "Medium"
	TaskPriorityLow    = "Low"
)

// Task represents a work item on the dashboard
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	Priority    string             `bson:"priority" json:"priority"`
	DueDate     time.Time          `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	CustomerID  primitive.ObjectID `bson:"customerId,omitempty" json:"customerId,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsValidTaskStatus checks if the task status is valid
func IsValidTaskStatus(status string) bool {
	switch status {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusCompleted,
		TaskStatusBlocked, TaskStatusArchived:
		return true
	}
	return false
}

// IsValidTaskPriority checks if the task priority is valid
func IsValidTaskPriority(priority string) bool {
	switch priority {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}
