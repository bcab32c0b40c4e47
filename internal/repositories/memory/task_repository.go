package memory

import (
	"context"
	"sync"

	"github.com/engagecrm/engage-backend/internal/apperrors"
	"github.com/engagecrm/engage-backend/internal/models"
	"github.com/engagecrm/engage-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure TaskRepository implements the interface
var _ repositories.TaskRepository = (*TaskRepository)(nil)

// TaskRepository keeps tasks in process memory
type TaskRepository struct {
	mu    sync.RWMutex
	tasks []*models.Task
}

// NewTaskRepository creates a new in-memory TaskRepository
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: []*models.Task{}}
}

// Create stores a new task
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	clone := *task
	r.tasks = append(r.tasks, &clone)
	return nil
}

// FindByID finds a task by ID
func (r *TaskRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tasks {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindAll returns all tasks ordered by creation time, newest first
func (r *TaskRepository) FindAll(ctx context.Context) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Task, 0, len(r.tasks))
	for i := len(r.tasks) - 1; i >= 0; i-- {
		clone := *r.tasks[i]
		out = append(out, &clone)
	}
	return out, nil
}

// Update replaces a stored task
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.tasks {
		if t.ID == task.ID {
			clone := *task
			r.tasks[i] = &clone
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Delete removes a task by ID
func (r *TaskRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Count counts all tasks
func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.tasks)), nil
}
