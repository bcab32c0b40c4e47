package memory

import (
	"context"
	"sync"

	"github.com/engagecrm/engage-backend/internal/apperrors"
	"github.com/engagecrm/engage-backend/internal/models"
	"github.com/engagecrm/engage-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure CustomerRepository implements the interface
var _ repositories.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository keeps customers in process memory
type CustomerRepository struct {
	mu        sync.RWMutex
	customers []*models.Customer
}

// NewCustomerRepository creates a new in-memory CustomerRepository
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{customers: []*models.Customer{}}
}

// Create stores a new customer
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if customer.ID.IsZero() {
		customer.ID = primitive.NewObjectID()
	}
	clone := *customer
	r.customers = append(r.customers, &clone)
	return nil
}

// FindByID finds a customer by ID
func (r *CustomerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindAll returns all customers ordered by creation time, newest first
func (r *CustomerRepository) FindAll(ctx context.Context) ([]*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Customer, 0, len(r.customers))
	for i := len(r.customers) - 1; i >= 0; i-- {
		clone := *r.customers[i]
		out = append(out, &clone)
	}
	return out, nil
}

// Update replaces a stored customer
func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.customers {
		if c.ID == customer.ID {
			clone := *customer
			r.customers[i] = &clone
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Delete removes a customer by ID
func (r *CustomerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.customers {
		if c.ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// Count counts all customers
func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.customers)), nil
}
