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

// CreateCustomerRequest is the input to CreateCustomer
type CreateCustomerRequest struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	City       string    `json:"city"`
	Status     string    `json:"status"`
	TotalSpend float64   `json:"totalSpend"`
	Visits     int       `json:"visits"`
	LastSeen   time.Time `json:"lastSeen"`
}

// UpdateCustomerRequest carries a partial customer update
type UpdateCustomerRequest struct {
	Name       *string    `json:"name"`
	Email      *string    `json:"email"`
	Phone      *string    `json:"phone"`
	City       *string    `json:"city"`
	Status     *string    `json:"status"`
	TotalSpend *float64   `json:"totalSpend"`
	Visits     *int       `json:"visits"`
	LastSeen   *time.Time `json:"lastSeen"`
}

// CustomerService handles customer-related business logic
type CustomerService struct {
	customerRepo repositories.CustomerRepository
	log          *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo repositories.CustomerRepository, log *zap.Logger) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, log: log}
}

// CreateCustomer validates and persists a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*models.Customer, error) {
	if req.Status == "" {
		req.Status = models.CustomerStatusNew
	}

	ve := &apperrors.ValidationError{}
	if req.Name == "" {
		ve.Add("name", "name is required")
	}
	if !models.IsValidCustomerStatus(req.Status) {
		ve.Add("status", "unknown customer status")
	}
	if req.TotalSpend < 0 {
		ve.Add("totalSpend", "totalSpend must not be negative")
	}
	if req.Visits < 0 {
		ve.Add("visits", "visits must not be negative")
	}
	if !ve.Empty() {
		return nil, ve
	}

	now := time.Now()
	customer := &models.Customer{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		City:       req.City,
		Status:     req.Status,
		TotalSpend: req.TotalSpend,
		Visits:     req.Visits,
		LastSeen:   req.LastSeen,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.log.Error("failed to create customer", zap.Error(err))
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

// ListCustomers returns all customers, newest first
func (s *CustomerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	return s.customerRepo.FindAll(ctx)
}

// UpdateCustomer applies a partial update
func (s *CustomerService) UpdateCustomer(ctx context.Context, id primitive.ObjectID, req *UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ve := &apperrors.ValidationError{}
	if req.Name != nil && *req.Name == "" {
		ve.Add("name", "name is required")
	}
	if req.Status != nil && !models.IsValidCustomerStatus(*req.Status) {
		ve.Add("status", "unknown customer status")
	}
	if req.TotalSpend != nil && *req.TotalSpend < 0 {
		ve.Add("totalSpend", "totalSpend must not be negative")
	}
	if req.Visits != nil && *req.Visits < 0 {
		ve.Add("visits", "visits must not be negative")
	}
	if !ve.Empty() {
		return nil, ve
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.City != nil {
		customer.City = *req.City
	}
	if req.Status != nil {
		customer.Status = *req.Status
	}
	if req.TotalSpend != nil {
		customer.TotalSpend = *req.TotalSpend
	}
	if req.Visits != nil {
		customer.Visits = *req.Visits
	}
	if req.LastSeen != nil {
		customer.LastSeen = *req.LastSeen
	}
	customer.UpdatedAt = time.Now()

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer permanently removes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id primitive.ObjectID) error {
	return s.customerRepo.Delete(ctx, id)
}
