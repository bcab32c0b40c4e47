package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer statuses.
const (
	CustomerStatusActive   = "Active"
	CustomerStatusLead     = "Lead"
	CustomerStatusInactive = "Inactive"
	CustomerStatusNew      = "New"
	CustomerStatusArchived = "Archived"
)

// Customer represents a customer record targeted by segment rules
type Customer struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	City       string             `bson:"city,omitempty" json:"city,omitempty"`
	Status     string             `bson:"status" json:"status"`
	TotalSpend float64            `bson:"totalSpend" json:"totalSpend"`
	Visits     int                `bson:"visits" json:"visits"`
	LastSeen   time.Time          `bson:"lastSeen,omitempty" json:"lastSeen,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsValidCustomerStatus checks if the customer status is valid
func IsValidCustomerStatus(status string) bool {
	switch status {
	case CustomerStatusActive, CustomerStatusLead, CustomerStatusInactive,
		CustomerStatusNew, CustomerStatusArchived:
		return true
	}
	return false
}
