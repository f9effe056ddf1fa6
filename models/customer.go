package models

import "time"

const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"

	// StatusFilterAll disables the status predicate of a customer search.
	StatusFilterAll = "all"
)

// CustomerData is one row of the admin customer roster.
type CustomerData struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	Mobile         string    `bson:"mobile" json:"mobile"`
	City           string    `bson:"city,omitempty" json:"city,omitempty"`
	JoinedAt       time.Time `bson:"joinedAt" json:"joinedAt"`
	SarthiBookings int       `bson:"sarthiBookings" json:"sarthiBookings"`
	BrahmaBookings int       `bson:"brahmaBookings" json:"brahmaBookings"`
	KavachOrders   int       `bson:"kavachOrders" json:"kavachOrders"`
	TotalSpent     int       `bson:"totalSpent" json:"totalSpent"`
	LastActivity   time.Time `bson:"lastActivity" json:"lastActivity"`
	Status         string    `bson:"status" json:"status"`
}

// ServiceCounts is the per-service breakdown shown in the detail view.
type ServiceCounts struct {
	SarthiBookings int `json:"sarthiBookings"`
	BrahmaBookings int `json:"brahmaBookings"`
	KavachOrders   int `json:"kavachOrders"`
}

func (c CustomerData) ServiceCounts() ServiceCounts {
	return ServiceCounts{
		SarthiBookings: c.SarthiBookings,
		BrahmaBookings: c.BrahmaBookings,
		KavachOrders:   c.KavachOrders,
	}
}

// CustomerDetail is the full record plus its service counts.
type CustomerDetail struct {
	Customer CustomerData  `json:"customer"`
	Services ServiceCounts `json:"services"`
}

// CustomerFilter combines a free-text term and a status with AND semantics.
type CustomerFilter struct {
	Term   string `form:"q" json:"q"`
	Status string `form:"status" json:"status"`
}

// CustomerStats is computed over the full roster.
// AverageSpend is nil when the roster is empty.
type CustomerStats struct {
	TotalCustomers  int  `json:"totalCustomers"`
	ActiveCustomers int  `json:"activeCustomers"`
	TotalRevenue    int  `json:"totalRevenue"`
	AverageSpend    *int `json:"averageSpend"`
}
