package customerRepo

import (
	"time"

	"astromarket/models"
)

// MockRoster returns the built-in customer roster with dates relative to now.
func MockRoster(now time.Time) []models.CustomerData {
	day := 24 * time.Hour
	return []models.CustomerData{
		{
			ID: "cust-001", Name: "Priya Patel", Email: "priya.patel@example.com", Mobile: "+91 98765 43210",
			City: "Ahmedabad", JoinedAt: now.Add(-220 * day),
			SarthiBookings: 4, BrahmaBookings: 2, KavachOrders: 1, TotalSpent: 8497,
			LastActivity: now.Add(-2 * day), Status: models.CustomerStatusActive,
		},
		{
			ID: "cust-002", Name: "Rahul Sharma", Email: "rahul.sharma@example.com", Mobile: "+91 91234 56780",
			City: "Delhi", JoinedAt: now.Add(-410 * day),
			SarthiBookings: 1, BrahmaBookings: 5, KavachOrders: 0, TotalSpent: 12995,
			LastActivity: now.Add(-1 * day), Status: models.CustomerStatusActive,
		},
		{
			ID: "cust-003", Name: "Anjali Gupta", Email: "anjali.gupta@example.com", Mobile: "+91 99887 76655",
			City: "Lucknow", JoinedAt: now.Add(-365 * day),
			SarthiBookings: 2, BrahmaBookings: 0, KavachOrders: 2, TotalSpent: 3198,
			LastActivity: now.Add(-95 * day), Status: models.CustomerStatusInactive,
		},
		{
			ID: "cust-004", Name: "Vikram Singh", Email: "vikram.singh@example.com", Mobile: "+91 98111 22233",
			City: "Jaipur", JoinedAt: now.Add(-150 * day),
			SarthiBookings: 0, BrahmaBookings: 3, KavachOrders: 1, TotalSpent: 6796,
			LastActivity: now.Add(-6 * day), Status: models.CustomerStatusActive,
		},
		{
			ID: "cust-005", Name: "Sneha Reddy", Email: "sneha.reddy@example.com", Mobile: "+91 90000 12345",
			City: "Hyderabad", JoinedAt: now.Add(-500 * day),
			SarthiBookings: 3, BrahmaBookings: 1, KavachOrders: 0, TotalSpent: 2996,
			LastActivity: now.Add(-130 * day), Status: models.CustomerStatusInactive,
		},
		{
			ID: "cust-006", Name: "Arjun Mehta", Email: "arjun.mehta@example.com", Mobile: "+91 97654 32109",
			City: "Mumbai", JoinedAt: now.Add(-80 * day),
			SarthiBookings: 6, BrahmaBookings: 4, KavachOrders: 3, TotalSpent: 18490,
			LastActivity: now.Add(-3 * time.Hour), Status: models.CustomerStatusActive,
		},
		{
			ID: "cust-007", Name: "Kavya Iyer", Email: "kavya.iyer@example.com", Mobile: "+91 94444 55566",
			City: "Chennai", JoinedAt: now.Add(-45 * day),
			SarthiBookings: 1, BrahmaBookings: 1, KavachOrders: 0, TotalSpent: 1598,
			LastActivity: now.Add(-12 * day), Status: models.CustomerStatusActive,
		},
		{
			ID: "cust-008", Name: "Rohan Verma", Email: "rohan.verma@example.com", Mobile: "+91 93333 77788",
			City: "Pune", JoinedAt: now.Add(-300 * day),
			SarthiBookings: 0, BrahmaBookings: 0, KavachOrders: 4, TotalSpent: 4396,
			LastActivity: now.Add(-60 * day), Status: models.CustomerStatusInactive,
		},
	}
}
