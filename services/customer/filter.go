package customer

import (
	"strings"

	"astromarket/models"
)

// ValidStatus accepts "", "all", "active" and "inactive".
func ValidStatus(status string) bool {
	switch status {
	case "", models.StatusFilterAll, models.CustomerStatusActive, models.CustomerStatusInactive:
		return true
	}
	return false
}

// Matches applies the search term and status filter to one customer.
// The term is matched case-insensitively against name and email and as a
// plain substring against mobile.
func Matches(c models.CustomerData, filter models.CustomerFilter) bool {
	if filter.Status != "" && filter.Status != models.StatusFilterAll && c.Status != filter.Status {
		return false
	}
	term := strings.TrimSpace(filter.Term)
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Name), lower) ||
		strings.Contains(strings.ToLower(c.Email), lower) ||
		strings.Contains(c.Mobile, term)
}

// FilterCustomers keeps roster order.
func FilterCustomers(roster []models.CustomerData, filter models.CustomerFilter) []models.CustomerData {
	out := make([]models.CustomerData, 0, len(roster))
	for _, c := range roster {
		if Matches(c, filter) {
			out = append(out, c)
		}
	}
	return out
}

// ComputeStats summarizes the roster. The average is rounded to the nearest
// whole unit and left nil for an empty roster.
func ComputeStats(roster []models.CustomerData) models.CustomerStats {
	stats := models.CustomerStats{TotalCustomers: len(roster)}
	for _, c := range roster {
		if c.Status == models.CustomerStatusActive {
			stats.ActiveCustomers++
		}
		stats.TotalRevenue += c.TotalSpent
	}
	if stats.TotalCustomers > 0 {
		avg := (stats.TotalRevenue*2 + stats.TotalCustomers) / (stats.TotalCustomers * 2)
		stats.AverageSpend = &avg
	}
	return stats
}
