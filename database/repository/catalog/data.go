package catalogRepo

import "astromarket/models"

var defaultProblems = []models.Problem{
	{ID: "career-growth", Title: "Career growth has stalled", Category: "Career"},
	{ID: "job-change", Title: "Confused about changing jobs", Category: "Career"},
	{ID: "business-loss", Title: "Repeated losses in business", Category: "Career"},
	{ID: "marriage-delay", Title: "Delay in marriage", Category: "Relationships"},
	{ID: "relationship-conflict", Title: "Frequent conflicts with partner", Category: "Relationships"},
	{ID: "compatibility", Title: "Kundli matching and compatibility", Category: "Relationships"},
	{ID: "health-anxiety", Title: "Stress and anxiety", Category: "Health"},
	{ID: "chronic-illness", Title: "Recurring health issues in family", Category: "Health"},
	{ID: "debt", Title: "Unable to clear debts", Category: "Finance"},
	{ID: "property-dispute", Title: "Property or inheritance dispute", Category: "Finance"},
	{ID: "exam-results", Title: "Poor results despite hard work", Category: "Education"},
	{ID: "higher-studies", Title: "Choosing the right field of study", Category: "Education"},
	{ID: "child-behaviour", Title: "Concerns about a child's behaviour", Category: "Family"},
	{ID: "family-peace", Title: "Lack of peace at home", Category: "Family"},
}

var defaultAstrologers = []models.Astrologer{
	{
		ID:             "ast-001",
		Name:           "Pandit Raghunath Shastri",
		Specialization: []string{"Vedic Astrology", "Kundli", "Marriage"},
		Experience:     22,
		Rating:         4.9,
		PricePerHour:   1999,
		Availability:   []string{"09:00 AM", "11:00 AM", "02:00 PM", "05:00 PM"},
		Image:          "/images/astrologers/raghunath-shastri.jpg",
	},
	{
		ID:             "ast-002",
		Name:           "Acharya Meera Joshi",
		Specialization: []string{"Numerology", "Tarot", "Career"},
		Experience:     12,
		Rating:         4.7,
		PricePerHour:   999,
		Availability:   []string{"10:00 AM", "12:00 PM", "04:00 PM", "07:00 PM"},
		Image:          "/images/astrologers/meera-joshi.jpg",
	},
	{
		ID:             "ast-003",
		Name:           "Dr. Suresh Trivedi",
		Specialization: []string{"Vastu Shastra", "Prashna Kundli"},
		Experience:     18,
		Rating:         4.8,
		PricePerHour:   1499,
		Availability:   []string{"08:00 AM", "01:00 PM", "06:00 PM"},
		Image:          "/images/astrologers/suresh-trivedi.jpg",
	},
	{
		ID:             "ast-004",
		Name:           "Jyotishi Ananya Rao",
		Specialization: []string{"Palmistry", "Relationships", "Health"},
		Experience:     8,
		Rating:         4.5,
		PricePerHour:   799,
		Availability:   []string{"11:00 AM", "03:00 PM", "08:00 PM"},
		Image:          "/images/astrologers/ananya-rao.jpg",
	},
	{
		ID:             "ast-005",
		Name:           "Guru Devendra Mishra",
		Specialization: []string{"KP Astrology", "Finance", "Remedies"},
		Experience:     30,
		Rating:         4.9,
		PricePerHour:   2499,
		Availability:   []string{"07:00 AM", "10:00 AM", "05:00 PM"},
		Image:          "/images/astrologers/devendra-mishra.jpg",
	},
	{
		ID:             "ast-006",
		Name:           "Kavita Nair",
		Specialization: []string{"Tarot", "Education", "Family"},
		Experience:     5,
		Rating:         4.3,
		PricePerHour:   599,
		Availability:   []string{"12:00 PM", "02:00 PM", "06:00 PM", "09:00 PM"},
		Image:          "/images/astrologers/kavita-nair.jpg",
	},
}
