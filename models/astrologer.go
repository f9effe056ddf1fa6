package models

// Astrologer is a bookable consultant in the Brahma flow.
type Astrologer struct {
	ID             string   `bson:"id" json:"id"`
	Name           string   `bson:"name" json:"name"`
	Specialization []string `bson:"specialization" json:"specialization"`
	Experience     int      `bson:"experience" json:"experience"` // years
	Rating         float64  `bson:"rating" json:"rating"`
	PricePerHour   int      `bson:"pricePerHour" json:"pricePerHour"`
	Availability   []string `bson:"availability" json:"availability"` // e.g. "10:00 AM"
	Image          string   `bson:"image" json:"image"`
}

// OffersSlot reports whether slot is one of the astrologer's fixed times.
func (a Astrologer) OffersSlot(slot string) bool {
	for _, s := range a.Availability {
		if s == slot {
			return true
		}
	}
	return false
}
