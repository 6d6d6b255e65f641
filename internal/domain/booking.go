package domain

// BookingStatus represents the current status of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
)

// Booking records a booking intent against a freight rate.
//
// RateID is stored as supplied and never checked against the catalog; a
// booking with a dangling rate reference is tolerated and simply dropped
// from joined views. Reference is a human-readable display code, not a
// collision-checked identifier; ID is the primary key.
type Booking struct {
	ID            string
	RateID        string
	BookingDate   string // ISO 8601 date, set at creation time
	DepartureDate string // ISO 8601 date, chosen by the customer
	Status        BookingStatus
	Reference     string
}
