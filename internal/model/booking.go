package model

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a customer's moving or cleaning service request.
type Booking struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	ServiceType     string    `json:"serviceType"`
	MoveSize        string    `json:"moveSize"`
	CurrentAddress  string    `json:"currentAddress"`
	NewAddress      string    `json:"newAddress"`
	PreferredDate   time.Time `json:"preferredDate"`
	PreferredTime   string    `json:"preferredTime"`
	HoursNeeded     string    `json:"hoursNeeded"`
	SpecialRequests string    `json:"specialRequests"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BookingListOptions carries filter and pagination parameters for listing bookings.
type BookingListOptions struct {
	// Status filters by status; "" and "all" return every status.
	Status string
	Limit  int
	Offset int
}

var bookingStatuses = map[string]bool{
	BookingStatusPending:   true,
	BookingStatusConfirmed: true,
	BookingStatusCompleted: true,
	BookingStatusCancelled: true,
}

// ServiceTypes lists the bookable services in form order.
var ServiceTypes = []string{
	"residential-moving",
	"commercial-moving",
	"house-cleaning",
	"office-cleaning",
	"full-service",
}

var moveSizes = map[string]bool{
	"": true, "studio": true, "2br": true, "4br": true, "office-small": true, "office-large": true,
}

var preferredTimes = map[string]bool{
	"": true, "morning": true, "afternoon": true, "flexible": true,
}

var hoursNeeded = map[string]bool{
	"": true, "2-4": true, "4-6": true, "6-8": true, "8+": true, "not-sure": true,
}

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool { return bookingStatuses[s] }

// ValidServiceType reports whether s is a bookable service.
func ValidServiceType(s string) bool {
	for _, t := range ServiceTypes {
		if t == s {
			return true
		}
	}
	return false
}

// ValidMoveSize reports whether s is empty or a known move size.
func ValidMoveSize(s string) bool { return moveSizes[s] }

// ValidPreferredTime reports whether s is empty or a known time window.
func ValidPreferredTime(s string) bool { return preferredTimes[s] }

// ValidHoursNeeded reports whether s is empty or a known duration bucket.
func ValidHoursNeeded(s string) bool { return hoursNeeded[s] }
