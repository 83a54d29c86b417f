package model

import "time"

// AdminUser is an operator allowed into the admin dashboard.
type AdminUser struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DashboardStats is the summary shown on the admin dashboard.
type DashboardStats struct {
	TotalContacts   int `json:"total_contacts"`
	TotalBookings   int `json:"total_bookings"`
	ChatbotQuotes   int `json:"chatbot_quotes"`
	PendingContacts int `json:"pending_contacts"`
	PendingBookings int `json:"pending_bookings"`
	RecentContacts  int `json:"recent_contacts"`
	RecentBookings  int `json:"recent_bookings"`
}
