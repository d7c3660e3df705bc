package domain

import "time"

// BookingRequest is a request to schedule a meeting on the shared calendar.
type BookingRequest struct {
	Title         string    `json:"title"`
	InviteeName   string    `json:"invitee_name"`
	InviteeEmail  string    `json:"invitee_email"`
	Start         time.Time `json:"start"`
	DurationMin   int       `json:"duration_minutes"`
	Notes         string    `json:"notes,omitempty"`
}

// Booking is a confirmed calendar booking.
type Booking struct {
	ID        string    `json:"id"`
	UID       string    `json:"uid,omitempty"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	MeetingURL string   `json:"meeting_url,omitempty"`
}
