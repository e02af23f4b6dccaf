package models

import "time"

// BookingStatus enumerates the lifecycle states shown on the bookings widget.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Booking is a recent-bookings dashboard row.
type Booking struct {
	ID           string        `json:"id"`
	Reference    string        `json:"reference"`
	CustomerName string        `json:"customerName"`
	TourTitle    string        `json:"tourTitle"`
	CompanyName  string        `json:"companyName"`
	Travelers    int           `json:"travelers"`
	TotalCents   int64         `json:"totalCents"`
	Currency     string        `json:"currency"`
	Status       BookingStatus `json:"status"`
	BookedAt     time.Time     `json:"bookedAt"`
}

// AdminNotification is an item in the back-office notification feed.
type AdminNotification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Severity  string    `json:"severity"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Announcement is a platform-wide message authored by the back office.
type Announcement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Audience    string    `json:"audience"`
	Pinned      bool      `json:"pinned"`
	PublishedAt time.Time `json:"publishedAt"`
}

// PendingAction is a work item awaiting an administrator.
type PendingAction struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Subject      string    `json:"subject"`
	SubmittedBy  string    `json:"submittedBy"`
	Priority     int       `json:"priority"`
	WaitingSince time.Time `json:"waitingSince"`
}

// RecentActivity is one row of the audit-style activity feed.
type RecentActivity struct {
	ID         string    `json:"id"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	Target     string    `json:"target"`
	OccurredAt time.Time `json:"occurredAt"`
}

// TrendingInsight is a generated analytics teaser. Percentage is an integer in
// [1,100]; Confidence is a float in [0.5,0.99].
type TrendingInsight struct {
	ID         string  `json:"id"`
	Topic      string  `json:"topic"`
	Summary    string  `json:"summary"`
	Percentage int     `json:"percentage"`
	Confidence float64 `json:"confidence"`
	Direction  string  `json:"direction"`
	WindowDays int     `json:"windowDays"`
}

// CompanyOverview aggregates company counts for the overview card.
type CompanyOverview struct {
	TotalCompanies      int     `json:"totalCompanies"`
	ActiveCompanies     int     `json:"activeCompanies"`
	PendingVerification int     `json:"pendingVerification"`
	SuspendedCompanies  int     `json:"suspendedCompanies"`
	NewThisMonth        int     `json:"newThisMonth"`
	AverageRating       float64 `json:"averageRating"`
}
