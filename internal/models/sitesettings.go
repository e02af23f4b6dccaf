package models

import "time"

// PaymentAccount is a payout account configured for the platform.
type PaymentAccount struct {
	ID            string    `json:"id"`
	Provider      string    `json:"provider"`
	AccountName   string    `json:"accountName"`
	AccountNumber string    `json:"accountNumber"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PaymentAccountFilter narrows payment-account listings.
type PaymentAccountFilter struct {
	Provider string
	Search   string
}

// EnumValue is one selectable option inside an enum group. Key is unique
// within the owning group.
type EnumValue struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// EnumGroup is a named set of enum values used to drive admin dropdowns.
type EnumGroup struct {
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	Values      []EnumValue       `json:"values"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// GuideBanner is a promotional banner shown in the guide app. Order controls
// display position.
type GuideBanner struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl"`
	TargetURL string `json:"targetUrl"`
	Order     int    `json:"order"`
	Active    bool   `json:"active"`
}

// AdvertisingPrice sets the price of one advertising placement.
type AdvertisingPrice struct {
	ID         string    `json:"id"`
	Placement  string    `json:"placement"`
	Price      float64   `json:"price"`
	Currency   string    `json:"currency"`
	PeriodDays int       `json:"periodDays"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SocialLink is a footer/profile social media link.
type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Label    string `json:"label"`
	Order    int    `json:"order"`
	Active   bool   `json:"active"`
}

// ResetPasswordRequest tracks a user-initiated password reset awaiting the
// back office.
type ResetPasswordRequest struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requestedAt"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
}

const (
	ResetRequestPending  = "pending"
	ResetRequestResolved = "resolved"
)
