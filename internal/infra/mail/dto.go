package mail

import "time"

// LeadNotification is the slice of a lead the notification emails need.
type LeadNotification struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Company        string
	GroupSize      string
	PreferredDates string
	Destination    string
	Message        string
	CreatedAt      time.Time
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	FromName     string
	TeamFrom     string
	CustomerFrom string
	// TeamRecipients receives every new-lead notification.
	TeamRecipients []string

	DashboardURL   string
	WhatsAppNumber string
}
