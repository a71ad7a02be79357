package entity

import (
	"time"
)

type LeadStatus string

const (
	StatusNew       LeadStatus = "NEW"
	StatusContacted LeadStatus = "CONTACTED"
	StatusQuoted    LeadStatus = "QUOTED"
	StatusWon       LeadStatus = "WON"
	StatusLost      LeadStatus = "LOST"
	StatusArchived  LeadStatus = "ARCHIVED"
)

// PipelineStatuses are the non-archived states, in pipeline order.
var PipelineStatuses = []LeadStatus{
	StatusNew, StatusContacted, StatusQuoted, StatusWon, StatusLost,
}

func IsValidStatus(s LeadStatus) bool {
	switch s {
	case StatusNew, StatusContacted, StatusQuoted, StatusWon, StatusLost, StatusArchived:
		return true
	}
	return false
}

type Temperature string

const (
	TemperatureHot  Temperature = "HOT"
	TemperatureWarm Temperature = "WARM"
	TemperatureCold Temperature = "COLD"
)

func IsValidTemperature(t Temperature) bool {
	return t == TemperatureHot || t == TemperatureWarm || t == TemperatureCold
}

type Lead struct {
	ID     string     `json:"id"`
	Status LeadStatus `json:"status"`
	// PreviousStatus is populated only while Status == ARCHIVED; restoring
	// clears it.
	PreviousStatus *LeadStatus `json:"previousStatus,omitempty"`
	Temperature    Temperature `json:"temperature"`

	// AssigneeName is a denormalized copy of the assignee's display name at
	// assignment time. It is not re-synced if the name changes later.
	AssigneeID   string `json:"assigneeId,omitempty"`
	AssigneeName string `json:"assigneeName,omitempty"`

	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Company        string `json:"company,omitempty"`
	GroupSize      string `json:"groupSize,omitempty"`
	PreferredDates string `json:"preferredDates,omitempty"`
	Destination    string `json:"destination,omitempty"`
	Message        string `json:"message"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScanFilter is the store-native portion of a compiled lead filter: only
// conditions the store can evaluate during its own scan. Free-text search is
// deliberately absent (see usecase.CompileFilter).
type ScanFilter struct {
	Statuses     []LeadStatus
	Temperatures []Temperature
	AssigneeID   string
	CreatedFrom  time.Time // inclusive; zero means unbounded
	CreatedUntil time.Time // exclusive; zero means unbounded
}

// LeadChanges is a sparse field delta applied by the store's conditional
// update. Nil pointers mean "leave untouched".
type LeadChanges struct {
	Status              *LeadStatus
	PreviousStatus      *LeadStatus
	ClearPreviousStatus bool
	Temperature         *Temperature
	AssigneeID          *string
	AssigneeName        *string
	UpdatedAt           time.Time
}
