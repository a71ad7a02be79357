package usecase

import (
	"net/mail"
	"strings"

	"github.com/tropicoretreats/leads-api/internal/entity"
)

func ValidateCreateLeadInput(input CreateLeadInput) ValidationErrors {
	var errors ValidationErrors

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"firstName", "is required"})
	} else if len(input.FirstName) > 100 {
		errors = append(errors, ValidationError{"firstName", "must not exceed 100 characters"})
	}

	if strings.TrimSpace(input.LastName) == "" {
		errors = append(errors, ValidationError{"lastName", "is required"})
	} else if len(input.LastName) > 100 {
		errors = append(errors, ValidationError{"lastName", "must not exceed 100 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if len(input.Phone) > 50 {
		errors = append(errors, ValidationError{"phone", "must not exceed 50 characters"})
	}
	if len(input.Company) > 200 {
		errors = append(errors, ValidationError{"company", "must not exceed 200 characters"})
	}
	if len(input.GroupSize) > 20 {
		errors = append(errors, ValidationError{"groupSize", "must not exceed 20 characters"})
	}
	if len(input.PreferredDates) > 100 {
		errors = append(errors, ValidationError{"preferredDates", "must not exceed 100 characters"})
	}
	if len(input.Destination) > 50 {
		errors = append(errors, ValidationError{"destination", "must not exceed 50 characters"})
	}

	if strings.TrimSpace(input.Message) == "" {
		errors = append(errors, ValidationError{"message", "is required"})
	} else if len(input.Message) > 5000 {
		errors = append(errors, ValidationError{"message", "must not exceed 5000 characters"})
	}

	return errors
}

func ValidateUpdateLeadInput(input UpdateLeadInput) ValidationErrors {
	var errors ValidationErrors

	if strings.TrimSpace(input.ID) == "" {
		errors = append(errors, ValidationError{"id", "is required"})
	}

	if input.Status == nil && input.Temperature == nil && input.AssigneeID == nil && input.AssigneeName == nil {
		errors = append(errors, ValidationError{"body", "at least one updatable field is required"})
	}

	if input.Status != nil && !entity.IsValidStatus(*input.Status) {
		errors = append(errors, ValidationError{"status", "must be one of NEW, CONTACTED, QUOTED, WON, LOST, ARCHIVED"})
	}

	if input.Temperature != nil && !entity.IsValidTemperature(*input.Temperature) {
		errors = append(errors, ValidationError{"temperature", "must be one of HOT, WARM, COLD"})
	}

	if input.AssigneeID != nil && len(*input.AssigneeID) > 100 {
		errors = append(errors, ValidationError{"assigneeId", "must not exceed 100 characters"})
	}
	if input.AssigneeName != nil && len(*input.AssigneeName) > 200 {
		errors = append(errors, ValidationError{"assigneeName", "must not exceed 200 characters"})
	}

	return errors
}

func ValidateNoteContent(content string) ValidationErrors {
	var errors ValidationErrors

	if strings.TrimSpace(content) == "" {
		errors = append(errors, ValidationError{"content", "is required"})
	} else if len(content) > 5000 {
		errors = append(errors, ValidationError{"content", "must not exceed 5000 characters"})
	}

	return errors
}
