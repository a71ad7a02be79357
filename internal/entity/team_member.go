package entity

// TeamMember is an admin user eligible to be assigned leads. The directory
// is read-only here: account provisioning and deactivation happen in the
// auth system, this table only mirrors who may appear in the assignee
// dropdown.
type TeamMember struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
