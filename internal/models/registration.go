package models

// Role selects the registration track. The choice is exclusive and one-way
// for the lifetime of a registration instance.
type Role string

const (
	RoleEntrepreneur Role = "entrepreneur"
	RoleYouth        Role = "youth"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleEntrepreneur || r == RoleYouth
}

// EntrepreneurProfile collects the expert onboarding fields.
// Slots hold unique "date в time" strings; HoursPerMonth is clamped to [1,40].
type EntrepreneurProfile struct {
	Name          string   `json:"name"`
	BusinessName  string   `json:"businessName"`
	Revenue       string   `json:"revenue"`
	City          string   `json:"city"`
	Industry      string   `json:"industry"`
	Values        string   `json:"values"`
	Request       string   `json:"request"`
	VideoDeclared bool     `json:"videoDeclared"`
	HoursPerMonth int      `json:"hoursPerMonth"`
	Slots         []string `json:"slots"`
}

// YouthProfile collects the seeker onboarding fields
type YouthProfile struct {
	Name           string `json:"name"`
	BirthDate      string `json:"birthDate"`
	City           string `json:"city"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	MainFocus      string `json:"mainFocus"`
	MeetingGoal    string `json:"meetingGoal"`
	EnergyExchange string `json:"energyExchange"`
}

// CreateRegistrationRequest opens a registration workflow for a role
type CreateRegistrationRequest struct {
	Role string `json:"role" binding:"required,oneof=entrepreneur youth"`
}

// SetFieldsRequest assigns values to the active track's fields
type SetFieldsRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
}

// AddSlotRequest offers an availability slot. Blank date or time is a no-op
// by contract, so neither field is marked required here.
type AddSlotRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
