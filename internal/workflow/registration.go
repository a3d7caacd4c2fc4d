package workflow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shag-platform/shag-api/internal/models"
	apperrors "github.com/shag-platform/shag-api/pkg/errors"
)

// RegistrationStep names one screen of a registration track.
type RegistrationStep string

const (
	StepRoleSelection RegistrationStep = "role_selection"
	StepIdentity      RegistrationStep = "identity"
	StepValues        RegistrationStep = "values"
	StepVideoPitch    RegistrationStep = "video_pitch"
	StepSchedule      RegistrationStep = "schedule"
	StepFocus         RegistrationStep = "focus"
	StepExchangeOffer RegistrationStep = "exchange_offer"
	StepSubmitted     RegistrationStep = "submitted"
)

const (
	minHoursPerMonth = 1
	maxHoursPerMonth = 40
)

var entrepreneurSteps = []RegistrationStep{StepIdentity, StepValues, StepVideoPitch, StepSchedule}

var youthSteps = []RegistrationStep{StepIdentity, StepFocus, StepExchangeOffer}

var entrepreneurFields = map[string]struct{}{
	"name": {}, "businessName": {}, "revenue": {}, "city": {}, "industry": {},
	"values": {}, "request": {}, "videoDeclared": {}, "hoursPerMonth": {},
}

var youthFields = map[string]struct{}{
	"name": {}, "birthDate": {}, "city": {}, "phone": {}, "email": {},
	"mainFocus": {}, "meetingGoal": {}, "energyExchange": {},
}

// Registration walks a user through role-specific onboarding. The role
// choice is exclusive for the lifetime of the track: the only way back to
// role selection is Back from the first step, which wipes everything
// collected so far.
type Registration struct {
	role      models.Role
	stepIndex int
	submitted bool

	entrepreneur models.EntrepreneurProfile
	youth        models.YouthProfile
}

// NewRegistration opens a registration flow at role selection.
func NewRegistration() *Registration {
	return &Registration{}
}

// Role returns the chosen role, or the empty string before role selection.
func (r *Registration) Role() models.Role {
	return r.role
}

// Step returns the step the flow currently waits on.
func (r *Registration) Step() RegistrationStep {
	if r.submitted {
		return StepSubmitted
	}
	if r.role == "" {
		return StepRoleSelection
	}
	return r.steps()[r.stepIndex]
}

// StepNumber returns the 1-based position of the current step and the track
// length, both zero before role selection.
func (r *Registration) StepNumber() (current, total int) {
	if r.role == "" || r.submitted {
		return 0, len(r.steps())
	}
	return r.stepIndex + 1, len(r.steps())
}

// ChooseRole locks the flow onto one track. Choosing is only legal from
// role selection.
func (r *Registration) ChooseRole(role models.Role) error {
	if r.role != "" || r.submitted {
		return apperrors.InvalidTransitionError(string(r.Step()), "choose role")
	}
	if !role.Valid() {
		return apperrors.InvalidInputError("role", "unknown role "+string(role))
	}
	r.role = role
	r.stepIndex = 0
	return nil
}

// SetFields assigns values to the active track's fields. Unknown keys for
// the track are rejected; no step advancement happens here.
func (r *Registration) SetFields(fields map[string]string) error {
	if r.role == "" || r.submitted {
		return apperrors.InvalidTransitionError(string(r.Step()), "set fields")
	}

	known := youthFields
	if r.role == models.RoleEntrepreneur {
		known = entrepreneurFields
	}
	for key := range fields {
		if _, ok := known[key]; !ok {
			return apperrors.InvalidInputError("fields", fmt.Sprintf("unknown field %q for role %s", key, r.role))
		}
	}

	for key, value := range fields {
		if err := r.setField(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registration) setField(key, value string) error {
	if r.role == models.RoleEntrepreneur {
		p := &r.entrepreneur
		switch key {
		case "name":
			p.Name = value
		case "businessName":
			p.BusinessName = value
		case "revenue":
			p.Revenue = value
		case "city":
			p.City = value
		case "industry":
			p.Industry = value
		case "values":
			p.Values = value
		case "request":
			p.Request = value
		case "videoDeclared":
			declared, err := strconv.ParseBool(value)
			if err != nil {
				return apperrors.InvalidInputError("videoDeclared", "must be a boolean")
			}
			p.VideoDeclared = declared
		case "hoursPerMonth":
			hours, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return apperrors.InvalidInputError("hoursPerMonth", "must be a number")
			}
			p.HoursPerMonth = clampHours(hours)
		}
		return nil
	}

	p := &r.youth
	switch key {
	case "name":
		p.Name = value
	case "birthDate":
		p.BirthDate = value
	case "city":
		p.City = value
	case "phone":
		p.Phone = value
	case "email":
		p.Email = value
	case "mainFocus":
		p.MainFocus = value
	case "meetingGoal":
		p.MeetingGoal = value
	case "energyExchange":
		p.EnergyExchange = value
	}
	return nil
}

// AddSlot offers an availability slot on the schedule step. Blank date or
// time is a silent no-op, as is a duplicate of an already offered slot.
func (r *Registration) AddSlot(date, time string) error {
	if r.Step() != StepSchedule {
		return apperrors.InvalidTransitionError(string(r.Step()), "add slot")
	}

	date = strings.TrimSpace(date)
	time = strings.TrimSpace(time)
	if date == "" || time == "" {
		return nil
	}

	slot := date + " в " + time
	for _, existing := range r.entrepreneur.Slots {
		if existing == slot {
			return nil
		}
	}
	r.entrepreneur.Slots = append(r.entrepreneur.Slots, slot)
	return nil
}

// RemoveSlot drops the slot at the given position.
func (r *Registration) RemoveSlot(index int) error {
	if r.Step() != StepSchedule {
		return apperrors.InvalidTransitionError(string(r.Step()), "remove slot")
	}
	if index < 0 || index >= len(r.entrepreneur.Slots) {
		return apperrors.InvalidInputError("index", "no slot at that position")
	}
	r.entrepreneur.Slots = append(r.entrepreneur.Slots[:index], r.entrepreneur.Slots[index+1:]...)
	return nil
}

// Advance moves to the next step once the current step's required fields
// are filled. Advancing past the final step is not possible; Submit closes
// the flow instead.
func (r *Registration) Advance() error {
	if r.role == "" || r.submitted {
		return apperrors.InvalidTransitionError(string(r.Step()), "advance")
	}
	if r.stepIndex == len(r.steps())-1 {
		return apperrors.InvalidTransitionError(string(r.Step()), "advance")
	}
	if err := r.validateStep(r.Step()); err != nil {
		return err
	}
	r.stepIndex++
	return nil
}

// Back moves one step backwards, keeping collected values. From the first
// step it returns to role selection and clears everything.
func (r *Registration) Back() error {
	if r.role == "" || r.submitted {
		return apperrors.InvalidTransitionError(string(r.Step()), "back")
	}
	if r.stepIndex == 0 {
		r.role = ""
		r.entrepreneur = models.EntrepreneurProfile{}
		r.youth = models.YouthProfile{}
		return nil
	}
	r.stepIndex--
	return nil
}

// Submit validates the final step and closes the flow. The caller owns the
// actual remote write.
func (r *Registration) Submit() error {
	if r.role == "" || r.submitted {
		return apperrors.InvalidTransitionError(string(r.Step()), "submit")
	}
	if r.stepIndex != len(r.steps())-1 {
		return apperrors.InvalidTransitionError(string(r.Step()), "submit")
	}
	if err := r.validateStep(r.Step()); err != nil {
		return err
	}
	r.submitted = true
	return nil
}

// EntrepreneurProfile returns the collected expert profile. Only meaningful
// on the entrepreneur track.
func (r *Registration) EntrepreneurProfile() models.EntrepreneurProfile {
	return r.entrepreneur
}

// YouthProfile returns the collected seeker profile. Only meaningful on the
// youth track.
func (r *Registration) YouthProfile() models.YouthProfile {
	return r.youth
}

func (r *Registration) steps() []RegistrationStep {
	if r.role == models.RoleEntrepreneur {
		return entrepreneurSteps
	}
	return youthSteps
}

func (r *Registration) validateStep(step RegistrationStep) error {
	switch step {
	case StepIdentity:
		if r.role == models.RoleEntrepreneur {
			return requireFilled(map[string]string{
				"name":         r.entrepreneur.Name,
				"businessName": r.entrepreneur.BusinessName,
				"revenue":      r.entrepreneur.Revenue,
				"city":         r.entrepreneur.City,
				"industry":     r.entrepreneur.Industry,
			})
		}
		return requireFilled(map[string]string{
			"name":      r.youth.Name,
			"birthDate": r.youth.BirthDate,
			"city":      r.youth.City,
			"phone":     r.youth.Phone,
			"email":     r.youth.Email,
		})
	case StepValues:
		return requireFilled(map[string]string{
			"values":  r.entrepreneur.Values,
			"request": r.entrepreneur.Request,
		})
	case StepVideoPitch:
		if !r.entrepreneur.VideoDeclared {
			return apperrors.InvalidInputError("videoDeclared", "video pitch must be confirmed")
		}
	case StepSchedule:
		if r.entrepreneur.HoursPerMonth < minHoursPerMonth {
			return apperrors.InvalidInputError("hoursPerMonth", "must be set")
		}
		if len(r.entrepreneur.Slots) == 0 {
			return apperrors.InvalidInputError("slots", "at least one slot is required")
		}
	case StepFocus:
		return requireFilled(map[string]string{
			"mainFocus": r.youth.MainFocus,
		})
	case StepExchangeOffer:
		return requireFilled(map[string]string{
			"meetingGoal":    r.youth.MeetingGoal,
			"energyExchange": r.youth.EnergyExchange,
		})
	}
	return nil
}

func requireFilled(fields map[string]string) error {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return apperrors.InvalidInputError(name, "must not be blank")
		}
	}
	return nil
}

func clampHours(hours int) int {
	if hours < minHoursPerMonth {
		return minHoursPerMonth
	}
	if hours > maxHoursPerMonth {
		return maxHoursPerMonth
	}
	return hours
}
