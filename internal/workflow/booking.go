// Package workflow implements the step-by-step flows users walk through:
// booking a meeting with a mentor and registering on the platform. Both are
// pure in-memory state machines; callers own persistence and locking.
package workflow

import (
	"strings"

	"github.com/shag-platform/shag-api/internal/models"
	"github.com/shag-platform/shag-api/internal/pricing"
	apperrors "github.com/shag-platform/shag-api/pkg/errors"
)

// BookingState names the step a booking currently waits on.
type BookingState string

const (
	StateChoosingFormat BookingState = "choosing_format"
	StateSettingGoal    BookingState = "setting_goal"
	StatePickingSlot    BookingState = "picking_slot"
	StateCompleted      BookingState = "completed"
)

// DefaultSlots is the fixed set of bookable start times offered for every
// mentor.
var DefaultSlots = []string{"10:00", "11:30", "14:00", "16:00", "18:30"}

// Booking walks a user from format selection to a confirmed meeting request
// with one mentor. The price is frozen at format selection time and never
// recomputed from later input.
type Booking struct {
	mentor *models.Mentor
	state  BookingState

	format        models.MeetingFormat
	price         int
	goal          string
	exchangeOffer string
	slot          string
}

// NewBooking opens a booking flow for the mentor, starting at format
// selection.
func NewBooking(mentor *models.Mentor) *Booking {
	return &Booking{
		mentor: mentor,
		state:  StateChoosingFormat,
	}
}

// State returns the current step.
func (b *Booking) State() BookingState {
	return b.state
}

// Mentor returns the mentor this booking targets.
func (b *Booking) Mentor() *models.Mentor {
	return b.mentor
}

// FormatOptions lists the selectable formats with the mentor's prices.
func (b *Booking) FormatOptions() []models.FormatOption {
	return pricing.Options(b.mentor)
}

// Slots lists the times selectable at the slot step.
func (b *Booking) Slots() []string {
	return DefaultSlots
}

// SelectFormat records the meeting format and freezes its price, advancing
// to the goal step.
func (b *Booking) SelectFormat(format models.MeetingFormat) error {
	if b.state != StateChoosingFormat {
		return apperrors.InvalidTransitionError(string(b.state), "select format")
	}

	price, err := pricing.Price(format, b.mentor)
	if err != nil {
		return err
	}

	b.format = format
	b.price = price
	b.state = StateSettingGoal
	return nil
}

// SubmitGoal records the meeting goal and the exchange offer, advancing to
// slot selection. Both values must be non-blank.
func (b *Booking) SubmitGoal(goal, exchangeOffer string) error {
	if b.state != StateSettingGoal {
		return apperrors.InvalidTransitionError(string(b.state), "submit goal")
	}
	if strings.TrimSpace(goal) == "" {
		return apperrors.InvalidInputError("goal", "must not be blank")
	}
	if strings.TrimSpace(exchangeOffer) == "" {
		return apperrors.InvalidInputError("exchange_offer", "must not be blank")
	}

	b.goal = goal
	b.exchangeOffer = exchangeOffer
	b.state = StatePickingSlot
	return nil
}

// SelectSlot completes the booking with one of the offered times.
func (b *Booking) SelectSlot(slot string) error {
	if b.state != StatePickingSlot {
		return apperrors.InvalidTransitionError(string(b.state), "select slot")
	}

	offered := false
	for _, s := range b.Slots() {
		if s == slot {
			offered = true
			break
		}
	}
	if !offered {
		return apperrors.InvalidInputError("slot", "not in the offered list")
	}

	b.slot = slot
	b.state = StateCompleted
	return nil
}

// Back steps the flow one state backwards, keeping already entered values
// so the user can revise instead of retyping. It returns true when the flow
// was already at the first step, which means the booking should be
// discarded by the caller.
func (b *Booking) Back() (exited bool, err error) {
	switch b.state {
	case StateChoosingFormat:
		return true, nil
	case StateSettingGoal:
		b.state = StateChoosingFormat
	case StatePickingSlot:
		b.state = StateSettingGoal
	case StateCompleted:
		return false, apperrors.InvalidTransitionError(string(b.state), "back")
	}
	return false, nil
}

// Request returns the finalized booking. It is only available once the flow
// has completed.
func (b *Booking) Request() (*models.BookingRequest, error) {
	if b.state != StateCompleted {
		return nil, apperrors.InvalidTransitionError(string(b.state), "request")
	}
	return &models.BookingRequest{
		MentorID:      b.mentor.ID,
		Format:        b.format,
		Goal:          b.goal,
		ExchangeOffer: b.exchangeOffer,
		Slot:          b.slot,
		Price:         b.price,
	}, nil
}

// Snapshot exposes the in-progress values for status responses. Fields not
// yet reached are zero.
func (b *Booking) Snapshot() models.BookingRequest {
	return models.BookingRequest{
		MentorID:      b.mentor.ID,
		Format:        b.format,
		Goal:          b.goal,
		ExchangeOffer: b.exchangeOffer,
		Slot:          b.slot,
		Price:         b.price,
	}
}
