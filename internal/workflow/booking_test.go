package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shag-platform/shag-api/internal/models"
	apperrors "github.com/shag-platform/shag-api/pkg/errors"
)

func testMentor() *models.Mentor {
	return &models.Mentor{ID: "m1", Name: "Алексей", SinglePrice: 3000, GroupPrice: 1000}
}

func TestBookingHappyPath(t *testing.T) {
	b := NewBooking(testMentor())
	assert.Equal(t, StateChoosingFormat, b.State())

	require.NoError(t, b.SelectFormat(models.FormatGroupOffline))
	assert.Equal(t, StateSettingGoal, b.State())

	require.NoError(t, b.SubmitGoal("разобрать юнит-экономику", "помогу с соцсетями"))
	assert.Equal(t, StatePickingSlot, b.State())

	require.NoError(t, b.SelectSlot("14:00"))
	assert.Equal(t, StateCompleted, b.State())

	req, err := b.Request()
	require.NoError(t, err)
	assert.Equal(t, "m1", req.MentorID)
	assert.Equal(t, models.FormatGroupOffline, req.Format)
	assert.Equal(t, "разобрать юнит-экономику", req.Goal)
	assert.Equal(t, "помогу с соцсетями", req.ExchangeOffer)
	assert.Equal(t, "14:00", req.Slot)
	assert.Equal(t, 1000, req.Price)
}

func TestBookingPriceFrozenAtSelection(t *testing.T) {
	mentor := testMentor()
	b := NewBooking(mentor)
	require.NoError(t, b.SelectFormat(models.FormatOnline1on1))

	// Later mutation of the source record must not leak into the booking
	mentor.SinglePrice = 9999

	require.NoError(t, b.SubmitGoal("цель", "обмен"))
	require.NoError(t, b.SelectSlot("10:00"))

	req, err := b.Request()
	require.NoError(t, err)
	assert.Equal(t, 3000, req.Price)
}

func TestBookingOutOfOrderOperations(t *testing.T) {
	b := NewBooking(testMentor())

	err := b.SubmitGoal("цель", "обмен")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	err = b.SelectSlot("10:00")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	_, err = b.Request()
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	require.NoError(t, b.SelectFormat(models.FormatOnline1on1))
	err = b.SelectFormat(models.FormatOffline1on1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestBookingInvalidInput(t *testing.T) {
	b := NewBooking(testMentor())

	err := b.SelectFormat(models.MeetingFormat("webinar"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, StateChoosingFormat, b.State())

	require.NoError(t, b.SelectFormat(models.FormatOnline1on1))

	err = b.SubmitGoal("  ", "обмен")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	err = b.SubmitGoal("цель", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	require.NoError(t, b.SubmitGoal("цель", "обмен"))
	err = b.SelectSlot("03:00")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, StatePickingSlot, b.State())
}

func TestBookingBackPreservesFields(t *testing.T) {
	b := NewBooking(testMentor())
	require.NoError(t, b.SelectFormat(models.FormatOffline1on1))
	require.NoError(t, b.SubmitGoal("цель", "обмен"))

	exited, err := b.Back()
	require.NoError(t, err)
	assert.False(t, exited)
	assert.Equal(t, StateSettingGoal, b.State())

	snap := b.Snapshot()
	assert.Equal(t, "цель", snap.Goal)
	assert.Equal(t, models.FormatOffline1on1, snap.Format)

	exited, err = b.Back()
	require.NoError(t, err)
	assert.False(t, exited)
	assert.Equal(t, StateChoosingFormat, b.State())

	exited, err = b.Back()
	require.NoError(t, err)
	assert.True(t, exited)
}

func TestBookingBackAfterCompletion(t *testing.T) {
	b := NewBooking(testMentor())
	require.NoError(t, b.SelectFormat(models.FormatOnline1on1))
	require.NoError(t, b.SubmitGoal("цель", "обмен"))
	require.NoError(t, b.SelectSlot("18:30"))

	_, err := b.Back()
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestBookingFormatOptions(t *testing.T) {
	b := NewBooking(testMentor())

	options := b.FormatOptions()
	require.Len(t, options, 3)
	assert.Equal(t, 3000, options[0].Price)
	assert.Equal(t, 1000, options[2].Price)

	assert.Equal(t, []string{"10:00", "11:30", "14:00", "16:00", "18:30"}, b.Slots())
}
