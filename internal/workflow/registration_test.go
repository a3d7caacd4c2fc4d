package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shag-platform/shag-api/internal/models"
	apperrors "github.com/shag-platform/shag-api/pkg/errors"
)

func entrepreneurIdentity() map[string]string {
	return map[string]string{
		"name":         "Елена Гарипова",
		"businessName": "Пищевые производства",
		"revenue":      "до 100 млн",
		"city":         "Казань",
		"industry":     "Производство",
	}
}

func youthIdentity() map[string]string {
	return map[string]string{
		"name":      "Иван Петров",
		"birthDate": "2005-03-14",
		"city":      "Москва",
		"phone":     "+7 900 000-00-00",
		"email":     "ivan@example.com",
	}
}

func TestRegistrationEntrepreneurTrack(t *testing.T) {
	r := NewRegistration()
	assert.Equal(t, StepRoleSelection, r.Step())

	require.NoError(t, r.ChooseRole(models.RoleEntrepreneur))
	assert.Equal(t, StepIdentity, r.Step())
	current, total := r.StepNumber()
	assert.Equal(t, 1, current)
	assert.Equal(t, 4, total)

	require.NoError(t, r.SetFields(entrepreneurIdentity()))
	require.NoError(t, r.Advance())
	assert.Equal(t, StepValues, r.Step())

	require.NoError(t, r.SetFields(map[string]string{
		"values":  "Труд, Семья",
		"request": "ищу молодых управленцев",
	}))
	require.NoError(t, r.Advance())
	assert.Equal(t, StepVideoPitch, r.Step())

	require.NoError(t, r.SetFields(map[string]string{"videoDeclared": "true"}))
	require.NoError(t, r.Advance())
	assert.Equal(t, StepSchedule, r.Step())

	require.NoError(t, r.SetFields(map[string]string{"hoursPerMonth": "10"}))
	require.NoError(t, r.AddSlot("2026-09-01", "10:00"))
	require.NoError(t, r.Submit())
	assert.Equal(t, StepSubmitted, r.Step())

	p := r.EntrepreneurProfile()
	assert.Equal(t, 10, p.HoursPerMonth)
	assert.Equal(t, []string{"2026-09-01 в 10:00"}, p.Slots)
}

func TestRegistrationYouthTrack(t *testing.T) {
	r := NewRegistration()
	require.NoError(t, r.ChooseRole(models.RoleYouth))

	_, total := r.StepNumber()
	assert.Equal(t, 3, total)

	require.NoError(t, r.SetFields(youthIdentity()))
	require.NoError(t, r.Advance())
	assert.Equal(t, StepFocus, r.Step())

	require.NoError(t, r.SetFields(map[string]string{"mainFocus": "карьера в IT"}))
	require.NoError(t, r.Advance())
	assert.Equal(t, StepExchangeOffer, r.Step())

	require.NoError(t, r.SetFields(map[string]string{
		"meetingGoal":    "выбрать направление",
		"energyExchange": "помогу с дизайном",
	}))
	require.NoError(t, r.Submit())
	assert.Equal(t, StepSubmitted, r.Step())
}

func TestRegistrationRoleIsOneWay(t *testing.T) {
	r := NewRegistration()
	require.NoError(t, r.ChooseRole(models.RoleYouth))

	err := r.ChooseRole(models.RoleEntrepreneur)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	err = NewRegistration().ChooseRole(models.Role("admin"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestRegistrationAdvanceRequiresFields(t *testing.T) {
	r := NewRegistration()
	require.NoError(t, r.ChooseRole(models.RoleEntrepreneur))

	err := r.Advance()
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, StepIdentity, r.Step())

	fields := entrepreneurIdentity()
	fields["city"] = "   "
	require.NoError(t, r.SetFields(fields))
	err = r.Advance()
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestRegistrationVideoPitchGate(t *testing.T) {
	r := NewRegistration()
	require.NoError(t, r.ChooseRole(models.RoleEntrepreneur))
	require.NoError(t, r.SetFields(entrepreneurIdentity()))
	require.NoError(t, r.Advance())
	require.NoError(t, r.SetFields(map[string]string{"values": "v", "request": "r"}))
	require.NoError(t, r.Advance())

	err := r.Advance()
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	require.NoError(t, r.SetFields(map[string]string{"videoDeclared": "true"}))
	require.NoError(t, r.Advance())
	assert.Equal(t, StepSchedule, r.Step())
}

func TestRegistrationRejectsUnknownFields(t *testing.T) {
	r := NewRegistration()
	require.NoError(t, r.ChooseRole(models.RoleYouth))

	err := r.SetFields(map[string]string{"businessName": "ООО Ромашка"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestRegistrationHoursClamping(t *testing.T) {
	r := NewRegistration()
	require.NoError(t, r.ChooseRole(models.RoleEntrepreneur))

	require.NoError(t, r.SetFields(map[string]string{"hoursPerMonth": "100"}))
	assert.Equal(t, 40, r.EntrepreneurProfile().HoursPerMonth)

	require.NoError(t, r.SetFields(map[string]string{"hoursPerMonth": "0"}))
	assert.Equal(t, 1, r.EntrepreneurProfile().HoursPerMonth)

	require.NoError(t, r.SetFields(map[string]string{"hoursPerMonth": "-5"}))
	assert.Equal(t, 1, r.EntrepreneurProfile().HoursPerMonth)

	err := r.SetFields(map[string]string{"hoursPerMonth": "много"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func scheduleStepRegistration(t *testing.T) *Registration {
	t.Helper()
	r := NewRegistration()
	require.NoError(t, r.ChooseRole(models.RoleEntrepreneur))
	require.NoError(t, r.SetFields(entrepreneurIdentity()))
	require.NoError(t, r.Advance())
	require.NoError(t, r.SetFields(map[string]string{"values": "v", "request": "r"}))
	require.NoError(t, r.Advance())
	require.NoError(t, r.SetFields(map[string]string{"videoDeclared": "true"}))
	require.NoError(t, r.Advance())
	return r
}

func TestRegistrationSlotDeduplication(t *testing.T) {
	r := scheduleStepRegistration(t)

	require.NoError(t, r.AddSlot("2026-09-01", "10:00"))
	require.NoError(t, r.AddSlot("2026-09-01", "10:00"))
	assert.Len(t, r.EntrepreneurProfile().Slots, 1)

	// blank date or time is a no-op, not an error
	require.NoError(t, r.AddSlot("", "10:00"))
	require.NoError(t, r.AddSlot("2026-09-01", ""))
	assert.Len(t, r.EntrepreneurProfile().Slots, 1)

	require.NoError(t, r.AddSlot("2026-09-02", "14:00"))
	assert.Equal(t, []string{"2026-09-01 в 10:00", "2026-09-02 в 14:00"}, r.EntrepreneurProfile().Slots)
}

func TestRegistrationRemoveSlot(t *testing.T) {
	r := scheduleStepRegistration(t)
	require.NoError(t, r.AddSlot("2026-09-01", "10:00"))
	require.NoError(t, r.AddSlot("2026-09-02", "14:00"))

	require.NoError(t, r.RemoveSlot(0))
	assert.Equal(t, []string{"2026-09-02 в 14:00"}, r.EntrepreneurProfile().Slots)

	err := r.RemoveSlot(5)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestRegistrationSlotsOnlyOnScheduleStep(t *testing.T) {
	r := NewRegistration()
	require.NoError(t, r.ChooseRole(models.RoleEntrepreneur))

	err := r.AddSlot("2026-09-01", "10:00")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	err = r.RemoveSlot(0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestRegistrationSubmitRequiresSchedule(t *testing.T) {
	r := scheduleStepRegistration(t)

	err := r.Submit()
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	require.NoError(t, r.SetFields(map[string]string{"hoursPerMonth": "5"}))
	err = r.Submit()
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	require.NoError(t, r.AddSlot("2026-09-01", "10:00"))
	require.NoError(t, r.Submit())
}

func TestRegistrationSubmitOnlyOnFinalStep(t *testing.T) {
	r := NewRegistration()
	require.NoError(t, r.ChooseRole(models.RoleYouth))
	require.NoError(t, r.SetFields(youthIdentity()))

	err := r.Submit()
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestRegistrationBack(t *testing.T) {
	r := NewRegistration()
	require.NoError(t, r.ChooseRole(models.RoleYouth))
	require.NoError(t, r.SetFields(youthIdentity()))
	require.NoError(t, r.Advance())

	require.NoError(t, r.Back())
	assert.Equal(t, StepIdentity, r.Step())
	// stepping back keeps collected values
	assert.Equal(t, "Иван Петров", r.YouthProfile().Name)

	// back from the first step wipes everything and frees the role choice
	require.NoError(t, r.Back())
	assert.Equal(t, StepRoleSelection, r.Step())
	assert.Empty(t, r.YouthProfile().Name)

	require.NoError(t, r.ChooseRole(models.RoleEntrepreneur))
	assert.Equal(t, StepIdentity, r.Step())
}

func TestRegistrationNoOperationsAfterSubmit(t *testing.T) {
	r := NewRegistration()
	require.NoError(t, r.ChooseRole(models.RoleYouth))
	require.NoError(t, r.SetFields(youthIdentity()))
	require.NoError(t, r.Advance())
	require.NoError(t, r.SetFields(map[string]string{"mainFocus": "f"}))
	require.NoError(t, r.Advance())
	require.NoError(t, r.SetFields(map[string]string{"meetingGoal": "g", "energyExchange": "e"}))
	require.NoError(t, r.Submit())

	assert.ErrorIs(t, r.SetFields(map[string]string{"name": "x"}), apperrors.ErrInvalidTransition)
	assert.ErrorIs(t, r.Advance(), apperrors.ErrInvalidTransition)
	assert.ErrorIs(t, r.Back(), apperrors.ErrInvalidTransition)
	assert.ErrorIs(t, r.Submit(), apperrors.ErrInvalidTransition)
}
