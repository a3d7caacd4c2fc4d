package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/shag-platform/shag-api/internal/models"
	"github.com/shag-platform/shag-api/internal/session"
	"github.com/shag-platform/shag-api/internal/sheets"
	"github.com/shag-platform/shag-api/internal/workflow"
	"github.com/shag-platform/shag-api/pkg/logger"
	"github.com/shag-platform/shag-api/pkg/metrics"
)

// Post-submission statuses. Entrepreneur profiles wait for moderation
// before they appear in the catalog; youth profiles are active immediately.
const (
	statusPendingModeration = "pending_moderation"
	statusActive            = "active"
)

// RegistrationService orchestrates registration sessions across both role
// tracks.
type RegistrationService struct {
	store  *session.Store
	sheets *sheets.Client
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(store *session.Store, sheetsClient *sheets.Client) *RegistrationService {
	return &RegistrationService{
		store:  store,
		sheets: sheetsClient,
	}
}

// Create opens a registration session locked onto the given role.
func (s *RegistrationService) Create(role models.Role) (*models.RegistrationStatusResponse, error) {
	reg := workflow.NewRegistration()
	if err := reg.ChooseRole(role); err != nil {
		return nil, err
	}

	sess := s.store.CreateRegistration(reg)
	logger.Info("Registration session opened",
		zap.String("session_id", sess.ID),
		zap.String("role", string(role)))

	return s.status(sess)
}

// Status returns the current state of a registration session.
func (s *RegistrationService) Status(sessionID string) (*models.RegistrationStatusResponse, error) {
	sess, err := s.store.GetRegistration(sessionID)
	if err != nil {
		return nil, err
	}
	return s.status(sess)
}

// SetFields assigns values to the active track's fields.
func (s *RegistrationService) SetFields(sessionID string, fields map[string]string) (*models.RegistrationStatusResponse, error) {
	sess, err := s.store.GetRegistration(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.WithLock(func(r *workflow.Registration) error {
		return r.SetFields(fields)
	}); err != nil {
		return nil, err
	}
	return s.status(sess)
}

// Advance moves the session to the next step.
func (s *RegistrationService) Advance(sessionID string) (*models.RegistrationStatusResponse, error) {
	sess, err := s.store.GetRegistration(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.WithLock(func(r *workflow.Registration) error {
		return r.Advance()
	}); err != nil {
		return nil, err
	}
	return s.status(sess)
}

// Back steps the session backwards. Stepping back from the first step
// abandons the whole registration and discards the session.
func (s *RegistrationService) Back(sessionID string) (*models.RegistrationStatusResponse, error) {
	sess, err := s.store.GetRegistration(sessionID)
	if err != nil {
		return nil, err
	}

	var abandoned bool
	if err := sess.WithLock(func(r *workflow.Registration) error {
		if err := r.Back(); err != nil {
			return err
		}
		abandoned = r.Step() == workflow.StepRoleSelection
		return nil
	}); err != nil {
		return nil, err
	}

	if abandoned {
		s.store.DeleteRegistration(sessionID)
		logger.Info("Registration abandoned", zap.String("session_id", sessionID))
		return &models.RegistrationStatusResponse{SessionID: sessionID, Cancelled: true}, nil
	}
	return s.status(sess)
}

// AddSlot offers an availability slot on the schedule step.
func (s *RegistrationService) AddSlot(sessionID, date, time string) (*models.RegistrationStatusResponse, error) {
	sess, err := s.store.GetRegistration(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.WithLock(func(r *workflow.Registration) error {
		return r.AddSlot(date, time)
	}); err != nil {
		return nil, err
	}
	return s.status(sess)
}

// RemoveSlot drops the slot at the given position.
func (s *RegistrationService) RemoveSlot(sessionID string, index int) (*models.RegistrationStatusResponse, error) {
	sess, err := s.store.GetRegistration(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.WithLock(func(r *workflow.Registration) error {
		return r.RemoveSlot(index)
	}); err != nil {
		return nil, err
	}
	return s.status(sess)
}

// Submit finalizes the registration, posts the profile to the sheet and
// discards the session. A failed delivery still counts as a successful
// submission for the user.
func (s *RegistrationService) Submit(ctx context.Context, sessionID string) (*models.RegistrationSubmissionResponse, error) {
	sess, err := s.store.GetRegistration(sessionID)
	if err != nil {
		return nil, err
	}

	var role models.Role
	var form sheets.Form
	var payload sheets.Payload
	if err := sess.WithLock(func(r *workflow.Registration) error {
		if err := r.Submit(); err != nil {
			return err
		}
		role = r.Role()
		if role == models.RoleEntrepreneur {
			form = sheets.FormEntrepreneur
			payload = sheets.EntrepreneurPayload(r.EntrepreneurProfile())
		} else {
			form = sheets.FormYouth
			payload = sheets.YouthPayload(r.YouthProfile())
		}
		return nil
	}); err != nil {
		return nil, err
	}

	delivery := s.sheets.Submit(ctx, form, payload)

	s.store.DeleteRegistration(sessionID)
	metrics.RegistrationSubmissions.WithLabelValues(string(role)).Inc()
	logger.Info("Registration submitted",
		zap.String("session_id", sessionID),
		zap.String("role", string(role)),
		zap.String("delivery", string(delivery)))

	status := statusActive
	if role == models.RoleEntrepreneur {
		status = statusPendingModeration
	}
	return &models.RegistrationSubmissionResponse{
		Role:     role,
		Status:   status,
		Delivery: string(delivery),
	}, nil
}

// Cancel discards a registration session.
func (s *RegistrationService) Cancel(sessionID string) error {
	if _, err := s.store.GetRegistration(sessionID); err != nil {
		return err
	}
	s.store.DeleteRegistration(sessionID)
	logger.Info("Registration session cancelled", zap.String("session_id", sessionID))
	return nil
}

func (s *RegistrationService) status(sess *session.RegistrationSession) (*models.RegistrationStatusResponse, error) {
	resp := &models.RegistrationStatusResponse{SessionID: sess.ID}
	err := sess.WithLock(func(r *workflow.Registration) error {
		resp.Role = r.Role()
		resp.Step = string(r.Step())
		resp.StepNumber, resp.TotalSteps = r.StepNumber()
		switch r.Role() {
		case models.RoleEntrepreneur:
			profile := r.EntrepreneurProfile()
			resp.Entrepreneur = &profile
		case models.RoleYouth:
			profile := r.YouthProfile()
			resp.Youth = &profile
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
