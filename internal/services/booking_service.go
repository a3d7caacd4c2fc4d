package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/shag-platform/shag-api/internal/catalog"
	"github.com/shag-platform/shag-api/internal/models"
	"github.com/shag-platform/shag-api/internal/session"
	"github.com/shag-platform/shag-api/internal/sheets"
	"github.com/shag-platform/shag-api/internal/workflow"
	"github.com/shag-platform/shag-api/pkg/logger"
	"github.com/shag-platform/shag-api/pkg/metrics"
)

// BookingService orchestrates booking sessions: workflow transitions,
// session storage and the final sheet submission.
type BookingService struct {
	catalog *catalog.Catalog
	store   *session.Store
	sheets  *sheets.Client
	baseURL string
}

// NewBookingService creates a new booking service instance
func NewBookingService(cat *catalog.Catalog, store *session.Store, sheetsClient *sheets.Client, baseURL string) *BookingService {
	return &BookingService{
		catalog: cat,
		store:   store,
		sheets:  sheetsClient,
		baseURL: baseURL,
	}
}

// Create opens a booking session for the mentor.
func (s *BookingService) Create(mentorID string) (*models.BookingStatusResponse, error) {
	mentor, err := s.catalog.ByID(mentorID)
	if err != nil {
		return nil, err
	}

	sess := s.store.CreateBooking(workflow.NewBooking(mentor))
	logger.Info("Booking session opened",
		zap.String("session_id", sess.ID),
		zap.String("mentor_id", mentorID))

	return s.status(sess)
}

// Status returns the current state of a booking session.
func (s *BookingService) Status(sessionID string) (*models.BookingStatusResponse, error) {
	sess, err := s.store.GetBooking(sessionID)
	if err != nil {
		return nil, err
	}
	return s.status(sess)
}

// SelectFormat advances the session past format selection.
func (s *BookingService) SelectFormat(sessionID string, format models.MeetingFormat) (*models.BookingStatusResponse, error) {
	sess, err := s.store.GetBooking(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.WithLock(func(b *workflow.Booking) error {
		return b.SelectFormat(format)
	}); err != nil {
		return nil, err
	}
	return s.status(sess)
}

// SubmitGoal advances the session past the goal step.
func (s *BookingService) SubmitGoal(sessionID, goal, exchangeOffer string) (*models.BookingStatusResponse, error) {
	sess, err := s.store.GetBooking(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.WithLock(func(b *workflow.Booking) error {
		return b.SubmitGoal(goal, exchangeOffer)
	}); err != nil {
		return nil, err
	}
	return s.status(sess)
}

// SelectSlot completes the booking. The finalized request is posted to the
// sheet and the session is discarded; a failed delivery still completes the
// booking.
func (s *BookingService) SelectSlot(ctx context.Context, sessionID, slot string) (*models.BookingCompletionResponse, error) {
	sess, err := s.store.GetBooking(sessionID)
	if err != nil {
		return nil, err
	}

	var request *models.BookingRequest
	var mentor *models.Mentor
	if err := sess.WithLock(func(b *workflow.Booking) error {
		if err := b.SelectSlot(slot); err != nil {
			return err
		}
		mentor = b.Mentor()
		request, err = b.Request()
		return err
	}); err != nil {
		return nil, err
	}

	delivery := s.sheets.Submit(ctx, sheets.FormBooking, sheets.BookingPayload(request, mentor))

	s.store.DeleteBooking(sessionID)
	metrics.BookingCompletions.WithLabelValues(string(request.Format)).Inc()
	logger.Info("Booking completed",
		zap.String("session_id", sessionID),
		zap.String("mentor_id", request.MentorID),
		zap.String("format", string(request.Format)),
		zap.String("delivery", string(delivery)))

	return &models.BookingCompletionResponse{
		Request:  *request,
		Delivery: string(delivery),
	}, nil
}

// Back steps the session one state backwards. Stepping back from the first
// state cancels the booking and discards the session.
func (s *BookingService) Back(sessionID string) (*models.BookingStatusResponse, error) {
	sess, err := s.store.GetBooking(sessionID)
	if err != nil {
		return nil, err
	}

	var exited bool
	if err := sess.WithLock(func(b *workflow.Booking) error {
		var backErr error
		exited, backErr = b.Back()
		return backErr
	}); err != nil {
		return nil, err
	}

	if exited {
		s.store.DeleteBooking(sessionID)
		metrics.BookingCancellations.Inc()
		return &models.BookingStatusResponse{SessionID: sessionID, Cancelled: true}, nil
	}
	return s.status(sess)
}

// Cancel discards a booking session.
func (s *BookingService) Cancel(sessionID string) error {
	if _, err := s.store.GetBooking(sessionID); err != nil {
		return err
	}
	s.store.DeleteBooking(sessionID)
	metrics.BookingCancellations.Inc()
	logger.Info("Booking session cancelled", zap.String("session_id", sessionID))
	return nil
}

func (s *BookingService) status(sess *session.BookingSession) (*models.BookingStatusResponse, error) {
	resp := &models.BookingStatusResponse{SessionID: sess.ID}
	err := sess.WithLock(func(b *workflow.Booking) error {
		resp.State = string(b.State())
		resp.Mentor = b.Mentor().ToPublicResponse(s.baseURL)
		resp.FormatOptions = b.FormatOptions()
		resp.Slots = b.Slots()
		resp.Draft = b.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
