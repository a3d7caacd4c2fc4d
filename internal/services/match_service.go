package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shag-platform/shag-api/internal/catalog"
	"github.com/shag-platform/shag-api/internal/match"
	"github.com/shag-platform/shag-api/internal/models"
	"github.com/shag-platform/shag-api/internal/session"
	apperrors "github.com/shag-platform/shag-api/pkg/errors"
	"github.com/shag-platform/shag-api/pkg/logger"
	"github.com/shag-platform/shag-api/pkg/metrics"
)

// MatchService asks the engine for a single best-fit mentor and validates
// the verdict against the catalog.
type MatchService struct {
	engine  match.Engine
	catalog *catalog.Catalog
	store   *session.Store
	baseURL string
}

// NewMatchService creates a new match service instance. A nil engine means
// matching is disabled by configuration.
func NewMatchService(engine match.Engine, cat *catalog.Catalog, store *session.Store, baseURL string) *MatchService {
	return &MatchService{
		engine:  engine,
		catalog: cat,
		store:   store,
		baseURL: baseURL,
	}
}

// Recommend returns the best-fit mentor for a free-text request, or a nil
// recommendation when the engine names a mentor outside the catalog or the
// result has been superseded by a newer query from the same session.
func (s *MatchService) Recommend(ctx context.Context, req *models.MatchRequest) (*models.MatchRecommendation, error) {
	if strings.TrimSpace(req.Query) == "" {
		metrics.MatchRequests.WithLabelValues("empty_query").Inc()
		return nil, apperrors.InvalidInputError("query", "must not be blank")
	}
	if s.engine == nil {
		metrics.MatchRequests.WithLabelValues("disabled").Inc()
		return nil, apperrors.MatchFailedError("matching is disabled", nil)
	}

	var generation uint64
	if req.SessionID != "" {
		generation = s.store.BeginMatch(req.SessionID)
	}

	start := time.Now()
	verdict, err := s.engine.BestMatch(ctx, req.Query, s.catalog.All())
	if err != nil {
		metrics.MatchRequests.WithLabelValues("error").Inc()
		metrics.MatchDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, err
	}
	metrics.MatchDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())

	if req.SessionID != "" && !s.store.CommitMatch(req.SessionID, generation) {
		metrics.MatchRequests.WithLabelValues("superseded").Inc()
		logger.Debug("Dropping superseded match result",
			zap.String("session_id", req.SessionID),
			zap.String("mentor_id", verdict.ID))
		return nil, nil
	}

	mentor, err := s.catalog.ByID(verdict.ID)
	if err != nil {
		// the model is free to hallucinate ids; treat that as no match
		metrics.MatchRequests.WithLabelValues("unknown_id").Inc()
		logger.Warn("Match verdict names unknown mentor",
			zap.String("mentor_id", verdict.ID))
		return nil, nil
	}

	metrics.MatchRequests.WithLabelValues("success").Inc()
	return &models.MatchRecommendation{
		Mentor: mentor.ToPublicResponse(s.baseURL),
		Reason: verdict.Reason,
	}, nil
}
