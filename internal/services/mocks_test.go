package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shag-platform/shag-api/internal/match"
	"github.com/shag-platform/shag-api/internal/models"
)

// MockEngine is a mock implementation of match.Engine
type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) BestMatch(ctx context.Context, query string, mentors []models.Mentor) (*match.Recommendation, error) {
	args := m.Called(ctx, query, mentors)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*match.Recommendation), args.Error(1)
}
