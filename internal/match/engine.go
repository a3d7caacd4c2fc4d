// Package match picks the single best-fit mentor for a free-text request
// using an external language model.
package match

import (
	"context"

	"github.com/shag-platform/shag-api/internal/models"
)

// Recommendation is the raw model verdict: which mentor and why.
type Recommendation struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// Engine produces one recommendation per request. The returned ID is not
// guaranteed to exist in the catalog; callers must validate it.
type Engine interface {
	BestMatch(ctx context.Context, query string, mentors []models.Mentor) (*Recommendation, error)
}
