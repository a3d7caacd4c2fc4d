package services

import (
	"github.com/shag-platform/shag-api/internal/catalog"
	"github.com/shag-platform/shag-api/internal/models"
	"github.com/shag-platform/shag-api/pkg/metrics"
)

// CatalogService serves mentor listings and filter options.
type CatalogService struct {
	catalog *catalog.Catalog
	baseURL string
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(cat *catalog.Catalog, baseURL string) *CatalogService {
	return &CatalogService{
		catalog: cat,
		baseURL: baseURL,
	}
}

// ListMentors returns mentors matching the given filters in catalog order.
// An empty result is a valid outcome, not an error.
func (s *CatalogService) ListMentors(industry, city, query string) []models.PublicMentorResponse {
	mentors := s.catalog.Filter(industry, city, query)

	result := "hit"
	if len(mentors) == 0 {
		result = "empty"
	}
	metrics.CatalogSearches.WithLabelValues(result).Inc()

	responses := make([]models.PublicMentorResponse, 0, len(mentors))
	for i := range mentors {
		responses = append(responses, mentors[i].ToPublicResponse(s.baseURL))
	}
	return responses
}

// GetMentor returns one mentor by id.
func (s *CatalogService) GetMentor(id string) (*models.PublicMentorResponse, error) {
	mentor, err := s.catalog.ByID(id)
	if err != nil {
		return nil, err
	}
	resp := mentor.ToPublicResponse(s.baseURL)
	return &resp, nil
}

// Filters returns the selectable filter options.
func (s *CatalogService) Filters() models.FiltersResponse {
	formats := make([]models.FormatInfo, 0, len(models.AllFormats()))
	for _, f := range models.AllFormats() {
		formats = append(formats, models.FormatInfo{
			Format:     f,
			Label:      f.Label(),
			PriceField: f.PriceField(),
		})
	}
	return models.FiltersResponse{
		Industries: s.catalog.Industries(),
		Cities:     s.catalog.Cities(),
		Formats:    formats,
	}
}
