// Package catalog holds the read-only mentor directory. The directory is
// loaded once at startup, either from the embedded dataset or from a file
// supplied via CATALOG_FILE, and served from memory afterwards.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shag-platform/shag-api/internal/models"
	apperrors "github.com/shag-platform/shag-api/pkg/errors"
)

// FilterAll is the sentinel filter value meaning "no restriction".
const FilterAll = "Все"

//go:embed mentors.json
var embeddedMentors []byte

type catalogFile struct {
	Industries []string        `json:"industries"`
	Cities     []string        `json:"cities"`
	Mentors    []models.Mentor `json:"mentors"`
}

// Catalog is an immutable, order-preserving mentor directory.
type Catalog struct {
	mentors    []models.Mentor
	byID       map[string]*models.Mentor
	industries []string
	cities     []string
}

// Load builds the catalog from the embedded dataset, or from filePath when
// it is non-empty.
func Load(filePath string) (*Catalog, error) {
	data := embeddedMentors
	if filePath != "" {
		fileData, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file %s: %w", filePath, err)
		}
		data = fileData
	}

	var parsed catalogFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog data: %w", err)
	}
	if len(parsed.Mentors) == 0 {
		return nil, fmt.Errorf("catalog contains no mentors")
	}

	c := &Catalog{
		mentors:    parsed.Mentors,
		byID:       make(map[string]*models.Mentor, len(parsed.Mentors)),
		industries: parsed.Industries,
		cities:     parsed.Cities,
	}
	for i := range c.mentors {
		m := &c.mentors[i]
		if m.ID == "" {
			return nil, fmt.Errorf("catalog mentor at index %d has no id", i)
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("catalog contains duplicate mentor id %q", m.ID)
		}
		c.byID[m.ID] = m
	}

	return c, nil
}

// All returns every mentor in catalog order.
func (c *Catalog) All() []models.Mentor {
	return c.mentors
}

// ByID returns the mentor with the given id, or ErrNotFound.
func (c *Catalog) ByID(id string) (*models.Mentor, error) {
	m, ok := c.byID[id]
	if !ok {
		return nil, apperrors.NotFoundError("mentor " + id)
	}
	return m, nil
}

// Filter returns mentors matching all three criteria, preserving catalog
// order. The sentinel FilterAll (or an empty string) disables a criterion.
// The free-text query matches case-insensitively against name and
// description.
func (c *Catalog) Filter(industry, city, query string) []models.Mentor {
	industryActive := industry != "" && industry != FilterAll
	cityActive := city != "" && city != FilterAll
	needle := strings.ToLower(strings.TrimSpace(query))

	result := make([]models.Mentor, 0, len(c.mentors))
	for _, m := range c.mentors {
		if industryActive && !strings.Contains(m.Industry, industry) {
			continue
		}
		if cityActive && m.City != city {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(m.Name), needle) &&
			!strings.Contains(strings.ToLower(m.Description), needle) {
			continue
		}
		result = append(result, m)
	}

	return result
}

// Industries returns the industry filter options, sentinel first.
func (c *Catalog) Industries() []string {
	return c.industries
}

// Cities returns the city filter options, sentinel first.
func (c *Catalog) Cities() []string {
	return c.cities
}
