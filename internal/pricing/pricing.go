// Package pricing maps meeting formats to mentor prices. Both 1-on-1
// formats share the mentor's single rate; group meetings use the group rate.
package pricing

import (
	"github.com/shag-platform/shag-api/internal/models"
	apperrors "github.com/shag-platform/shag-api/pkg/errors"
)

// Price returns the price of one meeting with the mentor in the given
// format. Prices come from the mentor's declared rates only.
func Price(format models.MeetingFormat, mentor *models.Mentor) (int, error) {
	switch format {
	case models.FormatOnline1on1, models.FormatOffline1on1:
		return mentor.SinglePrice, nil
	case models.FormatGroupOffline:
		return mentor.GroupPrice, nil
	}
	return 0, apperrors.InvalidInputError("format", "unknown meeting format "+string(format))
}

// Options lists every format with its label and price for the mentor, in
// display order.
func Options(mentor *models.Mentor) []models.FormatOption {
	formats := models.AllFormats()
	options := make([]models.FormatOption, 0, len(formats))
	for _, f := range formats {
		price, err := Price(f, mentor)
		if err != nil {
			continue
		}
		options = append(options, models.FormatOption{
			Format: f,
			Label:  f.Label(),
			Price:  price,
		})
	}
	return options
}
