package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shag-platform/shag-api/internal/models"
	apperrors "github.com/shag-platform/shag-api/pkg/errors"
)

func TestPrice(t *testing.T) {
	mentor := &models.Mentor{ID: "m1", SinglePrice: 3000, GroupPrice: 1000}

	tests := []struct {
		format models.MeetingFormat
		want   int
	}{
		{models.FormatOnline1on1, 3000},
		{models.FormatOffline1on1, 3000},
		{models.FormatGroupOffline, 1000},
	}

	for _, tt := range tests {
		got, err := Price(tt.format, mentor)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "format %s", tt.format)
	}
}

func TestPriceUnknownFormat(t *testing.T) {
	mentor := &models.Mentor{ID: "m1", SinglePrice: 3000, GroupPrice: 1000}

	_, err := Price(models.MeetingFormat("video_call"), mentor)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestOptions(t *testing.T) {
	mentor := &models.Mentor{ID: "m1", SinglePrice: 2500, GroupPrice: 900}

	options := Options(mentor)
	require.Len(t, options, 3)

	assert.Equal(t, models.FormatOnline1on1, options[0].Format)
	assert.Equal(t, "Онлайн 1 на 1", options[0].Label)
	assert.Equal(t, 2500, options[0].Price)

	assert.Equal(t, models.FormatGroupOffline, options[2].Format)
	assert.Equal(t, 900, options[2].Price)
}
