package sheets

import (
	"strconv"
	"strings"

	"github.com/shag-platform/shag-api/internal/models"
)

// Payload is the flat label-to-value body the spreadsheet webhook consumes.
// Keys are the human-readable column labels of the target sheet, not field
// identifiers.
type Payload map[string]string

// BookingPayload renders a completed booking for the sheet.
func BookingPayload(req *models.BookingRequest, mentor *models.Mentor) Payload {
	return Payload{
		"Наставник":    mentor.Name,
		"Формат":       req.Format.Label(),
		"Цель встречи": req.Goal,
		"Энергообмен":  req.ExchangeOffer,
		"Слот":         req.Slot,
		"Цена":         strconv.Itoa(req.Price),
	}
}

// EntrepreneurPayload renders a submitted expert registration for the sheet.
func EntrepreneurPayload(p models.EntrepreneurProfile) Payload {
	video := "Нет"
	if p.VideoDeclared {
		video = "Да"
	}
	return Payload{
		"Имя":           p.Name,
		"Бизнес":        p.BusinessName,
		"Выручка":       p.Revenue,
		"Город":         p.City,
		"Индустрия":     p.Industry,
		"Ценности":      p.Values,
		"Запрос":        p.Request,
		"Видео-визитка": video,
		"Часов в месяц": strconv.Itoa(p.HoursPerMonth),
		"Слоты":         strings.Join(p.Slots, "; "),
	}
}

// YouthPayload renders a submitted seeker registration for the sheet.
func YouthPayload(p models.YouthProfile) Payload {
	return Payload{
		"Имя":           p.Name,
		"Дата рождения": p.BirthDate,
		"Город":         p.City,
		"Телефон":       p.Phone,
		"Email":         p.Email,
		"Главный фокус": p.MainFocus,
		"Цель встречи":  p.MeetingGoal,
		"Энергообмен":   p.EnergyExchange,
	}
}
