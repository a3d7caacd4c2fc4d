package models

import "strings"

// Mentor represents a catalog entry: an expert available for paid meetings.
// The catalog is loaded once at startup and never mutated.
type Mentor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Industry     string   `json:"industry"` // may encode several industries separated by " / "
	City         string   `json:"city"`
	Experience   string   `json:"experience"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Request      string   `json:"request"`
	Values       []string `json:"values"`
	VideoURL     string   `json:"videoUrl"`
	AvatarURL    string   `json:"avatarUrl"`
	SinglePrice  int      `json:"singlePrice"`
	GroupPrice   int      `json:"groupPrice"`
}

// PublicMentorResponse represents the public API response format
type PublicMentorResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Industry     string   `json:"industry"`
	City         string   `json:"city"`
	Experience   string   `json:"experience"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Request      string   `json:"request"`
	Values       string   `json:"values"`
	VideoURL     string   `json:"videoUrl"`
	AvatarURL    string   `json:"avatarUrl"`
	SinglePrice  int      `json:"singlePrice"`
	GroupPrice   int      `json:"groupPrice"`
	Link         string   `json:"link"`
}

// ToPublicResponse converts a Mentor to PublicMentorResponse
func (m *Mentor) ToPublicResponse(baseURL string) PublicMentorResponse {
	return PublicMentorResponse{
		ID:           m.ID,
		Name:         m.Name,
		Industry:     m.Industry,
		City:         m.City,
		Experience:   m.Experience,
		Description:  m.Description,
		Achievements: m.Achievements,
		Request:      m.Request,
		Values:       strings.Join(m.Values, ", "),
		VideoURL:     m.VideoURL,
		AvatarURL:    m.AvatarURL,
		SinglePrice:  m.SinglePrice,
		GroupPrice:   m.GroupPrice,
		Link:         baseURL + "/mentor/" + m.ID,
	}
}

// MeetingFormat is one of the three meeting modalities, each with its own
// price class.
type MeetingFormat string

const (
	FormatOnline1on1   MeetingFormat = "online_1on1"
	FormatOffline1on1  MeetingFormat = "offline_1on1"
	FormatGroupOffline MeetingFormat = "group_offline"
)

// AllFormats returns the declared formats in display order
func AllFormats() []MeetingFormat {
	return []MeetingFormat{FormatOnline1on1, FormatOffline1on1, FormatGroupOffline}
}

// Valid reports whether f is one of the declared formats
func (f MeetingFormat) Valid() bool {
	switch f {
	case FormatOnline1on1, FormatOffline1on1, FormatGroupOffline:
		return true
	}
	return false
}

// PriceField names the mentor price field this format is billed from
func (f MeetingFormat) PriceField() string {
	if f == FormatGroupOffline {
		return "groupPrice"
	}
	return "singlePrice"
}

// Label returns the human-readable Russian label shown to users
func (f MeetingFormat) Label() string {
	switch f {
	case FormatOnline1on1:
		return "Онлайн 1 на 1"
	case FormatOffline1on1:
		return "Оффлайн 1 на 1"
	case FormatGroupOffline:
		return "Групповая встреча (до 10 чел)"
	}
	return string(f)
}
