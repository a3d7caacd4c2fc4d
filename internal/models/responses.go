package models

// BookingStatusResponse describes a booking session to the client after
// every transition.
type BookingStatusResponse struct {
	SessionID     string               `json:"sessionId"`
	State         string               `json:"state"`
	Mentor        PublicMentorResponse `json:"mentor"`
	FormatOptions []FormatOption       `json:"formatOptions"`
	Slots         []string             `json:"slots"`
	Draft         BookingRequest       `json:"draft"`
	Cancelled     bool                 `json:"cancelled,omitempty"`
}

// BookingCompletionResponse closes a booking flow. Delivery is informational
// only; both values mean the booking went through.
type BookingCompletionResponse struct {
	Request  BookingRequest `json:"request"`
	Delivery string         `json:"delivery"`
}

// RegistrationStatusResponse describes a registration session to the client
// after every transition.
type RegistrationStatusResponse struct {
	SessionID    string               `json:"sessionId"`
	Role         Role                 `json:"role,omitempty"`
	Step         string               `json:"step"`
	StepNumber   int                  `json:"stepNumber"`
	TotalSteps   int                  `json:"totalSteps"`
	Entrepreneur *EntrepreneurProfile `json:"entrepreneur,omitempty"`
	Youth        *YouthProfile        `json:"youth,omitempty"`
	Cancelled    bool                 `json:"cancelled,omitempty"`
}

// RegistrationSubmissionResponse closes a registration flow. Entrepreneur
// submissions await moderation before the profile becomes public; youth
// submissions unlock the catalog immediately.
type RegistrationSubmissionResponse struct {
	Role     Role   `json:"role"`
	Status   string `json:"status"`
	Delivery string `json:"delivery"`
}

// FormatInfo describes one meeting format for clients, including which
// mentor price field applies to it.
type FormatInfo struct {
	Format     MeetingFormat `json:"format"`
	Label      string        `json:"label"`
	PriceField string        `json:"priceField"`
}

// FiltersResponse lists the selectable catalog filters, sentinel first.
type FiltersResponse struct {
	Industries []string     `json:"industries"`
	Cities     []string     `json:"cities"`
	Formats    []FormatInfo `json:"formats"`
}

// MatchResponse wraps a recommendation. Recommendation is null when the
// engine produced nothing usable for the query.
type MatchResponse struct {
	Recommendation *MatchRecommendation `json:"recommendation"`
}
