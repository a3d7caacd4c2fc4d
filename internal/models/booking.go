package models

// BookingRequest is the finalized output of a completed booking workflow.
// Price is always derived from the mentor's declared rates for the chosen
// format, never taken from user input.
type BookingRequest struct {
	MentorID      string        `json:"mentorId"`
	Format        MeetingFormat `json:"format"`
	Goal          string        `json:"goal"`
	ExchangeOffer string        `json:"exchangeOffer"`
	Slot          string        `json:"slot"`
	Price         int           `json:"price"`
}

// CreateBookingRequest opens a booking workflow for a mentor
type CreateBookingRequest struct {
	MentorID string `json:"mentor_id" binding:"required"`
}

// SelectFormatRequest advances a booking from format selection
type SelectFormatRequest struct {
	Format string `json:"format" binding:"required"`
}

// SubmitGoalRequest advances a booking from the goal step
type SubmitGoalRequest struct {
	Goal          string `json:"goal" binding:"required"`
	ExchangeOffer string `json:"exchange_offer" binding:"required"`
}

// SelectSlotRequest completes a booking with a chosen time slot
type SelectSlotRequest struct {
	Slot string `json:"slot" binding:"required"`
}

// FormatOption is one selectable meeting format with its frozen price
type FormatOption struct {
	Format MeetingFormat `json:"format"`
	Label  string        `json:"label"`
	Price  int           `json:"price"`
}

// MatchRequest asks the AI match engine for a single best-fit mentor
type MatchRequest struct {
	Query     string `json:"query" binding:"required"`
	SessionID string `json:"session_id"`
}

// MatchRecommendation is the validated match result returned to clients
type MatchRecommendation struct {
	Mentor PublicMentorResponse `json:"mentor"`
	Reason string               `json:"reason"`
}
