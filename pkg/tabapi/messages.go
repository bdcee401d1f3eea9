package tabapi

// StartSessionRequest opens a new tab.
type StartSessionRequest struct {
	// Mode is "proportional" or "even".
	Mode string `json:"mode"`
}

type StartSessionResponse struct {
	SessionID string `json:"session_id"`
	// Token must be sent as "Authorization: Bearer <token>" on every other call.
	Token string `json:"token"`
	Mode  string `json:"mode"`
}

type EndSessionRequest struct{}

type EndSessionResponse struct{}

// Participant is one person on a proportional tab.
type Participant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance string `json:"balance"`
	// Display is the list row, e.g. "Alice: $14.50".
	Display string `json:"display"`
}

type AddParticipantRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type AddParticipantResponse struct {
	// Added is false when the name or price was blank and the entry was skipped.
	Added        bool          `json:"added"`
	Participants []Participant `json:"participants"`
}

type CalculateProportionalRequest struct {
	FoodTax      string `json:"food_tax"`
	AlcoholTax   string `json:"alcohol_tax"`
	TipPercent   string `json:"tip_percent"`
	AutoGratuity string `json:"auto_gratuity"`
}

type CalculateProportionalResponse struct {
	Participants []Participant `json:"participants"`
	Tip          string        `json:"tip"`
	Total        string        `json:"total"`
	Summary      string        `json:"summary"`
}

type CalculateEvenRequest struct {
	Subtotal     string `json:"subtotal"`
	FoodTax      string `json:"food_tax"`
	AlcoholTax   string `json:"alcohol_tax"`
	TipPercent   string `json:"tip_percent"`
	AutoGratuity string `json:"auto_gratuity"`
	Headcount    string `json:"headcount"`
}

type CalculateEvenResponse struct {
	Tip       string `json:"tip"`
	Total     string `json:"total"`
	PerPerson string `json:"per_person"`
	Summary   string `json:"summary"`
}

type ResetRequest struct{}

type ResetResponse struct{}

type GetTabRequest struct{}

// GetTabResponse is a snapshot of the session's engine.
type GetTabResponse struct {
	SessionID    string        `json:"session_id"`
	Mode         string        `json:"mode"`
	Calculated   bool          `json:"calculated"`
	Participants []Participant `json:"participants,omitempty"`
	Summary      string        `json:"summary"`
}
