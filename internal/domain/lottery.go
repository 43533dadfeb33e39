package domain

// DrawResult is the outcome of a lottery draw. Winners carry full participant
// details even when they were removed from the registry by the draw.
type DrawResult struct {
	Winners     []Participant `json:"winners"`
	WinnerCount int           `json:"winner_count"`
	Removed     bool          `json:"removed"`
}
