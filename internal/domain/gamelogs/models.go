package gamelogs

// GameLog is one player's stat line for a single game.
// JSON keys follow the box-score vocabulary used by the preprocessed data files.
type GameLog struct {
	Player        string  `json:"Player" validate:"required"`
	Team          string  `json:"Tm" validate:"required"`
	Date          string  `json:"Date" validate:"required,datetime=2006-01-02"`
	MinutesPlayed float64 `json:"MP" validate:"gte=0"`
	Points        float64 `json:"PTS" validate:"gte=0"`
	Assists       float64 `json:"AST" validate:"gte=0"`
	Rebounds      float64 `json:"TRB" validate:"gte=0"`
	GameScore     float64 `json:"GmSc"`
	// Result is the team's game outcome ("W" or "L", optionally with a score suffix).
	Result        string  `json:"Result,omitempty"`
}

// DatePoint is a single dated value in a per-player series.
type DatePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
