package trades

// PlayerStat is one player's post-trade per-game averages.
type PlayerStat struct {
	Player string  `json:"player" validate:"required"`
	Team   string  `json:"team" validate:"required"`
	PPG    float64 `json:"ppg" validate:"gte=0"`
	MPG    float64 `json:"mpg" validate:"gte=0"`
	FGPct  float64 `json:"fgPct" validate:"gte=0,lte=1"`
	Games  int     `json:"games" validate:"gte=0"`
}

// TeamRecord is a team's cumulative record as of a date.
type TeamRecord struct {
	Team   string `json:"team" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Result string `json:"result,omitempty"`
	Games  int    `json:"games" validate:"gte=0"`
	Wins   int    `json:"wins" validate:"gte=0,ltefield=Games"`
}

// Input is the raw trade-impact collection as delivered by the data files.
type Input struct {
	TradeDate   string       `json:"tradeDate" validate:"omitempty,datetime=2006-01-02"`
	PlayerStats []PlayerStat `json:"playerStats"`
	TeamRecords []TeamRecord `json:"teamRecords"`
}
