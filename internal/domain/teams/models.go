package teams

import (
	"slices"
	"strings"
)

// Conference values accepted by the championship filter.
const (
	ConferenceAll  = "all"
	ConferenceEast = "east"
	ConferenceWest = "west"
)

// SeasonProfile is a team's pre-aggregated season line used for championship projection.
type SeasonProfile struct {
	Team             string  `json:"team" validate:"required"`
	Conference       string  `json:"conference" validate:"required"`
	AvgPointsScored  float64 `json:"avgPointsScored" validate:"gte=0"`
	AvgPointsAllowed float64 `json:"avgPointsAllowed" validate:"gte=0"`
	WinPct           float64 `json:"winPct" validate:"gte=0,lte=1"`
	Games            int     `json:"games,omitempty" validate:"gte=0"`
}

// NormalizeConference lower-cases and trims a conference value; empty means all.
func NormalizeConference(raw string) string {
	conf := strings.ToLower(strings.TrimSpace(raw))
	if conf == "" {
		return ConferenceAll
	}
	return conf
}

// KnownConference reports whether the normalized value belongs to the closed filter set.
func KnownConference(conf string) bool {
	switch conf {
	case ConferenceAll, ConferenceEast, ConferenceWest:
		return true
	default:
		return false
	}
}

var (
	eastTeams = []string{"ATL", "BKN", "BOS", "CHA", "CHI", "CLE", "DET", "IND", "MIA", "MIL", "NYK", "ORL", "PHI", "TOR", "WAS"}
	westTeams = []string{"DAL", "DEN", "GSW", "HOU", "LAC", "LAL", "MEM", "MIN", "NOP", "OKC", "PHX", "POR", "SAC", "SAS", "UTA"}
)

// ConferenceOf infers a team's conference ("East" or "West") from its three-letter code.
// The second return is false for codes outside the league table.
func ConferenceOf(team string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(team))
	switch {
	case slices.Contains(eastTeams, code):
		return "East", true
	case slices.Contains(westTeams, code):
		return "West", true
	default:
		return "", false
	}
}
