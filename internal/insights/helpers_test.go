package insights

import (
	"fmt"

	"github.com/preston-bernstein/nba-insights-service/internal/domain/gamelogs"
)

func gameLog(player, team, date string, mp, pts, ast, trb, gmsc float64) gamelogs.GameLog {
	return gamelogs.GameLog{
		Player:        player,
		Team:          team,
		Date:          date,
		MinutesPlayed: mp,
		Points:        pts,
		Assists:       ast,
		Rebounds:      trb,
		GameScore:     gmsc,
	}
}

func dayOf(i int) string {
	return fmt.Sprintf("2024-11-%02d", i)
}
