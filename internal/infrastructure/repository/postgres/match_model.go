package postgres

import (
	"time"

	"github.com/ballboxd/ballboxd/internal/domain/match"
)

type matchTableModel struct {
	ID           int64     `db:"id"`
	TournamentID int64     `db:"tournament_id"`
	HomeTeamID   int64     `db:"home_team_id"`
	AwayTeamID   int64     `db:"away_team_id"`
	DateTime     time.Time `db:"date_time"`
	HomeScore    int       `db:"home_score"`
	AwayScore    int       `db:"away_score"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:           m.ID,
		TournamentID: m.TournamentID,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		DateTime:     m.DateTime,
		HomeScore:    m.HomeScore,
		AwayScore:    m.AwayScore,
	}
}
