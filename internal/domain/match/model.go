package match

import (
	"fmt"
	"time"
)

// Match is one fixture between two catalog teams inside a tournament.
// Scores are provisional until the match is finalized; the model does not
// distinguish the two states.
type Match struct {
	ID           int64
	TournamentID int64
	HomeTeamID   int64
	AwayTeamID   int64
	DateTime     time.Time
	HomeScore    int
	AwayScore    int
}

func (m Match) Validate() error {
	if m.TournamentID <= 0 {
		return fmt.Errorf("match tournament id is required")
	}
	if m.HomeTeamID <= 0 || m.AwayTeamID <= 0 {
		return fmt.Errorf("match team ids are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("match home and away team must differ")
	}
	if m.DateTime.IsZero() {
		return fmt.Errorf("match date is required")
	}

	return nil
}

// Involves reports whether teamID plays on either side of the match.
func (m Match) Involves(teamID int64) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// Filter narrows match listings. Zero values mean "no constraint"; Day selects
// matches on that calendar day in UTC.
type Filter struct {
	TournamentID int64
	Day          time.Time
	From         time.Time
	To           time.Time
}

func (f Filter) Matches(m Match) bool {
	if f.TournamentID > 0 && m.TournamentID != f.TournamentID {
		return false
	}
	if !f.Day.IsZero() {
		day := f.Day.UTC()
		kickoff := m.DateTime.UTC()
		if kickoff.Year() != day.Year() || kickoff.Month() != day.Month() || kickoff.Day() != day.Day() {
			return false
		}
	}
	if !f.From.IsZero() && m.DateTime.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && m.DateTime.After(f.To) {
		return false
	}

	return true
}
