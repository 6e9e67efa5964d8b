package memory

import (
	"time"

	"github.com/ballboxd/ballboxd/internal/domain/match"
	"github.com/ballboxd/ballboxd/internal/domain/team"
	"github.com/ballboxd/ballboxd/internal/domain/tournament"
)

const (
	TournamentIDLaLiga        int64 = 1
	TournamentIDPremierLeague int64 = 2

	TeamIDRealMadrid int64 = 1
	TeamIDBarcelona  int64 = 2
	TeamIDAtletico   int64 = 3
	TeamIDSevilla    int64 = 4
	TeamIDArsenal    int64 = 5
	TeamIDLiverpool  int64 = 6
	TeamIDChelsea    int64 = 7
	TeamIDEverton    int64 = 8
)

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{ID: TournamentIDLaLiga, Name: "La Liga", Country: "Spain", Season: "2025/2026"},
		{ID: TournamentIDPremierLeague, Name: "Premier League", Country: "England", Season: "2025/2026"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDRealMadrid, Name: "Real Madrid", Country: "Spain", City: "Madrid", Stadium: "Santiago Bernabéu"},
		{ID: TeamIDBarcelona, Name: "FC Barcelona", Country: "Spain", City: "Barcelona", Stadium: "Camp Nou"},
		{ID: TeamIDAtletico, Name: "Atlético Madrid", Country: "Spain", City: "Madrid", Stadium: "Metropolitano"},
		{ID: TeamIDSevilla, Name: "Sevilla FC", Country: "Spain", City: "Seville", Stadium: "Ramón Sánchez-Pizjuán"},
		{ID: TeamIDArsenal, Name: "Arsenal", Country: "England", City: "London", Stadium: "Emirates Stadium"},
		{ID: TeamIDLiverpool, Name: "Liverpool", Country: "England", City: "Liverpool", Stadium: "Anfield"},
		{ID: TeamIDChelsea, Name: "Chelsea", Country: "England", City: "London", Stadium: "Stamford Bridge"},
		{ID: TeamIDEverton, Name: "Everton", Country: "England", City: "Liverpool", Stadium: "Hill Dickinson Stadium"},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{ID: 1, TournamentID: TournamentIDLaLiga, HomeTeamID: TeamIDRealMadrid, AwayTeamID: TeamIDBarcelona, DateTime: time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC), HomeScore: 2, AwayScore: 2},
		{ID: 2, TournamentID: TournamentIDLaLiga, HomeTeamID: TeamIDAtletico, AwayTeamID: TeamIDSevilla, DateTime: time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC), HomeScore: 1, AwayScore: 0},
		{ID: 3, TournamentID: TournamentIDLaLiga, HomeTeamID: TeamIDBarcelona, AwayTeamID: TeamIDAtletico, DateTime: time.Date(2026, 3, 8, 20, 0, 0, 0, time.UTC), HomeScore: 3, AwayScore: 1},
		{ID: 4, TournamentID: TournamentIDPremierLeague, HomeTeamID: TeamIDArsenal, AwayTeamID: TeamIDLiverpool, DateTime: time.Date(2026, 3, 7, 16, 0, 0, 0, time.UTC), HomeScore: 0, AwayScore: 0},
		{ID: 5, TournamentID: TournamentIDPremierLeague, HomeTeamID: TeamIDChelsea, AwayTeamID: TeamIDEverton, DateTime: time.Date(2026, 3, 7, 18, 30, 0, 0, time.UTC), HomeScore: 2, AwayScore: 1},
		{ID: 6, TournamentID: TournamentIDPremierLeague, HomeTeamID: TeamIDLiverpool, AwayTeamID: TeamIDChelsea, DateTime: time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC), HomeScore: 1, AwayScore: 1},
		{ID: 7, TournamentID: TournamentIDPremierLeague, HomeTeamID: TeamIDEverton, AwayTeamID: TeamIDArsenal, DateTime: time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC), HomeScore: 0, AwayScore: 3},
		{ID: 8, TournamentID: TournamentIDLaLiga, HomeTeamID: TeamIDSevilla, AwayTeamID: TeamIDRealMadrid, DateTime: time.Date(2026, 3, 15, 20, 0, 0, 0, time.UTC), HomeScore: 1, AwayScore: 2},
	}
}
