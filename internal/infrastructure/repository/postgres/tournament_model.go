package postgres

import "github.com/ballboxd/ballboxd/internal/domain/tournament"

type tournamentTableModel struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Country string `db:"country"`
	Season  string `db:"season"`
	LogoURL string `db:"logo_url"`
}

func (m tournamentTableModel) toDomain() tournament.Tournament {
	return tournament.Tournament{
		ID:      m.ID,
		Name:    m.Name,
		Country: m.Country,
		Season:  m.Season,
		LogoURL: m.LogoURL,
	}
}
