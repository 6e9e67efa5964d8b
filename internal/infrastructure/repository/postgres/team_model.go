package postgres

import "github.com/ballboxd/ballboxd/internal/domain/team"

type teamTableModel struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Country string `db:"country"`
	City    string `db:"city"`
	Stadium string `db:"stadium"`
	LogoURL string `db:"logo_url"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:      m.ID,
		Name:    m.Name,
		Country: m.Country,
		City:    m.City,
		Stadium: m.Stadium,
		LogoURL: m.LogoURL,
	}
}
