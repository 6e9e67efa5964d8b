package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ballboxd/ballboxd/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the static catalog (tournaments, teams, matches) into
// an empty database. It shares the fixture data with the in-memory store so
// both backends present the same demo catalog.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM matches`); err != nil {
		return fmt.Errorf("count matches for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTournaments() {
		_, err := tx.ExecContext(ctx, `
INSERT INTO tournaments (id, name, country, season, logo_url)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO NOTHING`, t.ID, t.Name, t.Country, t.Season, t.LogoURL)
		if err != nil {
			return fmt.Errorf("seed tournament %d: %w", t.ID, err)
		}
	}

	for _, t := range memory.SeedTeams() {
		_, err := tx.ExecContext(ctx, `
INSERT INTO teams (id, name, country, city, stadium, logo_url)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO NOTHING`, t.ID, t.Name, t.Country, t.City, t.Stadium, t.LogoURL)
		if err != nil {
			return fmt.Errorf("seed team %d: %w", t.ID, err)
		}
	}

	for _, m := range memory.SeedMatches() {
		_, err := tx.ExecContext(ctx, `
INSERT INTO matches (id, tournament_id, home_team_id, away_team_id, date_time, home_score, away_score)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING`, m.ID, m.TournamentID, m.HomeTeamID, m.AwayTeamID, m.DateTime, m.HomeScore, m.AwayScore)
		if err != nil {
			return fmt.Errorf("seed match %d: %w", m.ID, err)
		}
	}

	// Seeded rows carry explicit ids; keep the sequences ahead of them.
	for _, table := range []string{"tournaments", "teams", "matches"} {
		query := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))`,
			table, table,
		)
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("advance %s id sequence: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
