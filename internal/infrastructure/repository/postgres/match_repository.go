package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ballboxd/ballboxd/internal/domain/match"
	qb "github.com/ballboxd/ballboxd/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	conditions := make([]qb.Condition, 0, 3)
	if filter.TournamentID > 0 {
		conditions = append(conditions, qb.Eq("tournament_id", filter.TournamentID))
	}
	if !filter.Day.IsZero() {
		day := filter.Day.UTC().Truncate(24 * time.Hour)
		conditions = append(conditions, qb.Expr("date_time >= ? AND date_time < ?", day, day.Add(24*time.Hour)))
	}
	if !filter.From.IsZero() {
		conditions = append(conditions, qb.Expr("date_time >= ?", filter.From))
	}
	if !filter.To.IsZero() {
		conditions = append(conditions, qb.Expr("date_time <= ?", filter.To))
	}

	query, args, err := qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy("date_time DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]match.Match, error) {
	if len(ids) == 0 {
		return map[int64]match.Match{}, nil
	}

	query, args, err := qb.Select("*").From("matches").
		Where(qb.In("id", int64Args(ids))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by ids query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches by ids: %w", err)
	}

	out := make(map[int64]match.Match, len(rows))
	for _, row := range rows {
		out[row.ID] = row.toDomain()
	}

	return out, nil
}

func (r *MatchRepository) ListByTeams(ctx context.Context, teamIDs []int64) ([]match.Match, error) {
	if len(teamIDs) == 0 {
		return []match.Match{}, nil
	}

	query, args, err := qb.Select("*").From("matches").
		Where(qb.Expr(
			"(home_team_id = ANY(?) OR away_team_id = ANY(?))",
			pq.Array(teamIDs), pq.Array(teamIDs),
		)).
		OrderBy("date_time DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by teams query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches by teams: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
