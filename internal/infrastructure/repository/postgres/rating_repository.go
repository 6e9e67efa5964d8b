package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ballboxd/ballboxd/internal/domain/rating"
	qb "github.com/ballboxd/ballboxd/internal/platform/querybuilder"
)

type RatingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) Create(ctx context.Context, item rating.Rating) (rating.Rating, error) {
	query, args, err := qb.InsertInto("ratings").
		Columns(
			"user_id", "match_id", "score", "minutes_watched", "review", "attended",
			"stadium_photo_url", "representative_photo_url",
			"featured_note", "featured_order", "featured_primary_image", "created_at",
		).
		Values(
			item.UserID, item.MatchID, item.Score, string(item.MinutesWatched), item.Review, item.Attended,
			item.StadiumPhotoURL, item.RepresentativePhotoURL,
			item.FeaturedNote, item.FeaturedOrder, string(item.FeaturedPrimaryImage), item.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return rating.Rating{}, fmt.Errorf("build insert rating query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return rating.Rating{}, fmt.Errorf("insert rating: %w", err)
	}

	return item, nil
}

func (r *RatingRepository) Update(ctx context.Context, item rating.Rating) error {
	query, args, err := updateRatingSQL(item)
	if err != nil {
		return fmt.Errorf("build update rating query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update rating: %w", err)
	}

	return nil
}

// UpdateAll applies every update inside one transaction, so a reorder or a
// featured replacement is observed whole or not at all.
func (r *RatingRepository) UpdateAll(ctx context.Context, items []rating.Rating) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update ratings: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		query, args, err := updateRatingSQL(item)
		if err != nil {
			return fmt.Errorf("build update rating query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update rating %d: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update ratings: %w", err)
	}

	return nil
}

func (r *RatingRepository) GetByUserAndMatch(ctx context.Context, userID, matchID int64) (rating.Rating, bool, error) {
	query, args, err := qb.Select("*").From("ratings").
		Where(qb.Eq("user_id", userID), qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return rating.Rating{}, false, fmt.Errorf("build select rating query: %w", err)
	}

	var row ratingTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return rating.Rating{}, false, nil
		}
		return rating.Rating{}, false, fmt.Errorf("select rating: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *RatingRepository) ListByMatch(ctx context.Context, matchID int64) ([]rating.Rating, error) {
	return r.list(ctx, qb.Eq("match_id", matchID), "created_at DESC", "id DESC")
}

func (r *RatingRepository) ListByUser(ctx context.Context, userID int64) ([]rating.Rating, error) {
	return r.list(ctx, qb.Eq("user_id", userID), "created_at DESC", "id DESC")
}

func (r *RatingRepository) ListByUsers(ctx context.Context, userIDs []int64) ([]rating.Rating, error) {
	if len(userIDs) == 0 {
		return []rating.Rating{}, nil
	}

	return r.list(ctx, qb.Expr("user_id = ANY(?)", pq.Array(userIDs)), "created_at DESC", "id DESC")
}

func (r *RatingRepository) ListFeaturedByUser(ctx context.Context, userID int64) ([]rating.Rating, error) {
	query, args, err := qb.Select("*").From("ratings").
		Where(qb.Eq("user_id", userID), qb.Expr("featured_order > 0")).
		OrderBy("featured_order").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select featured ratings query: %w", err)
	}

	return r.selectRatings(ctx, query, args)
}

func (r *RatingRepository) list(ctx context.Context, condition qb.Condition, orderBy ...string) ([]rating.Rating, error) {
	query, args, err := qb.Select("*").From("ratings").
		Where(condition).
		OrderBy(orderBy...).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select ratings query: %w", err)
	}

	return r.selectRatings(ctx, query, args)
}

func (r *RatingRepository) selectRatings(ctx context.Context, query string, args []any) ([]rating.Rating, error) {
	var rows []ratingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select ratings: %w", err)
	}

	out := make([]rating.Rating, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func updateRatingSQL(item rating.Rating) (string, []any, error) {
	return qb.Update("ratings").
		Set("score", item.Score).
		Set("minutes_watched", string(item.MinutesWatched)).
		Set("review", item.Review).
		Set("attended", item.Attended).
		Set("stadium_photo_url", item.StadiumPhotoURL).
		Set("representative_photo_url", item.RepresentativePhotoURL).
		Set("featured_note", item.FeaturedNote).
		Set("featured_order", item.FeaturedOrder).
		Set("featured_primary_image", string(item.FeaturedPrimaryImage)).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
}
