package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ballboxd/ballboxd/internal/domain/social"
	qb "github.com/ballboxd/ballboxd/internal/platform/querybuilder"
)

type SocialRepository struct {
	db *sqlx.DB
}

func NewSocialRepository(db *sqlx.DB) *SocialRepository {
	return &SocialRepository{db: db}
}

func (r *SocialRepository) AddUserFollow(ctx context.Context, edge social.UserFollow) error {
	query, args, err := qb.InsertInto("user_follows").
		Columns("follower_id", "following_id", "created_at").
		Values(edge.FollowerID, edge.FollowingID, edge.CreatedAt).
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert user follow query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert user follow: %w", err)
	}

	return nil
}

func (r *SocialRepository) RemoveUserFollow(ctx context.Context, followerID, followingID int64) error {
	query, args, err := qb.DeleteFrom("user_follows").
		Where(qb.Eq("follower_id", followerID), qb.Eq("following_id", followingID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete user follow query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete user follow: %w", err)
	}

	return nil
}

func (r *SocialRepository) HasUserFollow(ctx context.Context, followerID, followingID int64) (bool, error) {
	query, args, err := qb.Select("COUNT(*)").From("user_follows").
		Where(qb.Eq("follower_id", followerID), qb.Eq("following_id", followingID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build count user follow query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("count user follow: %w", err)
	}

	return count > 0, nil
}

func (r *SocialRepository) ListFollowing(ctx context.Context, followerID int64) ([]int64, error) {
	query, args, err := qb.Select("following_id").From("user_follows").
		Where(qb.Eq("follower_id", followerID)).
		OrderBy("following_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select following query: %w", err)
	}

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("select following: %w", err)
	}

	return ids, nil
}

func (r *SocialRepository) CountsForUser(ctx context.Context, userID int64) (social.FollowCounts, error) {
	const query = `
SELECT
	(SELECT COUNT(*) FROM user_follows WHERE following_id = $1) AS followers,
	(SELECT COUNT(*) FROM user_follows WHERE follower_id = $1) AS following,
	(SELECT COUNT(*) FROM team_follows WHERE user_id = $1) AS teams`

	var row struct {
		Followers int `db:"followers"`
		Following int `db:"following"`
		Teams     int `db:"teams"`
	}
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		return social.FollowCounts{}, fmt.Errorf("count follows: %w", err)
	}

	return social.FollowCounts{
		Followers: row.Followers,
		Following: row.Following,
		Teams:     row.Teams,
	}, nil
}

func (r *SocialRepository) AddTeamFollow(ctx context.Context, edge social.TeamFollow) error {
	query, args, err := qb.InsertInto("team_follows").
		Columns("user_id", "team_id", "created_at").
		Values(edge.UserID, edge.TeamID, edge.CreatedAt).
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert team follow query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team follow: %w", err)
	}

	return nil
}

func (r *SocialRepository) RemoveTeamFollow(ctx context.Context, userID, teamID int64) error {
	query, args, err := qb.DeleteFrom("team_follows").
		Where(qb.Eq("user_id", userID), qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team follow query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete team follow: %w", err)
	}

	return nil
}

func (r *SocialRepository) HasTeamFollow(ctx context.Context, userID, teamID int64) (bool, error) {
	query, args, err := qb.Select("COUNT(*)").From("team_follows").
		Where(qb.Eq("user_id", userID), qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build count team follow query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("count team follow: %w", err)
	}

	return count > 0, nil
}

func (r *SocialRepository) ListFollowedTeams(ctx context.Context, userID int64) ([]int64, error) {
	query, args, err := qb.Select("team_id").From("team_follows").
		Where(qb.Eq("user_id", userID)).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select followed teams query: %w", err)
	}

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("select followed teams: %w", err)
	}

	return ids, nil
}

func (r *SocialRepository) CountTeamFollowers(ctx context.Context, teamID int64) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("team_follows").
		Where(qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count team followers query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count team followers: %w", err)
	}

	return count, nil
}
