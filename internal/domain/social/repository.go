package social

import "context"

// Repository describes follow-edge persistence from use cases. Add calls are
// idempotent upserts; Remove calls are no-ops when the edge does not exist.
type Repository interface {
	AddUserFollow(ctx context.Context, edge UserFollow) error
	RemoveUserFollow(ctx context.Context, followerID, followingID int64) error
	HasUserFollow(ctx context.Context, followerID, followingID int64) (bool, error)
	ListFollowing(ctx context.Context, followerID int64) ([]int64, error)
	CountsForUser(ctx context.Context, userID int64) (FollowCounts, error)

	AddTeamFollow(ctx context.Context, edge TeamFollow) error
	RemoveTeamFollow(ctx context.Context, userID, teamID int64) error
	HasTeamFollow(ctx context.Context, userID, teamID int64) (bool, error)
	ListFollowedTeams(ctx context.Context, userID int64) ([]int64, error)
	CountTeamFollowers(ctx context.Context, teamID int64) (int, error)
}
