package social

import (
	"fmt"
	"time"
)

// UserFollow is a directed follower→following edge between two users.
type UserFollow struct {
	FollowerID  int64
	FollowingID int64
	CreatedAt   time.Time
}

func (f UserFollow) Validate() error {
	if f.FollowerID <= 0 || f.FollowingID <= 0 {
		return fmt.Errorf("follow user ids are required")
	}
	if f.FollowerID == f.FollowingID {
		return fmt.Errorf("users cannot follow themselves")
	}

	return nil
}

// TeamFollow is a user→team edge. Teams are not users, so there is no
// self-follow restriction.
type TeamFollow struct {
	UserID    int64
	TeamID    int64
	CreatedAt time.Time
}

func (f TeamFollow) Validate() error {
	if f.UserID <= 0 || f.TeamID <= 0 {
		return fmt.Errorf("team follow ids are required")
	}

	return nil
}

// FollowCounts summarizes a user's position in the graph.
type FollowCounts struct {
	Followers int
	Following int
	Teams     int
}
