package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ballboxd/ballboxd/internal/domain/social"
)

type userEdge struct {
	followerID  int64
	followingID int64
}

type teamEdge struct {
	userID int64
	teamID int64
}

type SocialRepository struct {
	mu          sync.RWMutex
	userFollows map[userEdge]social.UserFollow
	teamFollows map[teamEdge]social.TeamFollow
}

func NewSocialRepository() *SocialRepository {
	return &SocialRepository{
		userFollows: make(map[userEdge]social.UserFollow),
		teamFollows: make(map[teamEdge]social.TeamFollow),
	}
}

func (r *SocialRepository) AddUserFollow(_ context.Context, edge social.UserFollow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := userEdge{followerID: edge.FollowerID, followingID: edge.FollowingID}
	if _, ok := r.userFollows[key]; !ok {
		r.userFollows[key] = edge
	}

	return nil
}

func (r *SocialRepository) RemoveUserFollow(_ context.Context, followerID, followingID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.userFollows, userEdge{followerID: followerID, followingID: followingID})

	return nil
}

func (r *SocialRepository) HasUserFollow(_ context.Context, followerID, followingID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.userFollows[userEdge{followerID: followerID, followingID: followingID}]
	return ok, nil
}

func (r *SocialRepository) ListFollowing(_ context.Context, followerID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int64, 0)
	for key := range r.userFollows {
		if key.followerID == followerID {
			out = append(out, key.followingID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

func (r *SocialRepository) CountsForUser(_ context.Context, userID int64) (social.FollowCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var counts social.FollowCounts
	for key := range r.userFollows {
		if key.followingID == userID {
			counts.Followers++
		}
		if key.followerID == userID {
			counts.Following++
		}
	}
	for key := range r.teamFollows {
		if key.userID == userID {
			counts.Teams++
		}
	}

	return counts, nil
}

func (r *SocialRepository) AddTeamFollow(_ context.Context, edge social.TeamFollow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := teamEdge{userID: edge.UserID, teamID: edge.TeamID}
	if _, ok := r.teamFollows[key]; !ok {
		r.teamFollows[key] = edge
	}

	return nil
}

func (r *SocialRepository) RemoveTeamFollow(_ context.Context, userID, teamID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.teamFollows, teamEdge{userID: userID, teamID: teamID})

	return nil
}

func (r *SocialRepository) HasTeamFollow(_ context.Context, userID, teamID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.teamFollows[teamEdge{userID: userID, teamID: teamID}]
	return ok, nil
}

func (r *SocialRepository) ListFollowedTeams(_ context.Context, userID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int64, 0)
	for key := range r.teamFollows {
		if key.userID == userID {
			out = append(out, key.teamID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

func (r *SocialRepository) CountTeamFollowers(_ context.Context, teamID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for key := range r.teamFollows {
		if key.teamID == teamID {
			count++
		}
	}

	return count, nil
}
