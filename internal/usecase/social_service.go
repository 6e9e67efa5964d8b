package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ballboxd/ballboxd/internal/domain/social"
	"github.com/ballboxd/ballboxd/internal/domain/team"
	"github.com/ballboxd/ballboxd/internal/domain/user"
	"github.com/ballboxd/ballboxd/internal/platform/resilience"
)

// UserFollowState is the graph position of a target user after a follow
// toggle, from the caller's point of view.
type UserFollowState struct {
	Target    user.User
	Following bool
	Counts    social.FollowCounts
}

// TeamFollowState mirrors UserFollowState for team edges.
type TeamFollowState struct {
	Team      team.Team
	Following bool
	Followers int
}

type SocialService struct {
	userRepo   user.Repository
	teamRepo   team.Repository
	socialRepo social.Repository
	userLocks  *resilience.KeyedMutex
	now        func() time.Time
}

func NewSocialService(
	userRepo user.Repository,
	teamRepo team.Repository,
	socialRepo social.Repository,
	userLocks *resilience.KeyedMutex,
) *SocialService {
	return &SocialService{
		userRepo:   userRepo,
		teamRepo:   teamRepo,
		socialRepo: socialRepo,
		userLocks:  userLocks,
		now:        time.Now,
	}
}

// FollowUser adds a follower→target edge. Following an already-followed user
// is a no-op; following yourself is rejected.
func (s *SocialService) FollowUser(ctx context.Context, followerID int64, targetUsername string) (UserFollowState, error) {
	ctx, span := startSpan(ctx, "SocialService.FollowUser")
	defer span.End()

	target, err := s.getTarget(ctx, targetUsername)
	if err != nil {
		return UserFollowState{}, err
	}
	if target.ID == followerID {
		return UserFollowState{}, fmt.Errorf("%w: you cannot follow yourself", ErrInvalidInput)
	}

	s.userLocks.Lock(followerID)
	defer s.userLocks.Unlock(followerID)

	edge := social.UserFollow{
		FollowerID:  followerID,
		FollowingID: target.ID,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.socialRepo.AddUserFollow(ctx, edge); err != nil {
		return UserFollowState{}, fmt.Errorf("add user follow: %w", err)
	}

	return s.userFollowState(ctx, followerID, target)
}

// UnfollowUser removes the edge if present.
func (s *SocialService) UnfollowUser(ctx context.Context, followerID int64, targetUsername string) (UserFollowState, error) {
	ctx, span := startSpan(ctx, "SocialService.UnfollowUser")
	defer span.End()

	target, err := s.getTarget(ctx, targetUsername)
	if err != nil {
		return UserFollowState{}, err
	}
	if target.ID == followerID {
		return UserFollowState{}, fmt.Errorf("%w: you cannot follow yourself", ErrInvalidInput)
	}

	s.userLocks.Lock(followerID)
	defer s.userLocks.Unlock(followerID)

	if err := s.socialRepo.RemoveUserFollow(ctx, followerID, target.ID); err != nil {
		return UserFollowState{}, fmt.Errorf("remove user follow: %w", err)
	}

	return s.userFollowState(ctx, followerID, target)
}

// FollowTeam adds a user→team edge. Teams are not users, so there is no
// self-follow restriction.
func (s *SocialService) FollowTeam(ctx context.Context, userID, teamID int64) (TeamFollowState, error) {
	ctx, span := startSpan(ctx, "SocialService.FollowTeam")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return TeamFollowState{}, err
	}

	s.userLocks.Lock(userID)
	defer s.userLocks.Unlock(userID)

	edge := social.TeamFollow{
		UserID:    userID,
		TeamID:    teamID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.socialRepo.AddTeamFollow(ctx, edge); err != nil {
		return TeamFollowState{}, fmt.Errorf("add team follow: %w", err)
	}

	return s.teamFollowState(ctx, userID, item)
}

// UnfollowTeam removes the edge if present.
func (s *SocialService) UnfollowTeam(ctx context.Context, userID, teamID int64) (TeamFollowState, error) {
	ctx, span := startSpan(ctx, "SocialService.UnfollowTeam")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return TeamFollowState{}, err
	}

	s.userLocks.Lock(userID)
	defer s.userLocks.Unlock(userID)

	if err := s.socialRepo.RemoveTeamFollow(ctx, userID, teamID); err != nil {
		return TeamFollowState{}, fmt.Errorf("remove team follow: %w", err)
	}

	return s.teamFollowState(ctx, userID, item)
}

func (s *SocialService) getTarget(ctx context.Context, username string) (user.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return user.User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	target, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user %q", ErrNotFound, username)
	}

	return target, nil
}

func (s *SocialService) getTeam(ctx context.Context, teamID int64) (team.Team, error) {
	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team %d", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *SocialService) userFollowState(ctx context.Context, followerID int64, target user.User) (UserFollowState, error) {
	following, err := s.socialRepo.HasUserFollow(ctx, followerID, target.ID)
	if err != nil {
		return UserFollowState{}, fmt.Errorf("check user follow: %w", err)
	}

	counts, err := s.socialRepo.CountsForUser(ctx, target.ID)
	if err != nil {
		return UserFollowState{}, fmt.Errorf("count follows: %w", err)
	}

	return UserFollowState{Target: target, Following: following, Counts: counts}, nil
}

func (s *SocialService) teamFollowState(ctx context.Context, userID int64, item team.Team) (TeamFollowState, error) {
	following, err := s.socialRepo.HasTeamFollow(ctx, userID, item.ID)
	if err != nil {
		return TeamFollowState{}, fmt.Errorf("check team follow: %w", err)
	}

	followers, err := s.socialRepo.CountTeamFollowers(ctx, item.ID)
	if err != nil {
		return TeamFollowState{}, fmt.Errorf("count team followers: %w", err)
	}

	return TeamFollowState{Team: item, Following: following, Followers: followers}, nil
}
