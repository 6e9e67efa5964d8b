package usecase

import (
	"context"
	"fmt"

	"github.com/ballboxd/ballboxd/internal/domain/match"
	"github.com/ballboxd/ballboxd/internal/domain/rating"
	"github.com/ballboxd/ballboxd/internal/domain/social"
	"github.com/ballboxd/ballboxd/internal/domain/team"
	"github.com/ballboxd/ballboxd/internal/domain/tournament"
	"github.com/ballboxd/ballboxd/internal/domain/user"
)

const feedSnippetLen = 140

// FeedItem is one friends-feed entry: a followed user's rating with the
// actor, the match context and a display snippet of the review. The stored
// review is never altered; only the snippet is truncated.
type FeedItem struct {
	Actor      user.User
	Rating     rating.Rating
	Snippet    string
	Match      match.Match
	HomeTeam   team.Team
	AwayTeam   team.Team
	Tournament tournament.Tournament
}

// MatchSummary is a fixture with its names resolved but no statistics. It
// backs the team feed and search results.
type MatchSummary struct {
	Match      match.Match
	HomeTeam   team.Team
	AwayTeam   team.Team
	Tournament tournament.Tournament
}

type FeedService struct {
	userRepo       user.Repository
	matchRepo      match.Repository
	teamRepo       team.Repository
	tournamentRepo tournament.Repository
	ratingRepo     rating.Repository
	socialRepo     social.Repository
}

func NewFeedService(
	userRepo user.Repository,
	matchRepo match.Repository,
	teamRepo team.Repository,
	tournamentRepo tournament.Repository,
	ratingRepo rating.Repository,
	socialRepo social.Repository,
) *FeedService {
	return &FeedService{
		userRepo:       userRepo,
		matchRepo:      matchRepo,
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
		ratingRepo:     ratingRepo,
		socialRepo:     socialRepo,
	}
}

// Friends returns ratings authored by users the caller follows, newest
// first, paginated. The second return value is the total before paging.
func (s *FeedService) Friends(ctx context.Context, userID int64, page, pageSize int) ([]FeedItem, int, error) {
	ctx, span := startSpan(ctx, "FeedService.Friends")
	defer span.End()

	page, pageSize = normalizePage(page, pageSize)

	followingIDs, err := s.socialRepo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("list following: %w", err)
	}
	if len(followingIDs) == 0 {
		return []FeedItem{}, 0, nil
	}

	ratings, err := s.ratingRepo.ListByUsers(ctx, followingIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("list friend ratings: %w", err)
	}

	// Drop ratings whose author no longer resolves before paging, so the
	// reported total and the page contents stay consistent.
	actors, ratings, err := s.resolveActors(ctx, ratings)
	if err != nil {
		return nil, 0, err
	}

	total := len(ratings)
	pageItems := paginate(ratings, page, pageSize)
	if len(pageItems) == 0 {
		return []FeedItem{}, total, nil
	}

	items, err := s.enrich(ctx, pageItems, actors)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *FeedService) resolveActors(ctx context.Context, ratings []rating.Rating) (map[int64]user.User, []rating.Rating, error) {
	actors := make(map[int64]user.User)
	missing := make(map[int64]bool)
	kept := make([]rating.Rating, 0, len(ratings))
	for _, r := range ratings {
		if missing[r.UserID] {
			continue
		}
		if _, ok := actors[r.UserID]; !ok {
			actor, exists, err := s.userRepo.GetByID(ctx, r.UserID)
			if err != nil {
				return nil, nil, fmt.Errorf("get actor: %w", err)
			}
			if !exists {
				missing[r.UserID] = true
				continue
			}
			actors[r.UserID] = actor
		}
		kept = append(kept, r)
	}
	return actors, kept, nil
}

// FollowedTeams returns every fixture involving a team the caller follows,
// newest kickoff first.
func (s *FeedService) FollowedTeams(ctx context.Context, userID int64) ([]MatchSummary, error) {
	ctx, span := startSpan(ctx, "FeedService.FollowedTeams")
	defer span.End()

	teamIDs, err := s.socialRepo.ListFollowedTeams(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list followed teams: %w", err)
	}
	if len(teamIDs) == 0 {
		return []MatchSummary{}, nil
	}

	matches, err := s.matchRepo.ListByTeams(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("list team matches: %w", err)
	}

	allTeamIDs := make([]int64, 0, len(matches)*2)
	tournamentIDs := make([]int64, 0, len(matches))
	for _, m := range matches {
		allTeamIDs = append(allTeamIDs, m.HomeTeamID, m.AwayTeamID)
		tournamentIDs = append(tournamentIDs, m.TournamentID)
	}
	teams, err := s.teamRepo.GetByIDs(ctx, allTeamIDs)
	if err != nil {
		return nil, fmt.Errorf("get teams: %w", err)
	}
	tournaments, err := s.tournamentRepo.GetByIDs(ctx, tournamentIDs)
	if err != nil {
		return nil, fmt.Errorf("get tournaments: %w", err)
	}

	items := make([]MatchSummary, 0, len(matches))
	for _, m := range matches {
		items = append(items, MatchSummary{
			Match:      m,
			HomeTeam:   teams[m.HomeTeamID],
			AwayTeam:   teams[m.AwayTeamID],
			Tournament: tournaments[m.TournamentID],
		})
	}

	return items, nil
}

func (s *FeedService) enrich(ctx context.Context, ratings []rating.Rating, actors map[int64]user.User) ([]FeedItem, error) {
	matchIDs := make([]int64, 0, len(ratings))
	for _, r := range ratings {
		matchIDs = append(matchIDs, r.MatchID)
	}
	matches, err := s.matchRepo.GetByIDs(ctx, matchIDs)
	if err != nil {
		return nil, fmt.Errorf("get matches: %w", err)
	}

	teamIDs := make([]int64, 0, len(matches)*2)
	tournamentIDs := make([]int64, 0, len(matches))
	for _, m := range matches {
		teamIDs = append(teamIDs, m.HomeTeamID, m.AwayTeamID)
		tournamentIDs = append(tournamentIDs, m.TournamentID)
	}
	teams, err := s.teamRepo.GetByIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("get teams: %w", err)
	}
	tournaments, err := s.tournamentRepo.GetByIDs(ctx, tournamentIDs)
	if err != nil {
		return nil, fmt.Errorf("get tournaments: %w", err)
	}

	items := make([]FeedItem, 0, len(ratings))
	for _, r := range ratings {
		actor := actors[r.UserID]
		m := matches[r.MatchID]
		items = append(items, FeedItem{
			Actor:      actor,
			Rating:     r,
			Snippet:    snippet(r.Review),
			Match:      m,
			HomeTeam:   teams[m.HomeTeamID],
			AwayTeam:   teams[m.AwayTeamID],
			Tournament: tournaments[m.TournamentID],
		})
	}

	return items, nil
}

func snippet(review string) string {
	runes := []rune(review)
	if len(runes) <= feedSnippetLen {
		return review
	}

	return string(runes[:feedSnippetLen])
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	return page, pageSize
}

func paginate[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
