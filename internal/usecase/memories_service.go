package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ballboxd/ballboxd/internal/domain/match"
	"github.com/ballboxd/ballboxd/internal/domain/rating"
	"github.com/ballboxd/ballboxd/internal/domain/team"
	"github.com/ballboxd/ballboxd/internal/domain/tournament"
	"github.com/ballboxd/ballboxd/internal/domain/user"
	"github.com/ballboxd/ballboxd/internal/platform/resilience"
)

// FeaturedMemory is one showcase slot: the owner's rating enriched with the
// match it belongs to.
type FeaturedMemory struct {
	Rating     rating.Rating
	Match      match.Match
	HomeTeam   team.Team
	AwayTeam   team.Team
	Tournament tournament.Tournament
}

// UpdateMemoryMetaInput patches presentation metadata of a featured memory.
// Nil fields are left untouched; a pointer to the empty string clears.
type UpdateMemoryMetaInput struct {
	MatchID                int64
	Note                   *string
	RepresentativePhotoURL *string
	PrimaryImage           *rating.PrimaryImage
}

type MemoriesService struct {
	userRepo       user.Repository
	matchRepo      match.Repository
	teamRepo       team.Repository
	tournamentRepo tournament.Repository
	ratingRepo     rating.Repository
	userLocks      *resilience.KeyedMutex
}

func NewMemoriesService(
	userRepo user.Repository,
	matchRepo match.Repository,
	teamRepo team.Repository,
	tournamentRepo tournament.Repository,
	ratingRepo rating.Repository,
	userLocks *resilience.KeyedMutex,
) *MemoriesService {
	return &MemoriesService{
		userRepo:       userRepo,
		matchRepo:      matchRepo,
		teamRepo:       teamRepo,
		tournamentRepo: tournamentRepo,
		ratingRepo:     ratingRepo,
		userLocks:      userLocks,
	}
}

// List returns a user's featured memories in slot order. Reads are public.
func (s *MemoriesService) List(ctx context.Context, username string) (user.User, []FeaturedMemory, error) {
	ctx, span := startSpan(ctx, "MemoriesService.List")
	defer span.End()

	owner, err := s.getUser(ctx, username)
	if err != nil {
		return user.User{}, nil, err
	}

	memories, err := s.listFeatured(ctx, owner.ID)
	if err != nil {
		return user.User{}, nil, err
	}

	return owner, memories, nil
}

// Add features an already-rated match. With free capacity the lowest unused
// slot is assigned; at capacity the caller must name a currently featured
// match to replace, whose slot the new memory inherits. Adding a match that
// is already featured is a no-op.
func (s *MemoriesService) Add(ctx context.Context, caller user.Principal, username string, matchID, replaceMatchID int64) (user.User, []FeaturedMemory, error) {
	ctx, span := startSpan(ctx, "MemoriesService.Add")
	defer span.End()

	owner, err := s.getOwner(ctx, caller, username)
	if err != nil {
		return user.User{}, nil, err
	}

	s.userLocks.Lock(owner.ID)
	defer s.userLocks.Unlock(owner.ID)

	target, exists, err := s.ratingRepo.GetByUserAndMatch(ctx, owner.ID, matchID)
	if err != nil {
		return user.User{}, nil, fmt.Errorf("get rating: %w", err)
	}
	if !exists {
		return user.User{}, nil, fmt.Errorf("%w: rate match %d before featuring it", ErrInvalidInput, matchID)
	}

	if target.Featured() {
		memories, err := s.listFeatured(ctx, owner.ID)
		return owner, memories, err
	}

	featured, err := s.ratingRepo.ListFeaturedByUser(ctx, owner.ID)
	if err != nil {
		return user.User{}, nil, fmt.Errorf("list featured: %w", err)
	}

	if len(featured) < rating.MaxFeatured {
		used := make([]int, 0, len(featured))
		for _, f := range featured {
			used = append(used, f.FeaturedOrder)
		}
		target.FeaturedOrder = rating.NextFeaturedSlot(used)
		target.NormalizePrimaryImage()
		if err := s.ratingRepo.Update(ctx, target); err != nil {
			return user.User{}, nil, fmt.Errorf("feature rating: %w", err)
		}

		memories, err := s.listFeatured(ctx, owner.ID)
		return owner, memories, err
	}

	if replaceMatchID == 0 {
		current := make([]int64, 0, len(featured))
		for _, f := range featured {
			current = append(current, f.MatchID)
		}
		return user.User{}, nil, &FeaturedCapacityError{Current: current}
	}

	var vacated *rating.Rating
	for i := range featured {
		if featured[i].MatchID == replaceMatchID {
			vacated = &featured[i]
			break
		}
	}
	if vacated == nil {
		return user.User{}, nil, fmt.Errorf("%w: match %d is not currently featured", ErrInvalidInput, replaceMatchID)
	}

	target.FeaturedOrder = vacated.FeaturedOrder
	target.NormalizePrimaryImage()
	vacated.FeaturedOrder = 0
	if err := s.ratingRepo.UpdateAll(ctx, []rating.Rating{*vacated, target}); err != nil {
		return user.User{}, nil, fmt.Errorf("replace featured rating: %w", err)
	}

	memories, err := s.listFeatured(ctx, owner.ID)
	return owner, memories, err
}

// Remove unfeatures a match. The remaining slot numbers keep their values;
// gaps are filled by later adds. Removing a match that is not featured is a
// no-op.
func (s *MemoriesService) Remove(ctx context.Context, caller user.Principal, username string, matchID int64) error {
	ctx, span := startSpan(ctx, "MemoriesService.Remove")
	defer span.End()

	owner, err := s.getOwner(ctx, caller, username)
	if err != nil {
		return err
	}

	s.userLocks.Lock(owner.ID)
	defer s.userLocks.Unlock(owner.ID)

	target, exists, err := s.ratingRepo.GetByUserAndMatch(ctx, owner.ID, matchID)
	if err != nil {
		return fmt.Errorf("get rating: %w", err)
	}
	if !exists || !target.Featured() {
		return nil
	}

	target.FeaturedOrder = 0
	if err := s.ratingRepo.Update(ctx, target); err != nil {
		return fmt.Errorf("unfeature rating: %w", err)
	}

	return nil
}

// Reorder reassigns slots from a full permutation of the currently featured
// match ids: position i receives slot i+1. Any mismatch with the current set
// rejects the whole request without mutating.
func (s *MemoriesService) Reorder(ctx context.Context, caller user.Principal, username string, order []int64) (user.User, []FeaturedMemory, error) {
	ctx, span := startSpan(ctx, "MemoriesService.Reorder")
	defer span.End()

	owner, err := s.getOwner(ctx, caller, username)
	if err != nil {
		return user.User{}, nil, err
	}

	s.userLocks.Lock(owner.ID)
	defer s.userLocks.Unlock(owner.ID)

	featured, err := s.ratingRepo.ListFeaturedByUser(ctx, owner.ID)
	if err != nil {
		return user.User{}, nil, fmt.Errorf("list featured: %w", err)
	}

	current := make([]int64, 0, len(featured))
	byMatch := make(map[int64]rating.Rating, len(featured))
	for _, f := range featured {
		current = append(current, f.MatchID)
		byMatch[f.MatchID] = f
	}

	if err := rating.ValidateReorder(current, order); err != nil {
		return user.User{}, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated := make([]rating.Rating, 0, len(order))
	for i, matchID := range order {
		item := byMatch[matchID]
		item.FeaturedOrder = i + 1
		updated = append(updated, item)
	}
	if err := s.ratingRepo.UpdateAll(ctx, updated); err != nil {
		return user.User{}, nil, fmt.Errorf("reorder featured: %w", err)
	}

	memories, err := s.listFeatured(ctx, owner.ID)
	return owner, memories, err
}

// UpdateMeta edits the note, representative photo and primary image of an
// already-featured match.
func (s *MemoriesService) UpdateMeta(ctx context.Context, caller user.Principal, username string, input UpdateMemoryMetaInput) (user.User, []FeaturedMemory, error) {
	ctx, span := startSpan(ctx, "MemoriesService.UpdateMeta")
	defer span.End()

	owner, err := s.getOwner(ctx, caller, username)
	if err != nil {
		return user.User{}, nil, err
	}

	s.userLocks.Lock(owner.ID)
	defer s.userLocks.Unlock(owner.ID)

	target, exists, err := s.ratingRepo.GetByUserAndMatch(ctx, owner.ID, input.MatchID)
	if err != nil {
		return user.User{}, nil, fmt.Errorf("get rating: %w", err)
	}
	if !exists || !target.Featured() {
		return user.User{}, nil, fmt.Errorf("%w: match %d is not currently featured", ErrInvalidInput, input.MatchID)
	}

	if input.Note != nil {
		target.FeaturedNote = rating.TruncateNote(*input.Note)
	}
	if input.RepresentativePhotoURL != nil {
		target.RepresentativePhotoURL = *input.RepresentativePhotoURL
	}
	if input.PrimaryImage != nil {
		if !input.PrimaryImage.Valid() {
			return user.User{}, nil, fmt.Errorf("%w: primary image %q is not a known value", ErrInvalidInput, *input.PrimaryImage)
		}
		target.FeaturedPrimaryImage = *input.PrimaryImage
	}
	target.NormalizePrimaryImage()

	if err := s.ratingRepo.Update(ctx, target); err != nil {
		return user.User{}, nil, fmt.Errorf("update featured meta: %w", err)
	}

	memories, err := s.listFeatured(ctx, owner.ID)
	return owner, memories, err
}

func (s *MemoriesService) getUser(ctx context.Context, username string) (user.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return user.User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	owner, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user %q", ErrNotFound, username)
	}

	return owner, nil
}

// getOwner resolves the profile user and requires the caller to be that user.
func (s *MemoriesService) getOwner(ctx context.Context, caller user.Principal, username string) (user.User, error) {
	owner, err := s.getUser(ctx, username)
	if err != nil {
		return user.User{}, err
	}
	if caller.UserID != owner.ID {
		return user.User{}, fmt.Errorf("%w: memories belong to %q", ErrForbidden, owner.Username)
	}

	return owner, nil
}

func (s *MemoriesService) listFeatured(ctx context.Context, userID int64) ([]FeaturedMemory, error) {
	featured, err := s.ratingRepo.ListFeaturedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list featured: %w", err)
	}
	if len(featured) == 0 {
		return []FeaturedMemory{}, nil
	}

	matchIDs := make([]int64, 0, len(featured))
	for _, f := range featured {
		matchIDs = append(matchIDs, f.MatchID)
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

	memories := make([]FeaturedMemory, 0, len(featured))
	for _, f := range featured {
		m := matches[f.MatchID]
		memories = append(memories, FeaturedMemory{
			Rating:     f,
			Match:      m,
			HomeTeam:   teams[m.HomeTeamID],
			AwayTeam:   teams[m.AwayTeamID],
			Tournament: tournaments[m.TournamentID],
		})
	}

	return memories, nil
}
