package rating

import (
	"fmt"
	"time"
)

// MinutesWatched buckets how much of the match the rater actually saw. The
// bucket weights the rating in match-level aggregates.
type MinutesWatched string

const (
	WatchedLessThan30 MinutesWatched = "LT_30"
	WatchedOneHalf    MinutesWatched = "ONE_HALF"
	WatchedAlmostAll  MinutesWatched = "ALMOST_ALL"
	WatchedFull       MinutesWatched = "FULL"
)

// Weight returns the aggregation weight for the bucket. Unknown or missing
// buckets count as a full watch.
func (m MinutesWatched) Weight() float64 {
	switch m {
	case WatchedLessThan30:
		return 0.25
	case WatchedOneHalf:
		return 0.5
	case WatchedAlmostAll:
		return 0.75
	default:
		return 1.0
	}
}

func (m MinutesWatched) Valid() bool {
	switch m {
	case WatchedLessThan30, WatchedOneHalf, WatchedAlmostAll, WatchedFull:
		return true
	default:
		return false
	}
}

// PrimaryImage selects which photo fronts a featured memory.
type PrimaryImage string

const (
	PrimaryImageRepresentative PrimaryImage = "representative"
	PrimaryImageStadium        PrimaryImage = "stadium"
)

func (p PrimaryImage) Valid() bool {
	return p == PrimaryImageRepresentative || p == PrimaryImageStadium
}

const (
	MaxScore           = 100
	MaxFeaturedNoteLen = 240
)

// Rating is one user's scored review of one match. At most one rating exists
// per (UserID, MatchID) pair. FeaturedOrder 0 means the rating is not part of
// the user's featured memories; values 1..MaxFeatured are showcase slots.
type Rating struct {
	ID                     int64
	UserID                 int64
	MatchID                int64
	Score                  int
	MinutesWatched         MinutesWatched
	Review                 string
	Attended               bool
	StadiumPhotoURL        string
	RepresentativePhotoURL string
	FeaturedNote           string
	FeaturedOrder          int
	FeaturedPrimaryImage   PrimaryImage
	CreatedAt              time.Time
}

func (r Rating) Validate() error {
	if r.UserID <= 0 {
		return fmt.Errorf("rating user id is required")
	}
	if r.MatchID <= 0 {
		return fmt.Errorf("rating match id is required")
	}
	if r.Score < 0 || r.Score > MaxScore {
		return fmt.Errorf("rating score must be between 0 and %d", MaxScore)
	}
	if !r.MinutesWatched.Valid() {
		return fmt.Errorf("rating minutes watched %q is not a known bucket", r.MinutesWatched)
	}
	if len([]rune(r.FeaturedNote)) > MaxFeaturedNoteLen {
		return fmt.Errorf("featured note exceeds %d characters", MaxFeaturedNoteLen)
	}

	return nil
}

// Featured reports whether the rating occupies a showcase slot.
func (r Rating) Featured() bool {
	return r.FeaturedOrder > 0
}

// NormalizePrimaryImage enforces that a stadium-fronted memory actually has a
// stadium photo, falling back to the representative image otherwise.
func (r *Rating) NormalizePrimaryImage() {
	if r.FeaturedPrimaryImage == PrimaryImageStadium && r.StadiumPhotoURL == "" {
		r.FeaturedPrimaryImage = PrimaryImageRepresentative
	}
	if r.FeaturedPrimaryImage == "" {
		r.FeaturedPrimaryImage = PrimaryImageRepresentative
	}
}
