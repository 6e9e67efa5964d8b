package httpapi

import (
	"time"

	"github.com/ballboxd/ballboxd/internal/domain/rating"
	"github.com/ballboxd/ballboxd/internal/domain/social"
	"github.com/ballboxd/ballboxd/internal/domain/team"
	"github.com/ballboxd/ballboxd/internal/domain/tournament"
	"github.com/ballboxd/ballboxd/internal/domain/user"
	"github.com/ballboxd/ballboxd/internal/usecase"
)

type userDTO struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// accountDTO is the caller's own account view; it carries the email that the
// public userDTO deliberately omits.
type accountDTO struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type teamDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	City    string `json:"city,omitempty"`
	Stadium string `json:"stadium,omitempty"`
	LogoURL string `json:"logo_url,omitempty"`
}

type tournamentDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Season  string `json:"season,omitempty"`
	LogoURL string `json:"logo_url,omitempty"`
}

type ratingDTO struct {
	ID                     int64     `json:"id"`
	UserID                 int64     `json:"user_id"`
	MatchID                int64     `json:"match_id"`
	Score                  int       `json:"score"`
	MinutesWatched         string    `json:"minutes_watched"`
	Review                 string    `json:"review"`
	Attended               bool      `json:"attended"`
	StadiumPhotoURL        string    `json:"stadium_photo_url,omitempty"`
	RepresentativePhotoURL string    `json:"representative_photo_url,omitempty"`
	FeaturedNote           string    `json:"featured_note,omitempty"`
	FeaturedOrder          *int      `json:"featured_order"`
	FeaturedPrimaryImage   string    `json:"featured_primary_image,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

type statsDTO struct {
	AvgScore       float64 `json:"avg_score"`
	RatingCount    int     `json:"rating_count"`
	FullWatchedPct float64 `json:"full_watched_pct"`
}

type matchSummaryDTO struct {
	ID         int64         `json:"id"`
	Tournament tournamentDTO `json:"tournament"`
	HomeTeam   teamDTO       `json:"home_team"`
	AwayTeam   teamDTO       `json:"away_team"`
	DateTime   time.Time     `json:"date_time"`
	HomeScore  int           `json:"home_score"`
	AwayScore  int           `json:"away_score"`
}

type matchDTO struct {
	matchSummaryDTO
	AvgScore       float64    `json:"avg_score"`
	RatingCount    int        `json:"rating_count"`
	FullWatchedPct float64    `json:"full_watched_pct"`
	MyRating       *ratingDTO `json:"my_rating"`
}

type memoryDTO struct {
	Rating ratingDTO       `json:"rating"`
	Match  matchSummaryDTO `json:"match"`
}

type memoriesPayloadDTO struct {
	User     userDTO     `json:"user"`
	MaxCount int         `json:"max_count"`
	Results  []memoryDTO `json:"results"`
}

type followCountsDTO struct {
	Followers int `json:"followers"`
	Following int `json:"following"`
	Teams     int `json:"teams"`
}

type userFollowStateDTO struct {
	User      userDTO         `json:"user"`
	Following bool            `json:"following"`
	Counts    followCountsDTO `json:"counts"`
}

type teamFollowStateDTO struct {
	Team      teamDTO `json:"team"`
	Following bool    `json:"following"`
	Followers int     `json:"followers"`
}

func userToDTO(u user.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

func accountToDTO(u user.User) accountDTO {
	return accountDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:      t.ID,
		Name:    t.Name,
		Country: t.Country,
		City:    t.City,
		Stadium: t.Stadium,
		LogoURL: t.LogoURL,
	}
}

func tournamentToDTO(t tournament.Tournament) tournamentDTO {
	return tournamentDTO{
		ID:      t.ID,
		Name:    t.Name,
		Country: t.Country,
		Season:  t.Season,
		LogoURL: t.LogoURL,
	}
}

func ratingToDTO(r rating.Rating) ratingDTO {
	dto := ratingDTO{
		ID:                     r.ID,
		UserID:                 r.UserID,
		MatchID:                r.MatchID,
		Score:                  r.Score,
		MinutesWatched:         string(r.MinutesWatched),
		Review:                 r.Review,
		Attended:               r.Attended,
		StadiumPhotoURL:        r.StadiumPhotoURL,
		RepresentativePhotoURL: r.RepresentativePhotoURL,
		FeaturedNote:           r.FeaturedNote,
		FeaturedPrimaryImage:   string(r.FeaturedPrimaryImage),
		CreatedAt:              r.CreatedAt,
	}
	if r.Featured() {
		order := r.FeaturedOrder
		dto.FeaturedOrder = &order
	}
	return dto
}

func statsToDTO(s rating.Stats) statsDTO {
	return statsDTO{
		AvgScore:       s.AvgScore,
		RatingCount:    s.RatingCount,
		FullWatchedPct: s.FullWatchedPct,
	}
}

func matchSummaryToDTO(item usecase.MatchSummary) matchSummaryDTO {
	return matchSummaryDTO{
		ID:         item.Match.ID,
		Tournament: tournamentToDTO(item.Tournament),
		HomeTeam:   teamToDTO(item.HomeTeam),
		AwayTeam:   teamToDTO(item.AwayTeam),
		DateTime:   item.Match.DateTime,
		HomeScore:  item.Match.HomeScore,
		AwayScore:  item.Match.AwayScore,
	}
}

func matchDetailsToDTO(item usecase.MatchDetails) matchDTO {
	dto := matchDTO{
		matchSummaryDTO: matchSummaryDTO{
			ID:         item.Match.ID,
			Tournament: tournamentToDTO(item.Tournament),
			HomeTeam:   teamToDTO(item.HomeTeam),
			AwayTeam:   teamToDTO(item.AwayTeam),
			DateTime:   item.Match.DateTime,
			HomeScore:  item.Match.HomeScore,
			AwayScore:  item.Match.AwayScore,
		},
		AvgScore:       item.Stats.AvgScore,
		RatingCount:    item.Stats.RatingCount,
		FullWatchedPct: item.Stats.FullWatchedPct,
	}
	if item.MyRating != nil {
		mine := ratingToDTO(*item.MyRating)
		dto.MyRating = &mine
	}
	return dto
}

func memoriesToPayload(owner user.User, memories []usecase.FeaturedMemory) memoriesPayloadDTO {
	results := make([]memoryDTO, 0, len(memories))
	for _, m := range memories {
		results = append(results, memoryDTO{
			Rating: ratingToDTO(m.Rating),
			Match: matchSummaryDTO{
				ID:         m.Match.ID,
				Tournament: tournamentToDTO(m.Tournament),
				HomeTeam:   teamToDTO(m.HomeTeam),
				AwayTeam:   teamToDTO(m.AwayTeam),
				DateTime:   m.Match.DateTime,
				HomeScore:  m.Match.HomeScore,
				AwayScore:  m.Match.AwayScore,
			},
		})
	}

	return memoriesPayloadDTO{
		User:     userToDTO(owner),
		MaxCount: rating.MaxFeatured,
		Results:  results,
	}
}

func followCountsToDTO(c social.FollowCounts) followCountsDTO {
	return followCountsDTO{
		Followers: c.Followers,
		Following: c.Following,
		Teams:     c.Teams,
	}
}
