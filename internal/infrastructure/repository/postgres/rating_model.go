package postgres

import (
	"time"

	"github.com/ballboxd/ballboxd/internal/domain/rating"
)

// featured_order 0 means unfeatured; the domain uses the same convention, so
// no null mapping is needed.
type ratingTableModel struct {
	ID                     int64     `db:"id"`
	UserID                 int64     `db:"user_id"`
	MatchID                int64     `db:"match_id"`
	Score                  int       `db:"score"`
	MinutesWatched         string    `db:"minutes_watched"`
	Review                 string    `db:"review"`
	Attended               bool      `db:"attended"`
	StadiumPhotoURL        string    `db:"stadium_photo_url"`
	RepresentativePhotoURL string    `db:"representative_photo_url"`
	FeaturedNote           string    `db:"featured_note"`
	FeaturedOrder          int       `db:"featured_order"`
	FeaturedPrimaryImage   string    `db:"featured_primary_image"`
	CreatedAt              time.Time `db:"created_at"`
}

func (m ratingTableModel) toDomain() rating.Rating {
	return rating.Rating{
		ID:                     m.ID,
		UserID:                 m.UserID,
		MatchID:                m.MatchID,
		Score:                  m.Score,
		MinutesWatched:         rating.MinutesWatched(m.MinutesWatched),
		Review:                 m.Review,
		Attended:               m.Attended,
		StadiumPhotoURL:        m.StadiumPhotoURL,
		RepresentativePhotoURL: m.RepresentativePhotoURL,
		FeaturedNote:           m.FeaturedNote,
		FeaturedOrder:          m.FeaturedOrder,
		FeaturedPrimaryImage:   rating.PrimaryImage(m.FeaturedPrimaryImage),
		CreatedAt:              m.CreatedAt,
	}
}
