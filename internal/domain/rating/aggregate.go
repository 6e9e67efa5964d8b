package rating

import "math"

// Stats is the derived aggregate over a set of ratings. It is computed on
// read; nothing denormalized is stored.
type Stats struct {
	AvgScore       float64
	RatingCount    int
	FullWatchedPct float64
}

// MatchStats aggregates ratings of a single match. Each score is weighted by
// the rater's minutes-watched bucket, so a casual half-time zapper moves the
// average less than someone who sat through the full ninety.
func MatchStats(ratings []Rating) Stats {
	if len(ratings) == 0 {
		return Stats{}
	}

	var weightedSum, weightTotal float64
	fullCount := 0
	for _, r := range ratings {
		w := r.MinutesWatched.Weight()
		weightedSum += float64(r.Score) * w
		weightTotal += w
		if r.MinutesWatched == WatchedFull {
			fullCount++
		}
	}

	avg := 0.0
	if weightTotal > 0 {
		avg = round2(weightedSum / weightTotal)
	}

	return Stats{
		AvgScore:       avg,
		RatingCount:    len(ratings),
		FullWatchedPct: round2(100 * float64(fullCount) / float64(len(ratings))),
	}
}

// ProfileStats aggregates one user's own ratings with an unweighted mean.
// The rule intentionally differs from MatchStats; both behaviors are pinned
// by tests so a future unification is a deliberate product call.
func ProfileStats(ratings []Rating) Stats {
	if len(ratings) == 0 {
		return Stats{}
	}

	sum := 0
	fullCount := 0
	for _, r := range ratings {
		sum += r.Score
		if r.MinutesWatched == WatchedFull {
			fullCount++
		}
	}

	return Stats{
		AvgScore:       round2(float64(sum) / float64(len(ratings))),
		RatingCount:    len(ratings),
		FullWatchedPct: round2(100 * float64(fullCount) / float64(len(ratings))),
	}
}

// round2 rounds half-up to two decimal places. Scores are non-negative, so
// math.Round's half-away-from-zero matches half-up here.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
