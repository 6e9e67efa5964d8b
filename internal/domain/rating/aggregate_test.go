package rating

import "testing"

func TestMatchStats_WeightedMean(t *testing.T) {
	ratings := []Rating{
		{UserID: 1, MatchID: 1, Score: 85, MinutesWatched: WatchedFull},
		{UserID: 2, MatchID: 1, Score: 78, MinutesWatched: WatchedAlmostAll},
	}

	stats := MatchStats(ratings)

	// (85*1 + 78*0.75) / 1.75 = 143.5/1.75 = 82
	if stats.AvgScore != 82 {
		t.Fatalf("expected avg score 82, got %v", stats.AvgScore)
	}
	if stats.RatingCount != 2 {
		t.Fatalf("expected rating count 2, got %d", stats.RatingCount)
	}
	if stats.FullWatchedPct != 50 {
		t.Fatalf("expected full watched pct 50, got %v", stats.FullWatchedPct)
	}
}

func TestMatchStats_Empty(t *testing.T) {
	stats := MatchStats(nil)
	if stats.AvgScore != 0 || stats.RatingCount != 0 || stats.FullWatchedPct != 0 {
		t.Fatalf("expected zero stats for empty ratings, got %+v", stats)
	}
}

func TestMatchStats_BoundedByScoreRange(t *testing.T) {
	ratings := []Rating{
		{Score: 0, MinutesWatched: WatchedLessThan30},
		{Score: 100, MinutesWatched: WatchedFull},
		{Score: 100, MinutesWatched: WatchedOneHalf},
	}

	stats := MatchStats(ratings)
	if stats.AvgScore < 0 || stats.AvgScore > 100 {
		t.Fatalf("avg score %v out of [0,100]", stats.AvgScore)
	}
}

func TestMatchStats_UnknownBucketWeighsFull(t *testing.T) {
	weighted := MatchStats([]Rating{{Score: 60, MinutesWatched: "SOMETHING_NEW"}})
	if weighted.AvgScore != 60 {
		t.Fatalf("expected unknown bucket to weigh 1.0, got avg %v", weighted.AvgScore)
	}
}

func TestProfileStats_UnweightedMean(t *testing.T) {
	// The profile aggregate deliberately ignores watch weights; a change here
	// means the match/profile drift got unified and both tests must move.
	ratings := []Rating{
		{Score: 85, MinutesWatched: WatchedFull},
		{Score: 78, MinutesWatched: WatchedAlmostAll},
	}

	stats := ProfileStats(ratings)
	if stats.AvgScore != 81.5 {
		t.Fatalf("expected unweighted avg 81.5, got %v", stats.AvgScore)
	}
	if stats.FullWatchedPct != 50 {
		t.Fatalf("expected full watched pct 50, got %v", stats.FullWatchedPct)
	}
}

func TestProfileStats_Empty(t *testing.T) {
	stats := ProfileStats(nil)
	if stats != (Stats{}) {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
