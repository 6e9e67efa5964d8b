package rating

import (
	"errors"
	"fmt"
)

// MaxFeatured caps how many ratings a user may pin to their showcase.
const MaxFeatured = 4

var (
	ErrNotRated         = errors.New("match has not been rated by this user")
	ErrNotFeatured      = errors.New("match is not currently featured")
	ErrFeaturedCapacity = errors.New("featured memories are at capacity")
)

// NextFeaturedSlot returns the lowest slot in 1..MaxFeatured not present in
// used, or 0 when every slot is taken. Slots can be sparse because removal
// never compacts the remaining orders.
func NextFeaturedSlot(used []int) int {
	taken := make(map[int]bool, len(used))
	for _, slot := range used {
		if slot > 0 {
			taken[slot] = true
		}
	}
	for slot := 1; slot <= MaxFeatured; slot++ {
		if !taken[slot] {
			return slot
		}
	}

	return 0
}

// ValidateReorder checks that proposed is a full permutation of the currently
// featured match ids: no duplicates, same length, exact set equality.
func ValidateReorder(current, proposed []int64) error {
	if len(proposed) != len(current) {
		return fmt.Errorf("order must list all %d featured matches, got %d", len(current), len(proposed))
	}

	seen := make(map[int64]bool, len(proposed))
	for _, id := range proposed {
		if seen[id] {
			return fmt.Errorf("order contains match id %d more than once", id)
		}
		seen[id] = true
	}

	for _, id := range current {
		if !seen[id] {
			return fmt.Errorf("order is missing featured match id %d", id)
		}
	}

	return nil
}

// TruncateNote limits a featured note to MaxFeaturedNoteLen runes.
func TruncateNote(note string) string {
	runes := []rune(note)
	if len(runes) <= MaxFeaturedNoteLen {
		return note
	}

	return string(runes[:MaxFeaturedNoteLen])
}
