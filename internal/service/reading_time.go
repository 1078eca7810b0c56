package service

import (
	"strings"
)

const wordsPerMinute = 200

// EstimateReadingTime returns whole minutes at 200 words per minute,
// rounded up. Words are runs of non-whitespace; blank content reads in 0.
func EstimateReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}

	return (words + wordsPerMinute - 1) / wordsPerMinute
}
