package content

import "strings"

const wordsPerMinute = 200

// ReadingTime estimates reading minutes for a markdown body, rounding up.
// Empty content reads in 0 minutes; any non-empty content reads in at least 1.
func ReadingTime(body string) int {
	words := len(strings.Fields(body))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
