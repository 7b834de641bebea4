package engine

import "math"

// DefaultWPM is the assumed reading speed when the caller does not supply one.
const DefaultWPM = 220

// MaxWords is the word budget for a time budget at a reading speed.
func MaxWords(minutes, wpm int) int {
	if minutes < 0 {
		minutes = 0
	}
	if wpm < 1 {
		wpm = 1
	}
	return minutes * wpm
}

// EstimatedMinutes converts a word count to reading minutes, rounded up.
func EstimatedMinutes(wordCount, wpm int) int {
	if wordCount <= 0 {
		return 0
	}
	if wpm < 1 {
		wpm = 1
	}
	return int(math.Ceil(float64(wordCount) / float64(wpm)))
}
