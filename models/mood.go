package models

import "time"

// MoodRecord is a single saved mood measurement. Records are never mutated
// after creation; the mood log silently evicts the oldest ones beyond its cap.
type MoodRecord struct {
	// Timestamp is the moment the record was saved.
	Timestamp time.Time `json:"timestamp"`

	// Score is the mood score, an integer in [1,5].
	Score int `json:"score"`

	// Note is an optional free-text remark.
	Note string `json:"note,omitempty"`
}
