package models

import (
	"time"

	"gorm.io/gorm"
)

// JournalSentiments lists the accepted sentiment values. The set mixes
// moods with the classic positive/negative/neutral tri-state because
// the client offers both pickers.
var JournalSentiments = []string{
	"positive", "negative", "neutral",
	"happy", "sad", "anxious", "angry", "calm",
	"excited", "tired", "confused", "hopeful", "grateful",
}

// MoodPrediction is the snapshot attached to a journal entry when a
// mood classifier has processed its text.
type MoodPrediction struct {
	Mood        string    `json:"mood"`
	Confidence  float64   `json:"confidence"`
	Model       string    `json:"model"`
	ProcessedAt time.Time `json:"processedAt"`
}

type Journal struct {
	gorm.Model
	UserID         uint            `gorm:"index;not null" json:"user"`
	Title          string          `gorm:"not null" json:"title"`
	Content        string          `gorm:"not null" json:"content"`
	Sentiment      string          `gorm:"default:neutral" json:"sentiment"`
	MoodPrediction *MoodPrediction `gorm:"serializer:json" json:"moodPrediction,omitempty"`
	Date           time.Time       `json:"date"`
}

func ValidSentiment(s string) bool {
	for _, v := range JournalSentiments {
		if v == s {
			return true
		}
	}
	return false
}
