package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictMoodEmptyText(t *testing.T) {
	pred := PredictMood("")
	assert.Equal(t, "neutral", pred.Mood)
	assert.Equal(t, 0.0, pred.Confidence)
	assert.Equal(t, "keyword-based", pred.Model)
	assert.False(t, pred.ProcessedAt.IsZero())
}

func TestPredictMoodNoKeywords(t *testing.T) {
	pred := PredictMood("went to the shop and bought milk")
	assert.Equal(t, "neutral", pred.Mood)
	assert.Equal(t, 0.0, pred.Confidence)
}

func TestPredictMoodSingleMood(t *testing.T) {
	pred := PredictMood("I was happy today, we had so much fun and laughed a lot")
	assert.Equal(t, "happy", pred.Mood)
	assert.Equal(t, 1.0, pred.Confidence)
}

func TestPredictMoodMixedText(t *testing.T) {
	// Two anxious markers against one sad marker.
	pred := PredictMood("worried and stressed, also a bit lonely")
	assert.Equal(t, "anxious", pred.Mood)
	assert.InDelta(t, 2.0/3.0, pred.Confidence, 1e-9)
}

func TestPredictMoodExactWordMatch(t *testing.T) {
	// "unhappy" is a sad marker and must not count as happy.
	pred := PredictMood("feeling unhappy")
	assert.Equal(t, "sad", pred.Mood)
	assert.Equal(t, 1.0, pred.Confidence)
}

func TestPredictMoodStripsPunctuation(t *testing.T) {
	pred := PredictMood("Grateful! So thankful.")
	assert.Equal(t, "grateful", pred.Mood)
}
