package scoring

import (
	"strings"
	"time"

	"mindwell/backend/models"
)

// moodKeywords is a trimmed-down marker-word table covering the ten
// mood values of the journal sentiment set. Matching is per-word exact
// so "unhappy" does not count as happy.
var moodKeywords = map[string][]string{
	"happy":    {"happy", "joy", "excited", "great", "wonderful", "amazing", "fantastic", "love", "loved", "enjoy", "delighted", "thrilled", "blessed", "proud", "fun", "laugh", "smile", "cheerful", "glad", "pleased"},
	"sad":      {"sad", "unhappy", "depressed", "down", "heartbroken", "disappointed", "lonely", "alone", "cry", "tears", "hurt", "pain", "sorrow", "grief", "regret", "guilty", "hopeless", "miserable", "gloomy"},
	"anxious":  {"anxious", "worried", "nervous", "scared", "afraid", "fear", "panic", "stress", "stressed", "overwhelmed", "tension", "pressure", "uneasy", "dread", "restless", "tense"},
	"angry":    {"angry", "mad", "furious", "rage", "hate", "hated", "frustrated", "annoyed", "irritated", "enraged", "resentful", "bitter", "hostile", "outraged"},
	"calm":     {"calm", "peaceful", "relaxed", "serene", "tranquil", "quiet", "gentle", "soothing", "comfortable", "balanced", "centered", "mindful", "zen", "restful"},
	"excited":  {"enthusiastic", "eager", "keen", "passionate", "energetic", "lively", "vibrant", "motivated", "inspired", "driven", "determined", "pumped"},
	"tired":    {"tired", "exhausted", "fatigued", "weary", "drained", "sleepy", "drowsy", "lethargic", "sluggish", "overworked", "spent"},
	"confused": {"confused", "uncertain", "unsure", "bewildered", "puzzled", "perplexed", "baffled", "disoriented", "lost", "unclear"},
	"hopeful":  {"hopeful", "optimistic", "positive", "confident", "encouraged", "uplifted", "empowered", "capable", "strong", "resilient", "promising", "bright"},
	"grateful": {"grateful", "thankful", "appreciative", "fortunate", "lucky", "privileged", "cherishing"},
}

// PredictMood classifies a journal text by counting mood keyword hits
// and picking the mood with the most. Confidence is the winning count
// over the total hit count across all moods; an empty or hit-free text
// comes back neutral with zero confidence.
func PredictMood(text string) *models.MoodPrediction {
	pred := &models.MoodPrediction{
		Mood:        "neutral",
		Confidence:  0,
		Model:       "keyword-based",
		ProcessedAt: time.Now().UTC(),
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return pred
	}
	present := make(map[string]bool, len(words))
	for _, w := range words {
		present[strings.Trim(w, ".,!?;:'\"()")] = true
	}

	counts := make(map[string]int, len(moodKeywords))
	total := 0
	for mood, keywords := range moodKeywords {
		for _, kw := range keywords {
			if present[kw] {
				counts[mood]++
				total++
			}
		}
	}
	if total == 0 {
		return pred
	}

	best := ""
	bestCount := 0
	for mood, n := range counts {
		if n > bestCount || (n == bestCount && (best == "" || mood < best)) {
			best = mood
			bestCount = n
		}
	}

	pred.Mood = best
	pred.Confidence = float64(bestCount) / float64(total)
	return pred
}
