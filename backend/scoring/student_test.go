package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentStressBands(t *testing.T) {
	assert.Equal(t, "Low", StudentStress(30).StressLevel)
	assert.Equal(t, "Moderate", StudentStress(30.5).StressLevel)
	assert.Equal(t, "Moderate", StudentStress(60).StressLevel)
	assert.Equal(t, "High", StudentStress(61).StressLevel)

	high := StudentStress(80)
	assert.Contains(t, high.Advice, "counselor")
	assert.Len(t, high.CopingStrategies, 4)

	low := StudentStress(10)
	assert.Contains(t, low.Advice, "manageable")
}

func TestStudentProcrastinationBands(t *testing.T) {
	assert.Equal(t, "High", StudentProcrastination(39).RiskLevel)
	assert.Equal(t, "Moderate", StudentProcrastination(40).RiskLevel)
	assert.Equal(t, "Moderate", StudentProcrastination(69).RiskLevel)
	assert.Equal(t, "Low", StudentProcrastination(70).RiskLevel)

	assert.Contains(t, StudentProcrastination(20).Advice, "Pomodoro")
	assert.Contains(t, StudentProcrastination(90).Advice, "momentum")
}

func TestStudentSleepBands(t *testing.T) {
	assert.Equal(t, "Low", StudentSleep(30).RiskLevel)
	assert.Equal(t, "Moderate", StudentSleep(31).RiskLevel)
	assert.Equal(t, "Moderate", StudentSleep(60).RiskLevel)
	assert.Equal(t, "High", StudentSleep(61).RiskLevel)

	assert.Contains(t, StudentSleep(70).Insights, "burnout")
	assert.Contains(t, StudentSleep(20).Insights, "healthy")
}

func TestStudentConfidenceScoring(t *testing.T) {
	// Three positive markers, no negatives: 50 + 30.
	pred := StudentConfidence("I feel confident and strong today", "proud of my work")
	assert.Equal(t, "Positive", pred.Sentiment)
	assert.Equal(t, 80.0, pred.ConfidenceScore)
	assert.Len(t, pred.Affirmations, 5)

	// Two negative markers: 50 - 10.
	pred = StudentConfidence("worried about exams", "full of doubt")
	assert.Equal(t, "Negative", pred.Sentiment)
	assert.Equal(t, 40.0, pred.ConfidenceScore)

	pred = StudentConfidence("", "")
	assert.Equal(t, "Neutral", pred.Sentiment)
	assert.Equal(t, 50.0, pred.ConfidenceScore)
}

func TestStudentConfidencePresenceNotFrequency(t *testing.T) {
	// Repeating a marker word does not increase its count.
	pred := StudentConfidence("happy happy happy", "")
	assert.Equal(t, 60.0, pred.ConfidenceScore)
}

func TestStudentConfidenceScoreClamped(t *testing.T) {
	pred := StudentConfidence(
		"confident strong capable proud happy grateful", "")
	assert.Equal(t, 100.0, pred.ConfidenceScore)
}

func TestStudentCareerMapping(t *testing.T) {
	interests := map[string]float64{
		"analytical": 8,
		"creative":   6,
		"social":     2,
	}

	pred := StudentCareer(interests, 3)
	assert.Equal(t, "Data Scientist or Research Scientist", pred.PrimaryCareer)
	assert.Contains(t, pred.Reasoning, "analytical and creative")
	assert.Contains(t, pred.UncertaintyAdvice, "manageable")
	assert.Len(t, pred.NextSteps, 4)
}

func TestStudentCareerTieBreaksByName(t *testing.T) {
	interests := map[string]float64{
		"social":   5,
		"helping":  5,
		"creative": 5,
	}

	// Ties rank alphabetically, so creative wins.
	pred := StudentCareer(interests, 1)
	assert.Equal(t, "Designer or Marketing Professional", pred.PrimaryCareer)
	assert.Contains(t, pred.Reasoning, "creative and helping")
}

func TestStudentCareerHighAnxiety(t *testing.T) {
	pred := StudentCareer(map[string]float64{"leadership": 7}, 8)
	assert.Equal(t, "Entrepreneur or Manager", pred.PrimaryCareer)
	assert.Contains(t, pred.UncertaintyAdvice, "career advisor")
}

func TestStudentCareerUnknownInterest(t *testing.T) {
	pred := StudentCareer(map[string]float64{"astronomy": 9}, 2)
	assert.Equal(t, "Professional in your field of interest", pred.PrimaryCareer)
}
