// Package scoring holds the deterministic rule-based scorers. Every
// function here is pure: the same inputs always produce the same
// labels, so results can be recomputed or verified anywhere.
package scoring

import (
	"mindwell/backend/models"
)

// WellnessResult is the outcome of the additive wellness rules.
type WellnessResult struct {
	StressScore     int
	DepressionScore int
	StressLevel     string
	DepressionRisk  string
	Suggestions     []string
}

const (
	suggestExercise   = "Incorporate regular physical activity."
	suggestScreenTime = "Reduce daily screen time, especially before bed."
	suggestReachOut   = "Reach out to a friend or family member for support."
	suggestMindful    = "Practice mindfulness or deep breathing exercises."
	suggestBoundaries = "Consider setting boundaries for work/study hours."
)

// Wellness computes stress level and depression risk from the ten
// questionnaire inputs by additive point accumulation. Inputs are
// assumed validated; an unknown deadlinePressure simply contributes
// no points.
func Wellness(in models.WellnessInputs) WellnessResult {
	stressScore := 0
	depressionScore := 0
	var suggestions []string

	push := func(s string) {
		for _, existing := range suggestions {
			if existing == s {
				return
			}
		}
		suggestions = append(suggestions, s)
	}

	// Lifestyle factors: less sleep means higher risk.
	if in.SleepHours < 6 {
		stressScore += 3
	} else if in.SleepHours <= 7 {
		stressScore += 1
	}

	if in.ExerciseFrequency < 2 {
		stressScore += 2
		depressionScore += 2
		push(suggestExercise)
	} else if in.ExerciseFrequency <= 4 {
		stressScore += 1
		depressionScore += 1
	}

	if in.ScreenTime > 5 {
		stressScore += 2
		depressionScore += 1
		push(suggestScreenTime)
	} else if in.ScreenTime > 3 {
		stressScore += 1
	}

	// Emotional state: Likert 0-3 answers added raw.
	depressionScore += in.LittleInterest
	depressionScore += in.FeelingDown
	stressScore += in.TroubleConcentrating
	stressScore += in.FeelingTired
	stressScore += in.FeelingAnxious

	if in.FeelingDown > 1 || in.LittleInterest > 1 {
		push(suggestReachOut)
	}
	if in.FeelingAnxious > 1 {
		push(suggestMindful)
	}

	// Work/study stress.
	if in.HoursWorked > 10 {
		stressScore += 3
	} else if in.HoursWorked > 8 {
		stressScore += 2
	}

	deadlinePressureScore := 0
	switch in.DeadlinePressure {
	case "low":
		deadlinePressureScore = 1
	case "medium":
		deadlinePressureScore = 2
	case "high":
		deadlinePressureScore = 3
	}
	stressScore += deadlinePressureScore * 2 // weighted more heavily

	if in.DeadlinePressure == "high" || in.HoursWorked > 10 {
		push(suggestBoundaries)
	}

	stressLevel := "Low"
	if stressScore >= 8 {
		stressLevel = "High"
	} else if stressScore >= 4 {
		stressLevel = "Moderate"
	}

	depressionRisk := "Low"
	if depressionScore >= 6 {
		depressionRisk = "High"
	} else if depressionScore >= 3 {
		depressionRisk = "Moderate"
	}

	return WellnessResult{
		StressScore:     stressScore,
		DepressionScore: depressionScore,
		StressLevel:     stressLevel,
		DepressionRisk:  depressionRisk,
		Suggestions:     suggestions,
	}
}
