package scoring

import (
	"testing"

	"mindwell/backend/models"

	"github.com/stretchr/testify/assert"
)

// calmInputs is a baseline that scores zero on both scales.
func calmInputs() models.WellnessInputs {
	return models.WellnessInputs{
		SleepHours:        8,
		ExerciseFrequency: 5,
		ScreenTime:        1,
		HoursWorked:       4,
		DeadlinePressure:  "low",
	}
}

func TestWellnessDeterministic(t *testing.T) {
	in := models.WellnessInputs{
		SleepHours:        5,
		ExerciseFrequency: 1,
		ScreenTime:        6,
		LittleInterest:    2,
		FeelingDown:       2,
		FeelingAnxious:    2,
		HoursWorked:       11,
		DeadlinePressure:  "high",
	}

	first := Wellness(in)
	second := Wellness(in)
	assert.Equal(t, first, second)
}

func TestWellnessSleepBoundaries(t *testing.T) {
	cases := []struct {
		sleepHours float64
		stress     int
	}{
		{5.99, 3},
		{6, 1},
		{7, 1},
		{7.01, 0},
		{8, 0},
	}
	for _, tc := range cases {
		in := calmInputs()
		// deadlinePressure low always contributes 2
		in.SleepHours = tc.sleepHours
		result := Wellness(in)
		assert.Equal(t, tc.stress+2, result.StressScore, "sleepHours=%v", tc.sleepHours)
	}
}

func TestWellnessStressLevels(t *testing.T) {
	// Likert items feed stress directly, so the thresholds can be hit
	// exactly: low pressure contributes 2 points.
	in := calmInputs()
	in.TroubleConcentrating = 1
	result := Wellness(in)
	assert.Equal(t, 3, result.StressScore)
	assert.Equal(t, "Low", result.StressLevel)

	in.TroubleConcentrating = 2
	result = Wellness(in)
	assert.Equal(t, 4, result.StressScore)
	assert.Equal(t, "Moderate", result.StressLevel)

	in.TroubleConcentrating = 3
	in.FeelingTired = 3
	result = Wellness(in)
	assert.Equal(t, 8, result.StressScore)
	assert.Equal(t, "High", result.StressLevel)
}

func TestWellnessDepressionLevels(t *testing.T) {
	in := calmInputs()
	in.LittleInterest = 2
	result := Wellness(in)
	assert.Equal(t, 2, result.DepressionScore)
	assert.Equal(t, "Low", result.DepressionRisk)

	in.FeelingDown = 1
	result = Wellness(in)
	assert.Equal(t, 3, result.DepressionScore)
	assert.Equal(t, "Moderate", result.DepressionRisk)

	in.FeelingDown = 3
	result = Wellness(in)
	assert.Equal(t, 5, result.DepressionScore)
	assert.Equal(t, "Moderate", result.DepressionRisk)

	in.LittleInterest = 3
	result = Wellness(in)
	assert.Equal(t, 6, result.DepressionScore)
	assert.Equal(t, "High", result.DepressionRisk)
}

func TestWellnessSuggestionsDeduplicated(t *testing.T) {
	// High deadline pressure plus long hours both trigger the
	// boundaries suggestion; it must appear only once.
	in := calmInputs()
	in.HoursWorked = 12
	in.DeadlinePressure = "high"

	result := Wellness(in)

	count := 0
	for _, s := range result.Suggestions {
		if s == suggestBoundaries {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestWellnessSuggestionOrderPreserved(t *testing.T) {
	in := models.WellnessInputs{
		SleepHours:        8,
		ExerciseFrequency: 0,
		ScreenTime:        6,
		FeelingDown:       2,
		FeelingAnxious:    2,
		HoursWorked:       12,
		DeadlinePressure:  "high",
	}

	result := Wellness(in)
	assert.Equal(t, []string{
		suggestExercise,
		suggestScreenTime,
		suggestReachOut,
		suggestMindful,
		suggestBoundaries,
	}, result.Suggestions)
}

func TestWellnessHighStressScenario(t *testing.T) {
	in := models.WellnessInputs{
		SleepHours:           4,
		ExerciseFrequency:    0,
		ScreenTime:           8,
		LittleInterest:       3,
		FeelingDown:          3,
		TroubleConcentrating: 3,
		FeelingTired:         3,
		FeelingAnxious:       3,
		HoursWorked:          12,
		DeadlinePressure:     "high",
	}

	result := Wellness(in)
	assert.Equal(t, 25, result.StressScore)
	assert.Equal(t, 9, result.DepressionScore)
	assert.Equal(t, "High", result.StressLevel)
	assert.Equal(t, "High", result.DepressionRisk)
}

func TestWellnessOverloadedWeekScenario(t *testing.T) {
	// Short sleep, no exercise, heavy screen use, elevated mood items
	// and a 12-hour high-pressure workday: every suggestion fires and
	// both scales land in their top bands.
	in := models.WellnessInputs{
		SleepHours:           4,
		ExerciseFrequency:    1,
		ScreenTime:           6,
		LittleInterest:       2,
		FeelingDown:          2,
		TroubleConcentrating: 1,
		FeelingTired:         1,
		FeelingAnxious:       2,
		HoursWorked:          12,
		DeadlinePressure:     "high",
	}

	result := Wellness(in)
	assert.Equal(t, 20, result.StressScore)
	assert.Equal(t, 7, result.DepressionScore)
	assert.Equal(t, "High", result.StressLevel)
	assert.Equal(t, "High", result.DepressionRisk)
	assert.Equal(t, []string{
		suggestExercise,
		suggestScreenTime,
		suggestReachOut,
		suggestMindful,
		suggestBoundaries,
	}, result.Suggestions)
}

func TestWellnessUnknownDeadlinePressure(t *testing.T) {
	in := calmInputs()
	in.DeadlinePressure = "extreme"

	result := Wellness(in)
	assert.Equal(t, 0, result.StressScore)
	assert.Equal(t, "Low", result.StressLevel)
}
