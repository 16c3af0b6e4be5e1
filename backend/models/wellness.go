package models

import (
	"gorm.io/gorm"
)

// WellnessInputs are the ten lifestyle/emotional answers of the general
// wellness questionnaire. The four emotional items are Likert 0-3.
type WellnessInputs struct {
	SleepHours           float64 `json:"sleepHours"`           // 0-12
	ExerciseFrequency    float64 `json:"exerciseFrequency"`    // days/week, 0-7
	ScreenTime           float64 `json:"screenTime"`           // hours/day
	LittleInterest       int     `json:"littleInterest"`       // 0-3
	FeelingDown          int     `json:"feelingDown"`          // 0-3
	TroubleConcentrating int     `json:"troubleConcentrating"` // 0-3
	FeelingTired         int     `json:"feelingTired"`         // 0-3
	FeelingAnxious       int     `json:"feelingAnxious"`       // 0-3
	HoursWorked          float64 `json:"hoursWorked"`
	DeadlinePressure     string  `json:"deadlinePressure"` // low, medium, high
}

type WellnessAssessment struct {
	gorm.Model
	UserID         uint           `gorm:"index;not null" json:"user"`
	Inputs         WellnessInputs `gorm:"embedded;embeddedPrefix:input_" json:"inputs"`
	StressLevel    string         `gorm:"not null" json:"stressLevel"`    // Low, Moderate, High
	DepressionRisk string         `gorm:"not null" json:"depressionRisk"` // Low, Moderate, High
	Suggestions    []string       `gorm:"serializer:json" json:"suggestions"`
}
