package models

import (
	"time"

	"gorm.io/gorm"
)

// Per-user time series documents for the student tools. Each row is
// self-contained: the predictions sub-object is computed once at write
// time and never recomputed afterwards.

// StressPrediction is the advice snapshot for a stress check-in.
type StressPrediction struct {
	StressLevel      string   `json:"stressLevel"` // Low, Moderate, High
	Advice           string   `json:"advice"`
	CopingStrategies []string `json:"copingStrategies"`
}

type StudentStress struct {
	gorm.Model
	UserID            uint              `gorm:"index;not null" json:"userId"`
	AcademicPressure  float64           `json:"academicPressure"` // 1-8
	ExamAnxiety       float64           `json:"examAnxiety"`
	TimeManagement    float64           `json:"timeManagement"`
	PeerComparison    float64           `json:"peerComparison"`
	FutureUncertainty float64           `json:"futureUncertainty"`
	SleepQuality      float64           `json:"sleepQuality"`
	CopingMechanisms  float64           `json:"copingMechanisms"`
	StressLevel       float64           `json:"stressLevel"` // 0-100
	JournalEntry      string            `json:"journalEntry"`
	DayOfWeek         string            `json:"dayOfWeek"`
	Predictions       *StressPrediction `gorm:"serializer:json" json:"predictions,omitempty"`
}

type StudentTask struct {
	Title         string     `json:"title"`
	Deadline      time.Time  `json:"deadline"`
	Priority      string     `json:"priority"` // low, medium, high
	EstimatedTime float64    `json:"estimatedTime"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	TimeSpent     float64    `json:"timeSpent,omitempty"`
}

type ProcrastinationPrediction struct {
	RiskLevel   string   `json:"riskLevel"` // Low, Moderate, High
	Advice      string   `json:"advice"`
	Suggestions []string `json:"suggestions"`
}

type StudentProcrastination struct {
	gorm.Model
	UserID             uint                       `gorm:"index;not null" json:"userId"`
	Tasks              []StudentTask              `gorm:"serializer:json" json:"tasks"`
	CompletedPomodoros int                        `json:"completedPomodoros"`
	ProductivityScore  float64                    `json:"productivityScore"` // 0-100
	Reflection         string                     `json:"reflection"`
	Predictions        *ProcrastinationPrediction `gorm:"serializer:json" json:"predictions,omitempty"`
}

type SleepPrediction struct {
	RiskLevel       string   `json:"riskLevel"` // Low, Moderate, High
	Recommendations []string `json:"recommendations"`
	Insights        string   `json:"insights"`
}

type StudentSleep struct {
	gorm.Model
	UserID           uint             `gorm:"index;not null" json:"userId"`
	HoursSlept       float64          `json:"hoursSlept"`
	SleepQuality     float64          `json:"sleepQuality"` // 1-10
	Bedtime          string           `json:"bedtime"`      // HH:MM
	WakeTime         string           `json:"wakeTime"`     // HH:MM
	CaffeineIntake   float64          `json:"caffeineIntake"`
	ScreenTime       float64          `json:"screenTime"`
	StressLevel      float64          `json:"stressLevel"`
	HygieneChecklist []string         `gorm:"serializer:json" json:"hygieneChecklist"`
	BurnoutRisk      float64          `json:"burnoutRisk"` // 0-100
	Date             string           `json:"date"`        // YYYY-MM-DD
	Predictions      *SleepPrediction `gorm:"serializer:json" json:"predictions,omitempty"`
}

type ConfidencePrediction struct {
	Sentiment       string   `json:"sentiment"` // Positive, Neutral, Negative
	Feedback        string   `json:"feedback"`
	Affirmations    []string `json:"affirmations"`
	ConfidenceScore float64  `json:"confidenceScore"` // 0-100
}

type StudentConfidence struct {
	gorm.Model
	UserID             uint                  `gorm:"index;not null" json:"userId"`
	Reflections        map[string]string     `gorm:"serializer:json" json:"reflections"`
	AnonymousJournal   string                `json:"anonymousJournal"`
	ComparisonThoughts string                `json:"comparisonThoughts"`
	Predictions        *ConfidencePrediction `gorm:"serializer:json" json:"predictions,omitempty"`
}

type CareerPrediction struct {
	PrimaryCareer     string   `json:"primaryCareer"`
	Reasoning         string   `json:"reasoning"`
	NextSteps         []string `json:"nextSteps"`
	UncertaintyAdvice string   `json:"uncertaintyAdvice"`
}

type StudentCareer struct {
	gorm.Model
	UserID          uint               `gorm:"index;not null" json:"userId"`
	Interests       map[string]float64 `gorm:"serializer:json" json:"interests"` // interest -> rating 1-8
	Strengths       string             `json:"strengths"`
	CareerConcerns  string             `json:"careerConcerns"`
	FutureAnxiety   float64            `json:"futureAnxiety"` // 1-10
	SelectedCareers []string           `gorm:"serializer:json" json:"selectedCareers"`
	RoadmapCreated  bool               `json:"roadmapCreated"`
	Predictions     *CareerPrediction  `gorm:"serializer:json" json:"predictions,omitempty"`
}
