package models

import (
	"gorm.io/gorm"
)

// DiabetesInputs are the eight Pima-style clinical parameters.
type DiabetesInputs struct {
	Pregnancies              float64 `json:"pregnancies"`
	Glucose                  float64 `json:"glucose"`
	BloodPressure            float64 `json:"bloodPressure"`
	SkinThickness            float64 `json:"skinThickness"`
	Insulin                  float64 `json:"insulin"`
	BMI                      float64 `json:"bmi"`
	DiabetesPedigreeFunction float64 `json:"diabetesPedigreeFunction"`
	Age                      float64 `json:"age"`
}

type DiabetesAssessment struct {
	gorm.Model
	UserID          uint           `gorm:"index;not null" json:"user"`
	Inputs          DiabetesInputs `gorm:"embedded;embeddedPrefix:input_" json:"inputs"`
	Prediction      string         `json:"prediction"`
	Risk            string         `json:"risk"` // Low, Moderate, High
	Probability     float64        `json:"probability"`
	Confidence      float64        `json:"confidence"` // percentage
	RiskScore       float64        `json:"riskScore"`  // percentage
	Recommendations []string       `gorm:"serializer:json" json:"recommendations"`
}

// HeartDiseaseInputs are the eleven Cleveland-dataset features.
type HeartDiseaseInputs struct {
	Age            float64 `json:"age"`
	Sex            float64 `json:"sex"`
	ChestPainType  float64 `json:"chestPainType"`
	RestingBP      float64 `json:"restingBP"`
	Cholesterol    float64 `json:"cholesterol"`
	FastingBS      float64 `json:"fastingBS"`
	RestingECG     float64 `json:"restingECG"`
	MaxHR          float64 `json:"maxHR"`
	ExerciseAngina float64 `json:"exerciseAngina"`
	Oldpeak        float64 `json:"oldpeak"`
	STSlope        float64 `json:"stSlope"`
}

type HeartDiseaseAssessment struct {
	gorm.Model
	UserID          uint               `gorm:"index;not null" json:"user"`
	Inputs          HeartDiseaseInputs `gorm:"embedded;embeddedPrefix:input_" json:"inputs"`
	Prediction      string             `json:"prediction"`
	Risk            string             `json:"risk"`
	Probability     float64            `json:"probability"`
	Confidence      float64            `json:"confidence"`
	RiskScore       float64            `json:"riskScore"`
	Recommendations []string           `gorm:"serializer:json" json:"recommendations"`
}

// MentalHealthScores are the four questionnaire totals.
type MentalHealthScores struct {
	PHQ9Total int `json:"phq9_total"` // 0-27
	GAD7Total int `json:"gad7_total"` // 0-21
	PSSTotal  int `json:"pss_total"`  // 0-40
	WHO5Total int `json:"who5_total"` // 0-25
}

// MentalHealthSeverities are the per-questionnaire severity labels
// derived from the standard clinical cut-points.
type MentalHealthSeverities struct {
	Depression string `json:"depression"`
	Anxiety    string `json:"anxiety"`
	Stress     string `json:"stress"`
	Wellbeing  string `json:"wellbeing"`
}

type MentalHealthAssessment struct {
	gorm.Model
	UserID          uint                   `gorm:"index;not null" json:"user"`
	PHQ9Answers     []int                  `gorm:"serializer:json" json:"phq9_answers"`
	GAD7Answers     []int                  `gorm:"serializer:json" json:"gad7_answers"`
	PSSAnswers      []int                  `gorm:"serializer:json" json:"pss_answers"`
	WHO5Answers     []int                  `gorm:"serializer:json" json:"who5_answers"`
	Scores          MentalHealthScores     `gorm:"embedded;embeddedPrefix:score_" json:"scores"`
	SeverityLevels  MentalHealthSeverities `gorm:"embedded;embeddedPrefix:severity_" json:"severity_levels"`
	OverallStatus   string                 `json:"overall_status"`
	Recommendations []string               `gorm:"serializer:json" json:"recommendations"`
	RiskFactors     map[string]interface{} `gorm:"serializer:json" json:"risk_factors"`
}
