package controllers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"mindwell/backend/config"
	"mindwell/backend/models"
	"mindwell/backend/predictor"
	"mindwell/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	diabetesDisclaimer = "This assessment is for informational purposes only and should not replace professional medical advice. Always consult with qualified healthcare providers for medical concerns and proper diagnosis."
	heartDisclaimer    = "This assessment is for informational purposes only and should not replace professional medical advice. Always consult with qualified healthcare providers, particularly cardiologists, for cardiovascular concerns."
	mentalDisclaimer   = "This assessment is for informational and educational purposes only and should NOT replace professional mental health diagnosis, treatment, or counseling. Always consult with qualified mental health professionals, psychiatrists, or therapists for proper evaluation and care. If you are experiencing severe symptoms or having thoughts of self-harm, please seek immediate professional help."

	historyLimit = 10
)

var diabetesFields = []string{
	"pregnancies", "glucose", "bloodPressure", "skinThickness",
	"insulin", "bmi", "diabetesPedigreeFunction", "age",
}

var heartFields = []string{
	"age", "sex", "chestPainType", "restingBP", "cholesterol",
	"fastingBS", "restingECG", "maxHR", "exerciseAngina", "oldpeak", "stSlope",
}

type HealthController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Runner *predictor.Runner
}

func NewHealthController(db *gorm.DB, cfg *config.Config, runner *predictor.Runner) *HealthController {
	return &HealthController{DB: db, Cfg: cfg, Runner: runner}
}

// percent converts a 0-1 probability to a percentage rounded to one
// decimal place.
func percent(v float64) float64 {
	return math.Round(v*1000) / 10
}

func floatField(result map[string]interface{}, key string) float64 {
	v, _ := result[key].(float64)
	return v
}

// DiabetesPredict godoc
// @Summary Predict diabetes risk
// @Description Runs the diabetes model and returns the prediction with riskScore and confidence as percentages; the result is not persisted
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /health/diabetes-predict [post]
func (hc *HealthController) DiabetesPredict(c *fiber.Ctx) error {
	_, err := utils.ExtractUserIDFromToken(c, hc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var inputs models.DiabetesInputs
	dst := []*float64{
		&inputs.Pregnancies, &inputs.Glucose, &inputs.BloodPressure, &inputs.SkinThickness,
		&inputs.Insulin, &inputs.BMI, &inputs.DiabetesPedigreeFunction, &inputs.Age,
	}
	for i, field := range diabetesFields {
		raw, present := body[field]
		if !present || raw == nil {
			return utils.BadRequest(c, fmt.Sprintf("Missing required field: %s", field))
		}
		v, ok := raw.(float64)
		if !ok || v < 0 {
			return utils.BadRequest(c, fmt.Sprintf("Invalid value for %s: must be a non-negative number", field))
		}
		*dst[i] = v
	}

	result, err := hc.Runner.Diabetes(c.Context(), inputs)
	if err != nil {
		var exitErr *predictor.ExitError
		switch {
		case errors.As(err, &exitErr):
			detail := exitErr.Stderr
			if detail == "" {
				detail = "Unknown error occurred"
			}
			return utils.Fail(c, fiber.StatusInternalServerError, "Prediction model error", detail)
		case errors.Is(err, predictor.ErrBadOutput):
			return utils.ServerError(c, "Error parsing prediction result", err)
		default:
			return utils.ServerError(c, "Failed to execute prediction model", err)
		}
	}

	result["riskScore"] = percent(floatField(result, "probability"))
	result["confidence"] = percent(floatField(result, "confidence"))
	result["disclaimer"] = diabetesDisclaimer
	result["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	result["saved_to_history"] = false

	return c.JSON(result)
}

// DiabetesSave godoc
// @Summary Save a diabetes assessment
// @Description Persists a previously returned prediction together with its inputs
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /health/diabetes-save [post]
func (hc *HealthController) DiabetesSave(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, hc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		models.DiabetesInputs
		Prediction string   `json:"prediction"`
		RiskScore  *float64 `json:"riskScore"`
		Confidence *float64 `json:"confidence"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Prediction == "" || input.RiskScore == nil || input.Confidence == nil {
		return utils.BadRequest(c, "Missing prediction results for saving")
	}

	assessment := models.DiabetesAssessment{
		UserID:     userID,
		Inputs:     input.DiabetesInputs,
		Prediction: input.Prediction,
		Risk:       input.Prediction,
		// confidence arrives as a percentage
		Probability:     *input.Confidence / 100,
		Confidence:      *input.Confidence,
		RiskScore:       *input.RiskScore,
		Recommendations: []string{},
	}
	if err := hc.DB.Create(&assessment).Error; err != nil {
		return utils.ServerError(c, "Server error during diabetes assessment save", err)
	}

	return c.JSON(fiber.Map{
		"msg":          "Diabetes assessment saved successfully",
		"assessmentId": assessment.ID,
	})
}

// DiabetesHistory godoc
// @Summary List the last 10 diabetes assessments, newest first
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /health/diabetes-history [get]
func (hc *HealthController) DiabetesHistory(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, hc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if !utils.DBAvailable(hc.DB) {
		return utils.ServiceUnavailable(c, "Database not available", "database connection failed")
	}

	var assessments []models.DiabetesAssessment
	if err := hc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&assessments).Error; err != nil {
		return utils.ServerError(c, "Server error retrieving diabetes history", err)
	}

	items := make([]fiber.Map, 0, len(assessments))
	for _, a := range assessments {
		items = append(items, fiber.Map{
			"id":          a.ID,
			"createdAt":   a.CreatedAt,
			"risk":        a.Risk,
			"prediction":  a.Prediction,
			"probability": a.Probability,
			"inputs":      a.Inputs,
		})
	}

	return c.JSON(fiber.Map{
		"assessments": items,
		"total":       len(items),
	})
}

// HeartPredict godoc
// @Summary Predict heart disease risk
// @Description Runs the heart disease model; when the model process cannot be started at all a mock prediction is returned instead of an error
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /health/heart-predict [post]
func (hc *HealthController) HeartPredict(c *fiber.Ctx) error {
	_, err := utils.ExtractUserIDFromToken(c, hc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// These fields arrive as numbers or numeric strings depending on
	// the client form; both are passed through as argument strings.
	args := make([]string, 0, len(heartFields))
	for _, field := range heartFields {
		raw, present := body[field]
		if !present || raw == nil {
			return utils.BadRequest(c, fmt.Sprintf("Missing required field: %s", field))
		}
		arg, ok := toArgString(raw)
		if !ok {
			return utils.BadRequest(c, fmt.Sprintf("Invalid type for %s: must be a number or string", field))
		}
		args = append(args, arg)
	}

	result, err := hc.Runner.HeartDisease(c.Context(), args)
	if err != nil {
		var exitErr *predictor.ExitError
		switch {
		case errors.As(err, &exitErr):
			detail := exitErr.Stderr
			if detail == "" {
				detail = "Unknown error occurred"
			}
			return utils.Fail(c, fiber.StatusInternalServerError, "Heart disease prediction model error", detail)
		case errors.Is(err, predictor.ErrBadOutput):
			return utils.ServerError(c, "Error parsing heart disease prediction result", err)
		default:
			// Interpreter missing entirely. Degrade to a mock result so
			// the client flow keeps working.
			return c.JSON(heartMockResult())
		}
	}

	result["riskScore"] = percent(floatField(result, "probability"))
	result["confidence"] = percent(floatField(result, "confidence"))
	result["disclaimer"] = heartDisclaimer
	result["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	result["saved_to_history"] = false

	return c.JSON(result)
}

func toArgString(v interface{}) (string, bool) {
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case string:
		return t, true
	default:
		return "", false
	}
}

func heartMockResult() fiber.Map {
	return fiber.Map{
		"prediction":  0,
		"probability": 0.35,
		"risk":        "Moderate",
		"confidence":  0.35,
		"recommendations": []string{
			"This is a mock prediction for testing purposes.",
			"Please consult a healthcare professional for actual medical advice.",
			"Server ML model temporarily unavailable due to system constraints.",
		},
		"risk_factors": fiber.Map{
			"age_risk":           0.3,
			"gender_risk":        0.5,
			"chest_pain_risk":    0.4,
			"bp_risk":            0.3,
			"cholesterol_risk":   0.6,
			"fbs_risk":           0.0,
			"hr_risk":            0.4,
			"angina_risk":        0.0,
			"st_depression_risk": 0.2,
			"st_slope_risk":      0.3,
			"total_risk_score":   0.35,
		},
		"model_info": fiber.Map{
			"name":          "Heart Disease Risk Predictor (Mock)",
			"dataset":       "Cleveland Heart Disease Dataset",
			"accuracy":      "Mock Data - 85-90%",
			"algorithm":     "Fallback Mode",
			"features_used": 11,
		},
		"disclaimer": heartDisclaimer,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"note":       "Mock prediction data - ML model temporarily unavailable",
	}
}

// HeartSave godoc
// @Summary Save a heart disease assessment
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /health/heart-disease-save [post]
func (hc *HealthController) HeartSave(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, hc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		models.HeartDiseaseInputs
		Prediction string   `json:"prediction"`
		RiskScore  *float64 `json:"riskScore"`
		Confidence *float64 `json:"confidence"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Prediction == "" || input.RiskScore == nil || input.Confidence == nil {
		return utils.BadRequest(c, "Missing prediction results for saving")
	}

	assessment := models.HeartDiseaseAssessment{
		UserID:          userID,
		Inputs:          input.HeartDiseaseInputs,
		Prediction:      input.Prediction,
		Risk:            input.Prediction,
		Probability:     *input.Confidence / 100,
		Confidence:      *input.Confidence,
		RiskScore:       *input.RiskScore,
		Recommendations: []string{},
	}
	if err := hc.DB.Create(&assessment).Error; err != nil {
		return utils.ServerError(c, "Server error during heart disease assessment save", err)
	}

	return c.JSON(fiber.Map{
		"msg":          "Heart disease assessment saved successfully",
		"assessmentId": assessment.ID,
	})
}

// HeartHistory godoc
// @Summary List the last 10 heart disease assessments, newest first
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /health/heart-disease-history [get]
func (hc *HealthController) HeartHistory(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, hc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if !utils.DBAvailable(hc.DB) {
		return utils.ServiceUnavailable(c, "Database not available", "database connection failed")
	}

	var assessments []models.HeartDiseaseAssessment
	if err := hc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&assessments).Error; err != nil {
		return utils.ServerError(c, "Server error retrieving heart disease history", err)
	}

	items := make([]fiber.Map, 0, len(assessments))
	for _, a := range assessments {
		items = append(items, fiber.Map{
			"id":          a.ID,
			"createdAt":   a.CreatedAt,
			"risk":        a.Risk,
			"prediction":  a.Prediction,
			"probability": a.Probability,
			"inputs":      a.Inputs,
		})
	}

	return c.JSON(fiber.Map{
		"assessments": items,
		"total":       len(items),
	})
}

// MentalHealthPredict godoc
// @Summary Run the standardized mental health assessment
// @Description Validates the 31 questionnaire answers before dispatch; the result is never persisted automatically
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /health/mental-health-predict [post]
func (hc *HealthController) MentalHealthPredict(c *fiber.Ctx) error {
	_, err := utils.ExtractUserIDFromToken(c, hc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		PHQ9Answers []int `json:"phq9_answers"`
		GAD7Answers []int `json:"gad7_answers"`
		PSSAnswers  []int `json:"pss_answers"`
		WHO5Answers []int `json:"who5_answers"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	groups := []struct {
		name    string
		answers []int
		label   string
		max     int
	}{
		{"phq9_answers", input.PHQ9Answers, "PHQ-9", 3},
		{"gad7_answers", input.GAD7Answers, "GAD-7", 3},
		{"pss_answers", input.PSSAnswers, "PSS-10", 4},
		{"who5_answers", input.WHO5Answers, "WHO-5", 5},
	}
	for _, g := range groups {
		if g.answers == nil {
			return utils.BadRequest(c, fmt.Sprintf("Missing or invalid required field: %s", g.name))
		}
	}
	if len(input.PHQ9Answers) != 9 {
		return utils.BadRequest(c, "PHQ-9 must have exactly 9 answers")
	}
	if len(input.GAD7Answers) != 7 {
		return utils.BadRequest(c, "GAD-7 must have exactly 7 answers")
	}
	if len(input.PSSAnswers) != 10 {
		return utils.BadRequest(c, "PSS-10 must have exactly 10 answers")
	}
	if len(input.WHO5Answers) != 5 {
		return utils.BadRequest(c, "WHO-5 must have exactly 5 answers")
	}
	for _, g := range groups {
		for i, v := range g.answers {
			if v < 0 || v > g.max {
				return utils.BadRequest(c, fmt.Sprintf(
					"Invalid %s answer at position %d: must be a number between 0 and %d",
					g.label, i+1, g.max))
			}
		}
	}

	result, err := hc.Runner.MentalHealth(c.Context(),
		input.PHQ9Answers, input.GAD7Answers, input.PSSAnswers, input.WHO5Answers)
	if err != nil {
		var exitErr *predictor.ExitError
		switch {
		case errors.As(err, &exitErr):
			detail := exitErr.Stderr
			if detail == "" {
				detail = "Unknown error occurred"
			}
			return utils.Fail(c, fiber.StatusInternalServerError, "Mental health prediction model error", detail)
		case errors.Is(err, predictor.ErrBadOutput):
			return utils.ServerError(c, "Error parsing mental health prediction result", err)
		default:
			return utils.ServerError(c, "Failed to execute mental health prediction model", err)
		}
	}

	result["disclaimer"] = mentalDisclaimer
	result["timestamp"] = time.Now().UTC().Format(time.RFC3339)

	return c.JSON(result)
}

// MentalHealthHistory godoc
// @Summary List the last 10 mental health assessments, newest first
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /health/mental-health-history [get]
func (hc *HealthController) MentalHealthHistory(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, hc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if !utils.DBAvailable(hc.DB) {
		return utils.ServiceUnavailable(c, "Database not available", "database connection failed")
	}

	var assessments []models.MentalHealthAssessment
	if err := hc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(historyLimit).
		Find(&assessments).Error; err != nil {
		return utils.ServerError(c, "Server error retrieving mental health history", err)
	}

	items := make([]fiber.Map, 0, len(assessments))
	for _, a := range assessments {
		items = append(items, fiber.Map{
			"id":              a.ID,
			"createdAt":       a.CreatedAt,
			"overall_status":  a.OverallStatus,
			"severity_levels": a.SeverityLevels,
			"scores":          a.Scores,
		})
	}

	return c.JSON(fiber.Map{
		"assessments": items,
		"total":       len(items),
	})
}

// Test godoc
// @Summary Health routes liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/test [get]
func (hc *HealthController) Test(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "Health prediction routes are working!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"available_endpoints": []string{
			"POST /api/health/diabetes-predict",
			"POST /api/health/heart-predict",
			"POST /api/health/mental-health-predict",
			"GET /api/health/diabetes-history",
			"GET /api/health/heart-disease-history",
			"GET /api/health/mental-health-history",
		},
	})
}
