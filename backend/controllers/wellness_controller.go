package controllers

import (
	"fmt"
	"time"

	"mindwell/backend/config"
	"mindwell/backend/models"
	"mindwell/backend/scoring"
	"mindwell/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const wellnessDisclaimer = "This assessment is not a medical diagnosis. It is intended for awareness and self-reflection only."

type WellnessController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewWellnessController(db *gorm.DB, cfg *config.Config) *WellnessController {
	return &WellnessController{DB: db, Cfg: cfg}
}

// validateWellnessInputs enforces the questionnaire contract: nine
// non-negative numeric fields plus the low/medium/high enum. Field
// order matters for the error message of the first failing field.
func validateWellnessInputs(body map[string]interface{}, in *models.WellnessInputs) error {
	numeric := []struct {
		name string
		dst  interface{}
	}{
		{"sleepHours", &in.SleepHours},
		{"exerciseFrequency", &in.ExerciseFrequency},
		{"screenTime", &in.ScreenTime},
		{"littleInterest", &in.LittleInterest},
		{"feelingDown", &in.FeelingDown},
		{"troubleConcentrating", &in.TroubleConcentrating},
		{"feelingTired", &in.FeelingTired},
		{"feelingAnxious", &in.FeelingAnxious},
		{"hoursWorked", &in.HoursWorked},
	}

	for _, f := range numeric {
		v, ok := body[f.name].(float64)
		if !ok || v < 0 {
			return fmt.Errorf("Invalid or missing input for %s", f.name)
		}
		switch dst := f.dst.(type) {
		case *float64:
			*dst = v
		case *int:
			*dst = int(v)
		}
	}

	dp, _ := body["deadlinePressure"].(string)
	if dp != "low" && dp != "medium" && dp != "high" {
		return fmt.Errorf("Invalid value for deadlinePressure")
	}
	in.DeadlinePressure = dp
	return nil
}

// Assess godoc
// @Summary Run a wellness assessment and persist it
// @Description Computes stress level and depression risk; when the database is down the prediction is returned unsaved with a note
// @Tags wellness
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /wellness/assess [post]
func (wc *WellnessController) Assess(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, wc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var inputs models.WellnessInputs
	if err := validateWellnessInputs(body, &inputs); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	result := scoring.Wellness(inputs)

	if !utils.DBAvailable(wc.DB) {
		return c.JSON(fiber.Map{
			"stressLevel":    result.StressLevel,
			"depressionRisk": result.DepressionRisk,
			"suggestions":    result.Suggestions,
			"disclaimer":     wellnessDisclaimer,
			"saved":          false,
			"note":           "Assessment not saved - database not available",
		})
	}

	assessment := models.WellnessAssessment{
		UserID:         userID,
		Inputs:         inputs,
		StressLevel:    result.StressLevel,
		DepressionRisk: result.DepressionRisk,
		Suggestions:    result.Suggestions,
	}
	if err := wc.DB.Create(&assessment).Error; err != nil {
		return utils.ServerError(c, "Server error", err)
	}

	return c.JSON(fiber.Map{
		"id":             assessment.ID,
		"user":           assessment.UserID,
		"inputs":         assessment.Inputs,
		"stressLevel":    assessment.StressLevel,
		"depressionRisk": assessment.DepressionRisk,
		"suggestions":    assessment.Suggestions,
		"createdAt":      assessment.CreatedAt,
		"disclaimer":     wellnessDisclaimer,
		"saved":          true,
	})
}

// Predict godoc
// @Summary Run a wellness prediction without saving
// @Tags wellness
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /wellness/predict [post]
func (wc *WellnessController) Predict(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var inputs models.WellnessInputs
	if err := validateWellnessInputs(body, &inputs); err != nil {
		return utils.BadRequest(c, err.Error())
	}

	result := scoring.Wellness(inputs)

	return c.JSON(fiber.Map{
		"stressLevel":    result.StressLevel,
		"depressionRisk": result.DepressionRisk,
		"suggestions":    result.Suggestions,
		"disclaimer":     wellnessDisclaimer,
	})
}

// History godoc
// @Summary List past wellness assessments, newest first
// @Tags wellness
// @Produce json
// @Success 200 {array} models.WellnessAssessment
// @Failure 401 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /wellness/history [get]
func (wc *WellnessController) History(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, wc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if !utils.DBAvailable(wc.DB) {
		return utils.ServiceUnavailable(c, "Database not available", "database connection failed")
	}

	var assessments []models.WellnessAssessment
	if err := wc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assessments).Error; err != nil {
		return utils.ServerError(c, "Server error", err)
	}

	return c.JSON(assessments)
}

// Test godoc
// @Summary Wellness routes liveness check
// @Tags wellness
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /wellness/test [get]
func (wc *WellnessController) Test(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "Wellness routes are working!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
