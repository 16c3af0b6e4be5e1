package controllers

import (
	"fmt"
	"strings"
	"time"

	"mindwell/backend/config"
	"mindwell/backend/models"
	"mindwell/backend/scoring"
	"mindwell/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const stressHistoryLimit = 30

type StudentController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewStudentController(db *gorm.DB, cfg *config.Config) *StudentController {
	return &StudentController{DB: db, Cfg: cfg}
}

// Stress godoc
// @Summary Save a stress check-in
// @Description Persists the seven stress factors with a computed advice snapshot
// @Tags student
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /student/stress [post]
func (sc *StudentController) Stress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	required := []string{
		"academicPressure", "examAnxiety", "timeManagement", "peerComparison",
		"futureUncertainty", "sleepQuality", "copingMechanisms", "stressLevel",
	}
	var missing []string
	for _, field := range required {
		if v, ok := body[field]; !ok || v == nil {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return utils.BadRequest(c, fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
	}

	num := func(key string) float64 {
		v, _ := body[key].(float64)
		return v
	}
	str := func(key string) string {
		v, _ := body[key].(string)
		return v
	}

	entry := models.StudentStress{
		UserID:            userID,
		AcademicPressure:  num("academicPressure"),
		ExamAnxiety:       num("examAnxiety"),
		TimeManagement:    num("timeManagement"),
		PeerComparison:    num("peerComparison"),
		FutureUncertainty: num("futureUncertainty"),
		SleepQuality:      num("sleepQuality"),
		CopingMechanisms:  num("copingMechanisms"),
		StressLevel:       num("stressLevel"),
		JournalEntry:      str("journalEntry"),
		DayOfWeek:         time.Now().Weekday().String(),
	}
	entry.Predictions = scoring.StudentStress(entry.StressLevel)

	if err := sc.DB.Create(&entry).Error; err != nil {
		return utils.ServerError(c, "Server error", err)
	}

	return c.JSON(fiber.Map{
		"msg":         "Stress assessment saved successfully",
		"id":          entry.ID,
		"predictions": entry.Predictions,
	})
}

// Procrastination godoc
// @Summary Save a productivity session
// @Tags student
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /student/procrastination [post]
func (sc *StudentController) Procrastination(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Tasks              []models.StudentTask `json:"tasks"`
		CompletedPomodoros int                  `json:"completedPomodoros"`
		ProductivityScore  float64              `json:"productivityScore"`
		Reflection         string               `json:"reflection"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if len(input.Tasks) == 0 {
		return utils.BadRequest(c, "At least one task is required")
	}

	entry := models.StudentProcrastination{
		UserID:             userID,
		Tasks:              input.Tasks,
		CompletedPomodoros: input.CompletedPomodoros,
		ProductivityScore:  input.ProductivityScore,
		Reflection:         input.Reflection,
	}
	entry.Predictions = scoring.StudentProcrastination(entry.ProductivityScore)

	if err := sc.DB.Create(&entry).Error; err != nil {
		return utils.ServerError(c, "Server error", err)
	}

	return c.JSON(fiber.Map{
		"msg":         "Productivity session saved successfully",
		"id":          entry.ID,
		"predictions": entry.Predictions,
	})
}

// Sleep godoc
// @Summary Save a sleep tracking entry
// @Tags student
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /student/sleep [post]
func (sc *StudentController) Sleep(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	required := []string{"hoursSlept", "sleepQuality", "bedtime", "wakeTime", "stressLevel", "burnoutRisk"}
	var missing []string
	for _, field := range required {
		if v, ok := body[field]; !ok || v == nil {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return utils.BadRequest(c, fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
	}

	num := func(key string) float64 {
		v, _ := body[key].(float64)
		return v
	}
	str := func(key string) string {
		v, _ := body[key].(string)
		return v
	}
	var checklist []string
	if raw, ok := body["hygieneChecklist"].([]interface{}); ok {
		for _, item := range raw {
			if s, ok := item.(string); ok {
				checklist = append(checklist, s)
			}
		}
	}

	entry := models.StudentSleep{
		UserID:           userID,
		HoursSlept:       num("hoursSlept"),
		SleepQuality:     num("sleepQuality"),
		Bedtime:          str("bedtime"),
		WakeTime:         str("wakeTime"),
		CaffeineIntake:   num("caffeineIntake"),
		ScreenTime:       num("screenTime"),
		StressLevel:      num("stressLevel"),
		HygieneChecklist: checklist,
		BurnoutRisk:      num("burnoutRisk"),
		Date:             time.Now().UTC().Format("2006-01-02"),
	}
	entry.Predictions = scoring.StudentSleep(entry.BurnoutRisk)

	if err := sc.DB.Create(&entry).Error; err != nil {
		return utils.ServerError(c, "Server error", err)
	}

	return c.JSON(fiber.Map{
		"msg":         "Sleep data saved successfully",
		"id":          entry.ID,
		"predictions": entry.Predictions,
	})
}

// Confidence godoc
// @Summary Save a confidence building session
// @Tags student
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /student/confidence [post]
func (sc *StudentController) Confidence(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Reflections        map[string]string `json:"reflections"`
		AnonymousJournal   string            `json:"anonymousJournal"`
		ComparisonThoughts string            `json:"comparisonThoughts"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Reflections == nil {
		return utils.BadRequest(c, "Reflections data is required")
	}

	entry := models.StudentConfidence{
		UserID:             userID,
		Reflections:        input.Reflections,
		AnonymousJournal:   input.AnonymousJournal,
		ComparisonThoughts: input.ComparisonThoughts,
	}
	entry.Predictions = scoring.StudentConfidence(entry.AnonymousJournal, entry.ComparisonThoughts)

	if err := sc.DB.Create(&entry).Error; err != nil {
		return utils.ServerError(c, "Server error", err)
	}

	return c.JSON(fiber.Map{
		"msg":         "Confidence session saved successfully",
		"id":          entry.ID,
		"predictions": entry.Predictions,
	})
}

// Career godoc
// @Summary Save a career planning session
// @Tags student
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /student/career [post]
func (sc *StudentController) Career(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Interests       map[string]float64 `json:"interests"`
		Strengths       string             `json:"strengths"`
		CareerConcerns  string             `json:"careerConcerns"`
		FutureAnxiety   float64            `json:"futureAnxiety"`
		SelectedCareers []string           `json:"selectedCareers"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Interests == nil {
		return utils.BadRequest(c, "Interests data is required")
	}
	if strings.TrimSpace(input.Strengths) == "" {
		return utils.BadRequest(c, "Strengths description is required")
	}
	if len(input.SelectedCareers) == 0 {
		return utils.BadRequest(c, "At least one selected career is required")
	}

	entry := models.StudentCareer{
		UserID:          userID,
		Interests:       input.Interests,
		Strengths:       input.Strengths,
		CareerConcerns:  input.CareerConcerns,
		FutureAnxiety:   input.FutureAnxiety,
		SelectedCareers: input.SelectedCareers,
		RoadmapCreated:  true,
	}
	entry.Predictions = scoring.StudentCareer(entry.Interests, entry.FutureAnxiety)

	if err := sc.DB.Create(&entry).Error; err != nil {
		return utils.ServerError(c, "Server error", err)
	}

	return c.JSON(fiber.Map{
		"msg":         "Career planning data saved successfully",
		"id":          entry.ID,
		"predictions": entry.Predictions,
	})
}

// StressHistory godoc
// @Summary List the last 30 stress check-ins, newest first
// @Tags student
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /student/stress/history [get]
func (sc *StudentController) StressHistory(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if !utils.DBAvailable(sc.DB) {
		return utils.ServiceUnavailable(c, "Database not available", "database connection failed")
	}

	var history []models.StudentStress
	if err := sc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(stressHistoryLimit).
		Find(&history).Error; err != nil {
		return utils.ServerError(c, "Server error", err)
	}

	return c.JSON(fiber.Map{"history": history})
}

// SleepWeekly godoc
// @Summary Last 7 days of sleep entries, oldest first
// @Tags student
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /student/sleep/weekly [get]
func (sc *StudentController) SleepWeekly(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, sc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if !utils.DBAvailable(sc.DB) {
		return utils.ServiceUnavailable(c, "Database not available", "database connection failed")
	}

	sevenDaysAgo := time.Now().AddDate(0, 0, -7)

	var weekly []models.StudentSleep
	if err := sc.DB.Where("user_id = ? AND created_at >= ?", userID, sevenDaysAgo).
		Order("date ASC").
		Find(&weekly).Error; err != nil {
		return utils.ServerError(c, "Server error", err)
	}

	return c.JSON(fiber.Map{"weeklyData": weekly})
}

// Resources godoc
// @Summary Curated mental health resources
// @Description Static content, no auth required
// @Tags student
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /student/resources [get]
func (sc *StudentController) Resources(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"resources": fiber.Map{
			"emergencyContacts": []fiber.Map{
				{
					"name":        "National Suicide Prevention Lifeline",
					"contact":     "988",
					"description": "24/7 free and confidential emotional support",
				},
				{
					"name":        "Crisis Text Line",
					"contact":     "Text HOME to 741741",
					"description": "Free 24/7 support via text message",
				},
			},
			"campusResources": []fiber.Map{
				{
					"type":         "Counseling Center",
					"description":  "Professional counseling services for students",
					"availability": "Usually Monday-Friday, 9AM-5PM",
				},
				{
					"type":         "Peer Support Groups",
					"description":  "Student-led support groups for various mental health concerns",
					"availability": "Weekly meetings, check student services",
				},
			},
			"selfHelpResources": []fiber.Map{
				{
					"category": "Mental Health Apps",
					"items":    []string{"Calm", "Headspace", "Insight Timer", "Moodpath"},
				},
				{
					"category": "Helpful Books",
					"items":    []string{"The Anxiety & Phobia Workbook", "Feeling Good", "The Happiness Trap"},
				},
			},
			"educationalContent": fiber.Map{
				"mythsVsFacts": []fiber.Map{
					{
						"myth": "Mental health issues only affect \"weak\" people",
						"fact": "Mental health challenges can affect anyone, regardless of strength or background.",
					},
				},
				"copingStrategies": []string{
					"Practice deep breathing",
					"Maintain regular exercise",
					"Stay connected with supportive people",
					"Get adequate sleep",
				},
			},
		},
	})
}
