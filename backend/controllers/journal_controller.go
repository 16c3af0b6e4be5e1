package controllers

import (
	"errors"
	"strings"
	"time"

	"mindwell/backend/config"
	"mindwell/backend/models"
	"mindwell/backend/scoring"
	"mindwell/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type JournalController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewJournalController(db *gorm.DB, cfg *config.Config) *JournalController {
	return &JournalController{DB: db, Cfg: cfg}
}

// journalInput is the create/update payload. The client may attach its
// own mood prediction; otherwise the server computes one.
type journalInput struct {
	Title         string                 `json:"title"`
	Content       string                 `json:"content"`
	Sentiment     string                 `json:"sentiment"`
	Date          *time.Time             `json:"date"`
	PredictedMood *models.MoodPrediction `json:"predictedMood"`
}

// GetJournals godoc
// @Summary List journal entries
// @Description Returns all journals for the authenticated user, newest first
// @Tags journals
// @Produce json
// @Success 200 {array} models.Journal
// @Failure 401 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /journals [get]
func (jc *JournalController) GetJournals(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, jc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if !utils.DBAvailable(jc.DB) {
		return utils.ServiceUnavailable(c, "Database not available", "database connection failed")
	}

	var journals []models.Journal
	if err := jc.DB.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&journals).Error; err != nil {
		return utils.ServerError(c, "Failed to fetch journals", err)
	}

	return c.JSON(journals)
}

// GetJournal godoc
// @Summary Get one journal entry
// @Tags journals
// @Produce json
// @Success 200 {object} models.Journal
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /journals/{id} [get]
func (jc *JournalController) GetJournal(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, jc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequest(c, "Invalid journal ID format")
	}

	var journal models.Journal
	if err := jc.DB.First(&journal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Journal entry not found")
		}
		return utils.ServerError(c, "Failed to fetch journal entry", err)
	}

	if journal.UserID != userID {
		return utils.Unauthorized(c, "User not authorized")
	}

	return c.JSON(journal)
}

// CreateJournal godoc
// @Summary Create a journal entry
// @Description Stores the entry and attaches a mood prediction, computing one when the client did not send it
// @Tags journals
// @Accept json
// @Produce json
// @Success 200 {object} models.Journal
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /journals [post]
func (jc *JournalController) CreateJournal(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, jc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if !utils.DBAvailable(jc.DB) {
		return utils.ServiceUnavailable(c, "Database not available", "database connection failed")
	}

	var input journalInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
	if input.Title == "" || input.Content == "" {
		return utils.BadRequest(c, "Title and content are required")
	}

	sentiment := input.Sentiment
	if sentiment == "" {
		sentiment = "neutral"
	}
	if !models.ValidSentiment(sentiment) {
		return utils.BadRequest(c, "Invalid journal data")
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	prediction := input.PredictedMood
	if prediction == nil {
		prediction = scoring.PredictMood(input.Content)
	} else {
		if prediction.Model == "" {
			prediction.Model = "keyword-based"
		}
		prediction.ProcessedAt = time.Now().UTC()
	}

	journal := models.Journal{
		UserID:         userID,
		Title:          input.Title,
		Content:        input.Content,
		Sentiment:      sentiment,
		Date:           date,
		MoodPrediction: prediction,
	}
	if err := jc.DB.Create(&journal).Error; err != nil {
		return utils.ServerError(c, "Failed to create journal entry", err)
	}

	return c.JSON(journal)
}

// UpdateJournal godoc
// @Summary Update a journal entry
// @Description Partial update; empty fields keep their previous values
// @Tags journals
// @Accept json
// @Produce json
// @Success 200 {object} models.Journal
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /journals/{id} [put]
func (jc *JournalController) UpdateJournal(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, jc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if !utils.DBAvailable(jc.DB) {
		return utils.ServiceUnavailable(c, "Database not available", "database connection failed")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequest(c, "Invalid journal ID format")
	}

	var journal models.Journal
	if err := jc.DB.First(&journal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Journal entry not found")
		}
		return utils.ServerError(c, "Failed to fetch journal entry", err)
	}

	if journal.UserID != userID {
		return utils.Unauthorized(c, "User not authorized")
	}

	var input journalInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		journal.Title = title
	}
	if content := strings.TrimSpace(input.Content); content != "" {
		journal.Content = content
	}
	if input.Sentiment != "" {
		if !models.ValidSentiment(input.Sentiment) {
			return utils.BadRequest(c, "Invalid journal data")
		}
		journal.Sentiment = input.Sentiment
	}
	if input.Date != nil {
		journal.Date = *input.Date
	}
	if input.PredictedMood != nil {
		pred := *input.PredictedMood
		if pred.Model == "" {
			pred.Model = "keyword-based"
		}
		pred.ProcessedAt = time.Now().UTC()
		journal.MoodPrediction = &pred
	}

	if err := jc.DB.Save(&journal).Error; err != nil {
		return utils.ServerError(c, "Failed to update journal entry", err)
	}

	return c.JSON(journal)
}

// DeleteJournal godoc
// @Summary Delete a journal entry
// @Description Deletion is permanent
// @Tags journals
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /journals/{id} [delete]
func (jc *JournalController) DeleteJournal(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, jc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.BadRequest(c, "Invalid journal ID format")
	}

	var journal models.Journal
	if err := jc.DB.First(&journal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Journal entry not found")
		}
		return utils.ServerError(c, "Failed to fetch journal entry", err)
	}

	if journal.UserID != userID {
		return utils.Unauthorized(c, "User not authorized")
	}

	if err := jc.DB.Unscoped().Delete(&journal).Error; err != nil {
		return utils.ServerError(c, "Failed to delete journal entry", err)
	}

	return c.JSON(fiber.Map{"msg": "Journal entry removed"})
}
