// File: handlers/admin.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"villamar/config"
	seasonRepo "villamar/database/repository/season"
	settingsRepo "villamar/database/repository/settings"
	"villamar/models"
	"villamar/services/pricing"
	"villamar/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AdminHandler serves the operator configuration surface: login, season
// periods, and the pricing settings record.
type AdminHandler struct {
	seasons  seasonRepo.SeasonRepository
	settings settingsRepo.SettingsRepository
	logger   *zap.Logger
}

func NewAdminHandler(seasons seasonRepo.SeasonRepository, settings settingsRepo.SettingsRepository, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{seasons: seasons, settings: settings, logger: logger}
}

// LoginHandler checks the operator credentials and issues a JWT for the admin
// routes.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		utils.JSONError(c, http.StatusServiceUnavailable, "admin access not configured", "")
		return
	}
	if input.Email != cfg.AdminEmail ||
		bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(input.Password)) != nil {
		h.logger.Warn("admin login failed", zap.String("email", input.Email))
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken(input.Email, adminTokenTTL)
	if err != nil {
		h.logger.Error("failed to issue admin token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "expiresIn": int(adminTokenTTL.Seconds())})
}

// seasonInput is the operator payload for creating or updating a period.
type seasonInput struct {
	Label        string        `json:"label"`
	StartDate    string        `json:"startDate" binding:"required"`
	EndDate      string        `json:"endDate" binding:"required"`
	SeasonType   string        `json:"seasonType" binding:"required"`
	NightlyPrice *models.Cents `json:"nightlyPrice,omitempty"`
	MinimumStay  *int          `json:"minimumStay,omitempty"`
}

func (in seasonInput) validate() string {
	start, err := pricing.ParseDate(in.StartDate)
	if err != nil {
		return "startDate must be a calendar date in YYYY-MM-DD form"
	}
	end, err := pricing.ParseDate(in.EndDate)
	if err != nil {
		return "endDate must be a calendar date in YYYY-MM-DD form"
	}
	if end.Before(start) {
		return "endDate must not be before startDate"
	}
	if in.SeasonType != models.SeasonHigh && in.SeasonType != models.SeasonLow {
		return "seasonType must be \"high\" or \"low\""
	}
	if in.NightlyPrice != nil && *in.NightlyPrice <= 0 {
		return "nightlyPrice must be positive when set"
	}
	if in.MinimumStay != nil && *in.MinimumStay < 1 {
		return "minimumStay must be at least 1 night when set"
	}
	return ""
}

// ListSeasonsHandler returns all periods, active and deactivated.
func (h *AdminHandler) ListSeasonsHandler(c *gin.Context) {
	seasons, err := h.seasons.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list season periods", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list season periods", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"seasons": seasons})
}

// CreateSeasonHandler adds a new period. Overlapping periods are allowed; the
// resolver's tie-break decides between them at pricing time.
func (h *AdminHandler) CreateSeasonHandler(c *gin.Context) {
	var input seasonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if msg := input.validate(); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid season period", msg)
		return
	}

	period := models.SeasonPeriod{
		Label:        input.Label,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		SeasonType:   input.SeasonType,
		IsActive:     true,
		NightlyPrice: input.NightlyPrice,
		MinimumStay:  input.MinimumStay,
	}
	id, err := h.seasons.Create(c.Request.Context(), period)
	if err != nil {
		h.logger.Error("failed to create season period", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create season period", "")
		return
	}

	h.logger.Info("season period created",
		zap.String("id", id),
		zap.String("range", input.StartDate+".."+input.EndDate),
		zap.String("seasonType", input.SeasonType))
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateSeasonHandler replaces a period's fields. The period keeps its ID and
// CreatedAt, so its standing in the tie-break does not change.
func (h *AdminHandler) UpdateSeasonHandler(c *gin.Context) {
	id := c.Param("id")
	var input seasonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if msg := input.validate(); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid season period", msg)
		return
	}

	existing, err := h.seasons.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "season period not found", "")
			return
		}
		h.logger.Error("failed to load season period", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load season period", "")
		return
	}

	existing.Label = input.Label
	existing.StartDate = input.StartDate
	existing.EndDate = input.EndDate
	existing.SeasonType = input.SeasonType
	existing.NightlyPrice = input.NightlyPrice
	existing.MinimumStay = input.MinimumStay

	if err := h.seasons.Update(c.Request.Context(), *existing); err != nil {
		h.logger.Error("failed to update season period", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update season period", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"season": existing})
}

// DeactivateSeasonHandler soft-deactivates a period. Periods are never
// deleted: reservations priced under them keep a resolvable reference.
func (h *AdminHandler) DeactivateSeasonHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.seasons.Deactivate(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "season period not found", "")
			return
		}
		h.logger.Error("failed to deactivate season period", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to deactivate season period", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "isActive": false})
}

// GetSettingsHandler returns the live pricing settings record.
func (h *AdminHandler) GetSettingsHandler(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotConfigured) {
			utils.JSONError(c, http.StatusNotFound, "pricing settings not configured", "")
			return
		}
		h.logger.Error("failed to load pricing settings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load pricing settings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// PutSettingsHandler replaces the pricing settings record whole. Quotes in
// flight are unaffected; the next computation sees the new snapshot.
func (h *AdminHandler) PutSettingsHandler(c *gin.Context) {
	var input models.PricingSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if msg := validateSettings(input); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid pricing settings", msg)
		return
	}

	if err := h.settings.Put(c.Request.Context(), input); err != nil {
		h.logger.Error("failed to store pricing settings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to store pricing settings", "")
		return
	}
	h.logger.Info("pricing settings updated",
		zap.Int64("highNightly", int64(input.DefaultHighSeasonPrice)),
		zap.Int64("lowNightly", int64(input.DefaultLowSeasonPrice)))
	c.JSON(http.StatusOK, gin.H{"settings": input})
}

func validateSettings(s models.PricingSettings) string {
	if s.DefaultHighSeasonPrice <= 0 || s.DefaultLowSeasonPrice <= 0 {
		return "nightly prices must be positive"
	}
	if s.DefaultMinimumStay < 1 || s.HighSeasonMinimumStay < 1 {
		return "minimum stays must be at least 1 night"
	}
	if s.CleaningFee < 0 || s.TouristTaxPerPersonPerNight < 0 {
		return "fees must not be negative"
	}
	if s.DepositAmount < 0 {
		return "depositAmount must not be negative"
	}
	if s.DepositPercentage < 0 || s.DepositPercentage > 100 {
		return "depositPercentage must be between 0 and 100"
	}
	if s.FullPaymentLeadTimeDays < 0 {
		return "fullPaymentLeadTimeDays must not be negative"
	}
	return ""
}
