package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stroma-app/care-engine/internal/domain"
	"github.com/stroma-app/care-engine/internal/service/reminder"
)

type SettingsHandler struct {
	settings        domain.SettingsRepository
	reminderService *reminder.Service
}

func NewSettingsHandler(settings domain.SettingsRepository, reminderService *reminder.Service) *SettingsHandler {
	return &SettingsHandler{
		settings:        settings,
		reminderService: reminderService,
	}
}

func (h *SettingsHandler) HandleGetReminderTime(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.settings.GetReminderTime(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load reminder time", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to load reminder time")
		return
	}

	c.JSON(http.StatusOK, gin.H{"time": t.String()})
}

type reminderTimeRequest struct {
	Time string `json:"time" binding:"required"`
}

// HandleSetReminderTime persists the new global reminder time and rebuilds
// every active plan so already-scheduled reminders fire at the new time.
func (h *SettingsHandler) HandleSetReminderTime(c *gin.Context) {
	ctx := c.Request.Context()

	var req reminderTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	t, err := domain.ParseTimeOfDay(req.Time)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "time must be HH:MM")
		return
	}

	if err := h.reminderService.SetGlobalReminderTime(ctx, t); err != nil {
		slog.ErrorContext(ctx, "failed to set reminder time",
			slog.String("reminder_time", t.String()),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to update reminder time")
		return
	}

	c.JSON(http.StatusOK, gin.H{"time": t.String()})
}
