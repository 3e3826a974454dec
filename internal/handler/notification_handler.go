package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stroma-app/care-engine/internal/domain"
	"github.com/stroma-app/care-engine/internal/service/reminder"
)

type NotificationHandler struct {
	plants          domain.PlantRepository
	reminderService *reminder.Service
	recorder        domain.CareEventRecorder
}

func NewNotificationHandler(
	plants domain.PlantRepository,
	reminderService *reminder.Service,
	recorder domain.CareEventRecorder,
) *NotificationHandler {
	return &NotificationHandler{
		plants:          plants,
		reminderService: reminderService,
		recorder:        recorder,
	}
}

type toggleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// HandleToggle enables or disables reminders for a plant. Ordering matters:
// enabling schedules before the flag is persisted so a scheduling failure
// leaves the plant cleanly off, and disabling cancels before the flag is
// cleared so no reminder outlives the toggle.
func (h *NotificationHandler) HandleToggle(c *gin.Context) {
	ctx := c.Request.Context()
	plantID := c.Param("id")

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	enabled := *req.Enabled

	plant, err := h.plants.GetPlant(ctx, plantID)
	if err != nil {
		if errors.Is(err, domain.ErrPlantNotFound) {
			respondError(c, http.StatusNotFound, "not_found", "plant not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to load plant")
		return
	}

	if enabled {
		h.enable(c, plant)
		return
	}
	h.disable(c, plant)
}

func (h *NotificationHandler) enable(c *gin.Context, plant *domain.Plant) {
	ctx := c.Request.Context()

	plant.NotificationsEnabled = true
	records, err := h.reminderService.ScheduleForPlant(ctx, plant)
	if err != nil {
		plant.NotificationsEnabled = false
		slog.ErrorContext(ctx, "failed to schedule reminders on enable",
			slog.String("plant_id", plant.ID),
			slog.String("error", err.Error()),
		)
		h.recordOutcome(c, plant.ID, "schedule", 0, false)
		respondError(c, http.StatusInternalServerError, "scheduling_error", "failed to schedule reminders")
		return
	}

	if err := h.plants.SetNotificationsEnabled(ctx, plant.ID, true); err != nil {
		// The flag write failed after reminders went out: pull them back so
		// the store and the scheduler agree the plant is off.
		slog.ErrorContext(ctx, "failed to persist notification flag, rolling back reminders",
			slog.String("plant_id", plant.ID),
			slog.String("error", err.Error()),
		)
		if cancelErr := h.reminderService.CancelAllForPlant(ctx, plant); cancelErr != nil {
			slog.WarnContext(ctx, "rollback cancellation failed",
				slog.String("plant_id", plant.ID),
				slog.String("error", cancelErr.Error()),
			)
		}
		plant.NotificationsEnabled = false
		h.recordOutcome(c, plant.ID, "schedule", 0, false)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to enable notifications")
		return
	}

	h.recordOutcome(c, plant.ID, "schedule", len(records), true)

	slog.InfoContext(ctx, "notifications enabled",
		slog.String("plant_id", plant.ID),
		slog.Int("reminder_count", len(records)),
	)
	c.JSON(http.StatusOK, gin.H{
		"plant_id":       plant.ID,
		"enabled":        true,
		"reminder_count": len(records),
	})
}

func (h *NotificationHandler) disable(c *gin.Context, plant *domain.Plant) {
	ctx := c.Request.Context()

	if err := h.reminderService.CancelAllForPlant(ctx, plant); err != nil {
		slog.ErrorContext(ctx, "failed to cancel reminders on disable",
			slog.String("plant_id", plant.ID),
			slog.String("error", err.Error()),
		)
		h.recordOutcome(c, plant.ID, "cancel", 0, false)
		respondError(c, http.StatusInternalServerError, "scheduling_error", "failed to cancel reminders")
		return
	}

	if err := h.plants.SetNotificationsEnabled(ctx, plant.ID, false); err != nil {
		slog.ErrorContext(ctx, "failed to persist notification flag",
			slog.String("plant_id", plant.ID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to disable notifications")
		return
	}
	plant.NotificationsEnabled = false

	h.recordOutcome(c, plant.ID, "cancel", 0, true)

	slog.InfoContext(ctx, "notifications disabled",
		slog.String("plant_id", plant.ID),
	)
	c.JSON(http.StatusOK, gin.H{
		"plant_id":       plant.ID,
		"enabled":        false,
		"reminder_count": 0,
	})
}

func (h *NotificationHandler) recordOutcome(c *gin.Context, plantID, operation string, count int, success bool) {
	ctx := c.Request.Context()
	if err := h.recorder.RecordScheduleOutcome(ctx, domain.ScheduleOutcomeRecord{
		PlantID:       plantID,
		Operation:     operation,
		ReminderCount: count,
		Success:       success,
	}); err != nil {
		slog.WarnContext(ctx, "failed to record schedule outcome", slog.String("error", err.Error()))
	}
}
