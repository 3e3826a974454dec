package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stroma-app/care-engine/internal/domain"
	"github.com/stroma-app/care-engine/internal/service/bucket"
	"github.com/stroma-app/care-engine/internal/service/reminder"
	"github.com/stroma-app/care-engine/internal/service/season"
	"github.com/stroma-app/care-engine/internal/service/urgency"
	"github.com/stroma-app/care-engine/internal/service/window"
)

type PlantHandler struct {
	plants          domain.PlantRepository
	partitioner     *bucket.Partitioner
	windows         *window.Calculator
	seasons         *season.Classifier
	reminderService *reminder.Service
	recorder        domain.CareEventRecorder
	clock           domain.Clock
}

func NewPlantHandler(
	plants domain.PlantRepository,
	partitioner *bucket.Partitioner,
	windows *window.Calculator,
	seasons *season.Classifier,
	reminderService *reminder.Service,
	recorder domain.CareEventRecorder,
	clock domain.Clock,
) *PlantHandler {
	return &PlantHandler{
		plants:          plants,
		partitioner:     partitioner,
		windows:         windows,
		seasons:         seasons,
		reminderService: reminderService,
		recorder:        recorder,
		clock:           clock,
	}
}

// HandleOverview groups every plant into watering buckets and derives the
// summary headline.
func (h *PlantHandler) HandleOverview(c *gin.Context) {
	ctx := c.Request.Context()

	plants, err := h.plants.ListPlants(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list plants", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to load plants")
		return
	}

	buckets, err := h.partitioner.Partition(plants, h.clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to partition plants", slog.String("error", err.Error()))
		if errors.Is(err, domain.ErrUnknownSpecies) {
			respondError(c, http.StatusUnprocessableEntity, "unknown_species", err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to compute overview")
		return
	}

	c.JSON(http.StatusOK, overviewResponse{
		Headline:  bucket.Headline(buckets),
		Today:     toEntryResponses(buckets.Today),
		ThisWeek:  toEntryResponses(buckets.ThisWeek),
		NextWeek:  toEntryResponses(buckets.NextWeek),
		ThisMonth: toEntryResponses(buckets.ThisMonth),
	})
}

// HandleWateringStatus returns the plant's current watering window and
// urgency.
func (h *PlantHandler) HandleWateringStatus(c *gin.Context) {
	ctx := c.Request.Context()
	plantID := c.Param("id")

	plant, err := h.plants.GetPlant(ctx, plantID)
	if err != nil {
		if errors.Is(err, domain.ErrPlantNotFound) {
			respondError(c, http.StatusNotFound, "not_found", "plant not found")
			return
		}
		slog.ErrorContext(ctx, "failed to load plant",
			slog.String("plant_id", plantID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to load plant")
		return
	}

	now := h.clock.Now()
	wateringWindow, err := h.windows.Compute(plant, now)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingLastWatered):
			respondError(c, http.StatusUnprocessableEntity, "never_watered", "plant has no watering history")
		case errors.Is(err, domain.ErrUnknownSpecies):
			respondError(c, http.StatusUnprocessableEntity, "unknown_species", err.Error())
		default:
			slog.ErrorContext(ctx, "failed to compute watering window",
				slog.String("plant_id", plantID),
				slog.String("error", err.Error()),
			)
			respondError(c, http.StatusInternalServerError, "processing_error", "failed to compute watering window")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plant_id": plant.ID,
		"window": windowResponse{
			Min: wateringWindow.Min,
			Max: wateringWindow.Max,
		},
		"status": urgency.Classify(wateringWindow, now),
	})
}

type waterRequest struct {
	WateredAt string `json:"watered_at"`
}

// HandleWaterPlant records a watering. The stored instant is noon on the
// chosen day, which keeps day arithmetic stable regardless of when the user
// actually tapped the button. Reminders are rebuilt when notifications are
// enabled.
func (h *PlantHandler) HandleWaterPlant(c *gin.Context) {
	ctx := c.Request.Context()
	plantID := c.Param("id")

	var req waterRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
	}

	wateredDay := h.clock.Now()
	if req.WateredAt != "" {
		parsed, err := parseDay(req.WateredAt)
		if err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "watered_at must be RFC 3339 or YYYY-MM-DD")
			return
		}
		wateredDay = parsed
	}
	wateredAt := domain.AtNoon(wateredDay)

	plant, err := h.plants.GetPlant(ctx, plantID)
	if err != nil {
		if errors.Is(err, domain.ErrPlantNotFound) {
			respondError(c, http.StatusNotFound, "not_found", "plant not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to load plant")
		return
	}

	if err := h.plants.UpdateLastWatered(ctx, plantID, wateredAt); err != nil {
		slog.ErrorContext(ctx, "failed to update last watered",
			slog.String("plant_id", plantID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to record watering")
		return
	}
	plant.LastWatered = wateredAt

	if err := h.recorder.RecordWateringEvent(ctx, domain.WateringEventRecord{
		PlantID:   plantID,
		Species:   string(plant.Species),
		WateredAt: wateredAt,
		InSeason:  h.seasons.InSeason(wateredAt),
	}); err != nil {
		slog.WarnContext(ctx, "failed to record watering event", slog.String("error", err.Error()))
	}

	rescheduled := false
	if plant.NotificationsEnabled {
		if err := h.reminderService.RescheduleForPlant(ctx, plant); err != nil {
			slog.ErrorContext(ctx, "failed to reschedule reminders after watering",
				slog.String("plant_id", plantID),
				slog.String("error", err.Error()),
			)
			h.recordScheduleOutcome(ctx, plantID, "reschedule", 0, false)
			respondError(c, http.StatusInternalServerError, "scheduling_error", "watering recorded but reminders could not be rescheduled")
			return
		}
		rescheduled = true
		h.recordScheduleOutcome(ctx, plantID, "reschedule", len(plant.ReminderIDs), true)
	}

	slog.InfoContext(ctx, "watering recorded",
		slog.String("plant_id", plantID),
		slog.Time("watered_at", wateredAt),
		slog.Bool("rescheduled", rescheduled),
	)

	c.JSON(http.StatusOK, gin.H{
		"plant_id":     plantID,
		"last_watered": wateredAt,
		"rescheduled":  rescheduled,
	})
}

func (h *PlantHandler) recordScheduleOutcome(ctx context.Context, plantID, operation string, count int, success bool) {
	if err := h.recorder.RecordScheduleOutcome(ctx, domain.ScheduleOutcomeRecord{
		PlantID:       plantID,
		Operation:     operation,
		ReminderCount: count,
		Success:       success,
	}); err != nil {
		slog.WarnContext(ctx, "failed to record schedule outcome", slog.String("error", err.Error()))
	}
}

func parseDay(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
