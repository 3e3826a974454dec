package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stroma-app/care-engine/internal/service/bucket"
	"github.com/stroma-app/care-engine/internal/service/urgency"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, errorResponse{
		Error:   errType,
		Message: message,
	})
}

type plantSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Room    string `json:"room,omitempty"`
}

type windowResponse struct {
	Min time.Time `json:"min"`
	Max time.Time `json:"max"`
}

type entryResponse struct {
	Plant     plantSummary   `json:"plant"`
	Window    windowResponse `json:"window"`
	Status    urgency.Status `json:"status"`
	IsOverdue bool           `json:"is_overdue"`
}

type overviewResponse struct {
	Headline  string          `json:"headline"`
	Today     []entryResponse `json:"today"`
	ThisWeek  []entryResponse `json:"this_week"`
	NextWeek  []entryResponse `json:"next_week"`
	ThisMonth []entryResponse `json:"this_month"`
}

func toEntryResponses(entries []bucket.Entry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entryResponse{
			Plant: plantSummary{
				ID:      entry.Plant.ID,
				Name:    entry.Plant.Name,
				Species: string(entry.Plant.Species),
				Room:    entry.Plant.Room,
			},
			Window: windowResponse{
				Min: entry.Window.Min,
				Max: entry.Window.Max,
			},
			Status:    entry.Status,
			IsOverdue: entry.IsOverdue,
		})
	}
	return out
}
