package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:   "notify <plant-id> <on|off>",
	Short: "Toggle watering reminders for a plant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var enabled bool
		switch args[1] {
		case "on":
			enabled = true
		case "off":
			enabled = false
		default:
			return fmt.Errorf("expected on or off, got %q", args[1])
		}

		var result struct {
			PlantID       string `json:"plant_id"`
			Enabled       bool   `json:"enabled"`
			ReminderCount int    `json:"reminder_count"`
		}
		body := map[string]bool{"enabled": enabled}
		if err := doJSON(http.MethodPost, "/api/v1/plants/"+args[0]+"/notifications", body, &result); err != nil {
			return err
		}

		if result.Enabled {
			fmt.Printf("Reminders enabled for %s (%d scheduled)\n", result.PlantID, result.ReminderCount)
		} else {
			fmt.Printf("Reminders disabled for %s\n", result.PlantID)
		}
		return nil
	},
}
