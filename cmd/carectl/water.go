package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var waterDate string

var waterCmd = &cobra.Command{
	Use:   "water <plant-id>",
	Short: "Record a watering for a plant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]string{}
		if waterDate != "" {
			body["watered_at"] = waterDate
		}

		var result struct {
			PlantID     string    `json:"plant_id"`
			LastWatered time.Time `json:"last_watered"`
			Rescheduled bool      `json:"rescheduled"`
		}
		if err := doJSON(http.MethodPost, "/api/v1/plants/"+args[0]+"/water", body, &result); err != nil {
			return err
		}

		fmt.Printf("Watered %s on %s", result.PlantID, result.LastWatered.Format("Jan 2, 2006"))
		if result.Rescheduled {
			fmt.Print(" (reminders rescheduled)")
		}
		fmt.Println()
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <plant-id>",
	Short: "Show a plant's watering window and urgency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var result struct {
			PlantID string `json:"plant_id"`
			Window  struct {
				Min time.Time `json:"min"`
				Max time.Time `json:"max"`
			} `json:"window"`
			Status struct {
				Kind string `json:"kind"`
				Text string `json:"text"`
			} `json:"status"`
		}
		if err := doJSON(http.MethodGet, "/api/v1/plants/"+args[0]+"/watering", nil, &result); err != nil {
			return err
		}

		fmt.Printf("%s: %s (%s), window %s to %s\n",
			result.PlantID, result.Status.Text, result.Status.Kind,
			result.Window.Min.Format("Jan 2"), result.Window.Max.Format("Jan 2"),
		)
		return nil
	},
}

func init() {
	waterCmd.Flags().StringVar(&waterDate, "date", "", "Watering date (YYYY-MM-DD, default today)")
}
