package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

type overviewEntry struct {
	Plant struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Species string `json:"species"`
		Room    string `json:"room"`
	} `json:"plant"`
	Window struct {
		Min time.Time `json:"min"`
		Max time.Time `json:"max"`
	} `json:"window"`
	Status struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	} `json:"status"`
	IsOverdue bool `json:"is_overdue"`
}

type overview struct {
	Headline  string          `json:"headline"`
	Today     []overviewEntry `json:"today"`
	ThisWeek  []overviewEntry `json:"this_week"`
	NextWeek  []overviewEntry `json:"next_week"`
	ThisMonth []overviewEntry `json:"this_month"`
}

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show plants grouped by watering urgency",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var result overview
		if err := doJSON(http.MethodGet, "/api/v1/plants/overview", nil, &result); err != nil {
			return err
		}

		fmt.Printf("\n%s\n", result.Headline)
		printBucket("Today", result.Today)
		printBucket("This week", result.ThisWeek)
		printBucket("Next week", result.NextWeek)
		printBucket("This month", result.ThisMonth)
		return nil
	},
}

func printBucket(title string, entries []overviewEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, e := range entries {
		marker := " "
		if e.IsOverdue {
			marker = "!"
		}
		room := ""
		if e.Plant.Room != "" {
			room = fmt.Sprintf(" (%s)", e.Plant.Room)
		}
		fmt.Printf("  %s %s%s: %s, window %s to %s\n",
			marker, e.Plant.Name, room, e.Status.Text,
			e.Window.Min.Format("Jan 2"), e.Window.Max.Format("Jan 2"),
		)
	}
}
