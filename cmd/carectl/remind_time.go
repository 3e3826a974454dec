package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var remindTimeCmd = &cobra.Command{
	Use:   "remind-time [HH:MM]",
	Short: "Show or set the global reminder time",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var result struct {
			Time string `json:"time"`
		}

		if len(args) == 0 {
			if err := doJSON(http.MethodGet, "/api/v1/settings/reminder-time", nil, &result); err != nil {
				return err
			}
			fmt.Printf("Reminders fire at %s\n", result.Time)
			return nil
		}

		body := map[string]string{"time": args[0]}
		if err := doJSON(http.MethodPut, "/api/v1/settings/reminder-time", body, &result); err != nil {
			return err
		}
		fmt.Printf("Reminder time set to %s (existing reminders rescheduled)\n", result.Time)
		return nil
	},
}
