package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/warp/payroll-engine/calendar"
)

var holidaysCmd = &cobra.Command{
	Use:   "holidays [year]",
	Short: "List Colombian statutory holidays for a year",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHolidays,
}

func runHolidays(cmd *cobra.Command, args []string) error {
	year := time.Now().Year()
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}
		year = parsed
	}

	for _, h := range calendar.Generate(year) {
		fmt.Printf("%s  %-8s %s\n", h.Date, h.Type, h.Name)
	}
	return nil
}
