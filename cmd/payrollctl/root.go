package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "payrollctl",
	Short: "Compare payroll amounts under internal policy and Colombian law",
	Long: `payrollctl runs the payroll comparison engines from the command line.
It takes recorded work shifts, splits them into day/night and
Sunday/holiday segments, prices them under the internal company policy
and under Colombian labor law, and reports the difference.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(holidaysCmd)
}
