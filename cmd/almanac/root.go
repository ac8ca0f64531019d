package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "almanac",
	Short: "Almanac - interval-based category remapping pipeline",
	Long: `Almanac carries seed identifier ranges through a chain of category maps
(seed -> soil -> ... -> location) without materializing individual ids,
and reports the nearest reachable location value.

Examples:
  # Solve from the raw puzzle text, seeds as single ids
  almanac solve --input day-5-input.txt

  # Same input, seeds interpreted as (start, length) pairs
  almanac solve --input day-5-input.txt --pairs

  # Solve from a declarative YAML manifest
  almanac solve --manifest almanac.yaml

  # Validate a manifest and print diagnostics
  almanac check almanac.yaml`,
	SilenceUsage: true,
}
