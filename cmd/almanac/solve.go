package main

import (
	"github.com/spf13/cobra"

	"almanac"
	"almanac/internal/manifest"
	"almanac/internal/parse"
)

var (
	inputPath    string
	manifestPath string
	pairMode     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the pipeline and print the nearest location id",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Puzzle text input file")
	solveCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML almanac manifest")
	solveCmd.Flags().BoolVar(&pairMode, "pairs", false, "Treat seeds as (start, length) pairs")

	solveCmd.MarkFlagsOneRequired("input", "manifest")
	solveCmd.MarkFlagsMutuallyExclusive("input", "manifest")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, _ []string) error {
	seeds, graph, err := loadAlmanac()
	if err != nil {
		return err
	}

	if err := graph.Validate(almanac.CategorySeed, almanac.CategoryLocation); err != nil {
		return err
	}

	pipe, err := almanac.NewPipeline(graph, almanac.CategoryLocation)
	if err != nil {
		return err
	}

	ranges := almanac.SingleRanges(almanac.CategorySeed, seeds)

	if pairMode {
		ranges, err = almanac.PairRanges(almanac.CategorySeed, seeds)
		if err != nil {
			return err
		}
	}

	nearest, err := pipe.Nearest(ranges)
	if err != nil {
		return err
	}

	cmd.Printf("The nearest location id is: %d\n", nearest)

	return nil
}

func loadAlmanac() ([]int64, *almanac.Graph, error) {
	if manifestPath != "" {
		mf, err := manifest.LoadFile(manifestPath)
		if err != nil {
			return nil, nil, err
		}

		if diags := manifest.Validate(mf); diags.HasErrors() {
			return nil, nil, diags.Error()
		}

		return manifest.Build(mf)
	}

	in, err := parse.LoadFile(inputPath)
	if err != nil {
		return nil, nil, err
	}

	return in.Seeds, in.Graph, nil
}
