package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"almanac/internal/manifest"
)

var verbose bool

var checkCmd = &cobra.Command{
	Use:   "check <manifest.yaml>",
	Short: "Validate an almanac manifest and print diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Dump the parsed manifest")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	mf, err := manifest.LoadFile(args[0])
	if err != nil {
		return err
	}

	if verbose {
		spew.Fdump(cmd.OutOrStdout(), mf)
	}

	diags := manifest.Validate(mf)

	for _, w := range diags.Warnings {
		cmd.Printf("warning: %s\n", w)
	}

	for _, e := range diags.Errors {
		cmd.Printf("error: %s\n", e)
	}

	if diags.HasErrors() {
		return fmt.Errorf("manifest has %d error(s)", len(diags.Errors))
	}

	cmd.Println("manifest is valid")

	return nil
}
