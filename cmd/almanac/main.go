// Package main provides the CLI entrypoint for the almanac pipeline.
//
// almanac transforms seed identifier ranges through a chain of category
// maps and reports the nearest reachable terminal value. Inputs are either
// the raw puzzle text format or a declarative YAML manifest.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
