/*
Command fpset is a small workbench for persistent sets and maps.

	fpset eval sets.yaml          evaluate set expressions from a YAML document
	fpset tree 5 3 8 1 --numeric  show the AVL structure of a set
	fpset count README.md         count words, ordered alphabetically

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer traces with key 'fp.cli'.
func tracer() tracing.Trace {
	return tracing.Select("fp.cli")
}

var traceKeys = []string{"fp.cli", "fp.avl", "fp.sortedmap"}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath, traceLevel string

	rootCmd := &cobra.Command{
		Use:           "fpset",
		Short:         "Workbench for persistent ordered sets and maps",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setTraceLevel(traceLevel)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML document with sets and expressions")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "error", "trace level: error, info or debug")

	cmdEval := &cobra.Command{
		Use:   "eval [file]",
		Short: "Evaluate set expressions from a YAML document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("eval needs a document, either as argument or via --config")
			}
			doc, err := LoadDocument(path)
			if err != nil {
				return err
			}
			return Evaluate(doc, cmd.OutOrStdout())
		},
	}

	var numeric bool
	var removals []string
	cmdTree := &cobra.Command{
		Use:   "tree [items...]",
		Short: "Build a set and print its tree structure",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return PrintTree(cmd.OutOrStdout(), args, removals, numeric)
		},
	}
	cmdTree.Flags().BoolVarP(&numeric, "numeric", "n", false, "treat items as integers")
	cmdTree.Flags().StringSliceVarP(&removals, "remove", "r", nil, "items to remove after building the set")

	cmdCount := &cobra.Command{
		Use:   "count [file]",
		Short: "Count word frequencies, ordered alphabetically",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) > 0 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("cannot open input: %w", err)
				}
				defer f.Close()
				in = f
			}
			counts, err := CountWords(in)
			if err != nil {
				return err
			}
			for word, n := range counts.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", word, n)
			}
			return nil
		},
	}

	rootCmd.AddCommand(cmdEval, cmdTree, cmdCount)
	return rootCmd
}

func setTraceLevel(level string) error {
	for _, key := range traceKeys {
		trace := tracing.Select(key)
		switch strings.ToLower(level) {
		case "error":
			trace.SetTraceLevel(tracing.LevelError)
		case "info":
			trace.SetTraceLevel(tracing.LevelInfo)
		case "debug":
			trace.SetTraceLevel(tracing.LevelDebug)
		default:
			return fmt.Errorf("unknown trace level %q", level)
		}
	}
	return nil
}
