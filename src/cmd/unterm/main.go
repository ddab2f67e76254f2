// Package main provides the unterm CLI. It cleans terminal transcript
// files by stripping ANSI escape sequences and remapping box-drawing
// glyphs to ASCII, using the Cobra framework for command dispatch.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"unterm-agent/src/config"
	"unterm-agent/src/contracts"
	"unterm-agent/src/pipeline"
	"unterm-agent/src/report"
	"unterm-agent/src/tui"
)

const version = "1.0.0"

// Application configuration, loaded before any command runs.
var appConfig *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "unterm",
	Short: "unterm - clean ANSI escapes and box-drawing glyphs out of terminal transcripts",
	Long: `unterm takes a .txt capture of terminal output and produces a plain
ASCII copy next to it (<name>_output.txt), with escape sequences
stripped and Unicode box-drawing characters mapped to +, -, | and
friends.

By default everything runs locally in one process. When the
UNTERM_BROKERS environment variable is set, cleaning runs through a
Redpanda pipeline instead: 'clean' submits a run, and 'status' and
'export' follow up on it.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		appConfig = config.LoadFromEnv()
	},
}

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean [file]",
	Short: "Clean a .txt file and write <name>_output.txt next to it",
	Long: `Cleans the given .txt file. With no argument, an interactive picker
lets you browse for one.

In local mode (the default) the cleaned file is written before the
command exits and a summary is printed. In distributed mode (with
UNTERM_BROKERS set) the run is submitted to the pipeline; use
'unterm status <run-id>' and 'unterm export <run-id>' to follow up.

Example:
  unterm clean session.txt
  unterm clean session.txt --mask
  unterm clean`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputPath, err := resolveInput(args)
		if err != nil {
			if errors.Is(err, tui.ErrPickerCancelled) {
				fmt.Fprintln(os.Stderr, "No file selected.")
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}

		mask, _ := cmd.Flags().GetBool("mask")
		quiet, _ := cmd.Flags().GetBool("quiet")

		if pipeline.DetectMode(appConfig) == pipeline.DistributedMode {
			if mask {
				fmt.Fprintln(os.Stderr, "Note: --mask is only applied in local mode and will be ignored")
			}
			runDistributedClean(inputPath)
			return
		}

		if quiet {
			run, err := pipeline.RunLocal(inputPath, pipeline.LocalOptions{Mask: mask})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(report.Format(run))
			return
		}

		if _, err := tui.RunClean(inputPath, mask); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// resolveInput returns the input path from args or the interactive picker.
func resolveInput(args []string) (string, error) {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		picked, err := tui.PickFile()
		if err != nil {
			return "", err
		}
		path = picked
	}

	if filepath.Ext(path) != ".txt" {
		return "", fmt.Errorf("input must be a .txt file, got %s", path)
	}
	return path, nil
}

// runDistributedClean submits a run to the broker-backed pipeline.
func runDistributedClean(inputPath string) {
	p, err := pipeline.NewDistributedPipeline(appConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer p.Close()

	runID, err := p.Submit(context.Background(), inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error submitting run: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Submitted run %s\n", runID)
	fmt.Printf("   Input: %s\n", inputPath)
	fmt.Println()
	fmt.Printf("   Check progress:  unterm status %s\n", runID)
	fmt.Printf("   Write output:    unterm export %s\n", runID)
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status <run-id>",
	Short: "Show the progress of a submitted run (distributed mode)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := mustDistributedPipeline()
		defer p.Close()

		status, err := p.Status(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Run:      %s\n", status.RunID)
		fmt.Printf("Input:    %s\n", status.InputPath)
		fmt.Printf("Status:   %s\n", status.Status)
		fmt.Printf("Batches:  %d/%d\n", status.BatchesProcessed, status.BatchesTotal)
		if status.Status == contracts.StatusCompleted {
			fmt.Printf("Lines:    %d\n", status.LinesTotal)
			fmt.Printf("Escapes:  %d stripped\n", status.EscapesStripped)
			fmt.Printf("Glyphs:   %d replaced\n", status.GlyphsReplaced)
		}
	},
}

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <run-id>",
	Short: "Write the output file for a completed run (distributed mode)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p := mustDistributedPipeline()
		defer p.Close()

		run, err := p.Export(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(report.Format(run))
	},
}

// mustDistributedPipeline exits with a hint when brokers are not configured.
func mustDistributedPipeline() *pipeline.DistributedPipeline {
	if pipeline.DetectMode(appConfig) != pipeline.DistributedMode {
		fmt.Fprintln(os.Stderr, "ERROR: this command requires distributed mode")
		fmt.Fprintln(os.Stderr, "Example: export UNTERM_BROKERS=localhost:19092")
		os.Exit(1)
	}

	p, err := pipeline.NewDistributedPipeline(appConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return p
}

func init() {
	cleanCmd.Flags().Bool("mask", false, "also mask timestamps, UUIDs and hex hashes in the output")
	cleanCmd.Flags().Bool("quiet", false, "skip the progress display, print the summary only")

	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
