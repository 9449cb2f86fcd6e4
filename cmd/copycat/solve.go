package main

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/copycat/copycat"
)

func newSolveCmd() *cobra.Command {
	var (
		initial, modified, target string
		iterations                int
		seed                      int64
		formula                   string
		maxSteps                  int
		clampTime                 int
		configPath                string
		verbose                   bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run one or many Copycat analogies and print the answer distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			if initial == "" || modified == "" || target == "" {
				return fmt.Errorf("copycat: --initial, --modified, and --target are all required")
			}
			if iterations <= 0 {
				return fmt.Errorf("copycat: --iterations must be positive")
			}

			cfg := copycat.DefaultConfig()
			if configPath != "" {
				loaded, err := copycat.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("formula") {
				cfg.TemperatureFormula = formula
			}
			if cmd.Flags().Changed("max-steps") {
				cfg.MaxSteps = maxSteps
			}
			if cmd.Flags().Changed("clamp-time") {
				cfg.ClampTime = clampTime
			}

			var logger *zap.SugaredLogger
			if verbose {
				zl, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("copycat: build logger: %w", err)
				}
				defer zl.Sync() //nolint:errcheck
				logger = zl.Sugar()
			}

			histogram, err := copycat.RunMany(cfg, initial, modified, target, iterations, logger)
			if err != nil {
				return err
			}

			renderHistogram(cmd, histogram, iterations)
			return nil
		},
	}

	cmd.Flags().StringVar(&initial, "initial", "", "initial string of the analogy (required)")
	cmd.Flags().StringVar(&modified, "modified", "", "modified string of the analogy (required)")
	cmd.Flags().StringVar(&target, "target", "", "target string to transform (required)")
	cmd.Flags().IntVar(&iterations, "iterations", 100, "number of independent runs to aggregate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed")
	cmd.Flags().StringVar(&formula, "formula", "inverse", "temperature probability-adjustment formula")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 5000, "per-run coderack step budget")
	cmd.Flags().IntVar(&clampTime, "clamp-time", 30, "steps temperature stays clamped at 100")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file; flags override its values")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "emit debug logging")

	return cmd
}

func renderHistogram(cmd *cobra.Command, histogram map[string]copycat.AnswerStats, iterations int) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Answer", "Count", "Fraction", "Avg Temperature"})
	for _, answer := range copycat.SortedAnswers(histogram) {
		stats := histogram[answer]
		fraction := float64(stats.Count) / float64(iterations)
		table.Append([]string{
			answer,
			fmt.Sprintf("%d", stats.Count),
			fmt.Sprintf("%.2f%%", fraction*100),
			fmt.Sprintf("%.2f", stats.AvgTemperature),
		})
	}
	table.Render()
}
