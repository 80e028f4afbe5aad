package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecmath/codec"
	"github.com/hupe1980/vecmath/exercise"
)

func newRunCmd(g *globalFlags) *cobra.Command {
	var (
		out         string
		concurrency int
		codecName   string
	)

	cmd := &cobra.Command{
		Use:   "run <tasks.jsonl>",
		Short: "Evaluate a file of tasks",
		Long: `Evaluate every task of a JSON-lines file and write one result per line.
Files ending in .zst or .lz4 are read and written compressed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := codec.ByName(codecName)
			if !ok {
				return fmt.Errorf("unknown codec %q (want one of %s)", codecName, strings.Join(codec.Names(), ", "))
			}
			logger, err := g.logger()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			path := args[0]

			tasks, err := exercise.ReadTasks(path, c)
			logger.LogFile(ctx, "read tasks", path, len(tasks), err)
			if err != nil {
				return err
			}

			metrics := &exercise.BasicMetricsCollector{}
			ev := exercise.NewEvaluator(
				exercise.WithConcurrency(concurrency),
				exercise.WithLogger(logger),
				exercise.WithMetricsCollector(metrics),
				exercise.WithVectorOptions(g.vectorOptions()...),
			)

			results, err := ev.Run(ctx, tasks)
			if err != nil {
				return err
			}

			if out == "" {
				if err := exercise.EncodeResults(cmd.OutOrStdout(), c, results); err != nil {
					return err
				}
			} else {
				err := exercise.WriteResults(out, c, results)
				logger.LogFile(ctx, "write results", out, len(results), err)
				if err != nil {
					return err
				}
			}

			stats := metrics.GetStats()
			fmt.Fprintf(cmd.ErrOrStderr(), "%d tasks, %d failed, avg %s\n",
				stats.TaskCount, stats.TaskErrors, time.Duration(stats.TaskAvgNanos))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", "Result file (default stdout)")
	f.IntVarP(&concurrency, "concurrency", "c", 0, "Tasks evaluated at once (default GOMAXPROCS)")
	f.StringVar(&codecName, "codec", codec.Default.Name(), "JSON codec ("+strings.Join(codec.Names(), ", ")+")")

	return cmd
}
