package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecmath/codec"
	"github.com/hupe1980/vecmath/exercise"
)

// demoLines are three line pairs: coincident, crossing and parallel.
var demoLines = [][2][3]string{
	{{"4.046", "2.836", "1.21"}, {"10.115", "7.09", "3.025"}},
	{{"7.204", "3.182", "8.68"}, {"8.172", "4.114", "9.883"}},
	{{"1.182", "5.562", "6.774"}, {"1.773", "8.343", "9.525"}},
}

func demoTasks(g *globalFlags) ([]exercise.Task, error) {
	opts := g.vectorOptions()
	tasks := make([]exercise.Task, 0, len(demoLines))
	for i, pair := range demoLines {
		l1, err := parseLine(pair[0][0]+","+pair[0][1], pair[0][2], opts)
		if err != nil {
			return nil, err
		}
		l2, err := parseLine(pair[1][0]+","+pair[1][1], pair[1][2], opts)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, exercise.Task{
			ID: fmt.Sprintf("lines-%d", i+1),
			Op: exercise.OpIntersect,
			L1: &l1,
			L2: &l2,
		})
	}
	return tasks, nil
}

func newDemoCmd(g *globalFlags) *cobra.Command {
	var write string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Intersect the three sample line pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := demoTasks(g)
			if err != nil {
				return err
			}

			if write != "" {
				if err := exercise.WriteTasks(write, codec.Default, tasks); err != nil {
					return err
				}
			}

			logger, err := g.logger()
			if err != nil {
				return err
			}
			results, err := exercise.NewEvaluator(exercise.WithLogger(logger)).Run(cmd.Context(), tasks)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, res := range results {
				fmt.Fprintf(w, "%s: %s\n", res.ID, res.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&write, "write", "", "Also write the demo tasks to this file")
	return cmd
}
