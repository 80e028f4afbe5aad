package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/exercise"
	"github.com/hupe1980/vecmath/line"
)

func newEvalCmd(g *globalFlags) *cobra.Command {
	var (
		opName  string
		a, b    string
		scalar  string
		degrees bool
	)

	cmd := &cobra.Command{
		Use:     "eval",
		Short:   "Evaluate a single vector operation",
		Example: `  vecmath eval --op angle --a 3.183,-7.627 --b -2.668,5.319 --degrees`,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := exercise.ParseOp(opName)
			if err != nil {
				return err
			}
			if op == exercise.OpIntersect {
				return fmt.Errorf("use the intersect command for %s", op)
			}

			opts := g.vectorOptions()
			task := exercise.Task{ID: "eval", Op: op, Degrees: degrees}
			if task.A, err = parseVector(a, opts); err != nil {
				return err
			}
			if task.B, err = parseVector(b, opts); err != nil {
				return err
			}
			if scalar != "" {
				d, err := vecmath.ParseScalar(scalar)
				if err != nil {
					return fmt.Errorf("invalid scalar %q: %w", scalar, err)
				}
				task.Scalar = &d
			}

			return printResult(cmd, exercise.Evaluate(task, opts...))
		},
	}

	f := cmd.Flags()
	f.StringVar(&opName, "op", "", "Operation to evaluate")
	f.StringVar(&a, "a", "", "First vector, comma separated")
	f.StringVar(&b, "b", "", "Second vector, comma separated")
	f.StringVar(&scalar, "scalar", "", "Scalar factor for the scale operation")
	f.BoolVar(&degrees, "degrees", false, "Report angles in degrees")
	_ = cmd.MarkFlagRequired("op")
	_ = cmd.MarkFlagRequired("a")

	return cmd
}

func newIntersectCmd(g *globalFlags) *cobra.Command {
	var n1, k1, n2, k2 string

	cmd := &cobra.Command{
		Use:     "intersect",
		Short:   "Intersect two lines n1·x = k1 and n2·x = k2",
		Example: `  vecmath intersect --n1 7.204,3.182 --k1 8.68 --n2 8.172,4.114 --k2 9.883`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := g.vectorOptions()
			l1, err := parseLine(n1, k1, opts)
			if err != nil {
				return err
			}
			l2, err := parseLine(n2, k2, opts)
			if err != nil {
				return err
			}

			task := exercise.Task{ID: "intersect", Op: exercise.OpIntersect, L1: &l1, L2: &l2}
			return printResult(cmd, exercise.Evaluate(task, opts...))
		},
	}

	f := cmd.Flags()
	f.StringVar(&n1, "n1", "", "Normal vector of the first line")
	f.StringVar(&k1, "k1", "0", "Constant term of the first line")
	f.StringVar(&n2, "n2", "", "Normal vector of the second line")
	f.StringVar(&k2, "k2", "0", "Constant term of the second line")
	_ = cmd.MarkFlagRequired("n1")
	_ = cmd.MarkFlagRequired("n2")

	return cmd
}

func parseLine(normal, constant string, opts []vecmath.Option) (line.Line, error) {
	n, err := parseVector(normal, opts)
	if err != nil {
		return line.Line{}, err
	}
	if n == nil {
		return line.Line{}, fmt.Errorf("%w: normal", exercise.ErrMissingOperand)
	}
	k, err := decimal.NewFromString(constant)
	if err != nil {
		return line.Line{}, fmt.Errorf("invalid constant %q: %w", constant, err)
	}
	return line.New(*n, k)
}

func printResult(cmd *cobra.Command, res exercise.Result) error {
	if err := res.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), res.String())
	return err
}
