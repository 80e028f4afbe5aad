package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/exercise"
)

type globalFlags struct {
	precision int
	tolerance float64
	logLevel  string
	logFormat string
}

func (g *globalFlags) vectorOptions() []vecmath.Option {
	return []vecmath.Option{
		vecmath.WithPrecision(g.precision),
		vecmath.WithTolerance(g.tolerance),
	}
}

func (g *globalFlags) logger() (*exercise.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", g.logLevel, err)
	}

	switch strings.ToLower(g.logFormat) {
	case "text":
		return exercise.NewTextLogger(level), nil
	case "json":
		return exercise.NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", g.logFormat)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:          "vecmath",
		Short:        "Decimal vector and line calculator",
		Long:         `Evaluate vector arithmetic, projections, cross products and 2D line intersections with decimal precision.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&g.precision, "precision", vecmath.DefaultPrecision, "Significant digits kept by every result")
	pf.Float64Var(&g.tolerance, "tolerance", vecmath.DefaultTolerance, "Tolerance for zero, parallel and orthogonal tests")
	pf.StringVar(&g.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pf.StringVar(&g.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(
		newEvalCmd(g),
		newIntersectCmd(g),
		newRunCmd(g),
		newDemoCmd(g),
	)
	return rootCmd
}

// parseVector parses a comma separated list of decimal literals.
func parseVector(s string, opts []vecmath.Option) (*vecmath.Vector, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	v, err := vecmath.FromStrings(parts, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid vector %q: %w", s, err)
	}
	return &v, nil
}
