package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/larsvik/autodim/pkg/annotate"
	"github.com/larsvik/autodim/pkg/dimension"
	"github.com/larsvik/autodim/pkg/scene"
)

var planCmd = &cobra.Command{
	Use:   "plan [scene]",
	Short: "Show the dimension plans for every beam in a scene",
	Long:  "Run the selection pipeline and print, per beam, each dimension line and its ordered reference handles.",
	Args:  cobra.ExactArgs(1),
	Run:   runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) {
	sc, err := scene.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()
	view := sc.BuildView()
	planner := &dimension.Planner{Log: logger}
	rec := &annotate.Recorder{}

	for _, beam := range sc.Beams {
		solid, err := beam.Build()
		if err != nil {
			// A bad beam must not block the rest of the scene.
			logger.Error("skipping beam", "beam", beam.Name, "error", err)
			continue
		}

		plans := planner.BuildPlans(solid, view)
		if len(plans) == 0 {
			fmt.Printf("%s: no dimensionable side faces for this view\n", beam.Name)
			continue
		}

		fmt.Printf("%s: %d dimension line(s)\n", beam.Name, len(plans))
		for i, plan := range plans {
			if err := rec.Create(view, plan); err != nil {
				logger.Error("annotation failed", "beam", beam.Name, "error", err)
				continue
			}
			line := plan.Line.Line()
			fmt.Printf("  L%d: (%.3f, %.3f, %.3f) -> (%.3f, %.3f, %.3f)  length %.3f\n",
				i+1,
				line.Start.X, line.Start.Y, line.Start.Z,
				line.End.X, line.End.Y, line.End.Z,
				line.Length())
			for j, ref := range plan.Refs {
				fmt.Printf("      ref %d: %s\n", j+1, ref)
			}
		}
	}

	fmt.Printf("\n%d annotation(s) total\n", len(rec.Annotations))
}
